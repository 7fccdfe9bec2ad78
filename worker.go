package threadpool

// work is the worker loop: sleep until work arrives or shutdown is
// requested, dequeue one task, run it with the queue lock released,
// settle the ongoing counter, repeat.
func (p *ThreadPool) work() {
	defer p.workers.Done()

	p.mu.Lock()
	for {
		for !p.quit && len(p.queue) == 0 {
			p.workAvail.Wait()
		}
		if p.quit {
			break
		}

		t, _ := p.pop()
		p.ongoing++
		p.mu.Unlock()

		p.runQueued(t)

		p.mu.Lock()
	}
	p.mu.Unlock()
}
