package threadpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_AtMostOnceExecution(t *testing.T) {
	var runs atomic.Int32
	tk := newTask(func() { runs.Add(1) }, nil)

	var winners atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if tk.tryRun() {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.EqualValues(t, 1, runs.Load(), "thunk must execute exactly once")
	require.EqualValues(t, 1, winners.Load(), "exactly one claimer wins")
	assert.True(t, tk.isReady())

	select {
	case <-tk.done:
	default:
		t.Fatal("completion signal not fired")
	}
}

func TestTask_SecondTryRunIsNoOp(t *testing.T) {
	var runs int
	tk := newTask(func() { runs++ }, nil)

	require.True(t, tk.tryRun())
	require.False(t, tk.tryRun())
	assert.Equal(t, 1, runs)
}

func TestTask_WaitContextOnUnclaimedTask(t *testing.T) {
	tk := newTask(func() {}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := tk.waitContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The task is still runnable and the wait succeeds afterwards.
	require.True(t, tk.tryRun())
	require.NoError(t, tk.waitContext(context.Background()))
}
