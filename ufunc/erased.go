package ufunc

import "unsafe"

// Erased owns one value whose type was erased at construction. Two
// functions bound to the concrete type stand in for a vtable: a mover
// relocating the value between addresses and a destroyer tearing it down.
// valid is true iff a live value is currently stored; a moved-from Erased
// is invalid and its destroyer will not run again.
type Erased[B any] struct {
	storage Storage[B]
	mover   func(dst, src unsafe.Pointer)
	destroy func(p unsafe.Pointer)
	valid   bool
}

// NewErased stores v and binds its mover and destroyer.
func NewErased[B, T any](v T) Erased[B] {
	return Erased[B]{
		storage: NewStorage[B](v),
		mover:   typedMover[T],
		destroy: typedDestroyer[T],
		valid:   true,
	}
}

// typedMover relocates a T from src to dst and clears src, so references
// held by the source slot do not linger.
func typedMover[T any](dst, src unsafe.Pointer) {
	*(*T)(dst) = *(*T)(src)
	var zero T
	*(*T)(src) = zero
}

// typedDestroyer clears the T at p, releasing anything it references.
func typedDestroyer[T any](p unsafe.Pointer) {
	var zero T
	*(*T)(p) = zero
}

// Valid reports whether a value is currently stored.
func (e *Erased[B]) Valid() bool { return e.valid }

// IsInlined reports whether the stored value lives in the inline buffer.
func (e *Erased[B]) IsInlined() bool { return e.storage.IsInlined() }

// Reset destroys the contained value, if any, and releases its storage.
func (e *Erased[B]) Reset() {
	if !e.valid {
		return
	}
	e.destroy(e.storage.Pointer())
	e.storage.Release()
	e.valid = false
}

// MoveFrom destroys the value e currently holds, then transfers src's
// value in. A heap-backed value relocates by pointer transfer; an inline
// value relocates through src's mover, invoked with the destination and
// source addresses. Afterwards src is invalid.
func (e *Erased[B]) MoveFrom(src *Erased[B]) {
	e.Reset()
	if !src.valid {
		return
	}

	if src.storage.IsInlined() {
		e.storage = Storage[B]{inlined: true}
		src.mover(e.storage.Pointer(), src.storage.Pointer())
		src.storage.Release()
	} else {
		e.storage.MoveFrom(&src.storage)
	}
	e.mover = src.mover
	e.destroy = src.destroy

	e.valid = true
	src.valid = false
}

// ValueOf returns a typed pointer to the contained value. Same caller
// contract as As: T must be the type the Erased was constructed with.
func ValueOf[T, B any](e *Erased[B]) *T {
	return (*T)(e.storage.Pointer())
}
