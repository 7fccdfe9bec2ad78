package ufunc

import (
	"errors"
	"unsafe"
)

// ErrInvalidCallable is returned by Call on an unset or moved-from
// container.
var ErrInvalidCallable = errors.New("ufunc: call on invalid callable")

// Sizable is a move-only callable container with an inline buffer of type
// B. R is the call result type; arguments are bound at construction (Go
// type parameters cannot express variadic call signatures, so the bound
// nullary form is canonical — see Bind).
//
// The zero value is an unset container: Valid reports false and Call
// returns ErrInvalidCallable.
type Sizable[B, R any] struct {
	// noCopy prevents accidental copying; transfer with MoveFrom.
	//go:nocopy
	nc noCopy

	erased Erased[B]
	call   func(p unsafe.Pointer) R
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the
// presence of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// UniqueFunc is a Sizable with the default inline buffer of four
// pointer-widths.
type UniqueFunc[R any] = Sizable[Buffer, R]

// Bind builds a Sizable from a capture value and an invoke function. The
// capture is what gets erased and stored; invoke receives a pointer to
// the stored capture on every call, so stateful captures mutate in place.
// A pointer-free capture that fits the buffer stays inline.
func Bind[B, T, R any](capture T, invoke func(*T) R) *Sizable[B, R] {
	return &Sizable[B, R]{
		erased: NewErased[B](capture),
		call: func(p unsafe.Pointer) R {
			return invoke((*T)(p))
		},
	}
}

// New wraps a plain nullary function into a UniqueFunc. A func value is a
// pointer, so the wrapped callable always takes the heap path; use Bind
// with a flat capture struct when inlining matters.
func New[R any](fn func() R) *UniqueFunc[R] {
	return Bind[Buffer](fn, func(f *func() R) R { return (*f)() })
}

// NewSizable is New with an explicit buffer type.
func NewSizable[B, R any](fn func() R) *Sizable[B, R] {
	return Bind[B](fn, func(f *func() R) R { return (*f)() })
}

// Call invokes the stored callable and returns its result. The callable
// stays valid and may be called again. Calling an unset or moved-from
// container returns ErrInvalidCallable.
func (f *Sizable[B, R]) Call() (R, error) {
	if !f.erased.Valid() {
		var zero R
		return zero, ErrInvalidCallable
	}
	return f.call(f.erased.storage.Pointer()), nil
}

// Valid reports whether a callable is currently stored.
func (f *Sizable[B, R]) Valid() bool { return f.erased.Valid() }

// IsInlined reports whether the capture lives in the inline buffer.
func (f *Sizable[B, R]) IsInlined() bool { return f.erased.IsInlined() }

// MoveFrom destroys the callable f currently holds and transfers src's
// callable in, leaving src invalid.
func (f *Sizable[B, R]) MoveFrom(src *Sizable[B, R]) {
	f.erased.MoveFrom(&src.erased)
	f.call = src.call
	src.call = nil
}

// Reset destroys the stored callable, releasing its capture, and leaves
// the container invalid.
func (f *Sizable[B, R]) Reset() {
	f.erased.Reset()
	f.call = nil
}
