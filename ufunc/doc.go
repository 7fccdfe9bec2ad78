// Package ufunc implements a move-only, type-erased callable container
// with an inline small-object buffer.
//
// The layers build bottom-up:
//   - Storage[B] places one value either in an inline buffer of type B or
//     behind a single heap allocation, chosen once at construction.
//   - Erased[B] adds a validity flag plus mover and destroyer functions
//     bound to the concrete type at construction — a hand-built vtable
//     that lets an inline value of unknown type relocate and tear down
//     correctly.
//   - Sizable[B, R] adds the caller function and presents the whole thing
//     as a callable returning R. UniqueFunc[R] is the alias with the
//     default four-pointer-width buffer.
//
// Inline placement is restricted to pointer-free values: bytes inside the
// buffer are opaque to the garbage collector, so anything carrying a Go
// pointer takes the heap path instead, where the reference stays visible.
// Use Bind with a flat capture struct to stay inline; wrapping a closure
// with New always heap-allocates, since a func value is a pointer.
//
// Containers are move-only: transfer with MoveFrom, after which the
// source is invalid. Copying a Sizable is flagged by go vet.
package ufunc
