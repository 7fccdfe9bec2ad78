package ufunc

import (
	"reflect"
	"unsafe"
)

// Buffer is the default inline buffer: four pointer-widths, aligned for
// every scalar type.
type Buffer = [4]uintptr

// Storage places one value of a type fixed at construction either in the
// inline buffer or behind a single heap allocation. Exactly one variant
// is active; the choice never changes after construction.
//
// Storage knows nothing about the stored type once constructed. Moving a
// heap-backed Storage transfers the pointer; relocating inline bytes is
// the owning layer's job, because raw bytes cannot move themselves
// without knowing their type. The zero value is an empty Storage.
type Storage[B any] struct {
	inline  B
	heap    unsafe.Pointer
	inlined bool
}

// NewStorage stores v. The value is placed inline when it fits the buffer
// by size and alignment and contains no Go pointers; otherwise it is
// boxed on the heap.
func NewStorage[B, T any](v T) Storage[B] {
	var s Storage[B]
	if fits[B, T]() {
		s.inlined = true
		*(*T)(unsafe.Pointer(&s.inline)) = v
		return s
	}
	p := new(T)
	*p = v
	s.heap = unsafe.Pointer(p)
	return s
}

// IsInlined reports whether the value lives in the inline buffer.
func (s *Storage[B]) IsInlined() bool { return s.inlined }

// Pointer returns the address of the stored bytes, or nil for an empty
// Storage.
func (s *Storage[B]) Pointer() unsafe.Pointer {
	if s.inlined {
		return unsafe.Pointer(&s.inline)
	}
	return s.heap
}

// MoveFrom transfers src's storage into s, leaving src empty. Heap-backed
// storage moves by pointer transfer, never copying the stored bytes.
// Inline bytes are copied as-is; relocating a value that needs more than
// a byte copy is the owning layer's job via its mover.
func (s *Storage[B]) MoveFrom(src *Storage[B]) {
	s.inline = src.inline
	s.heap = src.heap
	s.inlined = src.inlined
	src.heap = nil
	src.inlined = false
}

// Release drops the heap reference, if any. Inline bytes carry no
// ownership of their own; the owning layer destroys the contained value
// before releasing.
func (s *Storage[B]) Release() {
	s.heap = nil
	s.inlined = false
}

// As reinterprets the stored bytes as a *T. The caller must request the
// same T the Storage was constructed with; there is no runtime check and
// a mismatched T corrupts unpredictably.
func As[T, B any](s *Storage[B]) *T {
	return (*T)(s.Pointer())
}

// fits reports whether a value of type T may be placed inline in a buffer
// of type B: it must fit by size and alignment and must be pointer-free.
func fits[B, T any]() bool {
	bt := reflect.TypeOf((*B)(nil)).Elem()
	vt := reflect.TypeOf((*T)(nil)).Elem()
	return vt.Size() <= bt.Size() && vt.Align() <= bt.Align() && pointerFree(vt)
}

// pointerFree reports whether values of type t contain no Go pointers.
// Pointer-carrying kinds (pointers, slices, maps, chans, funcs, strings,
// interfaces, unsafe.Pointer) must stay visible to the garbage collector
// and therefore never qualify for the inline buffer.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
