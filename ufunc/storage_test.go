package ufunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type smallCapture struct {
	a, b int
}

type largeCapture struct {
	vals [8]uint64
}

type pointerCapture struct {
	p *int
}

func TestStorage_Placement(t *testing.T) {
	tests := []struct {
		name        string
		construct   func() interface{ IsInlined() bool }
		wantInlined bool
	}{
		{
			name: "small pointer-free struct is inlined",
			construct: func() interface{ IsInlined() bool } {
				s := NewStorage[Buffer](smallCapture{a: 1, b: 2})
				return &s
			},
			wantInlined: true,
		},
		{
			name: "buffer-sized value is inlined",
			construct: func() interface{ IsInlined() bool } {
				s := NewStorage[Buffer]([4]uintptr{1, 2, 3, 4})
				return &s
			},
			wantInlined: true,
		},
		{
			name: "oversized value goes to heap",
			construct: func() interface{ IsInlined() bool } {
				s := NewStorage[Buffer](largeCapture{})
				return &s
			},
			wantInlined: false,
		},
		{
			name: "pointer-carrying struct goes to heap",
			construct: func() interface{ IsInlined() bool } {
				n := 7
				s := NewStorage[Buffer](pointerCapture{p: &n})
				return &s
			},
			wantInlined: false,
		},
		{
			name: "string goes to heap",
			construct: func() interface{ IsInlined() bool } {
				s := NewStorage[Buffer]("abc")
				return &s
			},
			wantInlined: false,
		},
		{
			name: "zero-size struct is inlined",
			construct: func() interface{ IsInlined() bool } {
				s := NewStorage[Buffer](struct{}{})
				return &s
			},
			wantInlined: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantInlined, tt.construct().IsInlined())
		})
	}
}

func TestStorage_InlineRoundTrip(t *testing.T) {
	s := NewStorage[Buffer](smallCapture{a: 3, b: 4})
	require.True(t, s.IsInlined())

	v := As[smallCapture](&s)
	require.Equal(t, smallCapture{a: 3, b: 4}, *v)

	// Mutation through the typed pointer is visible on re-access: the
	// value lives in place.
	v.a = 42
	require.Equal(t, 42, As[smallCapture](&s).a)
}

func TestStorage_HeapMoveTransfersPointer(t *testing.T) {
	src := NewStorage[Buffer](largeCapture{vals: [8]uint64{9, 8, 7}})
	require.False(t, src.IsInlined())
	before := As[largeCapture](&src)

	var dst Storage[Buffer]
	dst.MoveFrom(&src)

	// The stored bytes were not copied; the destination addresses the
	// same allocation.
	require.Same(t, before, As[largeCapture](&dst))
	assert.Nil(t, src.Pointer())
	assert.False(t, src.IsInlined())
}

func TestStorage_ZeroValueIsEmpty(t *testing.T) {
	var s Storage[Buffer]
	assert.Nil(t, s.Pointer())
	assert.False(t, s.IsInlined())
}

func TestFits(t *testing.T) {
	assert.True(t, fits[Buffer, smallCapture]())
	assert.True(t, fits[Buffer, [4]uintptr]())
	assert.False(t, fits[Buffer, [5]uintptr]())
	assert.False(t, fits[Buffer, *int]())
	assert.False(t, fits[Buffer, func()]())
	assert.False(t, fits[[1]uintptr, smallCapture]())
	assert.True(t, fits[[1]uintptr, uintptr]())
}
