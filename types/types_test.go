// SPDX-License-Identifier: MIT
package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteQueue_Pop(t *testing.T) {
	src := []byte{1, 2}
	q := NewByteQueue(src)
	src[0] = 9

	b, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, byte(1), b)

	b, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, byte(2), b)

	_, ok = q.Pop()
	require.False(t, ok)
	require.Equal(t, 0, q.Len())
}

func TestByteQueue_Fork(t *testing.T) {
	q := NewByteQueue([]byte{1, 2, 3})
	fork := q.Fork()

	_, _ = fork.Pop()
	_, _ = fork.Pop()

	require.Equal(t, []byte{3}, fork.Bytes())
	require.Equal(t, []byte{1, 2, 3}, q.Bytes())
}

func TestStack(t *testing.T) {
	s := NewStack(1, 2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, 3, top)

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok = s.Pop()
	require.False(t, ok)
	_, ok = s.Peek()
	require.False(t, ok)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		delta   int
		modulus int
		want    int
	}{
		{"increment", 4, 1, 256, 5},
		{"overflow", 255, 1, 256, 0},
		{"underflow", 0, -1, 256, 255},
		{"wide underflow", 0, -1, 30000, 29999},
		{"wide overflow", 29999, 1, 30000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.value, tt.delta, tt.modulus); got != tt.want {
				t.Errorf("Wrap() = %v, want %v", got, tt.want)
			}
		})
	}

	require.Equal(t, int16(-1+7), Wrap[int16](0, -1, 7))
}
