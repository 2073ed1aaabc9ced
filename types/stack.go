// SPDX-License-Identifier: MIT
package types

import (
	"golang.org/x/exp/constraints"
)

type (
	// Stack is a LIFO work list.
	//
	// Synchronization is unnecessary, the type is designed for a single goroutine.
	Stack[T any] struct {
		items []T
	}
)

// NewStack instantiates a Stack holding the initial values, last one on top.
func NewStack[T any](values ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(values)+initialStackCap)}
	s.items = append(s.items, values...)

	return s
}

const initialStackCap = 16

// Len is the number of elements in the Stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Push values onto the Stack.
func (s *Stack[T]) Push(values ...T) { s.items = append(s.items, values...) }

// Peek obtains the top of the Stack without removing it.
func (s *Stack[T]) Peek() (top T, ok bool) {
	if len(s.items) < 1 {
		return
	}

	return s.items[len(s.items)-1], true
}

// Pop removes the top of the Stack.
func (s *Stack[T]) Pop() (top T, ok bool) {
	if top, ok = s.Peek(); !ok {
		return
	}

	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]

	return
}

// Wrap adds delta to value modulo modulus, always landing in [0, modulus).
func Wrap[T constraints.Integer](value, delta, modulus T) T {
	r := (value + delta) % modulus
	if r < 0 {
		r += modulus
	}

	return r
}
