// File: view.go
// Title: Read-only List View
// Description: View is an order-preserving, read-only list. Freeze copies its
//              input, so later changes to the caller's slice are invisible,
//              and View exposes no way to change its elements.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package slicex

import (
	"encoding/json"
	"iter"
)

// View is an immutable list. The zero value is an empty list.
type View[T any] struct {
	items []T
}

// Freeze copies items into a new View. nil becomes an empty View.
func Freeze[T any](items []T) View[T] {
	if len(items) == 0 {
		return View[T]{}
	}
	return View[T]{items: Clone(items)}
}

// Len returns the number of elements
func (v View[T]) Len() int {
	return len(v.items)
}

// IsEmpty reports whether the view has no elements
func (v View[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// At returns the element at index i. It panics when i is out of range.
func (v View[T]) At(i int) T {
	return v.items[i]
}

// All iterates over index and element pairs
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values iterates over the elements
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements; never nil
func (v View[T]) Slice() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// MarshalJSON renders the view as a JSON array; empty views render as []
func (v View[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Slice())
}
