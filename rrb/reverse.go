// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// Reversed is an order-reversing view onto a Vector (spec.md §6): it
// introduces no new structure, just index translation over the
// underlying Vector's existing Get/Set.
type Reversed[T any] struct {
	v *Vector[T]
}

// Reversed returns a view of v with its element order reversed.
func (v *Vector[T]) Reversed() *Reversed[T] {
	return &Reversed[T]{v: v}
}

// Len returns the number of elements in the view.
func (r *Reversed[T]) Len() int {
	return r.v.Len()
}

// Get returns the element at index i of the view.
func (r *Reversed[T]) Get(i int) T {
	n := r.v.Len()
	if i < 0 || i >= n {
		panic(errIndexOutOfBounds(i, n))
	}
	return r.v.Get(n - 1 - i)
}

// Set replaces the element at index i of the view and returns the
// element it replaced.
func (r *Reversed[T]) Set(i int, x T) T {
	n := r.v.Len()
	if i < 0 || i >= n {
		panic(errIndexOutOfBounds(i, n))
	}
	return r.v.Set(n-1-i, x)
}

// ToSlice returns a new []T containing a copy of the view's elements,
// in order.
func (r *Reversed[T]) ToSlice() []T {
	n := r.v.Len()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = r.v.Get(n - 1 - i)
	}
	return out
}
