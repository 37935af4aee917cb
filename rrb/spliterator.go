// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// Characteristics reports traits of a Spliterator's source, following
// java.util.Spliterator's vocabulary (spec.md §6 names these directly):
// a Vector's Spliterator is always Ordered, Sized (it knows its exact
// remaining count up front) and Subsized (so does every split of it).
type Characteristics int

const (
	Ordered Characteristics = 1 << iota
	Sized
	Subsized
)

// Spliterator is a read-only, splittable cursor over a Sequence,
// intended for parallel or chunked consumption rather than the
// positional edits Iterator supports.
type Spliterator[T any] struct {
	src Sequence[T]
	pos int
	end int
}

// Spliterator returns a Spliterator covering all of v's current
// elements. Its range is fixed to v's length at the moment it is
// created, but elements are read from v with Get as it advances, so
// later changes to v show up in what it yields, and reading past a
// shrunken v panics.
func (v *Vector[T]) Spliterator() *Spliterator[T] {
	return &Spliterator[T]{src: v, pos: 0, end: v.Len()}
}

// EstimateSize returns the number of elements not yet visited.
func (s *Spliterator[T]) EstimateSize() int {
	return s.end - s.pos
}

// Characteristics reports this Spliterator's traits.
func (s *Spliterator[T]) Characteristics() Characteristics {
	return Ordered | Sized | Subsized
}

// TryAdvance calls f with the next element and reports true, or
// reports false if there is none.
func (s *Spliterator[T]) TryAdvance(f func(T)) bool {
	if s.pos >= s.end {
		return false
	}
	f(s.src.Get(s.pos))
	s.pos++
	return true
}

// ForEachRemaining calls f with every element not yet visited, in
// order.
func (s *Spliterator[T]) ForEachRemaining(f func(T)) {
	for s.pos < s.end {
		f(s.src.Get(s.pos))
		s.pos++
	}
}

// TrySplit splits off a prefix covering roughly the first half of the
// remaining elements and returns a Spliterator over it, leaving s to
// cover the rest; it returns nil once the remainder is too small to
// usefully split, matching java.util.Spliterator's contract.
func (s *Spliterator[T]) TrySplit() *Spliterator[T] {
	remaining := s.end - s.pos
	if remaining < 2 {
		return nil
	}
	mid := s.pos + remaining/2
	prefix := &Spliterator[T]{src: s.src, pos: s.pos, end: mid}
	s.pos = mid
	return prefix
}
