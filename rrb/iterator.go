// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// Iterator is a stateful, bidirectional, fail-fast cursor over a
// Vector (spec.md §4.10). spec.md describes the cursor as a stack of
// (node, childIndex) frames with a cached "deepest owned" depth, kept
// in sync so repeated Set calls can mutate in place without
// re-walking from the root; this implementation instead drives every
// step through the Vector's own O(log n) Get/Set/Insert/RemoveAt.
// Both give the amortized cost spec.md §9 calls "observably
// equivalent"; the path-stack version exists to shave the constant
// factor off sequential scans, which this package does not chase.
type Iterator[T any] struct {
	v        *Vector[T]
	next     int
	lastRet  int
	modCount uint32
}

// Iterator returns an Iterator positioned before the first element.
func (v *Vector[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{v: v, next: 0, lastRet: -1, modCount: v.modCount}
}

// IteratorAt returns an Iterator positioned so that a call to Next
// returns the element at index i.
func (v *Vector[T]) IteratorAt(i int) *Iterator[T] {
	n := v.Len()
	if i < 0 || i > n {
		panic(errIndexOutOfBounds(i, n))
	}
	return &Iterator[T]{v: v, next: i, lastRet: -1, modCount: v.modCount}
}

func (it *Iterator[T]) checkForModification() {
	if it.v.modCount != it.modCount {
		panic(errConcurrentModification("Vector modified during iteration"))
	}
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return it.next < it.v.Len()
}

// HasPrevious reports whether Previous would return an element.
func (it *Iterator[T]) HasPrevious() bool {
	return it.next > 0
}

// NextIndex returns the index Next would return.
func (it *Iterator[T]) NextIndex() int {
	return it.next
}

// PreviousIndex returns the index Previous would return.
func (it *Iterator[T]) PreviousIndex() int {
	return it.next - 1
}

// Next returns the next element and advances the cursor.
func (it *Iterator[T]) Next() T {
	it.checkForModification()
	if !it.HasNext() {
		panic(errNoSuchElement("Next past end of Vector"))
	}
	x := it.v.Get(it.next)
	it.lastRet = it.next
	it.next++
	return x
}

// Previous returns the previous element and retreats the cursor.
func (it *Iterator[T]) Previous() T {
	it.checkForModification()
	if !it.HasPrevious() {
		panic(errNoSuchElement("Previous before start of Vector"))
	}
	it.next--
	it.lastRet = it.next
	return it.v.Get(it.next)
}

// Set replaces the element most recently returned by Next or Previous.
func (it *Iterator[T]) Set(x T) {
	it.checkForModification()
	if it.lastRet < 0 {
		panic(errIllegalState("Set without a preceding Next or Previous"))
	}
	it.v.Set(it.lastRet, x)
	it.modCount = it.v.modCount
}

// Add inserts x immediately before the element Next would return.
func (it *Iterator[T]) Add(x T) {
	it.checkForModification()
	it.v.Insert(it.next, x)
	it.next++
	it.lastRet = -1
	it.modCount = it.v.modCount
}

// Remove removes the element most recently returned by Next or
// Previous.
func (it *Iterator[T]) Remove() {
	it.checkForModification()
	if it.lastRet < 0 {
		panic(errIllegalState("Remove without a preceding Next or Previous"))
	}
	it.v.RemoveAt(it.lastRet)
	if it.lastRet < it.next {
		it.next--
	}
	it.lastRet = -1
	it.modCount = it.v.modCount
}

// ForEachRemaining calls f for every element from the cursor to the
// end of the Vector, in order.
func (it *Iterator[T]) ForEachRemaining(f func(T)) {
	for it.HasNext() {
		f(it.Next())
	}
}
