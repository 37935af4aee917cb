// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// Append adds x to the end of v.
func (v *Vector[T]) Append(x T) {
	if v.Len() >= maxSize {
		panic(errOverflow(v.Len() + 1))
	}
	if len(v.tail) == spanSize {
		v.pushTailDown()
		v.tail = nil
		v.tailOwned = false
	}
	v.ensureTailOwned()
	v.tail = append(v.tail, x)
	v.modCount++
}

// AppendAll appends every element of src to the end of v, in order.
// This is the "direct bulk append" of spec.md §4.6: src is flattened
// once, folded into the existing tail, and then installed into the
// trie in spanSize-sized chunks rather than one element at a time.
func (v *Vector[T]) AppendAll(src Sequence[T]) {
	n := src.Len()
	if n == 0 {
		return
	}
	newTotal := v.Len() + n
	if newTotal > maxSize || newTotal < 0 {
		panic(errOverflow(newTotal))
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = src.Get(i)
	}
	v.directAppend(buf)
	v.modCount++
}

// directAppend appends buf, already a flat and fully-owned slice, to v
// in full (spec.md §4.6's ALWAYS_EMPTY_SRC mode, the only one any call
// site in this package needs: every caller here has the entire source
// in hand and wants all of it consumed; the spec's other two modes
// exist to let a caller hold back one source element for the tail,
// which nothing here requires).
func (v *Vector[T]) directAppend(buf []T) {
	if len(v.tail) > 0 {
		v.ensureTailOwned()
		room := spanSize - len(v.tail)
		n := min(room, len(buf))
		v.tail = append(v.tail, buf[:n]...)
		buf = buf[n:]
		if len(buf) == 0 {
			return
		}
		v.pushTailDown()
		v.tail = nil
		v.tailOwned = false
	}

	for len(buf) >= spanSize {
		v.pushChunk(buf[:spanSize])
		buf = buf[spanSize:]
	}

	if len(buf) > 0 {
		v.ensureTailOwned()
		v.tail = append(v.tail, buf...)
	}
}

// pushChunk installs a full spanSize-element chunk as the new rightmost
// leaf of the trie, by reusing pushTailDown with v.tail temporarily
// substituted. chunk must not be aliased by anything else the caller
// still intends to mutate: pushTailDown always copies it before storing
// it in a node.
func (v *Vector[T]) pushChunk(chunk []T) {
	savedTail, savedOwned := v.tail, v.tailOwned
	v.tail = chunk
	v.pushTailDown()
	v.tail, v.tailOwned = savedTail, savedOwned
}
