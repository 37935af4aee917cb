// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// Fork returns an independent copy of v in O(1): both v and the result
// keep reading from the same trie and tail, and each only copies the
// structure it actually writes through, the moment it writes it
// (spec.md §4.9). This mirrors the teacher's Transient/Persist split in
// value/persist/slice.go, generalized from "one owner, many readers" to
// "any number of independent, individually mutable owners" via a
// per-instance forkID rather than a single shared generation counter.
func (v *Vector[T]) Fork() *Vector[T] {
	v.rootOwned = false
	v.tailOwned = false
	v.forkID = nextForkID()
	cp := *v
	cp.forkID = nextForkID()
	return &cp
}

// Join appends other to the end of v, in place. If other is a *Vector[T]
// the bulk concatenation of spec.md §4.8 is used, in O(log n); other is
// forked internally first, so its own content is left untouched.
// Otherwise Join degenerates to AppendAll, per spec.md §6.
func (v *Vector[T]) Join(other Sequence[T]) {
	if ov, ok := other.(*Vector[T]); ok {
		v.joinVector(ov)
		return
	}
	v.AppendAll(other)
}

// JoinAt splices other into v at index i, in place, so that v becomes
// v[0:i] ++ other ++ v[i:v.Len()]. i == v.Len() behaves like Join.
func (v *Vector[T]) JoinAt(i int, other Sequence[T]) {
	n := v.Len()
	if i < 0 || i > n {
		panic(errIndexOutOfBounds(i, n))
	}
	if i == n {
		v.Join(other)
		return
	}

	ov, ok := other.(*Vector[T])
	if !ok {
		v.InsertAll(i, other)
		return
	}

	left, right := v.splitAt(i)
	left.joinVector(ov)
	left.joinVector(right)
	*v = *left
	v.modCount++
}

// joinVector mutates v in place to hold v's own elements followed by
// other's, leaving other untouched (other is forked before any of its
// structure is read, matching spec.md §6's "invoke fork on c").
func (v *Vector[T]) joinVector(other *Vector[T]) {
	if other.Len() == 0 {
		return
	}
	if v.Len() == 0 {
		*v = *other.Fork()
		v.modCount++
		return
	}

	forked := other.Fork()

	if len(v.tail) > 0 {
		// Absorb v's own tail into its trie as a plain leaf-level
		// concatenation: pushTailDown assumes a full (spanSize-element)
		// tail, which v's need not be here, so route through the general
		// merge instead of duplicating its leaf-overflow handling.
		tailLeaf := newLeaf[T](append([]T(nil), v.tail...))
		if v.root == nil {
			v.root, v.rootShift = tailLeaf, 0
		} else {
			v.root, v.rootShift = concatNodes[T](v.root, v.rootShift, tailLeaf, 0)
		}
		v.rootSize += len(v.tail)
		v.tail = nil
		v.tailOwned = false
	}

	var mergedRoot node[T]
	switch {
	case v.root == nil:
		mergedRoot = forked.root
	case forked.root == nil:
		mergedRoot = v.root
	default:
		mergedRoot, _ = concatNodes[T](v.root, v.rootShift, forked.root, forked.rootShift)
	}

	// concatNodes always normalizes its own output, but the two
	// single-sided cases above hand mergedRoot back unexamined: if v's
	// own tail was absorbed into a leaf root above (possibly short) and
	// forked turns out to have no root of its own, mergedRoot here is
	// that same short leaf — a leaf root shorter than spanSize, which
	// violates §3 invariant 2 and corrupts the next pushTailDown. Route
	// the result through finalizeRoot (as splitAt already does) so a
	// short leaf is demoted back into the tail instead of installed as
	// the root.
	root, shift, rootSize, shortTail := finalizeRoot[T](mergedRoot, nodeTotal[T](mergedRoot))

	v.root = root
	v.rootShift = shift
	v.rootSize = rootSize
	v.rootOwned = false
	v.tail = nil
	v.tailOwned = false

	combinedTail := append(shortTail, forked.tail...)
	if len(combinedTail) > 0 {
		v.directAppend(combinedTail)
	}
	v.modCount++
}
