// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// This file implements spec.md §4.7 ("split around a range"), narrowed
// to a single cut point: splitAt(i) divides a subtree into
// [0, i) and [i, end). A two-sided range split (used by SubList, Fork's
// sub-range variants, and RemoveRange) composes two single-point splits
// (see extractRange and RemoveRange in mutate.go).
//
// splitAt never mutates or claims ownership of the nodes it visits — it
// is deliberately the "does not take ownership" variant spec.md §4.11
// describes for forkPrefix/forkSuffix/forkRange, used uniformly here
// (including from RemoveRange/Insert) rather than maintaining a second,
// ownership-retaining variant: per spec.md §3 invariant 4, ownership is
// only ever a conservative approximation of uniqueness, so always
// treating split's output as unowned is safe, simply forgoing a
// possible optimization when a caller already uniquely owned the input.

// splitNode divides the subtree rooted at n (at the given shift) at
// local offset splitIdx, returning the left part (elements [0,
// splitIdx)) and the right part ([splitIdx, total)) along with each
// part's element count. A nil node paired with count 0 means nothing
// landed on that side.
func splitNode[T any](n node[T], shift, splitIdx int) (leftN node[T], leftCount int, rightN node[T], rightCount int) {
	switch cur := n.(type) {
	case nil:
		return nil, 0, nil, 0
	case *leafNode[T]:
		if splitIdx <= 0 {
			return nil, 0, cur, len(cur.elems)
		}
		if splitIdx >= len(cur.elems) {
			return cur, len(cur.elems), nil, 0
		}
		left := append([]T(nil), cur.elems[:splitIdx]...)
		right := append([]T(nil), cur.elems[splitIdx:]...)
		return newLeaf[T](left), len(left), newLeaf[T](right), len(right)
	case *interiorNode[T]:
		total := nodeTotal[T](cur)
		if splitIdx <= 0 {
			return nil, 0, cur, total
		}
		if splitIdx >= total {
			return cur, total, nil, 0
		}

		k := (splitIdx >> shift) & indexMask
		before := 0
		if cur.sizes != nil {
			for int(cur.sizes[k]) <= splitIdx {
				k++
			}
			if k > 0 {
				before = int(cur.sizes[k-1])
			}
		} else {
			before = k << shift
		}

		childLeft, childLeftCount, childRight, childRightCount :=
			splitNode[T](cur.children[k], shift-shiftBits, splitIdx-before)

		var leftChildren, rightChildren []node[T]
		leftChildren = append(leftChildren, cur.children[:k]...)
		if childLeftCount > 0 {
			leftChildren = append(leftChildren, childLeft)
		}
		if childRightCount > 0 {
			rightChildren = append(rightChildren, childRight)
		}
		rightChildren = append(rightChildren, cur.children[k+1:]...)

		leftN = buildInterior[T](leftChildren, shift)
		rightN = buildInterior[T](rightChildren, shift)
		return leftN, splitIdx, rightN, total - splitIdx
	}
	return nil, 0, nil, 0
}

// buildInterior wraps children in a freshly allocated interior node at
// the given shift, computing its size table (or leaving it strict).
// Thin single-child results are tolerated, per spec.md §4.7. The
// returned node claims no ownership of its children: they may still be
// the very children of the node being split.
func buildInterior[T any](children []node[T], shift int) node[T] {
	if len(children) == 0 {
		return nil
	}
	in := &interiorNode[T]{shift: shift, children: children}
	recomputeSizes[T](in)
	return in
}

// finalizeRoot adapts a possibly-thin subtree of the given count into a
// valid (root, rootShift, rootSize, tail) quadruple, enforcing
// spec.md §3 invariant 2 (a leaf root must be full): a short leaf is
// demoted entirely into the tail instead.
func finalizeRoot[T any](n node[T], count int) (root node[T], shift int, rootSize int, tail []T) {
	if count == 0 {
		return nil, 0, 0, nil
	}
	if leaf, ok := n.(*leafNode[T]); ok {
		if len(leaf.elems) < spanSize {
			return nil, 0, 0, append([]T(nil), leaf.elems...)
		}
		return leaf, 0, len(leaf.elems), nil
	}
	in := n.(*interiorNode[T])
	return in, in.shift, count, nil
}

// splitAt returns two new Vectors covering v[0:i] and v[i:v.Len()].
// Neither result aliases v's mutable state (root/tail ownership flags
// are always false on the results; see the file comment above).
func (v *Vector[T]) splitAt(i int) (*Vector[T], *Vector[T]) {
	if i >= v.rootSize {
		leftTailLen := i - v.rootSize
		left := &Vector[T]{
			root: v.root, rootShift: v.rootShift, rootSize: v.rootSize,
			tail:      append([]T(nil), v.tail[:leftTailLen]...),
			tailOwned: true,
		}
		right := &Vector[T]{
			tail:      append([]T(nil), v.tail[leftTailLen:]...),
			tailOwned: true,
		}
		return left, right
	}

	leftN, leftCount, rightN, rightCount := splitNode[T](v.root, v.rootShift, i)
	leftRoot, leftShift, leftSize, leftTail := finalizeRoot[T](leftN, leftCount)
	rightRoot, rightShift, rightSize, rightTail := finalizeRoot[T](rightN, rightCount)

	left := &Vector[T]{root: leftRoot, rootShift: leftShift, rootSize: leftSize, tail: leftTail, tailOwned: true}
	right := &Vector[T]{root: rightRoot, rootShift: rightShift, rootSize: rightSize, tail: rightTail, tailOwned: true}
	if len(v.tail) > 0 {
		right.AppendAll(sliceSeq[T](v.tail))
	}
	return left, right
}

// extractRange returns a new Vector containing v[from:to].
func (v *Vector[T]) extractRange(from, to int) *Vector[T] {
	if from == 0 && to == v.Len() {
		return v.Fork()
	}
	v.rootOwned = false
	_, afterFrom := v.splitAt(from)
	result, _ := afterFrom.splitAt(to - from)
	return result
}
