// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// A node is either a *leafNode[T] (depth 0, holding up to spanSize
// elements) or an *interiorNode[T] (holding up to spanSize children).
// The two are distinguished by a type switch rather than a virtual
// dispatch table: the set is closed and small, and a direct tag check
// keeps the hot paths (get, set) inlinable.
type node[T any] interface {
	// count returns the number of direct children (interior) or elements
	// (leaf) actually present.
	count() int
}

// leafNode holds up to spanSize elements directly.
type leafNode[T any] struct {
	elems []T
}

func (n *leafNode[T]) count() int { return len(n.elems) }

func (n *leafNode[T]) clone() *leafNode[T] {
	return &leafNode[T]{elems: append([]T(nil), n.elems...)}
}

// interiorNode holds up to spanSize children. It is "strict" when sizes
// is nil: every child but possibly the last holds exactly
// spanSize^height elements, where height = shift/shiftBits. It is
// "sized" when sizes is non-nil: sizes[i] holds the cumulative element
// count of children [0..i], because strictness does not hold for at
// least one non-last child (spec.md §3, "A node is sized iff...").
//
// owns is a bitmap: bit i set means children[i] is exclusively owned by
// this node (may be mutated or replaced without copying). A fork clears
// ownership from the container down; getEditableChild re-acquires it one
// level at a time as paths are copied.
type interiorNode[T any] struct {
	shift    int // this node's own shift: childIdx = (i >> shift) & indexMask
	owns     uint32
	children []node[T]
	sizes    []int32 // nil when strict
}

func (n *interiorNode[T]) count() int { return len(n.children) }

func (n *interiorNode[T]) sized() bool { return n.sizes != nil }

// clone returns a shallow copy of n: the children slice is duplicated
// (so appending/truncating the copy does not alias n), but the children
// themselves are shared. Ownership bits are cleared on the copy, since
// children are now reachable from two interior nodes and must be copied
// before either mutates them further.
func (n *interiorNode[T]) clone() *interiorNode[T] {
	cp := &interiorNode[T]{
		shift:    n.shift,
		children: append([]node[T](nil), n.children...),
	}
	if n.sizes != nil {
		cp.sizes = append([]int32(nil), n.sizes...)
	}
	return cp
}

// nodeTotal returns the number of elements held under n. For a sized
// interior node this is a table lookup; for a strict node it walks the
// rightmost spine, since every other child is known to be full.
func nodeTotal[T any](n node[T]) int {
	switch v := n.(type) {
	case nil:
		return 0
	case *leafNode[T]:
		return len(v.elems)
	case *interiorNode[T]:
		if v.sizes != nil {
			return int(v.sizes[len(v.sizes)-1])
		}
		last := len(v.children) - 1
		return (1 << v.shift) * last + nodeTotal[T](v.children[last])
	}
	return 0
}

// childSizeAt returns the element count under n.children[i].
func childSizeAt[T any](n *interiorNode[T], i int) int {
	if n.sizes != nil {
		if i == 0 {
			return int(n.sizes[0])
		}
		return int(n.sizes[i] - n.sizes[i-1])
	}
	if i < len(n.children)-1 {
		return 1 << n.shift
	}
	return nodeTotal[T](n.children[i])
}

// childIsFull reports whether child c (found at the shift one level
// below a node with shift parentShift) is a completely full subtree.
func childIsFull[T any](c node[T], parentShift int) bool {
	switch v := c.(type) {
	case nil:
		return false
	case *leafNode[T]:
		return len(v.elems) == spanSize
	case *interiorNode[T]:
		return nodeTotal[T](v) == 1<<parentShift
	}
	return false
}

// recomputeSizes rebuilds n's cumulative size table from each child's
// own total, and converts n to strict form (sizes = nil) if every
// non-last child turns out to be full after all.
func recomputeSizes[T any](n *interiorNode[T]) {
	needsSized := false
	totals := make([]int32, len(n.children))
	sum := int32(0)
	for i, c := range n.children {
		t := int32(nodeTotal[T](c))
		sum += t
		totals[i] = sum
		if i < len(n.children)-1 && !childIsFull[T](c, n.shift) {
			needsSized = true
		}
	}
	if needsSized {
		n.sizes = totals
	} else {
		n.sizes = nil
	}
}

// newLeaf wraps elems (which the caller must not mutate afterward unless
// it also owns the returned node) in a *leafNode.
func newLeaf[T any](elems []T) *leafNode[T] {
	return &leafNode[T]{elems: elems}
}
