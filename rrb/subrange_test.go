// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

import "testing"

func TestSubListReadsAndWrites(t *testing.T) {
	base := seqInts(5 * spanSize)
	v := FromSlice(base)
	s := v.SubList(spanSize, 3*spanSize)

	if s.Len() != 2*spanSize {
		t.Fatalf("Len() = %d, want %d", s.Len(), 2*spanSize)
	}
	for i := 0; i < s.Len(); i++ {
		if got, want := s.Get(i), base[spanSize+i]; got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}

	old := s.Set(0, -1)
	if old != base[spanSize] {
		t.Fatalf("Set returned %d, want %d", old, base[spanSize])
	}
	if v.Get(spanSize) != -1 {
		t.Fatalf("write through SubList did not reach parent")
	}
}

func TestSubListInsertRemoveGrowParent(t *testing.T) {
	v := FromSlice(seqInts(3 * spanSize))
	s := v.SubList(spanSize, 2*spanSize)

	s.Insert(0, -1)
	if s.Len() != spanSize+1 {
		t.Fatalf("Len() after Insert = %d, want %d", s.Len(), spanSize+1)
	}
	if v.Len() != 3*spanSize+1 {
		t.Fatalf("parent Len() after view Insert = %d, want %d", v.Len(), 3*spanSize+1)
	}
	if v.Get(spanSize) != -1 {
		t.Fatalf("Insert through SubList landed at the wrong parent index")
	}

	s.RemoveAt(0)
	if s.Len() != spanSize {
		t.Fatalf("Len() after RemoveAt = %d, want %d", s.Len(), spanSize)
	}
	if v.Len() != 3*spanSize {
		t.Fatalf("parent Len() after view RemoveAt = %d, want %d", v.Len(), 3*spanSize)
	}
}

func TestSubListFork(t *testing.T) {
	base := seqInts(4 * spanSize)
	v := FromSlice(base)
	s := v.SubList(spanSize, 2*spanSize)
	forked := s.Fork()
	checkContents(t, forked, base[spanSize:2*spanSize])

	forked.Append(-1)
	if s.Len() != spanSize {
		t.Fatalf("Forking a SubList mutated the view's own length")
	}
}

func TestSubListInvalidatedByParentMutation(t *testing.T) {
	v := FromSlice(seqInts(2 * spanSize))
	s := v.SubList(0, spanSize)
	v.Append(999)
	mustPanicKind(t, ConcurrentModification, func() { s.Get(0) })
}
