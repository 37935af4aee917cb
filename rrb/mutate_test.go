// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

import "testing"

func TestInsert(t *testing.T) {
	n := 4 * spanSize
	base := seqInts(n)
	for _, at := range []int{0, 1, spanSize - 1, spanSize, spanSize + 1, n / 2, n - 1, n} {
		v := FromSlice(base)
		v.Insert(at, -999)

		want := append(append(append([]int(nil), base[:at]...), -999), base[at:]...)
		checkContents(t, v, want)
	}
}

func TestInsertAll(t *testing.T) {
	n := 3 * spanSize
	base := seqInts(n)
	insert := seqInts(spanSize + 5)
	for _, at := range []int{0, spanSize, n / 2, n} {
		v := FromSlice(base)
		v.InsertAll(at, sliceSeq[int](insert))

		var want []int
		want = append(want, base[:at]...)
		want = append(want, insert...)
		want = append(want, base[at:]...)
		checkContents(t, v, want)
	}
}

func TestRemoveAt(t *testing.T) {
	n := 4 * spanSize
	base := seqInts(n)
	for _, at := range []int{0, 1, spanSize - 1, spanSize, n / 2, n - 1} {
		v := FromSlice(base)
		got := v.RemoveAt(at)
		if got != base[at] {
			t.Fatalf("RemoveAt(%d) = %d, want %d", at, got, base[at])
		}
		want := append(append([]int(nil), base[:at]...), base[at+1:]...)
		checkContents(t, v, want)
	}
}

func TestRemoveRange(t *testing.T) {
	n := 5 * spanSize
	base := seqInts(n)
	ranges := [][2]int{{0, 0}, {0, n}, {0, spanSize}, {spanSize, 2 * spanSize}, {1, n - 1}, {n - 1, n}}
	for _, r := range ranges {
		v := FromSlice(base)
		v.RemoveRange(r[0], r[1])
		want := append(append([]int(nil), base[:r[0]]...), base[r[1]:]...)
		checkContents(t, v, want)
	}
}

func TestClear(t *testing.T) {
	v := FromSlice(seqInts(100))
	v.Clear()
	checkContents(t, v, nil)
	v.Append(1)
	checkContents(t, v, []int{1})
}

func TestRemoveIf(t *testing.T) {
	v := FromSlice(seqInts(2 * spanSize))
	changed := v.RemoveIf(func(x int) bool { return x%2 == 0 })
	if !changed {
		t.Fatal("RemoveIf reported no change")
	}
	var want []int
	for _, x := range seqInts(2 * spanSize) {
		if x%2 != 0 {
			want = append(want, x)
		}
	}
	checkContents(t, v, want)

	changed = v.RemoveIf(func(int) bool { return false })
	if changed {
		t.Fatal("RemoveIf reported a change when predicate never matched")
	}
}

func TestRemoveAllRetainAll(t *testing.T) {
	base := seqInts(50)
	doomed := []int{0, 10, 20, 49}
	eq := func(a, b int) bool { return a == b }

	v := FromSlice(base)
	if !v.RemoveAll(sliceSeq[int](doomed), eq) {
		t.Fatal("RemoveAll reported no change")
	}
	var want []int
	for _, x := range base {
		keep := true
		for _, d := range doomed {
			if x == d {
				keep = false
			}
		}
		if keep {
			want = append(want, x)
		}
	}
	checkContents(t, v, want)

	keep := []int{1, 2, 3}
	v2 := FromSlice(base)
	if !v2.RetainAll(sliceSeq[int](keep), eq) {
		t.Fatal("RetainAll reported no change")
	}
	checkContents(t, v2, keep)
}

func TestInsertOutOfBoundsPanics(t *testing.T) {
	v := FromSlice(seqInts(5))
	mustPanicKind(t, IndexOutOfBounds, func() { v.Insert(-1, 0) })
	mustPanicKind(t, IndexOutOfBounds, func() { v.Insert(6, 0) })
}

func TestRemoveRangeBadRangePanics(t *testing.T) {
	v := FromSlice(seqInts(5))
	mustPanicKind(t, IndexOutOfBounds, func() { v.RemoveRange(3, 1) })
	mustPanicKind(t, IndexOutOfBounds, func() { v.RemoveRange(0, 6) })
}
