// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rrb

// The trie uses 32-way branching: each interior node holds up to spanSize
// children and each leaf holds up to spanSize elements. 32 is the value
// the RRB-tree literature (and every implementation studied, Clojure's
// PersistentVector included) converges on: wide enough to keep trees
// shallow, narrow enough that a node copy is cheap.
const (
	shiftBits = 5
	spanSize  = 1 << shiftBits // 32
	indexMask = spanSize - 1

	// tolerance is the maximum slack rebalanceChildren will leave in a node's
	// child count above the theoretical minimum ceil(grandchildren/spanSize).
	tolerance = 2
)
