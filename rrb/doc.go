// Copyright 2024 The arrow-seq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rrb implements a Relaxed Radix Balanced (RRB) trie: a sequence
// container that supports random-access get/set, positional insert and
// remove, and sub-range views in O(log n), plus two operations ordinary
// slices cannot offer cheaply:
//
//   - Fork, which produces an independent copy of the sequence in O(1),
//     by sharing the underlying trie and deferring copies until the copy
//     or the original is next written to.
//   - Join, which concatenates or splices in another Vector in O(log n)
//     by rebalancing and re-sharing trie nodes rather than copying
//     elements.
//
// The trie has branching factor 32. Every interior node holds up to 32
// children; every leaf holds up to 32 elements. Trailing elements live in
// a "tail" buffer appended logically after the trie, so that repeated
// Append calls only touch the trie once per 32 elements.
//
// A Vector is mutated in place by its own methods, the way a *list.List
// is; Fork is what makes an independent copy. Nodes track, in an
// ownership bitmap, which of their children may be mutated in place
// versus must be copied first, so that forked vectors share structure
// until one of them diverges.
//
// A Vector is not safe for concurrent mutation, nor for concurrent
// mutation racing with reads or iteration; callers needing that must
// synchronize externally.
package rrb
