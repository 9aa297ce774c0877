/*
Package btree implements an ordered integer map as a B-tree.

The tree holds unique keys in sorted per-node arrays and answers
predecessor and successor queries by walking one root-to-leaf path,
remembering the best candidate seen so far. Node-local searches are plain
linear scans with short-circuits on the first and last key, which for the
moderate node capacities used here beats binary search on real hardware.

Insertion works top-down and splits every full node on the way, so a leaf
always has room when the new key arrives. Deletion is the classic
Cormen-Leiserson-Rivest-Stein scheme: while descending, a child at the
deletion bound is refilled by rotating a key through its parent or by
merging it with a sibling, so the deletion in the leaf never has to
propagate back up. Both directions finish in a single pass.

The node capacity is configurable and must be even, making the branching
factor odd; the split and merge arithmetic relies on that.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lzend'
func tracer() tracing.Trace {
	return tracing.Select("lzend")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
