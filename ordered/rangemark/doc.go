/*
Package rangemark implements an ordered integer map over a bounded key
universe, tuned for marking positions in a text-sized range.

The universe [0, max) is partitioned into buckets of a fixed power-of-two
capacity. A bucket holds a bit vector flagging its marked positions and a
dense value array indexed by in-bucket position. Buckets are allocated the
first time a key lands in them and released as soon as they empty, so the
footprint follows the set of marks, not the universe.

Predecessor and successor queries scan bit-vector words with single
machine-word instructions and step across neighbouring buckets only until
the first non-empty one; for mark distributions that cluster, as phrase end
positions in a parse do, queries rarely leave the bucket they start in.

Keys outside the universe are tolerated in queries and clamp to the nearest
end of the universe; inserting such a key is a contract violation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rangemark

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
