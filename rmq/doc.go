/*
Package rmq answers range-minimum and range-maximum queries over a fixed
array of totally ordered values.

The array is split into blocks of fixed width. For every block the position
of its extremal value is precomputed by a linear scan, and a sparse table
(interval doubling) over the block extrema answers queries spanning whole
blocks in constant time. Short queries bypass the table and scan directly,
which keeps constants low and avoids boundary handling for ranges that do
not contain a whole block.

Construction is O(n) time and space for n values; queries are O(1) apart
from the bounded scans at the range ends. The table is immutable after
construction and may be shared across goroutines for reading.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rmq

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
