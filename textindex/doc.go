/*
Package textindex builds the text-order structures the parser queries: the
suffix array of a text, its inverse permutation, and the array of longest
common prefixes between lexicographically adjacent suffixes.

Suffix sorting is delegated to the standard library's SA-IS implementation.
index/suffixarray does not export the plain array, so the package mirrors
the struct layout of suffixarray.Index and lifts the int32 variant out,
guarded by a length check against future layout changes. The LCP array is
computed with Kasai's algorithm in left-neighbour form: LCP[r] is the
common prefix length of the suffixes at ranks r-1 and r, and LCP[0] is
zero.

All three arrays hold int32 positions, which bounds texts to 2 GiB minus
one byte.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lzend'
func tracer() tracing.Trace {
	return tracing.Select("lzend")
}
