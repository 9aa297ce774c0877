/*
Package lzend computes the LZ-End factorization of byte texts.

LZ-End

LZ-End is a variant of LZ77 introduced by Kreft and Navarro and parses a
text greedily, left to right, into phrases. Every phrase copies a stretch
of earlier text and appends one literal byte, with the restriction that
the copied stretch must end exactly where an earlier phrase ends. The
restriction is what distinguishes LZ-End from LZ77: it makes the phrase
source a phrase boundary, which allows decompressing any single phrase
without expanding the whole prefix before it.

A phrase is a triple (link, len, ext): link names the earlier phrase at
whose end the copied stretch ends, len counts all characters of the phrase
including the final literal ext. A phrase of length 1 copies nothing and
carries just its literal. The lengths of all phrases add up to the length
of the text.

This package implements the linear-time construction by Kempa and
Kosolobov. It indexes the reversed text (suffix array, inverse, LCP
array), answers longest-common-prefix queries between arbitrary suffix
ranks with a range-minimum structure, and keeps the ranks of all current
phrase ends in an ordered map. A single left-to-right scan then decides
for every position whether the last phrase can be extended, the last two
phrases can be merged, or a new phrase begins.

Use the package-level Parse for one-off parsing, or a Parser when
configuration, progress reporting or parse statistics are needed:

	parser, err := lzend.NewParser(lzend.Config{})
	if err != nil { … }
	defer parser.Close()
	parsing, err := parser.Parse(text)
	if err != nil { … }
	original, err := lzend.Expand(parsing)

Parsers are not safe for concurrent use; create one per goroutine.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package lzend

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ParseError is an error type for the lzend module
type ParseError string

func (e ParseError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged whenever parser configuration parameters are
// invalid.
const ErrInvalidConfig = ParseError("invalid parser configuration")

// ErrTextTooLong signals a text whose positions do not fit in int32, which
// is the position type of the parsing.
const ErrTextTooLong = ParseError("text too long; positions must fit in int32")

// ErrCorruptParsing signals a phrase list that cannot have been produced by
// a parse: a phrase length below 1, a link to a phrase that does not exist
// yet, or a copy range reaching before the start of the text.
const ErrCorruptParsing = ParseError("corrupt parsing")
