package textindex

import (
	"fmt"
	"index/suffixarray"
	"math"
	"unsafe"
)

// Index bundles the suffix structures for one text.
//
// SA[r] is the start position of the r-th suffix in lexicographic order.
// Rank is the inverse permutation, Rank[SA[r]] = r. LCP[r] for r > 0 is the
// length of the longest common prefix of the suffixes at ranks r-1 and r;
// LCP[0] is 0. All arrays have the length of the text.
type Index struct {
	SA   []int32
	Rank []int32
	LCP  []int32
}

// New builds the index for text. It returns ErrTextTooLong for texts whose
// positions do not fit in int32. An empty text yields an index with empty
// arrays.
func New(text []byte) (*Index, error) {
	if len(text) > math.MaxInt32 {
		return nil, ErrTextTooLong
	}
	n := len(text)
	ix := &Index{
		SA:   make([]int32, n),
		Rank: make([]int32, n),
		LCP:  make([]int32, n),
	}
	if n == 0 {
		return ix, nil
	}
	if err := suffixes(text, ix.SA); err != nil {
		return nil, err
	}
	for r, i := range ix.SA {
		ix.Rank[i] = int32(r)
	}
	kasai(text, ix.SA, ix.Rank, ix.LCP)
	tracer().Debugf("textindex: built suffix structures for %d bytes", n)
	return ix, nil
}

// suffixes fills sa with the suffix array of text, computed by the standard
// library's SA-IS implementation. index/suffixarray keeps the array private,
// so we mirror its layout and copy the int32 variant out, which is the one
// populated for texts below 2 GiB.
func suffixes(text []byte, sa []int32) error {
	idx := suffixarray.New(text)

	// Layout of index/suffixarray (src/index/suffixarray/suffixarray.go):
	//   type Index struct { data []byte; sa ints }
	//   type ints struct { int32 []int32; int64 []int64 }
	type intsHeader struct {
		int32Ptr unsafe.Pointer
		int32Len int
		int32Cap int
		int64Ptr unsafe.Pointer
		int64Len int
		int64Cap int
	}
	type indexHeader struct {
		dataPtr unsafe.Pointer
		dataLen int
		dataCap int
		sa      intsHeader
	}
	h := (*indexHeader)(unsafe.Pointer(idx))
	if h.sa.int32Len != len(text) {
		return fmt.Errorf("%w: int32 slot holds %d entries for %d bytes",
			ErrIndexLayout, h.sa.int32Len, len(text))
	}
	copy(sa, unsafe.Slice((*int32)(h.sa.int32Ptr), h.sa.int32Len))
	return nil
}

// kasai computes the LCP array in left-neighbour form in O(n). Walking the
// text in position order lets the common prefix shrink by at most one per
// step, which bounds the total extension work.
func kasai(text []byte, sa, rank, lcp []int32) {
	n := len(text)
	h := 0
	for i := 0; i < n; i++ {
		r := int(rank[i])
		if r == 0 {
			h = 0
			continue
		}
		j := int(sa[r-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = int32(h)
		if h > 0 {
			h--
		}
	}
}
