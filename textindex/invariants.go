package textindex

import "fmt"

// Check verifies the index against text by direct suffix comparison: SA must
// be a permutation listing the suffixes in order, Rank its inverse, and every
// LCP entry the exact common prefix length of its rank neighbours.
//
// This checker is intentionally strict and should be used in tests. It runs
// in O(n²) worst case and is not meant for production paths.
func (ix *Index) Check(text []byte) error {
	if ix == nil {
		return fmt.Errorf("%w: nil index", ErrCorrupt)
	}
	n := len(text)
	if len(ix.SA) != n || len(ix.Rank) != n || len(ix.LCP) != n {
		return fmt.Errorf("%w: arrays sized %d/%d/%d for %d bytes",
			ErrCorrupt, len(ix.SA), len(ix.Rank), len(ix.LCP), n)
	}
	seen := make([]bool, n)
	for r, i := range ix.SA {
		if i < 0 || int(i) >= n {
			return fmt.Errorf("%w: SA[%d] = %d out of range", ErrCorrupt, r, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: position %d listed twice", ErrCorrupt, i)
		}
		seen[i] = true
		if ix.Rank[i] != int32(r) {
			return fmt.Errorf("%w: Rank[%d] = %d, want %d", ErrCorrupt, i, ix.Rank[i], r)
		}
	}
	if n > 0 && ix.LCP[0] != 0 {
		return fmt.Errorf("%w: LCP[0] = %d", ErrCorrupt, ix.LCP[0])
	}
	for r := 1; r < n; r++ {
		prev, cur := text[ix.SA[r-1]:], text[ix.SA[r]:]
		h := commonPrefix(prev, cur)
		if ix.LCP[r] != int32(h) {
			return fmt.Errorf("%w: LCP[%d] = %d, direct comparison finds %d",
				ErrCorrupt, r, ix.LCP[r], h)
		}
		if h == len(prev) {
			continue // the shorter suffix sorts first
		}
		if h == len(cur) || prev[h] > cur[h] {
			return fmt.Errorf("%w: suffixes at ranks %d and %d out of order",
				ErrCorrupt, r-1, r)
		}
	}
	return nil
}

func commonPrefix(a, b []byte) int {
	h := 0
	for h < len(a) && h < len(b) && a[h] == b[h] {
		h++
	}
	return h
}
