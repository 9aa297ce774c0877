package rmq

import "fmt"

// Check validates the precomputed block summaries and sparse table levels
// against direct scans.
//
// This checker is intentionally strict and should be used in tests. It runs
// in O(n log n) and is not meant for production paths.
func (t *Table[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrCorrupt)
	}
	if len(t.data) == 0 {
		return fmt.Errorf("%w: table over no values", ErrCorrupt)
	}
	size := t.cfg.BlockSize
	numBlocks := (len(t.data)-1)/size + 1
	if len(t.blockPos) != numBlocks || len(t.blockVal) != numBlocks {
		return fmt.Errorf("%w: found %d block summaries, expected %d",
			ErrCorrupt, len(t.blockPos), numBlocks)
	}
	for block := 0; block < numBlocks; block++ {
		beg := block * size
		end := min(beg+size, len(t.data))
		pos, val := t.scan(beg, end)
		if t.blockPos[block] != pos {
			return fmt.Errorf("%w: block %d summary position %d, scan finds %d",
				ErrCorrupt, block, t.blockPos[block], pos)
		}
		if t.blockVal[block] != val {
			return fmt.Errorf("%w: block %d summary value disagrees with scan", ErrCorrupt, block)
		}
	}
	if t.blocks == nil {
		return fmt.Errorf("%w: missing block level table", ErrCorrupt)
	}
	for level, entries := range t.blocks.levels {
		window := 2 << level
		if len(entries) != numBlocks-window+1 {
			return fmt.Errorf("%w: level %d has %d entries, expected %d",
				ErrCorrupt, level, len(entries), numBlocks-window+1)
		}
		for i, got := range entries {
			want := i
			for k := i + 1; k < i+window; k++ {
				if !t.blocks.leq(t.blockVal[want], t.blockVal[k]) {
					want = k
				}
			}
			if got != want {
				return fmt.Errorf("%w: level %d entry %d holds %d, scan finds %d",
					ErrCorrupt, level, i, got, want)
			}
		}
	}
	return nil
}
