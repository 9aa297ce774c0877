package rmq

import (
	"golang.org/x/exp/constraints"
)

// Table answers range-extremum queries over a fixed array of values.
//
// A table does not copy the value array. Callers must keep the array
// unmodified for the lifetime of the table.
type Table[V constraints.Ordered] struct {
	cfg      Config
	data     []V
	blockPos []int // leftmost extremal position per block, absolute in data
	blockVal []V   // extremal value per block
	blocks   *sparseTable[V]
}

// New builds a query table over data in O(len(data)) time and space.
//
// The zero Config is valid and yields a minimum table with block size
// DefaultBlockSize.
func New[V constraints.Ordered](data []V, cfg Config) (*Table[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	t := &Table[V]{cfg: cfg, data: data}
	n := len(data)
	numBlocks := (n-1)/cfg.BlockSize + 1
	t.blockPos = make([]int, numBlocks)
	t.blockVal = make([]V, numBlocks)
	for block := 0; block < numBlocks; block++ {
		beg := block * cfg.BlockSize
		end := min(beg+cfg.BlockSize, n)
		pos, val := t.scan(beg, end)
		t.blockPos[block] = pos
		t.blockVal[block] = val
	}
	t.blocks = newSparseTable(t.blockVal, cfg.Direction)
	tracer().Debugf("rmq: %s table over %d values in %d blocks of %d",
		cfg.Direction, n, numBlocks, cfg.BlockSize)
	return t, nil
}

// Len returns the number of values the table covers.
func (t *Table[V]) Len() int {
	return len(t.data)
}

// Query returns the position and value of the extremal element in the closed
// range [i,j]. Ties resolve to the leftmost extremal position.
//
// Callers must guarantee 0 <= i <= j < Len().
func (t *Table[V]) Query(i, j int) (int, V) {
	assert(0 <= i && i <= j && j < len(t.data), "malformed query range")
	if i == j {
		return i, t.data[i]
	}
	if j-i <= 3*t.cfg.BlockSize { // short range, scanning beats table lookups
		return t.scan(i, j+1)
	}
	size := t.cfg.BlockSize
	pos, val := t.scan(i, (i/size+1)*size) // partial block at the left end
	leftBlock := i/size + 1
	rightBlock := j/size - 1
	assert(leftBlock < rightBlock, "no whole block between query endpoints")
	midPos := t.blockPos[t.blocks.query(leftBlock, rightBlock)]
	if t.lt(t.data[midPos], val) {
		pos, val = midPos, t.data[midPos]
	}
	rightPos, rightVal := t.scan((j/size)*size, j+1) // partial block at the right end
	if t.lt(rightVal, val) {
		pos, val = rightPos, rightVal
	}
	return pos, val
}

// scan finds the leftmost extremal position in the half-open range [beg,end).
func (t *Table[V]) scan(beg, end int) (int, V) {
	pos, val := beg, t.data[beg]
	for k := beg + 1; k < end; k++ {
		if t.lt(t.data[k], val) {
			pos, val = k, t.data[k]
		}
	}
	return pos, val
}

func (t *Table[V]) lt(a, b V) bool {
	if t.cfg.Direction == Max {
		return a > b
	}
	return a < b
}
