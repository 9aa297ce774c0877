package rmq

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// sparseTable answers range queries over the per-block extrema with the
// interval doubling technique. Level k stores, for every feasible start
// position i, the extremal position within data[i : i+2^(k+1)].
//
// A query combines the two power-of-two windows that cover the range. The
// windows may overlap, which is harmless for idempotent extrema. Ties
// resolve to the leftmost position on every level.
type sparseTable[V constraints.Ordered] struct {
	data   []V
	max    bool
	levels [][]int
}

func newSparseTable[V constraints.Ordered](data []V, dir Direction) *sparseTable[V] {
	n := len(data)
	st := &sparseTable[V]{data: data, max: dir == Max}
	numLevels := bits.Len(uint(n)) - 1
	if numLevels < 1 {
		return st // a single value needs no levels
	}
	st.levels = make([][]int, numLevels)
	level0 := make([]int, n-1)
	for i := 0; i < n-1; i++ {
		if st.leq(data[i], data[i+1]) {
			level0[i] = i
		} else {
			level0[i] = i + 1
		}
	}
	st.levels[0] = level0
	for level := 1; level < numLevels; level++ {
		interval := 1 << level
		size := n - ((2 << level) - 1)
		prev := st.levels[level-1]
		cur := make([]int, size)
		for i := 0; i < size; i++ {
			a, b := prev[i], prev[i+interval]
			if st.leq(data[a], data[b]) {
				cur[i] = a
			} else {
				cur[i] = b
			}
		}
		st.levels[level] = cur
	}
	return st
}

// query returns the leftmost extremal position in the closed range [i,j].
func (st *sparseTable[V]) query(i, j int) int {
	assert(0 <= i && i <= j && j < len(st.data), "malformed sparse table range")
	if i == j {
		return i
	}
	level := bits.Len(uint(j-i+1)) - 1
	interval := 1 << level
	a := st.levels[level-1][i]
	b := st.levels[level-1][j+1-interval]
	if st.leq(st.data[a], st.data[b]) {
		return a
	}
	return b
}

func (st *sparseTable[V]) leq(a, b V) bool {
	if st.max {
		return a >= b
	}
	return a <= b
}
