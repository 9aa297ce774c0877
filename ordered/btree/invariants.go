package btree

import "fmt"

// Check validates the structural invariants of the tree: key order and
// separator bounds, uniform leaf depth, node occupancy and the size
// bookkeeping.
//
// This checker is intentionally strict and should be used in tests. It
// visits every node and is not meant for production paths.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrCorrupt)
	}
	if m.root == nil {
		return fmt.Errorf("%w: nil root", ErrCorrupt)
	}
	count, _, err := m.checkNode(m.root, true, nil, nil)
	if err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("%w: bookkeeping records %d keys, tree holds %d",
			ErrCorrupt, m.size, count)
	}
	return nil
}

// checkNode validates the subtree under nd, whose keys must lie strictly
// between lo and hi (either may be nil for unbounded). It returns the number
// of keys and the height of the subtree.
func (m *Map[K, V]) checkNode(nd *node[K, V], isRoot bool, lo, hi *K) (int, int, error) {
	if nd == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrCorrupt)
	}
	if nd.size() > m.cfg.Capacity {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, capacity is %d",
			ErrCorrupt, nd.size(), m.cfg.Capacity)
	}
	if !isRoot && nd.size() < m.threshold-1 {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, deletion bound is %d",
			ErrCorrupt, nd.size(), m.threshold-1)
	}
	if len(nd.keys) != len(nd.values) {
		return 0, 0, fmt.Errorf("%w: %d keys but %d values",
			ErrCorrupt, len(nd.keys), len(nd.values))
	}
	for j, k := range nd.keys {
		if j > 0 && nd.keys[j-1] >= k {
			return 0, 0, fmt.Errorf("%w: keys not strictly increasing at position %d",
				ErrCorrupt, j)
		}
		if lo != nil && k <= *lo {
			return 0, 0, fmt.Errorf("%w: key %v at or below the separator bound %v",
				ErrCorrupt, k, *lo)
		}
		if hi != nil && k >= *hi {
			return 0, 0, fmt.Errorf("%w: key %v at or above the separator bound %v",
				ErrCorrupt, k, *hi)
		}
	}
	if nd.isLeaf() {
		return nd.size(), 1, nil
	}
	if len(nd.children) != nd.size()+1 {
		return 0, 0, fmt.Errorf("%w: %d keys but %d children",
			ErrCorrupt, nd.size(), len(nd.children))
	}
	count := nd.size()
	height := -1
	for j, child := range nd.children {
		clo, chi := lo, hi
		if j > 0 {
			clo = &nd.keys[j-1]
		}
		if j < nd.size() {
			chi = &nd.keys[j]
		}
		ccount, cheight, err := m.checkNode(child, false, clo, chi)
		if err != nil {
			return 0, 0, err
		}
		if height >= 0 && cheight != height {
			return 0, 0, fmt.Errorf("%w: leaves at depth %d and %d",
				ErrCorrupt, height, cheight)
		}
		height = cheight
		count += ccount
	}
	return count, height + 1, nil
}
