package btree

import "golang.org/x/exp/constraints"

// localResult is the outcome of a node-local key search.
type localResult struct {
	exists bool
	pos    int
}

// node is a B-tree node. Keys and values are parallel sorted arrays;
// children is nil for leaves and holds len(keys)+1 subtrees otherwise.
type node[K constraints.Integer, V any] struct {
	keys     []K
	values   []V
	children []*node[K, V]
}

func (nd *node[K, V]) isLeaf() bool { return nd.children == nil }

func (nd *node[K, V]) size() int { return len(nd.keys) }

// localPredecessor finds the position of the largest key not greater
// than x. The first and the last key short-circuit the linear scan.
func (nd *node[K, V]) localPredecessor(x K) localResult {
	if len(nd.keys) == 0 || x < nd.keys[0] {
		return localResult{}
	}
	last := len(nd.keys) - 1
	if x >= nd.keys[last] {
		return localResult{exists: true, pos: last}
	}
	i := 1
	for nd.keys[i] <= x {
		i++
	}
	return localResult{exists: true, pos: i - 1}
}

// localSuccessor finds the position of the smallest key not less than x.
func (nd *node[K, V]) localSuccessor(x K) localResult {
	last := len(nd.keys) - 1
	if len(nd.keys) == 0 || x > nd.keys[last] {
		return localResult{}
	}
	if x <= nd.keys[0] {
		return localResult{exists: true, pos: 0}
	}
	i := last - 1
	for nd.keys[i] >= x {
		i--
	}
	return localResult{exists: true, pos: i + 1}
}

// insertLocal places key at its sorted position and returns that position.
// key must not be contained and the node must not be full.
func (nd *node[K, V]) insertLocal(key K, value V) int {
	i := 0
	for i < len(nd.keys) && nd.keys[i] < key {
		i++
	}
	assert(i == len(nd.keys) || nd.keys[i] != key, "btree: duplicate key")
	nd.keys = insertAt(nd.keys, i, key)
	nd.values = insertAt(nd.values, i, value)
	return i
}

// removeLocal removes the entry at position pos and returns it.
func (nd *node[K, V]) removeLocal(pos int) (K, V) {
	key, value := nd.keys[pos], nd.values[pos]
	nd.keys = removeAt(nd.keys, pos)
	nd.values = removeAt(nd.values, pos)
	return key, value
}

// eraseLocal removes key if it is present.
func (nd *node[K, V]) eraseLocal(key K) bool {
	for i, k := range nd.keys {
		if k == key {
			nd.removeLocal(i)
			return true
		}
	}
	return false
}
