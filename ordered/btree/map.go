package btree

import (
	"github.com/npillmayer/lzend/ordered"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map from integer keys to values, backed by a B-tree.
// Use NewMap to create one; the zero value is not usable.
//
// A Map is not safe for concurrent mutation.
type Map[K constraints.Integer, V any] struct {
	cfg  Config
	root *node[K, V]
	size int
	// bounds derived from cfg.Capacity
	splitMid  int // position of the key promoted on a split: capacity/2 - 1
	threshold int // minimum size of a child before the deletion descends into it
}

var _ ordered.Map[int32, int32] = (*Map[int32, int32])(nil)

// NewMap creates an empty map. A zero Config selects the default node
// capacity.
func NewMap[K constraints.Integer, V any](cfg Config) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	m := &Map[K, V]{
		cfg:       cfg,
		splitMid:  cfg.Capacity/2 - 1,
		threshold: (cfg.Capacity + 1) / 2,
	}
	m.root = m.newLeaf()
	tracer().Debugf("btree: new map with node capacity %d", cfg.Capacity)
	return m, nil
}

func (m *Map[K, V]) newLeaf() *node[K, V] {
	return &node[K, V]{
		keys:   make([]K, 0, m.cfg.Capacity),
		values: make([]V, 0, m.cfg.Capacity),
	}
}

func (m *Map[K, V]) newInner() *node[K, V] {
	nd := m.newLeaf()
	nd.children = make([]*node[K, V], 0, m.cfg.Capacity+1)
	return nd
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.size }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.size == 0 }

// Contains reports whether key has an entry.
func (m *Map[K, V]) Contains(key K) bool { return m.Find(key).Exists }

// Find returns the entry for key, if contained.
func (m *Map[K, V]) Find(key K) ordered.QueryResult[K, V] {
	r := m.Predecessor(key)
	if r.Exists && r.Key == key {
		return r
	}
	return ordered.QueryResult[K, V]{}
}

// Predecessor returns the entry with the largest key not greater than key.
// A contained key is its own predecessor.
func (m *Map[K, V]) Predecessor(key K) ordered.QueryResult[K, V] {
	var best ordered.QueryResult[K, V]
	nd := m.root
	for {
		if r := nd.localPredecessor(key); r.exists {
			best = ordered.QueryResult[K, V]{Exists: true, Key: nd.keys[r.pos], Value: nd.values[r.pos]}
			if best.Key == key { // exact hit, no better candidate below
				return best
			}
			if nd.isLeaf() {
				return best
			}
			nd = nd.children[r.pos+1]
			continue
		}
		if nd.isLeaf() {
			return best
		}
		nd = nd.children[0]
	}
}

// Successor returns the entry with the smallest key not less than key.
// A contained key is its own successor.
func (m *Map[K, V]) Successor(key K) ordered.QueryResult[K, V] {
	var best ordered.QueryResult[K, V]
	nd := m.root
	for {
		if r := nd.localSuccessor(key); r.exists {
			best = ordered.QueryResult[K, V]{Exists: true, Key: nd.keys[r.pos], Value: nd.values[r.pos]}
			if best.Key == key {
				return best
			}
			if nd.isLeaf() {
				return best
			}
			nd = nd.children[r.pos]
			continue
		}
		if nd.isLeaf() {
			return best
		}
		nd = nd.children[len(nd.children)-1]
	}
}

// Min returns the entry with the smallest key, if any.
func (m *Map[K, V]) Min() ordered.QueryResult[K, V] {
	if m.size == 0 {
		return ordered.QueryResult[K, V]{}
	}
	nd := m.root
	for !nd.isLeaf() {
		nd = nd.children[0]
	}
	return ordered.QueryResult[K, V]{Exists: true, Key: nd.keys[0], Value: nd.values[0]}
}

// Max returns the entry with the largest key, if any.
func (m *Map[K, V]) Max() ordered.QueryResult[K, V] {
	if m.size == 0 {
		return ordered.QueryResult[K, V]{}
	}
	nd := m.root
	for !nd.isLeaf() {
		nd = nd.children[len(nd.children)-1]
	}
	last := nd.size() - 1
	return ordered.QueryResult[K, V]{Exists: true, Key: nd.keys[last], Value: nd.values[last]}
}

// Insert adds an entry. key must not be contained yet.
//
// Insertion is top-down: every full node on the path is split before the
// descent continues, so the leaf is guaranteed to have room.
func (m *Map[K, V]) Insert(key K, value V) {
	if m.root.size() == m.cfg.Capacity {
		oldRoot := m.root
		m.root = m.newInner()
		m.root.children = append(m.root.children, oldRoot)
		m.splitChild(m.root, 0)
	}
	nd := m.root
	for !nd.isLeaf() {
		i := 0
		if r := nd.localPredecessor(key); r.exists {
			i = r.pos + 1
		}
		if nd.children[i].size() == m.cfg.Capacity {
			m.splitChild(nd, i)
			if key > nd.keys[i] { // fell on the right side of the promoted key
				i++
			}
		}
		nd = nd.children[i]
	}
	nd.insertLocal(key, value)
	m.size++
}

// splitChild splits the full child at index i of nd around its median key,
// which moves up into nd.
func (m *Map[K, V]) splitChild(nd *node[K, V], i int) {
	y := nd.children[i]
	assert(y.size() == m.cfg.Capacity, "btree: splitting a node that is not full")
	assert(nd.size() < m.cfg.Capacity, "btree: splitting into a full parent")
	var z *node[K, V]
	if y.isLeaf() {
		z = m.newLeaf()
	} else {
		z = m.newInner()
	}
	mid := m.splitMid
	midKey, midValue := y.keys[mid], y.values[mid]
	z.keys = append(z.keys, y.keys[mid+1:]...)
	z.values = append(z.values, y.values[mid+1:]...)
	y.keys = truncate(y.keys, mid)
	y.values = truncate(y.values, mid)
	if !y.isLeaf() {
		z.children = append(z.children, y.children[mid+1:]...)
		y.children = truncate(y.children, mid+1)
	}
	nd.keys = insertAt(nd.keys, i, midKey)
	nd.values = insertAt(nd.values, i, midValue)
	nd.children = insertAt(nd.children, i+1, z)
}

// Erase removes the entry for key, reporting whether it was contained.
//
// Deletion is top-down as well: a child at the deletion bound is refilled
// from a sibling, or merged with one, before the descent enters it. An
// exact hit in an inner node is replaced by its predecessor or successor
// from a subtree that can afford to lose a key.
func (m *Map[K, V]) Erase(key K) bool {
	if m.size == 0 {
		return false
	}
	removed := m.eraseFrom(m.root, key)
	if removed {
		m.size--
	}
	if m.root.size() == 0 && !m.root.isLeaf() {
		assert(len(m.root.children) == 1, "btree: empty root with more than one child")
		m.root = m.root.children[0]
	}
	return removed
}

func (m *Map[K, V]) eraseFrom(nd *node[K, V], key K) bool {
	if nd.isLeaf() {
		return nd.eraseLocal(key)
	}
	r := nd.localPredecessor(key)
	i := 0
	if r.exists {
		i = r.pos + 1
	}
	if r.exists && nd.keys[r.pos] == key {
		m.eraseInner(nd, i)
		return true
	}
	child := nd.children[i]
	if child.size() < m.threshold {
		i = m.refill(nd, i)
		child = nd.children[i]
	}
	return m.eraseFrom(child, key)
}

// eraseInner removes the key at position i-1 of nd, the separator of the
// children at i-1 and i.
func (m *Map[K, V]) eraseInner(nd *node[K, V], i int) {
	keyPos := i - 1
	key := nd.keys[keyPos]
	y, z := nd.children[i-1], nd.children[i]
	switch {
	case y.size() >= m.threshold:
		// replace by the in-order predecessor, the maximum of y
		c := y
		for !c.isLeaf() {
			c = c.children[len(c.children)-1]
		}
		last := c.size() - 1
		nd.keys[keyPos] = c.keys[last]
		nd.values[keyPos] = c.values[last]
		m.eraseFrom(y, nd.keys[keyPos])
	case z.size() >= m.threshold:
		// replace by the in-order successor, the minimum of z
		c := z
		for !c.isLeaf() {
			c = c.children[0]
		}
		nd.keys[keyPos] = c.keys[0]
		nd.values[keyPos] = c.values[0]
		m.eraseFrom(z, nd.keys[keyPos])
	default:
		// both neighbours sit at the bound; merge them around the key and
		// erase it from the merged node
		k, v := nd.removeLocal(keyPos)
		y.keys = append(y.keys, k)
		y.values = append(y.values, v)
		y.keys = append(y.keys, z.keys...)
		y.values = append(y.values, z.values...)
		if !z.isLeaf() {
			y.children = append(y.children, z.children...)
		}
		nd.children = removeAt(nd.children, i)
		m.eraseFrom(y, key)
	}
}

// refill brings the child at index i of nd above the deletion bound, either
// by rotating a key through nd from a sibling that can afford it, or by
// merging the child with a sibling. It returns the index the child's
// entries end up at.
func (m *Map[K, V]) refill(nd *node[K, V], i int) int {
	child := nd.children[i]
	assert(child.size() == m.threshold-1, "btree: refill of a child above the deletion bound")
	var left, right *node[K, V]
	if i > 0 {
		left = nd.children[i-1]
	}
	if i < len(nd.children)-1 {
		right = nd.children[i+1]
	}
	switch {
	case left != nil && left.size() >= m.threshold:
		// rotate the separator down into child, the left sibling's
		// largest key up into nd
		child.keys = insertAt(child.keys, 0, nd.keys[i-1])
		child.values = insertAt(child.values, 0, nd.values[i-1])
		lk, lv := left.removeLocal(left.size() - 1)
		nd.keys[i-1] = lk
		nd.values[i-1] = lv
		if !left.isLeaf() {
			moved := left.children[len(left.children)-1]
			left.children = truncate(left.children, len(left.children)-1)
			child.children = insertAt(child.children, 0, moved)
		}
		return i
	case right != nil && right.size() >= m.threshold:
		child.keys = append(child.keys, nd.keys[i])
		child.values = append(child.values, nd.values[i])
		rk, rv := right.removeLocal(0)
		nd.keys[i] = rk
		nd.values[i] = rv
		if !right.isLeaf() {
			moved := right.children[0]
			right.children = removeAt(right.children, 0)
			child.children = append(child.children, moved)
		}
		return i
	case right != nil:
		// merge child with its right sibling around the separator
		k, v := nd.removeLocal(i)
		child.keys = append(child.keys, k)
		child.values = append(child.values, v)
		child.keys = append(child.keys, right.keys...)
		child.values = append(child.values, right.values...)
		if !right.isLeaf() {
			child.children = append(child.children, right.children...)
		}
		nd.children = removeAt(nd.children, i+1)
		return i
	default:
		// no right sibling; merge child into its left sibling
		assert(left != nil, "btree: child without siblings")
		k, v := nd.removeLocal(i - 1)
		left.keys = append(left.keys, k)
		left.values = append(left.values, v)
		left.keys = append(left.keys, child.keys...)
		left.values = append(left.values, child.values...)
		if !child.isLeaf() {
			left.children = append(left.children, child.children...)
		}
		nd.children = removeAt(nd.children, i)
		return i - 1
	}
}
