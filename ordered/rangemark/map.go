package rangemark

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/lzend/ordered"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map over the bounded key universe [0, max), backed by
// lazily allocated bit-vector buckets. Use NewMap to create one; the zero
// value is not usable.
//
// A Map is not safe for concurrent mutation.
type Map[K constraints.Integer, V any] struct {
	cfg       Config
	max       int  // exclusive upper bound of the key universe
	shift     uint // log2 of the bucket capacity
	mask      int  // bucket capacity - 1
	buckets   []*bucket[V]
	maxBucket int // highest bucket index that ever held a mark
	size      int
}

var _ ordered.Map[int32, int32] = (*Map[int32, int32])(nil)

// NewMap creates an empty map for keys in [0, max). A zero Config selects
// the default bucket capacity.
func NewMap[K constraints.Integer, V any](max K, cfg Config) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	if max < 1 {
		return nil, fmt.Errorf("%w: empty key universe", ErrInvalidConfig)
	}
	num := (int(max) + cfg.BucketCapacity - 1) / cfg.BucketCapacity
	tracer().Debugf("rangemark: new map over [0,%d) in %d buckets of %d", max, num, cfg.BucketCapacity)
	return &Map[K, V]{
		cfg:     cfg,
		max:     int(max),
		shift:   uint(bits.TrailingZeros(uint(cfg.BucketCapacity))),
		mask:    cfg.BucketCapacity - 1,
		buckets: make([]*bucket[V], num),
	}, nil
}

// split separates a key into bucket index and in-bucket position.
func (m *Map[K, V]) split(key K) (int, int) {
	k := int(key)
	return k >> m.shift, k & m.mask
}

// inUniverse reports whether key lies in [0, max). Callable with arbitrary
// keys; query keys outside the universe clamp, insertions must stay inside.
func (m *Map[K, V]) inUniverse(key K) bool {
	return key >= 0 && int(key) < m.max
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int { return m.size }

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.size == 0 }

// Insert adds an entry. key must lie in the universe and must not be
// contained yet.
func (m *Map[K, V]) Insert(key K, value V) {
	assert(m.inUniverse(key), "rangemark: key outside the universe")
	b, i := m.split(key)
	bk := m.buckets[b]
	if bk == nil {
		bk = newBucket[V](m.cfg.BucketCapacity)
		m.buckets[b] = bk
		if b > m.maxBucket {
			m.maxBucket = b
		}
	}
	bk.insert(i, value)
	m.size++
}

// Erase removes the entry for key, reporting whether it was contained. An
// emptied bucket is released.
func (m *Map[K, V]) Erase(key K) bool {
	if !m.inUniverse(key) {
		return false
	}
	b, i := m.split(key)
	bk := m.buckets[b]
	if bk == nil || !bk.erase(i) {
		return false
	}
	m.size--
	if bk.size == 0 {
		m.buckets[b] = nil
	}
	return true
}

// Contains reports whether key has an entry.
func (m *Map[K, V]) Contains(key K) bool {
	if !m.inUniverse(key) {
		return false
	}
	b, i := m.split(key)
	bk := m.buckets[b]
	return bk != nil && bk.contains(i)
}

// Find returns the entry for key, if contained.
func (m *Map[K, V]) Find(key K) ordered.QueryResult[K, V] {
	if !m.inUniverse(key) {
		return ordered.QueryResult[K, V]{}
	}
	b, i := m.split(key)
	bk := m.buckets[b]
	if bk == nil || !bk.contains(i) {
		return ordered.QueryResult[K, V]{}
	}
	return m.result(b, i)
}

func (m *Map[K, V]) result(b, pos int) ordered.QueryResult[K, V] {
	return ordered.QueryResult[K, V]{
		Exists: true,
		Key:    K(b<<m.shift + pos),
		Value:  m.buckets[b].values[pos],
	}
}

// Predecessor returns the entry with the largest key not greater than key.
// Queries beyond the universe clamp to the maximum.
func (m *Map[K, V]) Predecessor(key K) ordered.QueryResult[K, V] {
	if m.size == 0 || key < 0 {
		return ordered.QueryResult[K, V]{}
	}
	if int(key) >= m.max {
		return m.Max()
	}
	b, i := m.split(key)
	if bk := m.buckets[b]; bk != nil {
		if pos, ok := bk.predecessor(i); ok {
			return m.result(b, pos)
		}
	}
	for b > 0 {
		b--
		if bk := m.buckets[b]; bk != nil {
			return m.result(b, bk.max())
		}
	}
	return ordered.QueryResult[K, V]{}
}

// Successor returns the entry with the smallest key not less than key.
// Queries below the universe clamp to the minimum.
func (m *Map[K, V]) Successor(key K) ordered.QueryResult[K, V] {
	if m.size == 0 || int(key) >= m.max {
		return ordered.QueryResult[K, V]{}
	}
	if key < 0 {
		return m.Min()
	}
	b, i := m.split(key)
	if bk := m.buckets[b]; bk != nil {
		if pos, ok := bk.successor(i); ok {
			return m.result(b, pos)
		}
	}
	for b < m.maxBucket {
		b++
		if bk := m.buckets[b]; bk != nil {
			return m.result(b, bk.min())
		}
	}
	return ordered.QueryResult[K, V]{}
}

// Min returns the entry with the smallest key, if any.
func (m *Map[K, V]) Min() ordered.QueryResult[K, V] {
	if m.size == 0 {
		return ordered.QueryResult[K, V]{}
	}
	for b := 0; b <= m.maxBucket; b++ {
		if bk := m.buckets[b]; bk != nil {
			return m.result(b, bk.min())
		}
	}
	panic("rangemark: no bucket holds the recorded entries")
}

// Max returns the entry with the largest key, if any.
func (m *Map[K, V]) Max() ordered.QueryResult[K, V] {
	if m.size == 0 {
		return ordered.QueryResult[K, V]{}
	}
	for b := m.maxBucket; b >= 0; b-- {
		if bk := m.buckets[b]; bk != nil {
			return m.result(b, bk.max())
		}
	}
	panic("rangemark: no bucket holds the recorded entries")
}
