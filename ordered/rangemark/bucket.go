package rangemark

import "math/bits"

// bucket holds the marks of one key range: a bit vector flagging the marked
// in-bucket positions and a dense value array indexed by position.
type bucket[V any] struct {
	size   int
	words  []uint64
	values []V
}

func newBucket[V any](capacity int) *bucket[V] {
	return &bucket[V]{
		words:  make([]uint64, capacity/64),
		values: make([]V, capacity),
	}
}

func (b *bucket[V]) contains(i int) bool {
	return b.words[i>>6]&(1<<uint(i&63)) != 0
}

func (b *bucket[V]) insert(i int, value V) {
	assert(!b.contains(i), "rangemark: duplicate key")
	b.words[i>>6] |= 1 << uint(i&63)
	b.values[i] = value
	b.size++
}

func (b *bucket[V]) erase(i int) bool {
	if !b.contains(i) {
		return false
	}
	b.words[i>>6] &^= 1 << uint(i&63)
	var zero V
	b.values[i] = zero
	b.size--
	return true
}

// predecessor finds the highest marked position not above i: the query word
// with the bits above i shifted out, then whole lower words.
func (b *bucket[V]) predecessor(i int) (int, bool) {
	w := i >> 6
	word := b.words[w] << uint(63-i&63) >> uint(63-i&63)
	for {
		if word != 0 {
			return w<<6 + bits.Len64(word) - 1, true
		}
		if w == 0 {
			return 0, false
		}
		w--
		word = b.words[w]
	}
}

// successor finds the lowest marked position not below i.
func (b *bucket[V]) successor(i int) (int, bool) {
	w := i >> 6
	word := b.words[w] >> uint(i&63) << uint(i&63)
	for {
		if word != 0 {
			return w<<6 + bits.TrailingZeros64(word), true
		}
		w++
		if w == len(b.words) {
			return 0, false
		}
		word = b.words[w]
	}
}

// min returns the lowest marked position. The bucket must not be empty.
func (b *bucket[V]) min() int {
	for w, word := range b.words {
		if word != 0 {
			return w<<6 + bits.TrailingZeros64(word)
		}
	}
	panic("rangemark: min of an empty bucket")
}

// max returns the highest marked position. The bucket must not be empty.
func (b *bucket[V]) max() int {
	for w := len(b.words) - 1; w >= 0; w-- {
		if word := b.words[w]; word != 0 {
			return w<<6 + bits.Len64(word) - 1
		}
	}
	panic("rangemark: max of an empty bucket")
}
