package ordered

import "golang.org/x/exp/constraints"

// QueryResult is the answer to a key lookup in an ordered map. Exists flags
// whether a matching entry was found; Key and Value are only meaningful if
// it is set. The zero value is the negative answer.
type QueryResult[K constraints.Integer, V any] struct {
	Exists bool
	Key    K
	Value  V
}

// Map is a dynamic ordered map with unique integer keys.
//
// Predecessor and Successor treat a contained key as its own predecessor
// and successor. Both are defined for arbitrary query keys, including keys
// smaller than any contained key or larger than all of them, in which case
// they report a negative QueryResult.
type Map[K constraints.Integer, V any] interface {
	// Size returns the number of entries.
	Size() int

	// Empty reports whether the map holds no entries.
	Empty() bool

	// Insert adds an entry for a key that is not yet contained.
	Insert(key K, value V)

	// Erase removes the entry for key, reporting whether it was contained.
	Erase(key K) bool

	// Find returns the entry for key, if contained.
	Find(key K) QueryResult[K, V]

	// Contains reports whether key has an entry.
	Contains(key K) bool

	// Predecessor returns the entry with the largest key not greater than
	// key.
	Predecessor(key K) QueryResult[K, V]

	// Successor returns the entry with the smallest key not less than key.
	Successor(key K) QueryResult[K, V]

	// Min returns the entry with the smallest key, if any.
	Min() QueryResult[K, V]

	// Max returns the entry with the largest key, if any.
	Max() QueryResult[K, V]
}
