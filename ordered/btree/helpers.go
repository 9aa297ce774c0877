package btree

// Nodes allocate their storage once, to the configured capacity, and all
// mutations below shift entries in place. None of them may grow a slice
// beyond its capacity.

// insertAt shifts s[i:] right by one and stores v at index i.
func insertAt[T any](s []T, i int, v T) []T {
	assert(i >= 0 && i <= len(s), "insertAt: index out of range")
	assert(len(s) < cap(s), "insertAt: slice is full")
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeAt removes the entry at index i, shifting the tail left.
func removeAt[T any](s []T, i int) []T {
	assert(i >= 0 && i < len(s), "removeAt: index out of range")
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// truncate shortens s to length n, zeroing the dropped tail so that it does
// not pin memory.
func truncate[T any](s []T, n int) []T {
	assert(n >= 0 && n <= len(s), "truncate: length out of range")
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
	return s[:n]
}
