package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")

	// ErrCorrupt signals an internal inconsistency detected by Check.
	ErrCorrupt = errors.New("btree: corrupt tree")
)
