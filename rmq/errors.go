package rmq

import "errors"

var (
	// ErrInvalidConfig signals an invalid table configuration.
	ErrInvalidConfig = errors.New("rmq: invalid configuration")

	// ErrEmptyData signals an attempt to build a table over no values.
	ErrEmptyData = errors.New("rmq: empty data")

	// ErrCorrupt signals an internal inconsistency detected by Check.
	ErrCorrupt = errors.New("rmq: corrupt table")
)
