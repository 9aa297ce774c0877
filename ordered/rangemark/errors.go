package rangemark

import "errors"

var (
	// ErrInvalidConfig signals an invalid map configuration.
	ErrInvalidConfig = errors.New("rangemark: invalid configuration")

	// ErrCorrupt signals an internal inconsistency detected by Check.
	ErrCorrupt = errors.New("rangemark: corrupt map")
)
