package textindex

import "errors"

var (
	// ErrTextTooLong signals a text whose positions do not fit in int32.
	ErrTextTooLong = errors.New("textindex: text too long")

	// ErrIndexLayout signals that the standard library's suffix array did
	// not expose the expected int32 slot.
	ErrIndexLayout = errors.New("textindex: unexpected suffixarray layout")

	// ErrCorrupt signals an internal inconsistency detected by Check.
	ErrCorrupt = errors.New("textindex: corrupt index")
)
