package treescan

import "errors"

var (
	// ErrNotADirectory is returned when the scan root does not exist or is not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrInvalidResolution is returned for an unknown resolution token.
	ErrInvalidResolution = errors.New("invalid resolution")
)
