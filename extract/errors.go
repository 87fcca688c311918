package extract

import "errors"

var (
	// ErrInvalidEPUB indicates the archive is missing its container or
	// package document.
	ErrInvalidEPUB = errors.New("extract: invalid epub")

	// ErrUnsupportedFormat indicates a file extension Load does not handle.
	ErrUnsupportedFormat = errors.New("extract: unsupported format")
)
