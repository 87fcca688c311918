package chunker

import "errors"

// ErrInvalidChunkSize is returned by New when the word budget is not positive.
var ErrInvalidChunkSize = errors.New("chunker: max words must be positive")
