package corpus

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidChunkSize indicates a word budget below one.
	ErrInvalidChunkSize = errors.New("corpus: max chunk size must be positive")

	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("corpus: workers must be positive")
)
