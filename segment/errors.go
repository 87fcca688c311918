package segment

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrModelNotFound indicates the SaT model file does not exist.
	ErrModelNotFound = errors.New("segment: model file not found")

	// ErrInvalidModel indicates the model file exists but cannot be loaded.
	ErrInvalidModel = errors.New("segment: invalid model format")

	// ErrTokenizerFailed indicates tokenizer initialization failed.
	ErrTokenizerFailed = errors.New("segment: tokenizer initialization failed")
)
