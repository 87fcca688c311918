package mistake

import "errors"

// Configuration errors. Mistakers fail at construction, never while
// corrupting text.
var (
	// ErrInvalidProbability indicates an error probability outside [0, 1].
	ErrInvalidProbability = errors.New("mistake: error probability must be within [0, 1]")

	// ErrEmptyPalette indicates a palette with no characters.
	ErrEmptyPalette = errors.New("mistake: palette must not be empty")

	// ErrUnknownMistaker indicates a name missing from the registry.
	ErrUnknownMistaker = errors.New("mistake: unknown mistaker")
)
