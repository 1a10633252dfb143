package generate

import "errors"

var (
	// ErrGeneratorRequired is returned when a text generator is not provided.
	ErrGeneratorRequired = errors.New("text generator required")

	// ErrSelectorRequired is returned when a relevance selector is not provided.
	ErrSelectorRequired = errors.New("relevance selector required")

	// ErrEmptyAnswer indicates the generation service produced no answer
	// text; the question is dropped rather than emitted as a degenerate pair.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
