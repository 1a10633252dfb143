package relevance

import "errors"

var (
	// ErrEmptyVocabulary is returned when the question and pool contain no
	// tokens to build a vocabulary from.
	ErrEmptyVocabulary = errors.New("no tokens found in question or pool")

	// ErrEmbedderRequired is returned when the embedding selector is
	// constructed without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrVectorCountMismatch is returned when the embedding service returns
	// a different number of vectors than texts submitted.
	ErrVectorCountMismatch = errors.New("embedding count mismatch")
)
