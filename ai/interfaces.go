package ai

import "context"

// TextGenerator produces text from a prompt using an external LLM service.
// Implementations must be thread-safe for concurrent use.
type TextGenerator interface {
	// Generate invokes the text-generation service with the given prompt
	// and returns the raw response text. The call blocks until the service
	// responds or the context is cancelled.
	// Returns an error if generation fails (network, quota, timeout).
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages TextGenerator and Embedder
// instances, ensuring they share configuration and resources. The provider's
// configuration is fixed at construction; nothing mutates it afterwards.
type Provider interface {
	// Generator returns the text-generation service.
	// The returned TextGenerator is safe for concurrent use.
	Generator() TextGenerator

	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
