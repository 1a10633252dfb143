package relevance

import (
	"context"
	"fmt"
	"math"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
)

// Embedding is the semantic relevance strategy. It embeds the question and
// every pool member into a shared vector space through the external embedding
// capability and returns the nearest neighbors by cosine similarity.
type Embedding struct {
	embedder ai.Embedder
}

// NewEmbedding creates an embedding-based selector.
func NewEmbedding(embedder ai.Embedder) *Embedding {
	return &Embedding{embedder: embedder}
}

// Select implements Selector. The question and pool are embedded in a single
// batch call; a failed or short batch is an error the Fallback decorator
// turns into first-N degradation.
func (e *Embedding) Select(ctx context.Context, question string, pool []core.Segment, topN int) ([]core.Segment, error) {
	if len(pool) == 0 || topN <= 0 {
		return []core.Segment{}, nil
	}
	if e.embedder == nil {
		return nil, ErrEmbedderRequired
	}

	texts := make([]string, 0, len(pool)+1)
	texts = append(texts, question)
	for i := range pool {
		texts = append(texts, pool[i].Content)
	}

	vectors, err := e.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d vectors, got %d", ErrVectorCountMismatch, len(texts), len(vectors))
	}

	questionVec := vectors[0]
	scores := make([]float64, len(pool))
	for i := range pool {
		scores[i] = cosineF32(questionVec, vectors[i+1])
	}

	return rankTopN(pool, scores, topN), nil
}

func cosineF32(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
