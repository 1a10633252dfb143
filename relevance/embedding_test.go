package relevance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/qaforge/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topicEmbedder places "support" texts and "invoice" texts on orthogonal axes.
func topicEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			switch {
			case strings.Contains(strings.ToLower(text), "support"):
				vectors[i] = []float32{1, 0}
			case strings.Contains(strings.ToLower(text), "invoice"):
				vectors[i] = []float32{0, 1}
			default:
				vectors[i] = []float32{0.5, 0.5}
			}
		}
		return vectors, nil
	}
	return embedder
}

func TestEmbedding_RanksNearestNeighborFirst(t *testing.T) {
	selector := NewEmbedding(topicEmbedder())

	selected, err := selector.Select(context.Background(),
		"What are your support hours?", testPool(), 2)
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "support.pdf", selected[0].Source)
}

func TestEmbedding_TopNBound(t *testing.T) {
	selector := NewEmbedding(topicEmbedder())
	pool := testPool()

	selected, err := selector.Select(context.Background(), "invoice", pool, 10)
	require.NoError(t, err)
	assert.Len(t, selected, len(pool))
}

func TestEmbedding_EmptyPool(t *testing.T) {
	selected, err := NewEmbedding(topicEmbedder()).Select(context.Background(), "q", nil, 3)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestEmbedding_ErrorPropagatesToFallback(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}

	pool := testPool()
	_, err := NewEmbedding(embedder).Select(context.Background(), "q", pool, 3)
	require.Error(t, err)

	// Wrapped in the fallback decorator the same failure degrades silently.
	selected, err := NewWithFallback(NewEmbedding(embedder)).Select(context.Background(), "q", pool, 3)
	require.NoError(t, err)
	require.Len(t, selected, 3)
	assert.Equal(t, pool[0], selected[0])
}

func TestEmbedding_VectorCountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1, 0}}, nil
	}

	_, err := NewEmbedding(embedder).Select(context.Background(), "q", testPool(), 3)
	assert.ErrorIs(t, err, ErrVectorCountMismatch)
}

func TestEmbedding_NilEmbedder(t *testing.T) {
	_, err := NewEmbedding(nil).Select(context.Background(), "q", testPool(), 3)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}
