package split

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/qaforge/ai/mock"
	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// axisEmbedder maps sentences onto one of two orthogonal axes so the
// distance spike between topics is unambiguous.
func axisEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i, text := range texts {
			if strings.Contains(text, "invoice") {
				vectors[i] = []float32{1, 0}
			} else {
				vectors[i] = []float32{0, 1}
			}
		}
		return vectors, nil
	}
	return embedder
}

func TestSemanticSplitter_BreaksAtTopicShift(t *testing.T) {
	text := "The invoice total is checked. Each invoice line is matched. The invoice is then approved. " +
		"Support is available all day. Agents respond within an hour. Escalations go to engineering."
	docs := []core.Segment{{Content: text, Source: "ops.pdf", Page: 4}}

	splitter := NewSemanticSplitter(axisEmbedder(),
		WithBreakpointPercentile(50),
		WithMinChunkChars(10),
	)
	segments := splitter.Split(context.Background(), docs)

	require.Len(t, segments, 2)
	assert.Contains(t, segments[0].Content, "invoice")
	assert.NotContains(t, segments[1].Content, "invoice")
	for _, seg := range segments {
		assert.Equal(t, "ops.pdf", seg.Source)
		assert.Equal(t, 4, seg.Page)
	}
}

func TestSemanticSplitter_MinChunkFloor(t *testing.T) {
	text := "The invoice total is checked. Support is available all day. Agents respond within an hour."
	docs := []core.Segment{{Content: text, Source: "ops.pdf", Page: 1}}

	// Floor larger than the first topic's text suppresses the boundary.
	splitter := NewSemanticSplitter(axisEmbedder(),
		WithBreakpointPercentile(50),
		WithMinChunkChars(1000),
	)
	segments := splitter.Split(context.Background(), docs)

	require.Len(t, segments, 1)
	assert.Equal(t, strings.TrimSpace(text), strings.TrimSpace(segments[0].Content))
}

func TestSemanticSplitter_EmbeddingFailureKeepsDocumentWhole(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}

	text := "First sentence here. Second sentence here. Third sentence here."
	docs := []core.Segment{{Content: text, Source: "doc.pdf", Page: 2}}

	segments := NewSemanticSplitter(embedder).Split(context.Background(), docs)

	require.Len(t, segments, 1)
	assert.Equal(t, text, segments[0].Content)
	assert.Equal(t, 2, segments[0].Page)
}

func TestSemanticSplitter_ShortDocumentKeptWhole(t *testing.T) {
	docs := []core.Segment{{Content: "Just two sentences. Nothing more.", Source: "tiny.pdf", Page: 1}}

	segments := NewSemanticSplitter(axisEmbedder()).Split(context.Background(), docs)

	require.Len(t, segments, 1)
}

func TestSemanticSplitter_EmptyInput(t *testing.T) {
	segments := NewSemanticSplitter(axisEmbedder()).Split(context.Background(), nil)
	assert.Empty(t, segments)
}
