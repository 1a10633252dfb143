package split

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
)

// Defaults for semantic boundary detection.
const (
	DefaultBreakpointPercentile = 90
	DefaultMinChunkChars        = 200
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+["')\]]*\s*`)

// SemanticSplitter is an alternative splitting strategy that places chunk
// boundaries where the embedding distance between consecutive sentences
// spikes, instead of at fixed character offsets. It satisfies the same
// provenance contract as Splitter: every emitted segment carries its
// document's source name and original page number.
type SemanticSplitter struct {
	embedder   ai.Embedder
	percentile int
	minChunk   int
	logger     *slog.Logger
}

// SemanticOption configures a SemanticSplitter.
type SemanticOption func(*SemanticSplitter)

// WithBreakpointPercentile sets the percentile of consecutive-sentence
// distances above which a chunk boundary is placed. Valid range (0, 100].
func WithBreakpointPercentile(p int) SemanticOption {
	return func(s *SemanticSplitter) {
		if p > 0 && p <= 100 {
			s.percentile = p
		}
	}
}

// WithMinChunkChars sets the minimum chunk size floor in characters.
// Chunks below the floor are merged into their successor.
func WithMinChunkChars(n int) SemanticOption {
	return func(s *SemanticSplitter) {
		if n > 0 {
			s.minChunk = n
		}
	}
}

// WithSemanticLogger sets a custom logger. Default is slog.Default().
func WithSemanticLogger(logger *slog.Logger) SemanticOption {
	return func(s *SemanticSplitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSemanticSplitter creates a semantic splitter backed by the given embedder.
func NewSemanticSplitter(embedder ai.Embedder, opts ...SemanticOption) *SemanticSplitter {
	s := &SemanticSplitter{
		embedder:   embedder,
		percentile: DefaultBreakpointPercentile,
		minChunk:   DefaultMinChunkChars,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "semantic-splitter")
	return s
}

// Split chunks each document at semantic boundaries. A document whose
// sentences cannot be embedded is kept whole rather than dropped, so a
// transient embedding failure degrades granularity, not coverage.
// Documents with empty content are dropped silently.
func (s *SemanticSplitter) Split(ctx context.Context, documents []core.Segment) []core.Segment {
	var out []core.Segment
	for _, doc := range cleanDocuments(documents) {
		chunks, err := s.splitDocument(ctx, doc.Content)
		if err != nil {
			s.logger.Warn("semantic split failed, keeping document whole",
				"source", doc.Source, "page", doc.Page, "err", err)
			chunks = []string{doc.Content}
		}
		for _, chunk := range chunks {
			out = append(out, core.Segment{
				Content: chunk,
				Source:  doc.Source,
				Page:    doc.Page,
			})
		}
	}
	return out
}

func (s *SemanticSplitter) splitDocument(ctx context.Context, text string) ([]string, error) {
	sentences := splitSentences(text)
	if len(sentences) < 3 {
		return []string{text}, nil
	}

	vectors, err := s.embedder.EmbedTexts(ctx, sentences)
	if err != nil {
		return nil, err
	}

	// Distance between each pair of consecutive sentences.
	distances := make([]float64, len(sentences)-1)
	for i := range distances {
		distances[i] = 1 - cosine(vectors[i], vectors[i+1])
	}

	threshold := percentileOf(distances, s.percentile)

	var chunks []string
	var current strings.Builder
	for i, sentence := range sentences {
		current.WriteString(sentence)
		boundary := i < len(distances) && distances[i] > threshold
		if boundary && current.Len() >= s.minChunk {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks, nil
}

// splitSentences breaks text into sentence-sized pieces. Trailing text
// without terminal punctuation becomes a final piece.
func splitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	consumed := 0
	for _, m := range matches {
		consumed += len(m)
	}
	if rest := strings.TrimSpace(text[consumed:]); rest != "" {
		matches = append(matches, rest)
	}
	return matches
}

func cosine(a, b []float32) float64 {
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

// percentileOf returns the p-th percentile of vals (nearest-rank).
func percentileOf(vals []float64, p int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	rank := int(math.Ceil(float64(p)/100*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}
