package relevance

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/qaforge/core"
)

// Selector ranks a pool of answer-context segments by relevance to a
// question and returns the top n. Implementations must be thread-safe;
// the synthesize stage calls Select from many workers at once.
type Selector interface {
	// Select returns at most topN pool members, most relevant first.
	// An empty pool yields an empty result and no error. Ties are broken
	// by original pool order.
	Select(ctx context.Context, question string, pool []core.Segment, topN int) ([]core.Segment, error)
}

// Fallback decorates a Selector with the pipeline's degradation policy:
// if the inner strategy fails for any reason, the first min(topN, |pool|)
// pool members are returned in their original order. The failure is logged,
// never propagated.
type Fallback struct {
	inner  Selector
	logger *slog.Logger
}

// NewWithFallback wraps a selector with the first-N fallback.
func NewWithFallback(inner Selector) *Fallback {
	return &Fallback{
		inner:  inner,
		logger: slog.Default().With("component", "relevance-fallback"),
	}
}

// Select delegates to the inner selector and degrades to the first topN
// pool members on error.
func (f *Fallback) Select(ctx context.Context, question string, pool []core.Segment, topN int) ([]core.Segment, error) {
	selected, err := f.inner.Select(ctx, question, pool, topN)
	if err != nil {
		f.logger.Warn("relevance scoring failed, falling back to first segments", "err", err)
		return FirstN(pool, topN), nil
	}
	return selected, nil
}

// FirstN returns the first min(n, |pool|) segments in original order.
func FirstN(pool []core.Segment, n int) []core.Segment {
	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]core.Segment, n)
	copy(out, pool[:n])
	return out
}

// rankTopN returns the topN segments by descending score. The sort is
// stable, so equal scores preserve original pool order.
func rankTopN(pool []core.Segment, scores []float64, topN int) []core.Segment {
	indexes := make([]int, len(pool))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return scores[indexes[a]] > scores[indexes[b]]
	})

	if topN > len(indexes) {
		topN = len(indexes)
	}
	out := make([]core.Segment, topN)
	for i := 0; i < topN; i++ {
		out[i] = pool[indexes[i]]
	}
	return out
}
