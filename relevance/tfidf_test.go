package relevance

import (
	"context"
	"testing"

	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() []core.Segment {
	return []core.Segment{
		{Content: "Our helpdesk support hours are 24/7 via the customer portal.", Source: "support.pdf", Page: 3},
		{Content: "The project plan covers milestones and deliverables.", Source: "plan.pdf", Page: 1},
		{Content: "Invoice validation checks discrepancies against purchase orders.", Source: "ap.pdf", Page: 7},
		{Content: "Risk management follows a standard mitigation register.", Source: "plan.pdf", Page: 9},
	}
}

func TestTFIDF_RanksRelevantSegmentFirst(t *testing.T) {
	selector := NewTFIDF()

	selected, err := selector.Select(context.Background(),
		"What are your helpdesk support hours?", testPool(), 2)
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "support.pdf", selected[0].Source)
}

func TestTFIDF_TopNBound(t *testing.T) {
	selector := NewTFIDF()
	pool := testPool()

	for _, topN := range []int{1, 2, 4, 10} {
		selected, err := selector.Select(context.Background(), "invoice validation", pool, topN)
		require.NoError(t, err)

		want := topN
		if want > len(pool) {
			want = len(pool)
		}
		assert.Len(t, selected, want, "topN=%d", topN)

		// Result must be a subset of the pool with no duplicates.
		seen := make(map[string]bool)
		for _, seg := range selected {
			assert.False(t, seen[seg.Content], "duplicate segment in result")
			seen[seg.Content] = true
			assert.Contains(t, pool, seg)
		}
	}
}

func TestTFIDF_TiesPreservePoolOrder(t *testing.T) {
	// Identical segments score identically; the stable sort must keep
	// their original order.
	pool := []core.Segment{
		{Content: "identical text", Source: "a.pdf", Page: 1},
		{Content: "identical text", Source: "b.pdf", Page: 2},
		{Content: "identical text", Source: "c.pdf", Page: 3},
	}

	selected, err := NewTFIDF().Select(context.Background(), "identical text", pool, 3)
	require.NoError(t, err)
	require.Len(t, selected, 3)
	assert.Equal(t, "a.pdf", selected[0].Source)
	assert.Equal(t, "b.pdf", selected[1].Source)
	assert.Equal(t, "c.pdf", selected[2].Source)
}

func TestTFIDF_EmptyPool(t *testing.T) {
	selected, err := NewTFIDF().Select(context.Background(), "anything", nil, 3)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestTFIDF_ZeroTopN(t *testing.T) {
	selected, err := NewTFIDF().Select(context.Background(), "anything", testPool(), 0)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestTFIDF_NoTokens(t *testing.T) {
	pool := []core.Segment{{Content: "1234 5678 !!!", Source: "n.pdf", Page: 1}}

	_, err := NewTFIDF().Select(context.Background(), "9999 ...", pool, 1)
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
