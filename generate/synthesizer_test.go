package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/qaforge/ai/mock"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/relevance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSelector returns a canned selection regardless of the question.
type fixedSelector struct {
	segments []core.Segment
}

func (s fixedSelector) Select(ctx context.Context, question string, pool []core.Segment, topN int) ([]core.Segment, error) {
	return s.segments, nil
}

func answeringGenerator(answer string) *mock.MockGenerator {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return answer, nil
	}
	return generator
}

func TestSynthesizer_AggregatesProvenance(t *testing.T) {
	selector := fixedSelector{segments: []core.Segment{
		{Content: "ctx a", Source: "beta.pdf", Page: 10},
		{Content: "ctx b", Source: "alpha.pdf", Page: 2},
		{Content: "ctx c", Source: "beta.pdf", Page: 5},
	}}

	synthesizer, err := NewSynthesizer(answeringGenerator("A: Grounded answer."), selector, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "What is covered?", nil)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.Equal(t, "What is covered?", pair.Question)
	assert.Equal(t, "Grounded answer.", pair.Answer, "answer marker must be stripped")
	assert.Equal(t, "alpha.pdf, beta.pdf", pair.Source, "sources deduplicated")
	assert.Equal(t, "2, 5, 10", pair.Page, "pages in numeric, not lexical, order")
}

func TestSynthesizer_DefaultClassification(t *testing.T) {
	selector := fixedSelector{segments: []core.Segment{{Content: "ctx", Source: "a.pdf", Page: 1}}}

	synthesizer, err := NewSynthesizer(answeringGenerator("A: x"), selector, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "q?", nil)
	require.NoError(t, err)
	require.NotNil(t, pair)

	assert.Equal(t, core.DefaultStack, pair.Stack)
	assert.Equal(t, core.DefaultCategory, pair.Category)
	assert.Equal(t, core.DefaultSubcategory, pair.Subcategory)
}

func TestSynthesizer_AnswerWithoutMarker(t *testing.T) {
	selector := fixedSelector{segments: []core.Segment{{Content: "ctx", Source: "a.pdf", Page: 1}}}

	synthesizer, err := NewSynthesizer(answeringGenerator("Plain answer without marker."), selector, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "q?", nil)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, "Plain answer without marker.", pair.Answer)
}

func TestSynthesizer_EmptyAnswerEmitsNoPair(t *testing.T) {
	selector := fixedSelector{segments: []core.Segment{{Content: "ctx", Source: "a.pdf", Page: 1}}}

	synthesizer, err := NewSynthesizer(answeringGenerator(""), selector, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "q?", nil)
	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Nil(t, pair)

	// A bare marker with nothing after it is also an empty answer.
	synthesizer, err = NewSynthesizer(answeringGenerator("A: "), selector, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err = synthesizer.Synthesize(context.Background(), "q?", nil)
	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Nil(t, pair)
}

func TestSynthesizer_EmptySelectionIsAbsent(t *testing.T) {
	synthesizer, err := NewSynthesizer(answeringGenerator("A: x"), fixedSelector{}, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "q?", nil)
	require.NoError(t, err)
	assert.Nil(t, pair, "no grounding context means no pair, not an error")
}

func TestSynthesizer_GenerationFailure(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("service unavailable")
	}
	selector := fixedSelector{segments: []core.Segment{{Content: "ctx", Source: "a.pdf", Page: 1}}}

	synthesizer, err := NewSynthesizer(generator, selector, 2, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "q?", nil)
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, 2, generator.CallCount())
}

func TestSynthesizer_WithRealSelector(t *testing.T) {
	pool := []core.Segment{
		{Content: "Helpdesk support hours are 24/7.", Source: "support.pdf", Page: 3},
		{Content: "Unrelated project milestones.", Source: "plan.pdf", Page: 1},
	}

	selector := relevance.NewWithFallback(relevance.NewTFIDF())
	synthesizer, err := NewSynthesizer(answeringGenerator("A: Around the clock."), selector, 3, time.Millisecond)
	require.NoError(t, err)

	pair, err := synthesizer.Synthesize(context.Background(), "What are the helpdesk support hours?", pool)
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Contains(t, pair.Source, "support.pdf")
}

func TestNewSynthesizer_Validation(t *testing.T) {
	_, err := NewSynthesizer(nil, fixedSelector{}, 3, time.Millisecond)
	assert.ErrorIs(t, err, ErrGeneratorRequired)

	_, err = NewSynthesizer(mock.NewMockGenerator(), nil, 3, time.Millisecond)
	assert.ErrorIs(t, err, ErrSelectorRequired)
}
