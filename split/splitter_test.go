package split

import (
	"strings"
	"testing"

	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOfText(words int) string {
	var b strings.Builder
	for i := 0; i < words; i++ {
		b.WriteString("The procurement platform validates supplier invoices against purchase orders. ")
	}
	return b.String()
}

func TestSplitter_PageProvenance(t *testing.T) {
	docs := []core.Segment{
		{Content: pageOfText(20), Source: "contract.pdf", Page: 1},
		{Content: pageOfText(20), Source: "contract.pdf", Page: 2},
		{Content: pageOfText(20), Source: "appendix.pdf", Page: 10},
	}

	splitter := NewSplitter(WithQuestionChunk(300, 50), WithAnswerChunk(2000, 500))
	questionSegs, answerSegs := splitter.Split(docs)

	require.NotEmpty(t, questionSegs)
	require.NotEmpty(t, answerSegs)

	// Every segment, through both passes, must report its document's true
	// page number, never a renumbered chunk index.
	pages := map[string]map[int]bool{
		"contract.pdf": {1: true, 2: true},
		"appendix.pdf": {10: true},
	}
	for _, seg := range questionSegs {
		assert.True(t, pages[seg.Source][seg.Page],
			"question segment has unexpected provenance %s p.%d", seg.Source, seg.Page)
	}
	for _, seg := range answerSegs {
		assert.True(t, pages[seg.Source][seg.Page],
			"answer segment has unexpected provenance %s p.%d", seg.Source, seg.Page)
	}
}

func TestSplitter_FinePassSplitsLongDocument(t *testing.T) {
	docs := []core.Segment{{Content: pageOfText(600), Source: "big.pdf", Page: 1}}

	splitter := NewSplitter()
	questionSegs, answerSegs := splitter.Split(docs)

	assert.Greater(t, len(questionSegs), 1, "600 words should yield multiple question segments")
	assert.NotEmpty(t, answerSegs)
	for _, seg := range answerSegs {
		assert.Equal(t, 1, seg.Page)
		assert.Equal(t, "big.pdf", seg.Source)
	}
}

func TestSplitter_DropsEmptyDocuments(t *testing.T) {
	docs := []core.Segment{
		{Content: "", Source: "empty.pdf", Page: 1},
		{Content: "   \n\t ", Source: "blank.pdf", Page: 1},
		{Content: "Short but real content.", Source: "real.pdf", Page: 1},
	}

	questionSegs, answerSegs := NewSplitter().Split(docs)

	for _, seg := range questionSegs {
		assert.Equal(t, "real.pdf", seg.Source)
	}
	require.NotEmpty(t, questionSegs)
	require.NotEmpty(t, answerSegs)
}

func TestSplitter_EmptyInput(t *testing.T) {
	questionSegs, answerSegs := NewSplitter().Split(nil)
	assert.Empty(t, questionSegs)
	assert.Empty(t, answerSegs)
}
