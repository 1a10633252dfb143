package split

import (
	"log/slog"
	"strings"

	"github.com/poiesic/qaforge/core"
	"github.com/tmc/langchaingo/textsplitter"
)

// Default chunking parameters. The fine pass is tuned for eliciting many
// narrow questions, the coarse pass for supplying enough grounding context
// per answer.
const (
	DefaultQuestionChunkSize    = 300
	DefaultQuestionChunkOverlap = 50
	DefaultAnswerChunkSize      = 2000
	DefaultAnswerChunkOverlap   = 500
)

// Splitter produces the two parallel chunk sets the pipeline works with:
// fine-grained question segments and coarser answer segments.
//
// The split is hierarchical: the fine pass runs over the cleaned documents
// and the coarse pass runs over the fine pass's output. Both passes carry
// each segment's source name and original page number through unchanged;
// re-splitting never renumbers pages from chunk sequence position.
type Splitter struct {
	questionSplitter textsplitter.TextSplitter
	answerSplitter   textsplitter.TextSplitter
	logger           *slog.Logger
}

// Option configures a Splitter.
type Option func(*config)

type config struct {
	questionSize    int
	questionOverlap int
	answerSize      int
	answerOverlap   int
	logger          *slog.Logger
}

// WithQuestionChunk sets the size and overlap of the fine question pass.
func WithQuestionChunk(size, overlap int) Option {
	return func(c *config) {
		c.questionSize = size
		c.questionOverlap = overlap
	}
}

// WithAnswerChunk sets the size and overlap of the coarse answer pass.
func WithAnswerChunk(size, overlap int) Option {
	return func(c *config) {
		c.answerSize = size
		c.answerOverlap = overlap
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewSplitter creates a splitter with the given options.
func NewSplitter(opts ...Option) *Splitter {
	cfg := &config{
		questionSize:    DefaultQuestionChunkSize,
		questionOverlap: DefaultQuestionChunkOverlap,
		answerSize:      DefaultAnswerChunkSize,
		answerOverlap:   DefaultAnswerChunkOverlap,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Splitter{
		questionSplitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.questionSize),
			textsplitter.WithChunkOverlap(cfg.questionOverlap),
		),
		answerSplitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.answerSize),
			textsplitter.WithChunkOverlap(cfg.answerOverlap),
		),
		logger: cfg.logger.With("component", "splitter"),
	}
}

// Split runs both chunking passes over the documents and returns the
// question segments and answer segments. Documents with empty content are
// dropped silently. A document that fails to split is logged and dropped;
// it never aborts the remaining documents.
func (s *Splitter) Split(documents []core.Segment) (questionSegments, answerSegments []core.Segment) {
	cleaned := cleanDocuments(documents)

	// Fine pass over each cleaned document.
	questionSegments = s.splitAll(cleaned, s.questionSplitter)

	// Coarse pass over the fine pass's output. Source and page provenance
	// come from the parent question segment, which already carries the
	// document's original values.
	answerSegments = s.splitAll(questionSegments, s.answerSplitter)

	s.logger.Debug("split documents",
		"documents", len(cleaned),
		"questionSegments", len(questionSegments),
		"answerSegments", len(answerSegments))

	return questionSegments, answerSegments
}

func (s *Splitter) splitAll(segments []core.Segment, splitter textsplitter.TextSplitter) []core.Segment {
	var out []core.Segment
	for _, seg := range segments {
		chunks, err := splitter.SplitText(seg.Content)
		if err != nil {
			s.logger.Warn("failed to split segment, dropping it",
				"source", seg.Source, "page", seg.Page, "err", err)
			continue
		}
		for _, chunk := range chunks {
			if strings.TrimSpace(chunk) == "" {
				continue
			}
			out = append(out, core.Segment{
				Content: chunk,
				Source:  seg.Source,
				Page:    seg.Page,
			})
		}
	}
	return out
}

// cleanDocuments normalizes document content and drops degenerate documents.
func cleanDocuments(documents []core.Segment) []core.Segment {
	cleaned := make([]core.Segment, 0, len(documents))
	for _, doc := range documents {
		if doc.Empty() {
			continue
		}
		doc.Content = strings.ReplaceAll(doc.Content, "\x00", "")
		cleaned = append(cleaned, doc)
	}
	return cleaned
}
