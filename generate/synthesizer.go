package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/relevance"
)

// contextSegments is the number of relevant segments an answer is grounded
// in. Fixed: more context dilutes the prompt, fewer starves it.
const contextSegments = 3

// Synthesizer produces a grounded answer for a question and records which
// sources and pages contributed.
type Synthesizer struct {
	generator  ai.TextGenerator
	selector   relevance.Selector
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewSynthesizer creates a synthesizer. The selector picks the grounding
// context; wrap it in relevance.NewWithFallback for the production
// degradation policy.
// maxRetries: maximum number of attempts for each generation call
// retryBaseDelay: base delay for exponential backoff
func NewSynthesizer(generator ai.TextGenerator, selector relevance.Selector, maxRetries int, retryBaseDelay time.Duration) (*Synthesizer, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if selector == nil {
		return nil, ErrSelectorRequired
	}
	return &Synthesizer{
		generator:  generator,
		selector:   selector,
		maxRetries: maxRetries,
		retryDelay: retryBaseDelay,
		logger:     slog.Default().With("component", "synthesizer"),
	}, nil
}

// Synthesize answers a question from the most relevant segments of the
// context pool. The result is absent (nil pair, nil error) when the selector
// returns no segments. A generation failure or an empty answer is returned
// as an error; a pair with an empty answer is never emitted.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, contextPool []core.Segment) (*core.QAPair, error) {
	selected, err := s.selector.Select(ctx, question, contextPool, contextSegments)
	if err != nil {
		return nil, fmt.Errorf("relevance selection failed: %w", err)
	}
	if len(selected) == 0 {
		return nil, nil
	}

	pieces := make([]string, len(selected))
	sources := make([]string, len(selected))
	pages := make([]int, len(selected))
	for i, seg := range selected {
		pieces[i] = seg.Content
		sources[i] = seg.Source
		pages[i] = seg.Page
	}

	prompt := answerPrompt(question, strings.Join(pieces, "\n\n"))

	var response string
	err = retryWithBackoff(ctx, func() error {
		var genErr error
		response, genErr = s.generator.Generate(ctx, prompt)
		return genErr
	}, s.maxRetries, s.retryDelay)
	if err != nil {
		return nil, fmt.Errorf("answer generation failed for %q: %w", question, err)
	}

	answer := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(response), answerPrefix))
	if answer == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAnswer, question)
	}

	pair := &core.QAPair{
		Question: question,
		Answer:   answer,
		Source:   core.JoinSources(sources),
		Page:     core.JoinPages(pages),
	}
	pair.Apply(core.DefaultClassification())

	s.logger.Debug("synthesized answer",
		"question", question, "sources", pair.Source, "pages", pair.Page)

	return pair, nil
}
