package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
)

// Question count policy: short segments yield fewer questions. The
// thresholds are word counts; the mapping is monotonic non-decreasing
// in segment length.
const (
	baseQuestions       = 2
	mediumWordThreshold = 300
	longWordThreshold   = 500
)

// QuestionTarget returns the number of questions to request for a segment
// of the given word count.
func QuestionTarget(wordCount int) int {
	switch {
	case wordCount > longWordThreshold:
		return baseQuestions + 2
	case wordCount > mediumWordThreshold:
		return baseQuestions + 1
	default:
		return baseQuestions
	}
}

// Elicitor generates candidate questions from individual question segments.
type Elicitor struct {
	generator  ai.TextGenerator
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// NewElicitor creates an elicitor.
// maxRetries: maximum number of attempts for each generation call
// retryBaseDelay: base delay for exponential backoff
func NewElicitor(generator ai.TextGenerator, maxRetries int, retryBaseDelay time.Duration) (*Elicitor, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	return &Elicitor{
		generator:  generator,
		maxRetries: maxRetries,
		retryDelay: retryBaseDelay,
		logger:     slog.Default().With("component", "elicitor"),
	}, nil
}

// Elicit generates candidate questions from a segment. Empty or
// whitespace-only segments yield an empty slice without calling the
// generation service. A generation failure is returned as an error; the
// orchestrator logs it and drops the segment without affecting siblings.
func (e *Elicitor) Elicit(ctx context.Context, segment core.Segment) ([]string, error) {
	if segment.Empty() {
		return []string{}, nil
	}

	target := QuestionTarget(segment.WordCount())
	prompt := questionPrompt(target, segment.Content)

	var response string
	err := retryWithBackoff(ctx, func() error {
		var genErr error
		response, genErr = e.generator.Generate(ctx, prompt)
		return genErr
	}, e.maxRetries, e.retryDelay)
	if err != nil {
		return nil, fmt.Errorf("question generation failed for %s p.%d: %w", segment.Source, segment.Page, err)
	}

	questions := parseQuestions(response)
	e.logger.Debug("elicited questions",
		"source", segment.Source, "page", segment.Page,
		"requested", target, "received", len(questions))

	return questions, nil
}

// parseQuestions keeps only response lines carrying the question marker and
// strips the marker. Everything else the model emitted is ignored.
func parseQuestions(response string) []string {
	var questions []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, questionPrefix) {
			continue
		}
		question := strings.TrimSpace(strings.TrimPrefix(line, questionPrefix))
		if question != "" {
			questions = append(questions, question)
		}
	}
	return questions
}
