package classify

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/taxonomy"
)

// ErrGeneratorRequired is returned when a text generator is not provided.
var ErrGeneratorRequired = errors.New("text generator required")

// Classifier maps a question/answer pair onto the three-level taxonomy by
// asking the text-generation service, with the full rendered hierarchy and
// few-shot examples as context.
//
// The classifier never fails past its boundary: any invoke or parse failure
// yields the default Unclassified/General/Other labels. Returned labels are
// not validated against the hierarchy; the model's free-text output is
// trusted as-is.
type Classifier struct {
	generator ai.TextGenerator
	hierarchy string
	logger    *slog.Logger
}

// NewClassifier creates a classifier over the given hierarchy. A nil
// hierarchy gets the minimal fallback so construction never depends on the
// definitions table having loaded.
func NewClassifier(generator ai.TextGenerator, hierarchy *taxonomy.Hierarchy) (*Classifier, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	if hierarchy == nil {
		hierarchy = taxonomy.Fallback()
	}
	return &Classifier{
		generator: generator,
		hierarchy: hierarchy.Render(),
		logger:    slog.Default().With("component", "classifier"),
	}, nil
}

// Classify returns the taxonomy labels for a pair. On any failure it logs
// and returns the defaults; a malformed response line leaves only the
// corresponding field at its default.
func (c *Classifier) Classify(ctx context.Context, question, answer string) core.Classification {
	prompt := classificationPrompt(question, answer, c.hierarchy)

	response, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("classification failed, using defaults", "question", question, "err", err)
		return core.DefaultClassification()
	}

	return parseClassification(response)
}

// parseClassification extracts the three labeled lines from the response.
// Fields without a well-formed line keep their defaults.
func parseClassification(response string) core.Classification {
	classification := core.DefaultClassification()

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Stack:"):
			if v := labelValue(line, "Stack:"); v != "" {
				classification.Stack = v
			}
		case strings.HasPrefix(line, "Category:"):
			if v := labelValue(line, "Category:"); v != "" {
				classification.Category = v
			}
		case strings.HasPrefix(line, "Subcategory:"):
			if v := labelValue(line, "Subcategory:"); v != "" {
				classification.Subcategory = v
			}
		}
	}

	return classification
}

func labelValue(line, prefix string) string {
	value := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	return strings.Trim(value, `"`)
}
