package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/qaforge/ai/mock"
	"github.com/poiesic/qaforge/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_ParsesLabeledLines(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "Classification:\n" +
			"Stack: \"Security & Due Diligence\"\n" +
			"Category: \"Access Control\"\n" +
			"Subcategory: \"Methods\"\n", nil
	}

	classifier, err := NewClassifier(generator, taxonomy.Fallback())
	require.NoError(t, err)

	c := classifier.Classify(context.Background(), "How is access controlled?", "Via SSO.")
	assert.Equal(t, "Security & Due Diligence", c.Stack)
	assert.Equal(t, "Access Control", c.Category)
	assert.Equal(t, "Methods", c.Subcategory)
}

func TestClassifier_DefaultsOnFailure(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("service unavailable")
	}

	classifier, err := NewClassifier(generator, taxonomy.Fallback())
	require.NoError(t, err)

	c := classifier.Classify(context.Background(), "q?", "a.")
	assert.Equal(t, "Unclassified", c.Stack)
	assert.Equal(t, "General", c.Category)
	assert.Equal(t, "Other", c.Subcategory)
}

func TestClassifier_PartialResponseKeepsDefaults(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		// Only the stack line is well-formed.
		return "Stack: \"Procurement\"\nCategory\nnonsense", nil
	}

	classifier, err := NewClassifier(generator, taxonomy.Fallback())
	require.NoError(t, err)

	c := classifier.Classify(context.Background(), "q?", "a.")
	assert.Equal(t, "Procurement", c.Stack)
	assert.Equal(t, "General", c.Category)
	assert.Equal(t, "Other", c.Subcategory)
}

func TestClassifier_PromptCarriesHierarchyAndPair(t *testing.T) {
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "Stack: \"X\"", nil
	}

	classifier, err := NewClassifier(generator, taxonomy.Fallback())
	require.NoError(t, err)

	classifier.Classify(context.Background(), "What is covered?", "Everything.")

	prompts := generator.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Stack: Unclassified")
	assert.Contains(t, prompts[0], "Question: What is covered?")
	assert.Contains(t, prompts[0], "Answer: Everything.")
}

func TestClassifier_UnknownLabelIsNotClamped(t *testing.T) {
	// The hierarchy only contains the fallback bucket, but the model's
	// out-of-taxonomy label is kept verbatim.
	generator := mock.NewMockGenerator()
	generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "Stack: \"Made Up Stack\"\nCategory: \"Made Up\"\nSubcategory: \"Also Made Up\"", nil
	}

	classifier, err := NewClassifier(generator, taxonomy.Fallback())
	require.NoError(t, err)

	c := classifier.Classify(context.Background(), "q?", "a.")
	assert.Equal(t, "Made Up Stack", c.Stack)
}

func TestNewClassifier_NilHierarchyUsesFallback(t *testing.T) {
	classifier, err := NewClassifier(mock.NewMockGenerator(), nil)
	require.NoError(t, err)
	assert.Contains(t, classifier.hierarchy, "Unclassified")
}

func TestNewClassifier_RequiresGenerator(t *testing.T) {
	_, err := NewClassifier(nil, taxonomy.Fallback())
	assert.ErrorIs(t, err, ErrGeneratorRequired)
}
