package taxonomy

import (
	"strings"

	"github.com/poiesic/qaforge/core"
)

// NoDefinition is substituted when a subcategory row has a blank
// definition cell.
const NoDefinition = "No definition provided."

// Subcategory is a leaf of the taxonomy with its definition text.
type Subcategory struct {
	Name       string
	Definition string
}

// Category groups subcategories under a stack.
type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Stack is the top level of the taxonomy.
type Stack struct {
	Name       string
	Categories []Category
}

// Hierarchy is the three-level stack/category/subcategory taxonomy.
// It is loaded once at startup and immutable for the run; the classifier
// only ever uses its rendered form as prompt context. Classifier output is
// not validated against the hierarchy's label set; the model may return
// labels outside it (see the package documentation).
type Hierarchy struct {
	Stacks []Stack
}

// Render produces the indented textual form of the hierarchy handed to the
// classifier prompt.
func (h *Hierarchy) Render() string {
	var b strings.Builder
	for _, stack := range h.Stacks {
		b.WriteString("Stack: " + stack.Name + "\n")
		for _, category := range stack.Categories {
			b.WriteString("  Category: " + category.Name + "\n")
			for _, sub := range category.Subcategories {
				b.WriteString("    Subcategory: " + sub.Name + "\n")
				b.WriteString("      Definition: " + sub.Definition + "\n")
			}
		}
	}
	return b.String()
}

// Empty reports whether the hierarchy has no stacks.
func (h *Hierarchy) Empty() bool {
	return len(h.Stacks) == 0
}

// Fallback returns the minimal single-bucket hierarchy substituted when the
// definitions table cannot be loaded. The classifier stays usable but can
// only produce the default labels.
func Fallback() *Hierarchy {
	return &Hierarchy{
		Stacks: []Stack{{
			Name: core.DefaultStack,
			Categories: []Category{{
				Name: core.DefaultCategory,
				Subcategories: []Subcategory{{
					Name:       core.DefaultSubcategory,
					Definition: "Default category for unclassified content.",
				}},
			}},
		}},
	}
}
