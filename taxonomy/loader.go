package taxonomy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet columns, by header name. Position is the fallback when the
// header row doesn't match.
const (
	columnStack       = "Stack"
	columnCategory    = "Categories"
	columnSubcategory = "Subcategories"
	columnDefinition  = "Definition"
)

// Load reads a taxonomy definitions table from the first sheet of an .xlsx
// file. The sheet has one row per subcategory with forward-fill semantics on
// the Stack and Categories columns: a blank cell inherits the most recent
// non-blank value above it.
func Load(path string) (*Hierarchy, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrLoadFailed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: no data rows", ErrLoadFailed)
	}

	columns := resolveColumns(rows[0])

	hierarchy := &Hierarchy{}
	var currentStack *Stack
	var currentCategory *Category

	for _, row := range rows[1:] {
		if name := cell(row, columns.stack); name != "" {
			hierarchy.Stacks = append(hierarchy.Stacks, Stack{Name: name})
			currentStack = &hierarchy.Stacks[len(hierarchy.Stacks)-1]
			currentCategory = nil
		}
		if name := cell(row, columns.category); name != "" {
			if currentStack == nil {
				return nil, fmt.Errorf("%w: category %q before any stack", ErrLoadFailed, name)
			}
			currentStack.Categories = append(currentStack.Categories, Category{Name: name})
			currentCategory = &currentStack.Categories[len(currentStack.Categories)-1]
		}
		if name := cell(row, columns.subcategory); name != "" {
			if currentCategory == nil {
				return nil, fmt.Errorf("%w: subcategory %q before any category", ErrLoadFailed, name)
			}
			definition := cell(row, columns.definition)
			if definition == "" {
				definition = NoDefinition
			}
			currentCategory.Subcategories = append(currentCategory.Subcategories,
				Subcategory{Name: name, Definition: definition})
		}
	}

	if hierarchy.Empty() {
		return nil, fmt.Errorf("%w: no stacks found", ErrLoadFailed)
	}
	return hierarchy, nil
}

// LoadOrFallback loads the taxonomy and substitutes the minimal fallback
// hierarchy when loading fails, logging the failure. It never errors;
// classifier construction must not abort the run over a bad table.
func LoadOrFallback(path string) *Hierarchy {
	hierarchy, err := Load(path)
	if err != nil {
		slog.Default().With("component", "taxonomy").
			Warn("failed to load taxonomy, using fallback", "path", path, "err", err)
		return Fallback()
	}
	return hierarchy
}

type columnIndexes struct {
	stack, category, subcategory, definition int
}

// resolveColumns maps headers to column positions, defaulting to the
// conventional 0..3 layout when a header is missing.
func resolveColumns(header []string) columnIndexes {
	columns := columnIndexes{stack: 0, category: 1, subcategory: 2, definition: 3}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case columnStack:
			columns.stack = i
		case columnCategory:
			columns.category = i
		case columnSubcategory:
			columns.subcategory = i
		case columnDefinition:
			columns.definition = i
		}
	}
	return columns
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
