package taxonomy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTaxonomySheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "taxonomy.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoad_ForwardFill(t *testing.T) {
	path := writeTaxonomySheet(t, [][]interface{}{
		{"Stack", "Categories", "Subcategories", "Definition"},
		{"Security", "Access Control", "Methods", "SSO and MFA."},
		{"", "", "Reviews", "Periodic access reviews."},
		{"", "Auditing", "Logs", ""},
		{"Procurement", "AP Automation", "Validation", "Invoice checks."},
	})

	hierarchy, err := Load(path)
	require.NoError(t, err)

	require.Len(t, hierarchy.Stacks, 2)

	security := hierarchy.Stacks[0]
	assert.Equal(t, "Security", security.Name)
	require.Len(t, security.Categories, 2)

	// Blank Stack/Categories cells inherit the most recent non-blank value.
	access := security.Categories[0]
	assert.Equal(t, "Access Control", access.Name)
	require.Len(t, access.Subcategories, 2)
	assert.Equal(t, "Reviews", access.Subcategories[1].Name)

	auditing := security.Categories[1]
	require.Len(t, auditing.Subcategories, 1)
	assert.Equal(t, NoDefinition, auditing.Subcategories[0].Definition,
		"blank definition gets the placeholder")

	assert.Equal(t, "Procurement", hierarchy.Stacks[1].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoad_OrphanCategory(t *testing.T) {
	path := writeTaxonomySheet(t, [][]interface{}{
		{"Stack", "Categories", "Subcategories", "Definition"},
		{"", "Orphan", "Sub", "Def"},
	})

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoadOrFallback_SubstitutesFallback(t *testing.T) {
	hierarchy := LoadOrFallback(filepath.Join(t.TempDir(), "missing.xlsx"))

	require.Len(t, hierarchy.Stacks, 1)
	assert.Equal(t, "Unclassified", hierarchy.Stacks[0].Name)
}

func TestHierarchy_Render(t *testing.T) {
	rendered := Fallback().Render()

	assert.Contains(t, rendered, "Stack: Unclassified\n")
	assert.Contains(t, rendered, "  Category: General\n")
	assert.Contains(t, rendered, "    Subcategory: Other\n")
	assert.Contains(t, rendered, "      Definition: Default category for unclassified content.\n")
}
