package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/qaforge/core"
)

func writeTextFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_PlainTextFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeTextFile(t, dir, "first.txt", "alpha content")
	second := writeTextFile(t, dir, "second.txt", "beta content")

	loader, err := NewLoader()
	require.NoError(t, err)
	defer loader.Release()

	segments, err := loader.Load(context.Background(), []string{first, second})
	require.NoError(t, err)

	// Input-path order regardless of which worker finished first.
	require.Len(t, segments, 2)
	assert.Equal(t, "alpha content", segments[0].Content)
	assert.Equal(t, "first.txt", segments[0].Source)
	assert.Equal(t, core.PageUnknown, segments[0].Page)
	assert.Equal(t, "second.txt", segments[1].Source)
}

func TestLoad_UnreadableFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	good := writeTextFile(t, dir, "good.txt", "still here")

	loader, err := NewLoader(WithPoolSize(2))
	require.NoError(t, err)
	defer loader.Release()

	segments, err := loader.Load(context.Background(),
		[]string{filepath.Join(dir, "missing.pdf"), good})
	require.NoError(t, err)

	require.Len(t, segments, 1)
	assert.Equal(t, "good.txt", segments[0].Source)
}

func TestLoad_EmptyFileYieldsNoSegments(t *testing.T) {
	dir := t.TempDir()
	empty := writeTextFile(t, dir, "empty.txt", "   \n")

	loader, err := NewLoader()
	require.NoError(t, err)
	defer loader.Release()

	segments, err := loader.Load(context.Background(), []string{empty})
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestLoad_NoPaths(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)
	defer loader.Release()

	segments, err := loader.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, segments)
}
