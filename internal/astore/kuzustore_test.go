//go:build cgo

package astore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestKuzu creates a fresh in-memory KuzuStore with an initialized
// schema, closed when the test finishes.
func newTestKuzu(t *testing.T) *KuzuStore {
	t.Helper()
	s, err := NewKuzuStore()
	require.NoError(t, err, "NewKuzuStore should not fail")
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.InitSchema(ctx), "InitSchema should not fail")
	return s
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestKuzuStore_InitSchemaIdempotent(t *testing.T) {
	s, err := NewKuzuStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.InitSchema(ctx))
	require.NoError(t, s.InitSchema(ctx), "IF NOT EXISTS makes re-init safe")
}

func TestKuzuStore_ResultRoundTrip(t *testing.T) {
	s := newTestKuzu(t)
	ctx := context.Background()

	result := parseResult(t, "pkg/util.py", "python",
		"def slugify(text):\n    return text.lower()\n")
	require.NoError(t, s.AddResult(ctx, result))

	stats, err := s.FileStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "pkg/util.py", stats[0].Path)
	assert.Equal(t, "python", stats[0].Language)
	assert.Equal(t, result.NodeCount, stats[0].NodeCount)
	assert.Equal(t, result.MaxDepth, stats[0].MaxDepth)

	records, err := s.QueryNodes(ctx, Query{
		SemanticTypes: []string{"DEFINITION_FUNCTION"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "slugify", records[0].Name)
	assert.Equal(t, "function_definition", records[0].RawType)
}

func TestKuzuStore_MatchesMemStore(t *testing.T) {
	// Same inputs, same query, both backends agree.
	ctx := context.Background()
	kz := newTestKuzu(t)
	mem := NewMemStore()
	t.Cleanup(func() { _ = mem.Close() })

	result := parseResult(t, "cmd/root.go", "go",
		"package cmd\n\nfunc Execute() {}\n\nfunc init() {}\n")
	require.NoError(t, kz.AddResult(ctx, result))
	require.NoError(t, mem.AddResult(ctx, result))

	q := Query{SemanticTypes: []string{"DEFINITION_FUNCTION"}, NameContains: "exec"}

	fromKuzu, err := kz.QueryNodes(ctx, q)
	require.NoError(t, err)
	fromMem, err := mem.QueryNodes(ctx, q)
	require.NoError(t, err)

	require.Len(t, fromKuzu, 1)
	require.Len(t, fromMem, 1)
	assert.Equal(t, fromMem[0], fromKuzu[0])
}

func TestKuzuStore_ReAddReplacesFile(t *testing.T) {
	s := newTestKuzu(t)
	ctx := context.Background()

	first := parseResult(t, "a.py", "python", "def one():\n    pass\n")
	require.NoError(t, s.AddResult(ctx, first))
	second := parseResult(t, "a.py", "python", "def two():\n    pass\n")
	require.NoError(t, s.AddResult(ctx, second))

	records, err := s.QueryNodes(ctx, Query{SemanticTypes: []string{"DEFINITION_FUNCTION"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "two", records[0].Name)

	stats, err := s.FileStats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 1, "one file row after replacement")
}
