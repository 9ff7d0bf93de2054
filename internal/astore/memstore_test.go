package astore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/lang"
	"github.com/dusk-indust/uast/internal/semantic"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseResult(t *testing.T, path, language, source string) *ast.Result {
	t.Helper()
	adapter, err := lang.DefaultRegistry().Create(language)
	require.NoError(t, err)
	result, err := ast.Parse(path, []byte(source), adapter, ast.DefaultConfig())
	require.NoError(t, err)
	return result
}

func seededStore(t *testing.T) *MemStore {
	t.Helper()
	store := NewMemStore()
	require.NoError(t, store.InitSchema(context.Background()))

	py := parseResult(t, "svc/handlers.py", "python",
		"def handle_request(req):\n    return dispatch(req)\n\ndef _internal():\n    pass\n")
	goSrc := parseResult(t, "svc/main.go", "go",
		"package main\n\nfunc HandleRequest() {}\n")

	require.NoError(t, store.AddResult(context.Background(), py))
	require.NoError(t, store.AddResult(context.Background(), goSrc))
	return store
}

// ---------------------------------------------------------------------------
// TestMemStore
// ---------------------------------------------------------------------------

func TestMemStore_QueryByType(t *testing.T) {
	store := seededStore(t)
	defer store.Close()

	records, err := store.QueryNodes(context.Background(), Query{
		SemanticTypes: []string{"DEFINITION_FUNCTION"},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, r := range records {
		assert.True(t, semantic.IsDefinition(r.SemanticType), "record %s", r.Name)
	}
}

func TestMemStore_QueryByName(t *testing.T) {
	store := seededStore(t)
	defer store.Close()

	records, err := store.QueryNodes(context.Background(), Query{
		SemanticTypes: []string{"DEFINITION_FUNCTION"},
		NameContains:  "handle",
	})
	require.NoError(t, err)
	require.Len(t, records, 2, "case-insensitive substring matches both languages")

	names := []string{records[0].Name, records[1].Name}
	assert.Contains(t, names, "handle_request")
	assert.Contains(t, names, "HandleRequest")
}

func TestMemStore_QueryLimit(t *testing.T) {
	store := seededStore(t)
	defer store.Close()

	records, err := store.QueryNodes(context.Background(), Query{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestMemStore_ReAddReplacesFile(t *testing.T) {
	store := NewMemStore()
	defer store.Close()
	ctx := context.Background()

	first := parseResult(t, "a.py", "python", "def one():\n    pass\n")
	require.NoError(t, store.AddResult(ctx, first))
	second := parseResult(t, "a.py", "python", "def two():\n    pass\n")
	require.NoError(t, store.AddResult(ctx, second))

	records, err := store.QueryNodes(ctx, Query{SemanticTypes: []string{"DEFINITION_FUNCTION"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "two", records[0].Name)
}

func TestMemStore_FileStats(t *testing.T) {
	store := seededStore(t)
	defer store.Close()

	stats, err := store.FileStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byPath := make(map[string]FileStat, len(stats))
	for _, s := range stats {
		byPath[s.Path] = s
	}
	require.Contains(t, byPath, "svc/handlers.py")
	assert.Equal(t, "python", byPath["svc/handlers.py"].Language)
	assert.Greater(t, byPath["svc/handlers.py"].NodeCount, 0)
	assert.Equal(t, "go", byPath["svc/main.go"].Language)
}

func TestMatchesTypes_RefinementMasking(t *testing.T) {
	lambda := semantic.Refine(semantic.DefinitionFunction, semantic.FunctionLambda)
	assert.True(t, matchesTypes(lambda, []string{"DEFINITION_FUNCTION"}),
		"refined variants match their base type name")
	assert.False(t, matchesTypes(semantic.ComputationCall, []string{"DEFINITION_FUNCTION"}))
	assert.True(t, matchesTypes(semantic.ComputationCall, nil), "no filter matches everything")
	assert.False(t, matchesTypes(semantic.ComputationCall, []string{"NOT_A_TYPE"}),
		"unknown names never match")
}
