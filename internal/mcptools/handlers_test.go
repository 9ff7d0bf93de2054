package mcptools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/astore"
	"github.com/dusk-indust/uast/internal/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newTestService creates an ASTService backed by an in-memory store.
func newTestService(t *testing.T) *ASTService {
	t.Helper()
	store := astore.NewMemStore()
	t.Cleanup(func() { store.Close() })
	return NewASTService(store, nil)
}

// writePythonFixtures writes two small python files into a temp dir and
// returns their paths.
func writePythonFixtures(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"handlers.py": "def handle_request(req):\n    return req\n\ndef _internal(x):\n    return x\n",
		"models.py":   "class User:\n    def rename(self, name):\n        self.name = name\n",
	}

	paths := make([]string, 0, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		paths = append(paths, path)
	}
	return paths
}

// nodeNames collects the Name field of every node with the given raw type.
func nodeNames(result ast.Result, rawType string) []string {
	var names []string
	for _, n := range result.Nodes {
		if n.RawType == rawType {
			names = append(names, n.Name)
		}
	}
	return names
}

// ---------------------------------------------------------------------------
// TestParseAST
// ---------------------------------------------------------------------------

func TestParseAST(t *testing.T) {
	t.Run("parses python snippet", func(t *testing.T) {
		svc := newTestService(t)

		_, out, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Content:  "def greet(name):\n    return name\n",
			Language: "python",
		})
		require.NoError(t, err)

		assert.Equal(t, ast.InlinePath, out.Result.FilePath)
		assert.Equal(t, "python", out.Result.Language)
		assert.Greater(t, out.Result.NodeCount, 0)
		assert.Contains(t, nodeNames(out.Result, "function_definition"), "greet")
	})

	t.Run("resolves aliases", func(t *testing.T) {
		svc := newTestService(t)

		_, out, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Content:  "const x = 1;\n",
			Language: "js",
		})
		require.NoError(t, err)
		assert.Equal(t, "javascript", out.Result.Language)
	})

	t.Run("detail dials gate fields", func(t *testing.T) {
		svc := newTestService(t)

		_, out, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Content:   "def greet(name):\n    return name\n",
			Language:  "python",
			Context:   "types",
			Location:  "none",
			Structure: "minimal",
			Peek:      "none",
		})
		require.NoError(t, err)

		for _, n := range out.Result.Nodes {
			assert.Empty(t, n.Name, "context=types should not extract names")
			assert.Zero(t, n.StartLine, "location=none should not populate lines")
			assert.Empty(t, n.Peek, "peek=none should not populate peeks")
		}
	})

	t.Run("empty content returns error", func(t *testing.T) {
		svc := newTestService(t)

		_, _, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Language: "python",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content is required")
	})

	t.Run("empty language returns error", func(t *testing.T) {
		svc := newTestService(t)

		_, _, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Content: "x = 1",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "language is required")
	})

	t.Run("unsupported language returns error", func(t *testing.T) {
		svc := newTestService(t)

		_, _, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Content:  "x = 1",
			Language: "cobol",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cobol")
	})

	t.Run("bad detail level returns error", func(t *testing.T) {
		svc := newTestService(t)

		_, _, err := svc.ParseAST(context.Background(), nil, ParseASTInput{
			Content:  "x = 1",
			Language: "python",
			Context:  "verbose",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verbose")
	})
}

// ---------------------------------------------------------------------------
// TestParseFiles
// ---------------------------------------------------------------------------

func TestParseFiles(t *testing.T) {
	t.Run("parses files and loads the store", func(t *testing.T) {
		svc := newTestService(t)
		paths := writePythonFixtures(t)
		ctx := context.Background()

		_, out, err := svc.ParseFiles(ctx, nil, ParseFilesInput{Paths: paths})
		require.NoError(t, err)

		assert.Equal(t, int64(2), out.FilesProcessed)
		assert.Len(t, out.Files, 2)
		assert.Greater(t, out.TotalNodes, int64(0))
		assert.Empty(t, out.Errors)

		// The session store should now answer queries.
		_, qout, err := svc.QueryNodes(ctx, nil, QueryNodesInput{
			SemanticTypes: []string{"DEFINITION_FUNCTION"},
		})
		require.NoError(t, err)
		names := make([]string, 0, qout.Total)
		for _, n := range qout.Nodes {
			names = append(names, n.Name)
		}
		assert.Contains(t, names, "handle_request")
		assert.Contains(t, names, "rename")
	})

	t.Run("ignoreErrors skips bad paths", func(t *testing.T) {
		svc := newTestService(t)
		paths := writePythonFixtures(t)
		paths = append(paths, filepath.Join(t.TempDir(), "missing.py"))

		_, out, err := svc.ParseFiles(context.Background(), nil, ParseFilesInput{
			Paths:        paths,
			IgnoreErrors: true,
		})
		require.NoError(t, err)

		assert.Len(t, out.Files, 2)
		require.Len(t, out.Errors, 1)
		assert.Contains(t, out.Errors[0], "missing.py")
	})

	t.Run("fail fast propagates parse errors", func(t *testing.T) {
		svc := newTestService(t)
		paths := []string{filepath.Join(t.TempDir(), "missing.py")}

		_, _, err := svc.ParseFiles(context.Background(), nil, ParseFilesInput{Paths: paths})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.py")
	})

	t.Run("empty paths returns error", func(t *testing.T) {
		svc := newTestService(t)

		_, _, err := svc.ParseFiles(context.Background(), nil, ParseFilesInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "paths is required")
	})

	t.Run("forced language overrides extension", func(t *testing.T) {
		svc := newTestService(t)
		dir := t.TempDir()
		path := filepath.Join(dir, "script.txt")
		require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

		_, out, err := svc.ParseFiles(context.Background(), nil, ParseFilesInput{
			Paths:    []string{path},
			Language: "py",
		})
		require.NoError(t, err)
		require.Len(t, out.Files, 1)
		assert.Equal(t, "python", out.Files[0].Language)
	})
}

// ---------------------------------------------------------------------------
// TestSupportedLanguages
// ---------------------------------------------------------------------------

func TestSupportedLanguages(t *testing.T) {
	svc := newTestService(t)

	_, out, err := svc.SupportedLanguages(context.Background(), nil, SupportedLanguagesInput{})
	require.NoError(t, err)

	assert.Len(t, out.Languages, 12)
	assert.Contains(t, out.Languages, "python")
	assert.Contains(t, out.Languages, "markdown")
	assert.Equal(t, "python", out.Aliases["py"])
	assert.Equal(t, "rust", out.Aliases["rs"])
}

// ---------------------------------------------------------------------------
// TestQueryNodes
// ---------------------------------------------------------------------------

func TestQueryNodes(t *testing.T) {
	t.Run("name substring filter", func(t *testing.T) {
		svc := newTestService(t)
		paths := writePythonFixtures(t)
		ctx := context.Background()

		_, _, err := svc.ParseFiles(ctx, nil, ParseFilesInput{Paths: paths})
		require.NoError(t, err)

		_, out, err := svc.QueryNodes(ctx, nil, QueryNodesInput{
			SemanticTypes: []string{"DEFINITION_FUNCTION"},
			NameContains:  "handle",
		})
		require.NoError(t, err)
		require.Equal(t, 1, out.Total)
		assert.Equal(t, "handle_request", out.Nodes[0].Name)
		assert.Equal(t, semantic.DefinitionFunction, semantic.Base(out.Nodes[0].SemanticType))
	})

	t.Run("limit is respected", func(t *testing.T) {
		svc := newTestService(t)
		paths := writePythonFixtures(t)
		ctx := context.Background()

		_, _, err := svc.ParseFiles(ctx, nil, ParseFilesInput{Paths: paths})
		require.NoError(t, err)

		_, out, err := svc.QueryNodes(ctx, nil, QueryNodesInput{Limit: 3})
		require.NoError(t, err)
		assert.LessOrEqual(t, out.Total, 3)
	})

	t.Run("empty store returns no nodes", func(t *testing.T) {
		svc := newTestService(t)

		_, out, err := svc.QueryNodes(context.Background(), nil, QueryNodesInput{
			NameContains: "anything",
		})
		require.NoError(t, err)
		assert.Zero(t, out.Total)
		assert.Empty(t, out.Nodes)
	})
}
