package batch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// polyglotDir returns the absolute path to the polyglot fixture directory,
// which holds one small source file per supported language.
func polyglotDir(t *testing.T) string {
	t.Helper()
	abs, err := filepath.Abs("../../testdata/fixtures/polyglot")
	require.NoError(t, err)
	return abs
}

// TestParseFiles_PolyglotFixtures runs every language adapter end to end over
// the fixture files and checks that each one produces a sensible tree.
func TestParseFiles_PolyglotFixtures(t *testing.T) {
	dir := polyglotDir(t)

	// file name -> detected language and one definition name the adapter
	// must extract from it. Languages without code definitions (html, css,
	// markdown) are asserted structurally below instead.
	expected := map[string]struct {
		language string
		defName  string
	}{
		"sample.py":   {"python", "restock"},
		"sample.js":   {"javascript", "formatPrice"},
		"sample.ts":   {"typescript", "subtotal"},
		"sample.go":   {"go", "Describe"},
		"sample.rb":   {"ruby", "audit"},
		"sample.java": {"java", "deposit"},
		"sample.cpp":  {"cpp", "tax"},
		"sample.rs":   {"rust", "read_all"},
		"sample.sql":  {"sql", "orders"},
	}

	paths := make([]string, 0, 12)
	for _, name := range []string{
		"sample.py", "sample.js", "sample.ts", "sample.go", "sample.rb",
		"sample.java", "sample.cpp", "sample.rs", "sample.sql",
		"sample.html", "sample.css", "sample.md",
	} {
		paths = append(paths, filepath.Join(dir, name))
	}

	coordinator := newTestCoordinator()
	collection, err := coordinator.ParseFiles(context.Background(), paths, Options{
		Workers: 4,
		Config:  ast.DefaultConfig(),
	})
	require.NoError(t, err)
	require.Len(t, collection.Results, len(paths))

	byName := make(map[string]*ast.Result, len(collection.Results))
	for _, result := range collection.Results {
		byName[filepath.Base(result.FilePath)] = result
		assert.Greater(t, result.NodeCount, 1, "%s should produce a real tree", result.FilePath)
		assert.Greater(t, result.MaxDepth, 0, "%s should nest", result.FilePath)
	}

	for name, want := range expected {
		result := byName[name]
		require.NotNil(t, result, "missing result for %s", name)
		assert.Equal(t, want.language, result.Language)

		found := false
		for _, n := range result.Nodes {
			if semantic.IsDefinition(n.SemanticType) && n.Name == want.defName {
				found = true
				break
			}
		}
		assert.True(t, found, "%s should contain a definition named %q", name, want.defName)
	}

	// Markup languages: check a characteristic node instead of a definition.
	md := byName["sample.md"]
	require.NotNil(t, md)
	foundHeading := false
	for _, n := range md.Nodes {
		if n.RawType == "atx_heading" {
			foundHeading = true
			assert.Contains(t, n.Name, "Orders Guide")
			break
		}
	}
	assert.True(t, foundHeading, "markdown should contain an atx_heading")

	css := byName["sample.css"]
	require.NotNil(t, css)
	foundProp := false
	for _, n := range css.Nodes {
		if n.RawType == "declaration" && n.Name == "color" {
			foundProp = true
			break
		}
	}
	assert.True(t, foundProp, "css should extract the color property")

	html := byName["sample.html"]
	require.NotNil(t, html)
	foundDiv := false
	for _, n := range html.Nodes {
		if n.RawType == "element" && n.Name == "div" {
			foundDiv = true
			break
		}
	}
	assert.True(t, foundDiv, "html should extract the div element")
}
