package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/uast/internal/ast"
)

func TestLoad_MissingFileGivesZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_ReadsYml(t *testing.T) {
	dir := t.TempDir()
	content := []byte("language: python\nworkers: 8\nignoreErrors: true\npeek: full\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uast.yml"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "python", cfg.Language)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.IgnoreErrors)

	ec, err := cfg.ExtractionConfig()
	require.NoError(t, err)
	assert.Equal(t, ast.PeekFull, ec.Peek)
	assert.Equal(t, ast.ContextNormalized, ec.Context, "unset fields keep defaults")
}

func TestExtractionConfig_BadLevel(t *testing.T) {
	cfg := &ProjectConfig{Context: "verbose"}
	_, err := cfg.ExtractionConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uast.yml"), []byte("workers: [oops"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
