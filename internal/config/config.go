package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/uast/internal/ast"
)

// ProjectConfig holds project-level settings loaded from uast.yml.
type ProjectConfig struct {
	// Language forces a single language for every input; empty means
	// detect per file.
	Language string `yaml:"language,omitempty"`

	Workers      int  `yaml:"workers,omitempty"`
	IgnoreErrors bool `yaml:"ignoreErrors,omitempty"`

	// DatabasePath is where `uast index` keeps its Kuzu database.
	DatabasePath string `yaml:"databasePath,omitempty"`

	// Detail levels by name; empty fields keep the defaults.
	Context   string `yaml:"context,omitempty"`
	Location  string `yaml:"location,omitempty"`
	Structure string `yaml:"structure,omitempty"`
	Peek      string `yaml:"peek,omitempty"`
	PeekSize  int    `yaml:"peekSize,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`
}

// Load attempts to read uast.yml or uast.yaml from the given directory.
// Returns a zero-value config (not an error) if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"uast.yml", "uast.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}

// ExtractionConfig resolves the named detail levels, starting from
// ast.DefaultConfig for any field left empty.
func (c *ProjectConfig) ExtractionConfig() (ast.ExtractionConfig, error) {
	out := ast.DefaultConfig()
	if c.Context != "" {
		level, err := ast.ParseContextLevel(c.Context)
		if err != nil {
			return out, err
		}
		out.Context = level
	}
	if c.Location != "" {
		level, err := ast.ParseLocationLevel(c.Location)
		if err != nil {
			return out, err
		}
		out.Location = level
	}
	if c.Structure != "" {
		level, err := ast.ParseStructureLevel(c.Structure)
		if err != nil {
			return out, err
		}
		out.Structure = level
	}
	if c.Peek != "" {
		level, err := ast.ParsePeekLevel(c.Peek)
		if err != nil {
			return out, err
		}
		out.Peek = level
	}
	if c.PeekSize > 0 {
		out.PeekSize = c.PeekSize
	}
	return out, nil
}
