// Package lang provides per-language adapters that map raw tree-sitter node
// types onto the shared semantic taxonomy and extract names and values from
// syntax nodes.
//
// Each adapter carries a declarative node-type table plus three optional
// language hooks (custom extraction, table-miss fallback, visibility). All
// adapter state is immutable after construction; parsers are created fresh
// per call and never shared.
package lang

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dusk-indust/uast/internal/semantic"
)

// ErrUnsupportedLanguage is returned when a requested language has no
// registered adapter.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// NodeConfig describes how one raw node type is classified and mined for a
// name and value.
type NodeConfig struct {
	Semantic      semantic.Type
	Flags         uint8
	NameStrategy  Strategy
	ValueStrategy Strategy
}

// customFunc is a language-specific extraction hook invoked for the Custom
// strategy.
type customFunc func(node *sitter.Node, source []byte) string

// fallbackFunc recovers a name for raw node types missing from the table.
type fallbackFunc func(node *sitter.Node, source []byte, rawType string) string

// visibilityFunc decides whether a node is visible outside its enclosing
// scope.
type visibilityFunc func(node *sitter.Node, source []byte) bool

// Adapter binds a tree-sitter grammar to the shared taxonomy for one
// language. Adapters are immutable and safe for concurrent reads, but the
// parsers they construct are not: callers get a fresh parser per NewParser
// call and must not share it across goroutines.
type Adapter struct {
	name     string
	aliases  []string
	language *sitter.Language
	types    map[string]NodeConfig
	custom   customFunc
	fallback fallbackFunc
	visible  visibilityFunc
}

// Name returns the canonical language name.
func (a *Adapter) Name() string { return a.name }

// Aliases returns alternate names the registry accepts for this language.
func (a *Adapter) Aliases() []string { return a.aliases }

// Language returns the tree-sitter grammar.
func (a *Adapter) Language() *sitter.Language { return a.language }

// NewParser constructs a fresh parser bound to this adapter's grammar. The
// caller owns the parser and must Close it; parsers must never be shared
// across concurrent parses.
func (a *Adapter) NewParser() (*sitter.Parser, error) {
	p := sitter.NewParser()
	if err := p.SetLanguage(a.language); err != nil {
		p.Close()
		return nil, fmt.Errorf("set %s grammar: %w", a.name, err)
	}
	return p, nil
}

// Config looks up the node-type table entry for a raw node type.
func (a *Adapter) Config(rawType string) (NodeConfig, bool) {
	cfg, ok := a.types[rawType]
	return cfg, ok
}

// SemanticType classifies a raw node type. Types missing from the table are
// parser-specific constructs.
func (a *Adapter) SemanticType(rawType string) semantic.Type {
	if cfg, ok := a.types[rawType]; ok {
		return cfg.Semantic
	}
	return semantic.ParserConstruct
}

// NormalizedType returns the taxonomy name for a raw node type.
func (a *Adapter) NormalizedType(rawType string) string {
	return semantic.TypeName(a.SemanticType(rawType))
}

// Flags returns the universal flag byte for a raw node type.
func (a *Adapter) Flags(rawType string) uint8 {
	if cfg, ok := a.types[rawType]; ok {
		return cfg.Flags
	}
	return 0
}

// NodeName extracts the node's name using the table's name strategy, or the
// language fallback when the raw type has no table entry. Extraction failure
// yields an empty string, never an error.
func (a *Adapter) NodeName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	rawType := node.Kind()
	if cfg, ok := a.types[rawType]; ok {
		return a.extract(cfg.NameStrategy, node, source)
	}
	if a.fallback != nil {
		return a.fallback(node, source, rawType)
	}
	return ""
}

// NodeValue extracts the node's value using the table's value strategy.
// Untabled types have no value.
func (a *Adapter) NodeValue(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	if cfg, ok := a.types[node.Kind()]; ok {
		return a.extract(cfg.ValueStrategy, node, source)
	}
	return ""
}

// IsPublic reports whether the node is visible outside its enclosing scope,
// per the language's convention. Languages without a visibility concept
// report true.
func (a *Adapter) IsPublic(node *sitter.Node, source []byte) bool {
	if node == nil {
		return false
	}
	if a.visible == nil {
		return true
	}
	return a.visible(node, source)
}

func (a *Adapter) extract(s Strategy, node *sitter.Node, source []byte) string {
	if s == StrategyCustom {
		if a.custom == nil {
			return ""
		}
		return a.custom(node, source)
	}
	return Extract(s, node, source)
}
