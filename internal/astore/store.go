// Package astore persists normalized parse results so downstream tooling
// can query nodes across files without re-parsing. Two backends exist: an
// in-memory store for tests and short-lived runs, and a Kuzu graph database
// for persistent indexes.
package astore

import (
	"context"
	"io"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/semantic"
)

// NodeRecord is one stored node row returned by queries.
type NodeRecord struct {
	FilePath     string        `json:"file_path"`
	NodeID       int64         `json:"node_id"`
	RawType      string        `json:"raw_type"`
	SemanticType semantic.Type `json:"semantic_type"`
	Name         string        `json:"name,omitempty"`
	StartLine    int           `json:"start_line,omitempty"`
	EndLine      int           `json:"end_line,omitempty"`
}

// FileStat summarizes one stored file.
type FileStat struct {
	Path      string `json:"path"`
	Language  string `json:"language"`
	NodeCount int    `json:"node_count"`
	MaxDepth  int    `json:"max_depth"`
}

// Query filters stored nodes. Zero-value fields are ignored; a Limit <= 0
// returns everything that matches.
type Query struct {
	// SemanticTypes filters by taxonomy names, e.g. "DEFINITION_FUNCTION".
	// Matching masks refinement bits, so refined variants match their base.
	SemanticTypes []string

	// NameContains is a case-insensitive substring match on extracted
	// names.
	NameContains string

	Limit int
}

// Store is the persistence backend for parse results.
// Implementations: KuzuStore (persistent), MemStore (testing/ephemeral).
type Store interface {
	io.Closer

	// InitSchema prepares backend structures; called once before writes.
	InitSchema(ctx context.Context) error

	// AddResult persists one parse result. Re-adding a path replaces the
	// previous parse of that path.
	AddResult(ctx context.Context, result *ast.Result) error

	// QueryNodes returns stored nodes matching the query.
	QueryNodes(ctx context.Context, q Query) ([]NodeRecord, error)

	// FileStats summarizes every stored file.
	FileStats(ctx context.Context) ([]FileStat, error)
}

// matchesTypes reports whether a stored semantic type satisfies the query's
// type filter, masking refinement bits on both sides.
func matchesTypes(t semantic.Type, names []string) bool {
	if len(names) == 0 {
		return true
	}
	for _, name := range names {
		code := semantic.TypeCode(name)
		if code == semantic.UnknownTypeCode {
			continue
		}
		if semantic.Base(t) == semantic.Base(code) {
			return true
		}
	}
	return false
}
