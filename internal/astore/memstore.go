package astore

import (
	"context"
	"strings"
	"sync"

	"github.com/dusk-indust/uast/internal/ast"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu      sync.RWMutex
	results map[string]*ast.Result // key: file path
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		results: make(map[string]*ast.Result),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddResult stores a parse result keyed by file path, replacing any earlier
// parse of the same path.
func (m *MemStore) AddResult(_ context.Context, result *ast.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result.FilePath] = result
	return nil
}

// QueryNodes scans stored results for nodes matching the query.
func (m *MemStore) QueryNodes(_ context.Context, q Query) ([]NodeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(q.NameContains)
	var out []NodeRecord
	for _, result := range m.results {
		for i := range result.Nodes {
			n := &result.Nodes[i]
			if !matchesTypes(n.SemanticType, q.SemanticTypes) {
				continue
			}
			if needle != "" && !strings.Contains(strings.ToLower(n.Name), needle) {
				continue
			}
			out = append(out, NodeRecord{
				FilePath:     result.FilePath,
				NodeID:       n.NodeID,
				RawType:      n.RawType,
				SemanticType: n.SemanticType,
				Name:         n.Name,
				StartLine:    n.StartLine,
				EndLine:      n.EndLine,
			})
			if q.Limit > 0 && len(out) >= q.Limit {
				return out, nil
			}
		}
	}
	return out, nil
}

// FileStats summarizes every stored file.
func (m *MemStore) FileStats(_ context.Context) ([]FileStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FileStat, 0, len(m.results))
	for _, result := range m.results {
		out = append(out, FileStat{
			Path:      result.FilePath,
			Language:  result.Language,
			NodeCount: result.NodeCount,
			MaxDepth:  result.MaxDepth,
		})
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
