//go:build cgo

package astore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kuzu "github.com/kuzudb/go-kuzu"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/semantic"
)

// KuzuStore implements Store using KuzuDB as the graph backend. It requires
// CGO because the go-kuzu driver wraps KuzuDB's C library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	return openKuzu(":memory:")
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path, giving indexes that survive across sessions. KuzuDB
// creates the leaf directory itself.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	return openKuzu(dbPath)
}

func openKuzu(path string) (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema. Node tables
// must precede relationship tables. semantic_type is INT16 because KuzuDB
// has no unsigned byte column; the stored value is still the raw 8-bit code.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS ASTFile(
		path STRING,
		language STRING,
		node_count INT64,
		max_depth INT64,
		PRIMARY KEY(path)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS ASTNode(
		id STRING,
		file_path STRING,
		node_id INT64,
		raw_type STRING,
		semantic_type INT16,
		name STRING,
		start_line INT64,
		end_line INT64,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS CONTAINS(FROM ASTFile TO ASTNode)`,
	`CREATE REL TABLE IF NOT EXISTS PARENT_OF(FROM ASTNode TO ASTNode)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// nodeKey builds the globally unique ASTNode primary key.
func nodeKey(filePath string, nodeID int64) string {
	return fmt.Sprintf("%s#%d", filePath, nodeID)
}

// ---------- Write operations ----------

// AddResult persists one parse result: the file row, every node row, one
// CONTAINS edge per node, and PARENT_OF edges mirroring the tree. Re-adding
// a path deletes the earlier parse first.
func (s *KuzuStore) AddResult(ctx context.Context, result *ast.Result) error {
	if err := s.deleteFile(result.FilePath); err != nil {
		return err
	}

	if err := s.exec(
		"CREATE (f:ASTFile {path: $path, language: $lang, node_count: $nc, max_depth: $md})",
		map[string]any{
			"path": result.FilePath,
			"lang": result.Language,
			"nc":   int64(result.NodeCount),
			"md":   int64(result.MaxDepth),
		},
	); err != nil {
		return err
	}

	for i := range result.Nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := &result.Nodes[i]
		if err := s.exec(
			`CREATE (n:ASTNode {
				id: $id,
				file_path: $fp,
				node_id: $nid,
				raw_type: $raw,
				semantic_type: $sem,
				name: $name,
				start_line: $sl,
				end_line: $el
			})`,
			map[string]any{
				"id":   nodeKey(result.FilePath, n.NodeID),
				"fp":   result.FilePath,
				"nid":  n.NodeID,
				"raw":  n.RawType,
				"sem":  int16(n.SemanticType),
				"name": n.Name,
				"sl":   int64(n.StartLine),
				"el":   int64(n.EndLine),
			},
		); err != nil {
			return err
		}

		if err := s.exec(
			`MATCH (f:ASTFile {path: $fp}), (n:ASTNode {id: $id})
			 CREATE (f)-[:CONTAINS]->(n)`,
			map[string]any{"fp": result.FilePath, "id": nodeKey(result.FilePath, n.NodeID)},
		); err != nil {
			return err
		}

		if n.ParentID != ast.RootParentID {
			if err := s.exec(
				`MATCH (p:ASTNode {id: $pid}), (c:ASTNode {id: $cid})
				 CREATE (p)-[:PARENT_OF]->(c)`,
				map[string]any{
					"pid": nodeKey(result.FilePath, n.ParentID),
					"cid": nodeKey(result.FilePath, n.NodeID),
				},
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// deleteFile removes any earlier parse of the path.
func (s *KuzuStore) deleteFile(path string) error {
	if err := s.exec(
		"MATCH (n:ASTNode {file_path: $path}) DETACH DELETE n",
		map[string]any{"path": path},
	); err != nil {
		return err
	}
	return s.exec(
		"MATCH (f:ASTFile {path: $path}) DETACH DELETE f",
		map[string]any{"path": path},
	)
}

// ---------- Read operations ----------

// QueryNodes returns stored nodes matching the query. Type filtering masks
// refinement bits, so it happens in Go after a coarse fetch.
func (s *KuzuStore) QueryNodes(_ context.Context, q Query) ([]NodeRecord, error) {
	cypher := `MATCH (n:ASTNode)`
	params := map[string]any{}
	if q.NameContains != "" {
		cypher += ` WHERE LOWER(n.name) CONTAINS $needle`
		params["needle"] = strings.ToLower(q.NameContains)
	}
	cypher += ` RETURN n.file_path, n.node_id, n.raw_type, n.semantic_type, n.name, n.start_line, n.end_line`

	rows, err := s.query(cypher, params)
	if err != nil {
		return nil, err
	}

	var out []NodeRecord
	for _, r := range rows {
		sem := semantic.Type(toInt(r[3]))
		if !matchesTypes(sem, q.SemanticTypes) {
			continue
		}
		out = append(out, NodeRecord{
			FilePath:     toString(r[0]),
			NodeID:       int64(toInt(r[1])),
			RawType:      toString(r[2]),
			SemanticType: sem,
			Name:         toString(r[4]),
			StartLine:    toInt(r[5]),
			EndLine:      toInt(r[6]),
		})
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
	}
	return out, nil
}

// FileStats summarizes every stored file.
func (s *KuzuStore) FileStats(_ context.Context) ([]FileStat, error) {
	rows, err := s.query(
		"MATCH (f:ASTFile) RETURN f.path, f.language, f.node_count, f.max_depth", nil)
	if err != nil {
		return nil, err
	}
	out := make([]FileStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, FileStat{
			Path:      toString(r[0]),
			Language:  toString(r[1]),
			NodeCount: toInt(r[2]),
			MaxDepth:  toInt(r[3]),
		})
	}
	return out, nil
}

// ---------- Cypher plumbing ----------

// exec runs a parameterized Cypher statement, discarding any result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, int16, bool, string). These
// helpers safely coerce any -> concrete type.

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int32:
		return int(n)
	case int16:
		return int(n)
	case int8:
		return int(n)
	case int:
		return n
	case uint8:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
