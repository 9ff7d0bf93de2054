// Package ast builds the normalized, language-independent node list out of
// a concrete tree-sitter syntax tree, at a caller-chosen level of detail.
package ast

import "github.com/dusk-indust/uast/internal/semantic"

// RootParentID is the ParentID sentinel carried by the root node.
const RootParentID int64 = -1

// Node is one normalized syntax tree element. NodeID values are dense and
// assigned in depth-first traversal order within one Result; they are not
// stable across files or parses.
type Node struct {
	NodeID       int64         `json:"node_id"`
	RawType      string        `json:"raw_type"`
	SemanticType semantic.Type `json:"semantic_type"`
	Flags        uint8         `json:"universal_flags,omitempty"`

	// Populated at ContextNormalized and above.
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
	// Populated at ContextNative.
	NormalizedType string `json:"normalized_type,omitempty"`

	// Populated at LocationLines (lines) and LocationFull (columns);
	// 1-based.
	StartLine   int `json:"start_line,omitempty"`
	EndLine     int `json:"end_line,omitempty"`
	StartColumn int `json:"start_column,omitempty"`
	EndColumn   int `json:"end_column,omitempty"`

	// Populated at StructureMinimal and above.
	ParentID     int64 `json:"parent_id"`
	Depth        int   `json:"depth"`
	SiblingIndex int   `json:"sibling_index"`
	// Populated at StructureFull.
	ChildrenCount   int `json:"children_count,omitempty"`
	DescendantCount int `json:"descendant_count,omitempty"`

	Peek string `json:"peek,omitempty"`
}

// Result is the normalized parse of exactly one unit: one file or one
// in-memory snippet. The node list is owned by the caller once returned and
// is never mutated afterward.
type Result struct {
	FilePath  string `json:"file_path"`
	Language  string `json:"language"`
	Nodes     []Node `json:"nodes"`
	NodeCount int    `json:"node_count"`
	MaxDepth  int    `json:"max_depth"`
}

// InlinePath is the FilePath used for in-memory snippets.
const InlinePath = "<inline>"
