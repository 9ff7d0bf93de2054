package ast

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dusk-indust/uast/internal/lang"
)

// stackEntry drives the iterative two-visit traversal. The explicit stack
// bounds memory on pathologically deep trees where recursion would not.
type stackEntry struct {
	node         *sitter.Node
	parentID     int64
	depth        int
	siblingIndex int
	processed    bool
	nodeIndex    int // index in the output slice, set on first visit
}

// Parse parses source with a fresh parser from the adapter and builds the
// normalized result. path is recorded as given; use InlinePath for snippets.
func Parse(path string, source []byte, adapter *lang.Adapter, cfg ExtractionConfig) (*Result, error) {
	parser, err := adapter.NewParser()
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s: grammar produced no tree", path)
	}
	defer tree.Close()

	nodes, maxDepth := Build(tree.RootNode(), source, adapter, cfg)
	return &Result{
		FilePath:  path,
		Language:  adapter.Name(),
		Nodes:     nodes,
		NodeCount: len(nodes),
		MaxDepth:  maxDepth,
	}, nil
}

// Build walks the tree iteratively and produces the node list. Each syntax
// node is visited twice: the first visit creates its output node and pushes
// the children in reverse so they pop in document order; the second visit
// fills the descendant count, which is valid because by then every
// descendant has been appended after the node's own index.
func Build(root *sitter.Node, source []byte, adapter *lang.Adapter, cfg ExtractionConfig) ([]Node, int) {
	if root == nil {
		return nil, 0
	}

	var nodes []Node
	maxDepth := 0

	stack := []stackEntry{{node: root, parentID: RootParentID, depth: 0, siblingIndex: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.processed {
			if cfg.Structure >= StructureFull {
				nodes[top.nodeIndex].DescendantCount = len(nodes) - top.nodeIndex - 1
			}
			stack = stack[:len(stack)-1]
			continue
		}

		top.processed = true
		top.nodeIndex = len(nodes)
		if top.depth > maxDepth {
			maxDepth = top.depth
		}

		nodes = append(nodes, buildNode(top, source, adapter, cfg))

		selfID := int64(top.nodeIndex)
		depth := top.depth
		n := top.node
		count := int(n.ChildCount())
		for i := count - 1; i >= 0; i-- {
			child := n.Child(uint(i))
			if child == nil {
				continue
			}
			stack = append(stack, stackEntry{
				node:         child,
				parentID:     selfID,
				depth:        depth + 1,
				siblingIndex: i,
			})
		}
	}

	return nodes, maxDepth
}

func buildNode(entry *stackEntry, source []byte, adapter *lang.Adapter, cfg ExtractionConfig) Node {
	n := entry.node
	rawType := n.Kind()

	out := Node{
		NodeID:   int64(entry.nodeIndex),
		RawType:  rawType,
		ParentID: RootParentID,
	}

	if cfg.Context >= ContextNodeTypesOnly {
		out.SemanticType = adapter.SemanticType(rawType)
		out.Flags = adapter.Flags(rawType)
	}
	if cfg.Context >= ContextNormalized {
		out.Name = sanitize(adapter.NodeName(n, source))
		out.Value = sanitize(adapter.NodeValue(n, source))
	}
	if cfg.Context >= ContextNative {
		out.NormalizedType = adapter.NormalizedType(rawType)
	}

	if cfg.Location >= LocationLines {
		start, end := n.StartPosition(), n.EndPosition()
		out.StartLine = int(start.Row) + 1
		out.EndLine = int(end.Row) + 1
		if cfg.Location >= LocationFull {
			out.StartColumn = int(start.Column) + 1
			out.EndColumn = int(end.Column) + 1
		}
	}

	if cfg.Structure >= StructureMinimal {
		out.ParentID = entry.parentID
		out.Depth = entry.depth
		out.SiblingIndex = entry.siblingIndex
		if cfg.Structure >= StructureFull {
			out.ChildrenCount = int(n.ChildCount())
			// DescendantCount is filled on the second visit.
		}
	}

	if cfg.Peek != PeekNone {
		out.Peek = peek(n, source, cfg)
	}

	return out
}

// sanitize replaces invalid UTF-8 so extracted strings are always safe to
// serialize.
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "�")
}
