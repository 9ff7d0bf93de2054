package ast

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

const (
	smartPeekWhole    = 50 // spans up to this many bytes are kept whole
	smartPeekMax      = 80 // longer single lines are truncated
	smartPeekTruncate = 77 // kept bytes when truncating, before "..."
)

// peek extracts the node's source excerpt at the configured level.
func peek(n *sitter.Node, source []byte, cfg ExtractionConfig) string {
	start, end := n.StartByte(), n.EndByte()
	if start >= end || int(end) > len(source) {
		return ""
	}
	text := string(source[start:end])

	switch cfg.Peek {
	case PeekFull:
		return sanitize(text)
	case PeekCustom:
		if cfg.PeekSize <= 0 {
			return ""
		}
		if len(text) > cfg.PeekSize {
			text = text[:cfg.PeekSize]
		}
		return sanitize(text)
	case PeekSmart:
		return sanitize(smartPeek(text))
	default:
		return ""
	}
}

// smartPeek keeps short spans whole and reduces longer ones to a bounded
// first-line excerpt.
func smartPeek(text string) string {
	if len(text) <= smartPeekWhole {
		return text
	}
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	if len(line) > smartPeekMax {
		return line[:smartPeekTruncate] + "..."
	}
	return line
}
