package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Strategy names an algorithm for deriving a name or value string from a
// syntax node. Every strategy is total: failure yields "", never an error.
type Strategy uint8

const (
	StrategyNone Strategy = iota
	StrategyNodeText
	StrategyFirstChild
	StrategyFindIdentifier
	StrategyFindProperty
	StrategyFindAssignmentTarget
	StrategyFindQualifiedIdentifier
	StrategyFindInDeclarator
	StrategyFindCallTarget
	StrategyCustom
)

// identifierKinds is the cross-language identifier fallback list, tried in
// order by StrategyFindIdentifier.
var identifierKinds = []string{
	"identifier",
	"property_identifier",
	"field_identifier",
	"qualified_identifier",
	"name",
	"simple_identifier",
	"type_identifier",
}

// qualifiedKinds are the qualified/scoped-name node shapes recognized by
// StrategyFindQualifiedIdentifier.
var qualifiedKinds = []string{
	"qualified_identifier",
	"scoped_identifier",
	"nested_identifier",
	"property_identifier",
}

// qualifiedContainers are container shapes the qualified search recurses
// into when no qualified child is found directly.
var qualifiedContainers = []string{
	"function_declarator",
	"method_declarator",
	"declarator",
	"class_body",
	"interface_body",
}

// declaratorKinds are the declarator wrappers StrategyFindInDeclarator
// unwraps to reach the innermost function or method declarator.
var declaratorKinds = []string{
	"function_declarator",
	"method_declarator",
	"declarator",
	"procedure_declarator",
	"init_declarator",
}

// assignmentParents are the assignment-like parent shapes recognized by
// StrategyFindAssignmentTarget.
var assignmentParents = []string{
	"binary_operator",
	"variable_declarator",
	"init_declarator",
	"assignment",
	"named_expression",
}

// Extract runs a strategy against (node, source). StrategyCustom is handled
// by the adapter, not here; passing it returns "".
func Extract(s Strategy, node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch s {
	case StrategyNone:
		return ""
	case StrategyNodeText:
		return node.Utf8Text(source)
	case StrategyFirstChild:
		if child := node.Child(0); child != nil {
			return child.Utf8Text(source)
		}
		return ""
	case StrategyFindIdentifier:
		return findIdentifier(node, source)
	case StrategyFindProperty:
		if child := childOfKind(node, "property_identifier"); child != nil {
			return child.Utf8Text(source)
		}
		return ""
	case StrategyFindAssignmentTarget:
		return findAssignmentTarget(node, source)
	case StrategyFindQualifiedIdentifier:
		return findQualifiedIdentifier(node, source)
	case StrategyFindInDeclarator:
		return findInDeclarator(node, source)
	case StrategyFindCallTarget:
		return findCallTarget(node, source)
	default:
		return ""
	}
}

// childOfKind returns the first direct child with the given kind.
func childOfKind(node *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

// childOfAnyKind returns the first direct child matching the earliest kind
// in the list that has a match, honoring list order over child order.
func childOfAnyKind(node *sitter.Node, kinds []string) *sitter.Node {
	for _, kind := range kinds {
		if child := childOfKind(node, kind); child != nil {
			return child
		}
	}
	return nil
}

func findIdentifier(node *sitter.Node, source []byte) string {
	if child := childOfAnyKind(node, identifierKinds); child != nil {
		return child.Utf8Text(source)
	}
	return ""
}

// findAssignmentTarget recovers a name for anonymous function/lambda nodes
// from an assignment-like parent, e.g. `const f = () => {}`.
func findAssignmentTarget(node *sitter.Node, source []byte) string {
	parent := node.Parent()
	if parent == nil {
		return ""
	}
	kind := parent.Kind()
	match := strings.HasSuffix(kind, "declarator")
	if !match {
		for _, k := range assignmentParents {
			if kind == k {
				match = true
				break
			}
		}
	}
	if !match {
		return ""
	}
	if child := childOfKind(parent, "identifier"); child != nil {
		return child.Utf8Text(source)
	}
	return ""
}

// lastIdentifierSegment returns the rightmost identifier-like descendant of
// a qualified-name node, so `Class::method` yields `method`.
func lastIdentifierSegment(qualified *sitter.Node, source []byte) string {
	var last *sitter.Node
	for i := uint(0); i < qualified.ChildCount(); i++ {
		child := qualified.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "field_identifier", "property_identifier", "name", "type_identifier":
			last = child
		case "qualified_identifier", "scoped_identifier", "nested_identifier":
			// Nested qualification keeps the rightmost segment.
			if s := lastIdentifierSegment(child, source); s != "" {
				return s
			}
		}
	}
	if last != nil {
		return last.Utf8Text(source)
	}
	return ""
}

func findQualifiedIdentifier(node *sitter.Node, source []byte) string {
	if q := childOfAnyKind(node, qualifiedKinds); q != nil {
		if s := lastIdentifierSegment(q, source); s != "" {
			return s
		}
		return q.Utf8Text(source)
	}
	for _, container := range qualifiedContainers {
		if c := childOfKind(node, container); c != nil {
			if s := findQualifiedIdentifier(c, source); s != "" {
				return s
			}
		}
	}
	if child := childOfKind(node, "identifier"); child != nil {
		return child.Utf8Text(source)
	}
	return ""
}

// findInDeclarator digs through declarator wrappers (pointer, array,
// reference) to the innermost function/method declarator and extracts its
// identifier. Text recovery is a last resort for malformed trees.
func findInDeclarator(node *sitter.Node, source []byte) string {
	decl := node
	if node.Kind() != "function_declarator" && node.Kind() != "method_declarator" {
		decl = findDeclarator(node)
	}
	if decl != nil {
		if s := findQualifiedIdentifier(decl, source); s != "" {
			return s
		}
		if s := findIdentifier(decl, source); s != "" {
			return s
		}
	}
	return recoverDeclaratorName(node.Utf8Text(source))
}

// findDeclarator searches direct children, then one level deeper, for a
// declarator wrapper.
func findDeclarator(node *sitter.Node) *sitter.Node {
	if d := childOfAnyKind(node, declaratorKinds); d != nil {
		return d
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if d := childOfAnyKind(child, declaratorKinds); d != nil {
			return d
		}
	}
	return nil
}

// recoverDeclaratorName extracts a plausible identifier from raw declarator
// text: the token before the first '(', after the last "::" or whitespace.
func recoverDeclaratorName(text string) string {
	if i := strings.IndexByte(text, '('); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if i := strings.LastIndex(text, "::"); i >= 0 {
		text = text[i+2:]
	}
	if i := strings.LastIndexAny(text, " \t\n*&"); i >= 0 {
		text = text[i+1:]
	}
	if !looksLikeIdentifier(text) {
		return ""
	}
	return text
}

func looksLikeIdentifier(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || c == '~' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// accessKinds are member/field/selector callee shapes whose rightmost
// identifier is the called name.
var accessKinds = map[string]bool{
	"member_expression":    true,
	"field_expression":     true,
	"selector_expression":  true,
	"attribute":            true,
	"scoped_identifier":    true,
	"qualified_identifier": true,
}

// findCallTarget extracts the called name from a call expression.
func findCallTarget(node *sitter.Node, source []byte) string {
	callee := node.ChildByFieldName("function")
	if callee == nil {
		callee = node.Child(0)
	}
	if callee == nil {
		return ""
	}
	kind := callee.Kind()
	switch {
	case kind == "identifier":
		return callee.Utf8Text(source)
	case accessKinds[kind]:
		var last *sitter.Node
		for i := uint(0); i < callee.ChildCount(); i++ {
			child := callee.Child(i)
			if child == nil {
				continue
			}
			switch child.Kind() {
			case "identifier", "property_identifier", "field_identifier", "name":
				last = child
			}
		}
		if last != nil {
			return last.Utf8Text(source)
		}
		return callee.Utf8Text(source)
	default:
		return findAnyIdentifier(callee, source)
	}
}

// findAnyIdentifier does a depth-first search for the first identifier
// descendant.
func findAnyIdentifier(node *sitter.Node, source []byte) string {
	if node.Kind() == "identifier" {
		return node.Utf8Text(source)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if s := findAnyIdentifier(child, source); s != "" {
			return s
		}
	}
	return ""
}
