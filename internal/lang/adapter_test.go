package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dusk-indust/uast/internal/semantic"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// parseWith parses source with a fresh adapter and returns the adapter, the
// root node, and a cleanup-registered tree.
func parseWith(t *testing.T, language string, source []byte) (*Adapter, *sitter.Node) {
	t.Helper()
	a, err := DefaultRegistry().Create(language)
	require.NoError(t, err)

	p, err := a.NewParser()
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	tree := p.Parse(source, nil)
	require.NotNil(t, tree, "parse %s", language)
	t.Cleanup(func() { tree.Close() })

	return a, tree.RootNode()
}

// firstOfKind does a depth-first search for the first node of the given kind.
func firstOfKind(node *sitter.Node, kind string) *sitter.Node {
	if node.Kind() == kind {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if found := firstOfKind(child, kind); found != nil {
			return found
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// TestPythonAdapter
// ---------------------------------------------------------------------------

func TestPythonAdapter_Extraction(t *testing.T) {
	source := []byte(`
def greet(name):
    return "hi " + name

class Greeter:
    def _helper(self):
        pass

f = lambda x: x * 2
`)
	a, root := parseWith(t, "python", source)

	fn := firstOfKind(root, "function_definition")
	require.NotNil(t, fn)
	assert.Equal(t, "greet", a.NodeName(fn, source))
	assert.Equal(t, semantic.DefinitionFunction, a.SemanticType(fn.Kind()))
	assert.True(t, a.IsPublic(fn, source))

	cls := firstOfKind(root, "class_definition")
	require.NotNil(t, cls)
	assert.Equal(t, "Greeter", a.NodeName(cls, source))

	lam := firstOfKind(root, "lambda")
	require.NotNil(t, lam)
	assert.Equal(t, "f", a.NodeName(lam, source), "lambda name recovered from assignment")
}

func TestPythonAdapter_UnderscoreVisibility(t *testing.T) {
	source := []byte("def _private():\n    pass\n")
	a, root := parseWith(t, "python", source)

	fn := firstOfKind(root, "function_definition")
	require.NotNil(t, fn)
	assert.False(t, a.IsPublic(fn, source))
}

// ---------------------------------------------------------------------------
// TestGoAdapter
// ---------------------------------------------------------------------------

func TestGoAdapter_Extraction(t *testing.T) {
	source := []byte(`package widget

import "fmt"

func Render(w int) string {
	return fmt.Sprintf("%d", w)
}

func helper() {}
`)
	a, root := parseWith(t, "go", source)

	pkg := firstOfKind(root, "package_clause")
	require.NotNil(t, pkg)
	assert.Equal(t, "widget", a.NodeName(pkg, source))

	fns := collectKind(root, "function_declaration")
	require.Len(t, fns, 2)
	assert.Equal(t, "Render", a.NodeName(fns[0], source))
	assert.True(t, a.IsPublic(fns[0], source), "exported identifier")
	assert.Equal(t, "helper", a.NodeName(fns[1], source))
	assert.False(t, a.IsPublic(fns[1], source), "unexported identifier")

	call := firstOfKind(root, "call_expression")
	require.NotNil(t, call)
	assert.Equal(t, "Sprintf", a.NodeName(call, source), "member call yields the member name")
}

// ---------------------------------------------------------------------------
// TestJavaAdapter
// ---------------------------------------------------------------------------

func TestJavaAdapter_Visibility(t *testing.T) {
	source := []byte(`
class Account {
    public int balance() { return 0; }
    private void audit() {}
    void settle() {}
}
`)
	a, root := parseWith(t, "java", source)

	methods := collectKind(root, "method_declaration")
	require.Len(t, methods, 3)

	assert.Equal(t, "balance", a.NodeName(methods[0], source))
	assert.True(t, a.IsPublic(methods[0], source))
	assert.False(t, a.IsPublic(methods[1], source))
	assert.False(t, a.IsPublic(methods[2], source), "package-private defaults to hidden")
}

// ---------------------------------------------------------------------------
// TestCppAdapter
// ---------------------------------------------------------------------------

func TestCppAdapter_Visibility(t *testing.T) {
	source := []byte(`
class Widget {
public:
    int count_;
    int size() const { return count_; }
private:
    int helper();
};

struct Point {
    int x_;
};

namespace util {
int clamp(int v);
}
`)
	a, root := parseWith(t, "cpp", source)

	fields := collectKind(root, "field_declaration")
	require.Len(t, fields, 3)

	assert.True(t, a.IsPublic(fields[0], source),
		"member after public: is public even with a trailing underscore")
	assert.False(t, a.IsPublic(fields[1], source), "member after private:")
	assert.False(t, a.IsPublic(fields[2], source),
		"no specifier, trailing underscore falls back to the naming convention")

	size := firstOfKind(root, "function_definition")
	require.NotNil(t, size)
	assert.True(t, a.IsPublic(size, source), "inline definition after public:")

	clamp := firstOfKind(root, "declaration")
	require.NotNil(t, clamp)
	assert.True(t, a.IsPublic(clamp, source), "namespace scope is public")
}

// ---------------------------------------------------------------------------
// TestJavaScriptAdapter
// ---------------------------------------------------------------------------

func TestJavaScriptAdapter_Extraction(t *testing.T) {
	source := []byte(`
export function visible() {}
const doubler = (x) => x * 2;
class Cart {
  total() { return 0; }
}
`)
	a, root := parseWith(t, "javascript", source)

	fn := firstOfKind(root, "function_declaration")
	require.NotNil(t, fn)
	assert.Equal(t, "visible", a.NodeName(fn, source))
	assert.True(t, a.IsPublic(fn, source), "exported declaration")

	arrow := firstOfKind(root, "arrow_function")
	require.NotNil(t, arrow)
	assert.Equal(t, "doubler", a.NodeName(arrow, source), "arrow name from declarator parent")

	method := firstOfKind(root, "method_definition")
	require.NotNil(t, method)
	assert.Equal(t, "total", a.NodeName(method, source))
}

// ---------------------------------------------------------------------------
// TestMarkdownAdapter
// ---------------------------------------------------------------------------

func TestMarkdownAdapter_Headings(t *testing.T) {
	source := []byte("# Getting Started\n\nSome text with a [guide](https://example.com).\n")
	a, root := parseWith(t, "markdown", source)

	heading := firstOfKind(root, "atx_heading")
	require.NotNil(t, heading)
	name := a.NodeName(heading, source)
	assert.Contains(t, name, "Getting Started")
}

// ---------------------------------------------------------------------------
// TestCSSAdapter
// ---------------------------------------------------------------------------

func TestCSSAdapter_DeclarationProperty(t *testing.T) {
	source := []byte(".btn { color: red; }\n")
	a, root := parseWith(t, "css", source)

	decl := firstOfKind(root, "declaration")
	require.NotNil(t, decl)
	assert.Equal(t, "color", a.NodeName(decl, source))
}

// ---------------------------------------------------------------------------
// TestHTMLAdapter
// ---------------------------------------------------------------------------

func TestHTMLAdapter_TagAndAttribute(t *testing.T) {
	source := []byte(`<div class="panel"><span>hi</span></div>`)
	a, root := parseWith(t, "html", source)

	el := firstOfKind(root, "element")
	require.NotNil(t, el)
	assert.Equal(t, "div", a.NodeName(el, source))

	attr := firstOfKind(root, "attribute")
	require.NotNil(t, attr)
	assert.Equal(t, "class", a.NodeName(attr, source))
}

// ---------------------------------------------------------------------------
// TestUntabledTypes
// ---------------------------------------------------------------------------

func TestUntabledType_IsParserConstruct(t *testing.T) {
	a, err := DefaultRegistry().Create("python")
	require.NoError(t, err)

	assert.Equal(t, semantic.ParserConstruct, a.SemanticType("no_such_node_kind"))
	assert.Equal(t, "PARSER_CONSTRUCT", a.NormalizedType("no_such_node_kind"))
	assert.Equal(t, uint8(0), a.Flags("no_such_node_kind"))
}

// collectKind gathers all nodes of a kind in document order.
func collectKind(node *sitter.Node, kind string) []*sitter.Node {
	var out []*sitter.Node
	if node.Kind() == kind {
		out = append(out, node)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		out = append(out, collectKind(child, kind)...)
	}
	return out
}
