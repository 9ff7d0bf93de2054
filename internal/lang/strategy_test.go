package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/uast/internal/semantic"
)

// ---------------------------------------------------------------------------
// TestRecoverDeclaratorName
// ---------------------------------------------------------------------------

func TestRecoverDeclaratorName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"void frobnicate(int x)", "frobnicate"},
		{"Widget::render(int w)", "render"},
		{"int *deref(char c)", "deref"},
		{"std::string Widget::name() const", "name"},
		{"~Widget()", "~Widget"},
		{"operator+(int)", "operator+"}, // only the first char is validated
		{"", ""},
		{"(int x)", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, recoverDeclaratorName(tc.in), "input %q", tc.in)
	}
}

func TestLooksLikeIdentifier(t *testing.T) {
	assert.True(t, looksLikeIdentifier("name"))
	assert.True(t, looksLikeIdentifier("_private"))
	assert.True(t, looksLikeIdentifier("~Dtor"))
	assert.False(t, looksLikeIdentifier(""))
	assert.False(t, looksLikeIdentifier("42abc"))
	assert.False(t, looksLikeIdentifier("+"))
}

// ---------------------------------------------------------------------------
// TestStrategies_AgainstParsedTrees
// ---------------------------------------------------------------------------

func TestStrategyNodeTextAndFirstChild(t *testing.T) {
	source := []byte("x = 42\n")
	_, root := parseWith(t, "python", source)

	assign := firstOfKind(root, "assignment")
	require.NotNil(t, assign)

	assert.Equal(t, "x = 42", Extract(StrategyNodeText, assign, source))
	assert.Equal(t, "x", Extract(StrategyFirstChild, assign, source))
	assert.Equal(t, "", Extract(StrategyNone, assign, source))
}

func TestStrategyFindIdentifier_FallbackOrder(t *testing.T) {
	source := []byte("def compute():\n    pass\n")
	_, root := parseWith(t, "python", source)

	fn := firstOfKind(root, "function_definition")
	require.NotNil(t, fn)
	assert.Equal(t, "compute", Extract(StrategyFindIdentifier, fn, source))
}

func TestStrategyFindCallTarget(t *testing.T) {
	source := []byte("obj.method()\nplain()\n")
	_, root := parseWith(t, "python", source)

	calls := collectKind(root, "call")
	require.Len(t, calls, 2)

	assert.Equal(t, "method", Extract(StrategyFindCallTarget, calls[0], source),
		"member call yields rightmost segment")
	assert.Equal(t, "plain", Extract(StrategyFindCallTarget, calls[1], source))
}

func TestStrategyFindQualifiedIdentifier(t *testing.T) {
	source := []byte("void Widget::render() {}\n")
	_, root := parseWith(t, "cpp", source)

	decl := firstOfKind(root, "function_declarator")
	require.NotNil(t, decl)
	assert.Equal(t, "render", Extract(StrategyFindQualifiedIdentifier, decl, source),
		"qualified name yields last segment")
}

func TestStrategyTotality_NilNode(t *testing.T) {
	// Every strategy returns "" on nil input, never panics.
	strategies := []Strategy{
		StrategyNone, StrategyNodeText, StrategyFirstChild,
		StrategyFindIdentifier, StrategyFindProperty,
		StrategyFindAssignmentTarget, StrategyFindQualifiedIdentifier,
		StrategyFindInDeclarator, StrategyFindCallTarget, StrategyCustom,
	}
	for _, s := range strategies {
		assert.Equal(t, "", Extract(s, nil, nil), "strategy %d", s)
	}
}

// ---------------------------------------------------------------------------
// TestCppCustom_FunctionDefinition
// ---------------------------------------------------------------------------

func TestCppCustom_FunctionDefinition(t *testing.T) {
	source := []byte(`
int add(int a, int b) { return a + b; }
void Widget::render() {}
`)
	a, root := parseWith(t, "cpp", source)

	defs := collectKind(root, "function_definition")
	require.Len(t, defs, 2)
	assert.Equal(t, "add", a.NodeName(defs[0], source))
	assert.Equal(t, "render", a.NodeName(defs[1], source), "method name without class qualifier")
	assert.Equal(t, semantic.DefinitionFunction, a.SemanticType(defs[0].Kind()))
}
