package mcptools

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/dusk-indust/uast/internal/astore"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupServerClient wires an MCP server and client together using in-memory
// transports. It returns the connected client session and the underlying
// ASTService so that tests can inspect state when needed.
func setupServerClient(t *testing.T) (*mcp.ClientSession, *ASTService) {
	t.Helper()

	svc := NewASTService(astore.NewMemStore(), nil)
	server := NewASTMCPServer(svc)

	st, ct := mcp.NewInMemoryTransports()

	ctx := context.Background()

	_, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
	})

	return session, svc
}

// callTool invokes a tool over the session and unmarshals its structured
// content into out.
func callTool(t *testing.T, session *mcp.ClientSession, name string, args, out any) {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "%s should not return an error", name)
	require.NotNil(t, result.StructuredContent, "expected structured content from %s", name)

	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// TestMCPListTools verifies that the MCP server exposes exactly 4 tools with
// the expected names.
func TestMCPListTools(t *testing.T) {
	session, _ := setupServerClient(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	require.Len(t, result.Tools, 4, "expected 4 registered tools")

	names := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		names[i] = tool.Name
	}
	sort.Strings(names)

	expected := []string{
		"parse_ast",
		"parse_files",
		"query_nodes",
		"supported_languages",
	}
	assert.Equal(t, expected, names)
}

// TestMCPParseAST calls the parse_ast tool via the MCP client-server
// transport and checks the returned node list.
func TestMCPParseAST(t *testing.T) {
	session, _ := setupServerClient(t)

	var output ParseASTOutput
	callTool(t, session, "parse_ast", ParseASTInput{
		Content:  "def greet(name):\n    return name\n",
		Language: "python",
	}, &output)

	assert.Equal(t, "python", output.Result.Language)
	require.Greater(t, output.Result.NodeCount, 0)

	found := false
	for _, n := range output.Result.Nodes {
		if n.RawType == "function_definition" && n.Name == "greet" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a function_definition node named 'greet'")
}

// TestMCPSupportedLanguages checks the language and alias tables over the
// wire.
func TestMCPSupportedLanguages(t *testing.T) {
	session, _ := setupServerClient(t)

	var output SupportedLanguagesOutput
	callTool(t, session, "supported_languages", SupportedLanguagesInput{}, &output)

	assert.Len(t, output.Languages, 12)
	assert.Contains(t, output.Languages, "python")
	assert.Equal(t, "go", output.Aliases["golang"])
}

// TestMCPParseFilesThenQuery runs parse_files followed by query_nodes in the
// same session, verifying that results persist in the session store.
func TestMCPParseFilesThenQuery(t *testing.T) {
	session, _ := setupServerClient(t)
	paths := writePythonFixtures(t)

	var parsed ParseFilesOutput
	callTool(t, session, "parse_files", ParseFilesInput{Paths: paths}, &parsed)
	assert.Equal(t, int64(2), parsed.FilesProcessed)

	var queried QueryNodesOutput
	callTool(t, session, "query_nodes", QueryNodesInput{
		SemanticTypes: []string{"DEFINITION_CLASS"},
	}, &queried)

	require.Equal(t, 1, queried.Total)
	assert.Equal(t, "User", queried.Nodes[0].Name)
}

// TestMCPCallUnknownTool verifies that calling a non-existent tool returns an
// error.
func TestMCPCallUnknownTool(t *testing.T) {
	session, _ := setupServerClient(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "nonexistent_tool",
		Arguments: map[string]any{},
	})

	// The MCP SDK may return an error at the protocol level or set IsError on
	// the result. Accept either behavior.
	if err != nil {
		return
	}

	require.NotNil(t, result)
	assert.True(t, result.IsError, "calling an unknown tool should set IsError")
}
