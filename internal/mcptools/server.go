package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewASTMCPServer creates an MCP server with all 4 AST tools registered.
func NewASTMCPServer(svc *ASTService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "uast",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_ast",
		Description: "Parse a source code snippet into a flat AST node list with semantic types, names, locations, and structure. Detail dials (context, location, structure, peek) control which fields are populated.",
	}, svc.ParseAST)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_files",
		Description: "Parse a batch of source files in parallel, detecting each file's language by extension unless one is forced. Results are loaded into the session store for query_nodes.",
	}, svc.ParseFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "supported_languages",
		Description: "List the supported languages and their aliases (e.g. py for python, rs for rust).",
	}, svc.SupportedLanguages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query_nodes",
		Description: "Search nodes previously loaded by parse_files. Filter by semantic type names and a case-insensitive name substring; refined variants of a listed type also match.",
	}, svc.QueryNodes)

	return server
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, svc *ASTService) error {
	return NewASTMCPServer(svc).Run(ctx, &mcp.StdioTransport{})
}

// RunMCPServerHTTP starts an HTTP server exposing the AST MCP tools.
func RunMCPServerHTTP(ctx context.Context, svc *ASTService, addr string) error {
	server := NewASTMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
