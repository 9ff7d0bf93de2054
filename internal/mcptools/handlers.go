package mcptools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/astore"
	"github.com/dusk-indust/uast/internal/batch"
	"github.com/dusk-indust/uast/internal/lang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ASTService holds the language registry, batch coordinator, and node store
// used by MCP tool handlers.
type ASTService struct {
	registry    *lang.Registry
	coordinator *batch.Coordinator
	store       astore.Store
}

// NewASTService creates an ASTService backed by the given store. A nil logger
// silences coordinator diagnostics.
func NewASTService(store astore.Store, logger *slog.Logger) *ASTService {
	registry := lang.DefaultRegistry()
	return &ASTService{
		registry:    registry,
		coordinator: batch.NewCoordinator(registry, logger),
		store:       store,
	}
}

// extractionConfig builds an ExtractionConfig from the optional detail level
// strings of a parse_ast request. Empty fields keep their defaults.
func extractionConfig(input ParseASTInput) (ast.ExtractionConfig, error) {
	cfg := ast.DefaultConfig()

	if input.Context != "" {
		level, err := ast.ParseContextLevel(input.Context)
		if err != nil {
			return cfg, err
		}
		cfg.Context = level
	}
	if input.Location != "" {
		level, err := ast.ParseLocationLevel(input.Location)
		if err != nil {
			return cfg, err
		}
		cfg.Location = level
	}
	if input.Structure != "" {
		level, err := ast.ParseStructureLevel(input.Structure)
		if err != nil {
			return cfg, err
		}
		cfg.Structure = level
	}
	if input.Peek != "" {
		level, err := ast.ParsePeekLevel(input.Peek)
		if err != nil {
			return cfg, err
		}
		cfg.Peek = level
	}
	cfg.PeekSize = input.PeekSize

	return cfg, nil
}

// ParseAST parses a single source snippet and returns its full node list.
func (s *ASTService) ParseAST(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseASTInput,
) (*mcp.CallToolResult, ParseASTOutput, error) {
	if input.Content == "" {
		return nil, ParseASTOutput{}, fmt.Errorf("content is required")
	}
	if input.Language == "" {
		return nil, ParseASTOutput{}, fmt.Errorf("language is required")
	}

	cfg, err := extractionConfig(input)
	if err != nil {
		return nil, ParseASTOutput{}, err
	}

	adapter, err := s.registry.Create(input.Language)
	if err != nil {
		return nil, ParseASTOutput{}, err
	}

	result, err := ast.Parse(ast.InlinePath, []byte(input.Content), adapter, cfg)
	if err != nil {
		return nil, ParseASTOutput{}, fmt.Errorf("parse: %w", err)
	}

	return nil, ParseASTOutput{Result: *result}, nil
}

// ParseFiles parses a batch of files in parallel and loads every result into
// the session store so query_nodes can search them.
func (s *ASTService) ParseFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseFilesInput,
) (*mcp.CallToolResult, ParseFilesOutput, error) {
	if len(input.Paths) == 0 {
		return nil, ParseFilesOutput{}, fmt.Errorf("paths is required")
	}

	collection, err := s.coordinator.ParseFiles(ctx, input.Paths, batch.Options{
		Workers:      input.Workers,
		IgnoreErrors: input.IgnoreErrors,
		Language:     input.Language,
		Config:       ast.DefaultConfig(),
	})
	if err != nil {
		return nil, ParseFilesOutput{}, err
	}

	if err := s.store.InitSchema(ctx); err != nil {
		return nil, ParseFilesOutput{}, fmt.Errorf("init schema: %w", err)
	}

	files := make([]astore.FileStat, 0, len(collection.Results))
	for _, result := range collection.Results {
		if err := s.store.AddResult(ctx, result); err != nil {
			return nil, ParseFilesOutput{}, fmt.Errorf("store %s: %w", result.FilePath, err)
		}
		files = append(files, astore.FileStat{
			Path:      result.FilePath,
			Language:  result.Language,
			NodeCount: result.NodeCount,
			MaxDepth:  result.MaxDepth,
		})
	}

	return nil, ParseFilesOutput{
		Files:          files,
		FilesProcessed: collection.FilesProcessed,
		TotalNodes:     collection.TotalNodes,
		Errors:         collection.Errors,
	}, nil
}

// SupportedLanguages lists every registered language and the alias table.
func (s *ASTService) SupportedLanguages(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SupportedLanguagesInput,
) (*mcp.CallToolResult, SupportedLanguagesOutput, error) {
	return nil, SupportedLanguagesOutput{
		Languages: s.registry.SupportedLanguages(),
		Aliases:   s.registry.Aliases(),
	}, nil
}

// QueryNodes searches the session store by semantic type and name substring.
func (s *ASTService) QueryNodes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryNodesInput,
) (*mcp.CallToolResult, QueryNodesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}

	nodes, err := s.store.QueryNodes(ctx, astore.Query{
		SemanticTypes: input.SemanticTypes,
		NameContains:  input.NameContains,
		Limit:         limit,
	})
	if err != nil {
		return nil, QueryNodesOutput{}, fmt.Errorf("query nodes: %w", err)
	}

	return nil, QueryNodesOutput{Nodes: nodes, Total: len(nodes)}, nil
}
