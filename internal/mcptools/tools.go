package mcptools

import (
	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/astore"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// ParseASTInput is the input for the parse_ast MCP tool.
type ParseASTInput struct {
	Content   string `json:"content" jsonschema:"the source code to parse"`
	Language  string `json:"language" jsonschema:"language name or alias (e.g. python, js, go, cpp)"`
	Context   string `json:"context,omitempty" jsonschema:"semantic detail: none, types, normalized, native (default: normalized)"`
	Location  string `json:"location,omitempty" jsonschema:"location detail: none, input, lines, full (default: full)"`
	Structure string `json:"structure,omitempty" jsonschema:"structure detail: none, minimal, full (default: full)"`
	Peek      string `json:"peek,omitempty" jsonschema:"source peek mode: none, smart, full, custom (default: smart)"`
	PeekSize  int    `json:"peekSize,omitempty" jsonschema:"byte budget per node when peek is custom"`
}

// ParseASTOutput is the result of the parse_ast MCP tool.
type ParseASTOutput struct {
	Result ast.Result `json:"result"`
}

// ParseFilesInput is the input for the parse_files MCP tool.
type ParseFilesInput struct {
	Paths        []string `json:"paths" jsonschema:"file paths to parse"`
	Language     string   `json:"language,omitempty" jsonschema:"force a language for every file instead of detecting by extension"`
	IgnoreErrors bool     `json:"ignoreErrors,omitempty" jsonschema:"skip files that fail to parse instead of aborting the batch"`
	Workers      int      `json:"workers,omitempty" jsonschema:"parallel workers (default: one per CPU, capped at the file count)"`
}

// ParseFilesOutput is the result of the parse_files MCP tool. Parsed nodes
// are loaded into the session store so query_nodes can search them; the tool
// itself returns per-file summaries rather than full node lists.
type ParseFilesOutput struct {
	Files          []astore.FileStat `json:"files"`
	FilesProcessed int64             `json:"filesProcessed"`
	TotalNodes     int64             `json:"totalNodes"`
	Errors         []string          `json:"errors,omitempty"`
}

// SupportedLanguagesInput is the input for the supported_languages MCP tool.
type SupportedLanguagesInput struct{}

// SupportedLanguagesOutput is the result of the supported_languages MCP tool.
type SupportedLanguagesOutput struct {
	Languages []string          `json:"languages"`
	Aliases   map[string]string `json:"aliases"`
}

// QueryNodesInput is the input for the query_nodes MCP tool.
type QueryNodesInput struct {
	SemanticTypes []string `json:"semanticTypes,omitempty" jsonschema:"semantic type names to match (e.g. DEFINITION_FUNCTION, COMPUTATION_CALL); refined variants of a listed type also match"`
	NameContains  string   `json:"nameContains,omitempty" jsonschema:"case-insensitive substring match on node names"`
	Limit         int      `json:"limit,omitempty" jsonschema:"maximum number of results (default: 50)"`
}

// QueryNodesOutput is the result of the query_nodes MCP tool.
type QueryNodesOutput struct {
	Nodes []astore.NodeRecord `json:"nodes"`
	Total int                 `json:"total"`
}
