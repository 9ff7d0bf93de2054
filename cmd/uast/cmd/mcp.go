package cmd

import (
	"fmt"
	"log/slog"

	"github.com/dusk-indust/uast/internal/astore"
	"github.com/dusk-indust/uast/internal/mcptools"
	"github.com/spf13/cobra"
)

var mcpFlags struct {
	DB   string
	HTTP string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the AST tools over the Model Context Protocol (stdio)",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	var store astore.Store
	if mcpFlags.DB != "" {
		kuzu, err := astore.NewKuzuFileStore(mcpFlags.DB)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		store = kuzu
	} else {
		store = astore.NewMemStore()
	}
	defer store.Close()

	svc := mcptools.NewASTService(store, slog.Default())

	if mcpFlags.HTTP != "" {
		slog.Info("serving MCP over HTTP", "addr", mcpFlags.HTTP)
		return mcptools.RunMCPServerHTTP(cmd.Context(), svc, mcpFlags.HTTP)
	}
	return mcptools.RunMCPServerStdio(cmd.Context(), svc)
}

func init() {
	flags := mcpCmd.Flags()
	flags.StringVar(&mcpFlags.DB, "db", "", "back query_nodes with a persistent database instead of memory")
	flags.StringVar(&mcpFlags.HTTP, "http", "", "serve over HTTP on this address instead of stdio")
}
