package cmd

import (
	"fmt"
	"log/slog"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/astore"
	"github.com/dusk-indust/uast/internal/batch"
	"github.com/dusk-indust/uast/internal/lang"
	"github.com/spf13/cobra"
)

var indexFlags struct {
	DB           string
	Language     string
	Workers      int
	IgnoreErrors bool
}

// defaultIndexPath is used when neither --db nor the config file name one.
const defaultIndexPath = ".uast/index"

var indexCmd = &cobra.Command{
	Use:   "index --db <dir> <file>...",
	Short: "Parse files and persist their nodes to a queryable database",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := projectConfig()

	dbPath := indexFlags.DB
	if !cmd.Flags().Changed("db") && cfg.DatabasePath != "" {
		dbPath = cfg.DatabasePath
	}

	opts := batch.Options{
		Workers:      indexFlags.Workers,
		IgnoreErrors: indexFlags.IgnoreErrors,
		Language:     indexFlags.Language,
		Config:       ast.DefaultConfig(),
	}

	coordinator := batch.NewCoordinator(lang.DefaultRegistry(), slog.Default())
	collection, err := coordinator.ParseFiles(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	for _, diag := range collection.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", diag)
	}

	store, err := astore.NewKuzuFileStore(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	for _, result := range collection.Results {
		if err := store.AddResult(ctx, result); err != nil {
			return fmt.Errorf("store %s: %w", result.FilePath, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d files (%d nodes) into %s\n",
		collection.FilesProcessed-collection.ErrorCount, collection.TotalNodes, dbPath)
	return nil
}

func init() {
	flags := indexCmd.Flags()
	flags.StringVar(&indexFlags.DB, "db", defaultIndexPath, "database directory")
	flags.StringVarP(&indexFlags.Language, "language", "l", "", "force a language instead of detecting by extension")
	flags.IntVar(&indexFlags.Workers, "workers", 0, "parallel workers (default: one per CPU)")
	flags.BoolVar(&indexFlags.IgnoreErrors, "ignore-errors", false, "skip files that fail to parse")
}
