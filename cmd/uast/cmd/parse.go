package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dusk-indust/uast/internal/ast"
	"github.com/dusk-indust/uast/internal/batch"
	"github.com/dusk-indust/uast/internal/config"
	"github.com/dusk-indust/uast/internal/lang"
	"github.com/spf13/cobra"
)

var parseFlags struct {
	Language     string
	Context      string
	Location     string
	Structure    string
	Peek         string
	PeekSize     int
	Workers      int
	IgnoreErrors bool
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>...",
	Short: "Parse source files into normalized AST node lists (JSON)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

// extractionConfig merges the project config with any detail level flags set
// on the command line. Flags win over the config file.
func extractionConfig(cmd *cobra.Command, cfg config.ProjectConfig) (ast.ExtractionConfig, error) {
	flags := cmd.Flags()
	if flags.Changed("context") {
		cfg.Context = parseFlags.Context
	}
	if flags.Changed("location") {
		cfg.Location = parseFlags.Location
	}
	if flags.Changed("structure") {
		cfg.Structure = parseFlags.Structure
	}
	if flags.Changed("peek") {
		cfg.Peek = parseFlags.Peek
	}
	if flags.Changed("peek-size") {
		cfg.PeekSize = parseFlags.PeekSize
	}
	return cfg.ExtractionConfig()
}

// batchOptions merges the project config with batch flags.
func batchOptions(cmd *cobra.Command, cfg config.ProjectConfig, extraction ast.ExtractionConfig) batch.Options {
	opts := batch.Options{
		Workers:      cfg.Workers,
		IgnoreErrors: cfg.IgnoreErrors,
		Language:     cfg.Language,
		Config:       extraction,
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		opts.Workers = parseFlags.Workers
	}
	if flags.Changed("ignore-errors") {
		opts.IgnoreErrors = parseFlags.IgnoreErrors
	}
	if flags.Changed("language") {
		opts.Language = parseFlags.Language
	}
	return opts
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := projectConfig()

	extraction, err := extractionConfig(cmd, cfg)
	if err != nil {
		return err
	}

	coordinator := batch.NewCoordinator(lang.DefaultRegistry(), slog.Default())
	collection, err := coordinator.ParseFiles(cmd.Context(), args, batchOptions(cmd, cfg, extraction))
	if err != nil {
		return err
	}

	for _, diag := range collection.Errors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", diag)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(collection.Results)
}

func init() {
	flags := parseCmd.Flags()
	flags.StringVarP(&parseFlags.Language, "language", "l", "", "force a language instead of detecting by extension")
	flags.StringVar(&parseFlags.Context, "context", "", "semantic detail: none, types, normalized, native")
	flags.StringVar(&parseFlags.Location, "location", "", "location detail: none, input, lines, full")
	flags.StringVar(&parseFlags.Structure, "structure", "", "structure detail: none, minimal, full")
	flags.StringVar(&parseFlags.Peek, "peek", "", "source peek mode: none, smart, full, custom")
	flags.IntVar(&parseFlags.PeekSize, "peek-size", 0, "byte budget per node when --peek=custom")
	flags.IntVar(&parseFlags.Workers, "workers", 0, "parallel workers (default: one per CPU)")
	flags.BoolVar(&parseFlags.IgnoreErrors, "ignore-errors", false, "skip files that fail to parse")
}
