package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dusk-indust/uast/internal/config"
	"github.com/spf13/cobra"
)

// version is set by the linker at build time.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "uast",
	Short:   "Normalized ASTs for a dozen languages",
	Long:    "Parse source code with tree-sitter into a flat node list carrying a language-agnostic semantic taxonomy, extracted names, and tunable detail levels.",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose || projectConfig().Verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// projectConfig loads uast.yml from the working directory. A missing file
// yields the zero config.
func projectConfig() config.ProjectConfig {
	dir, err := os.Getwd()
	if err != nil {
		return config.ProjectConfig{}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return config.ProjectConfig{}
	}
	return *cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(mcpCmd)
}
