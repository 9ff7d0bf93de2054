package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/uast/internal/lang"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their aliases",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	registry := lang.DefaultRegistry()

	// Invert the alias table so each language lists its aliases.
	byLanguage := make(map[string][]string)
	for alias, name := range registry.Aliases() {
		byLanguage[name] = append(byLanguage[name], alias)
	}

	for _, name := range registry.SupportedLanguages() {
		aliases := byLanguage[name]
		if len(aliases) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), name)
			continue
		}
		sort.Strings(aliases)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", name, strings.Join(aliases, ", "))
	}
	return nil
}
