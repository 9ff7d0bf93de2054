// uast parses source code in a dozen languages into a flat, normalized
// AST with a language-agnostic semantic taxonomy.
package main

import (
	"os"

	"github.com/dusk-indust/uast/cmd/uast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
