package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/uast/internal/lang"
)

// extLanguages maps file extensions to canonical language names.
var extLanguages = map[string]string{
	".py":       "python",
	".pyi":      "python",
	".js":       "javascript",
	".mjs":      "javascript",
	".cjs":      "javascript",
	".jsx":      "javascript",
	".ts":       "typescript",
	".go":       "go",
	".rb":       "ruby",
	".rake":     "ruby",
	".java":     "java",
	".cpp":      "cpp",
	".cc":       "cpp",
	".cxx":      "cpp",
	".hpp":      "cpp",
	".hh":       "cpp",
	".rs":       "rust",
	".sql":      "sql",
	".html":     "html",
	".htm":      "html",
	".css":      "css",
	".md":       "markdown",
	".markdown": "markdown",
}

// DetectLanguage infers the language from the file extension.
func DetectLanguage(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if language, ok := extLanguages[ext]; ok {
		return language, nil
	}
	return "", fmt.Errorf("%w: cannot detect language of %q", lang.ErrUnsupportedLanguage, path)
}
