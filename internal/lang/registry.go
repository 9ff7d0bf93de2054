package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps language names and aliases to adapter factories. Every
// Create call returns a brand-new adapter; adapters are never cached or
// shared, which keeps parser state isolated per use.
type Registry struct {
	factories map[string]func() *Adapter
	aliases   map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func() *Adapter),
		aliases:   make(map[string]string),
	}
}

// Register adds a language factory. It constructs one throwaway adapter and
// parser as a sanity check; a grammar that cannot build a parser is an
// internal inconsistency and fails registration outright.
func (r *Registry) Register(factory func() *Adapter) error {
	probe := factory()
	if probe == nil {
		return fmt.Errorf("adapter factory returned nil")
	}
	name := probe.Name()
	if name == "" {
		return fmt.Errorf("adapter has no canonical name")
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("language %q already registered", name)
	}
	p, err := probe.NewParser()
	if err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}
	p.Close()

	r.factories[name] = factory
	for _, alias := range probe.Aliases() {
		r.aliases[alias] = name
	}
	return nil
}

// Resolve maps a name or alias (case-insensitive) to the canonical language
// name.
func (r *Registry) Resolve(language string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(language))
	if _, ok := r.factories[name]; ok {
		return name, nil
	}
	if canonical, ok := r.aliases[name]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: %q (supported: %s)",
		ErrUnsupportedLanguage, language, strings.Join(r.SupportedLanguages(), ", "))
}

// Create returns a fresh adapter for the given language name or alias.
func (r *Registry) Create(language string) (*Adapter, error) {
	canonical, err := r.Resolve(language)
	if err != nil {
		return nil, err
	}
	return r.factories[canonical](), nil
}

// SupportedLanguages returns the canonical names in sorted order.
func (r *Registry) SupportedLanguages() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns a copy of the alias table (alias → canonical name).
func (r *Registry) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for alias, canonical := range r.aliases {
		out[alias] = canonical
	}
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry with all built-in
// languages registered. Registration failures here mean a grammar binding is
// broken at build time, so they panic rather than limp along.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, factory := range builtinFactories {
			if err := defaultRegistry.Register(factory); err != nil {
				panic(fmt.Sprintf("lang: registering built-in language: %v", err))
			}
		}
	})
	return defaultRegistry
}

// builtinFactories lists every built-in language adapter.
var builtinFactories = []func() *Adapter{
	newPythonAdapter,
	newJavaScriptAdapter,
	newTypeScriptAdapter,
	newGoAdapter,
	newRubyAdapter,
	newJavaAdapter,
	newCppAdapter,
	newRustAdapter,
	newSQLAdapter,
	newHTMLAdapter,
	newCSSAdapter,
	newMarkdownAdapter,
}
