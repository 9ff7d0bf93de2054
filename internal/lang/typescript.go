package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

// typescriptTypes extends the JavaScript table with type-level constructs.
var typescriptTypes = func() map[string]NodeConfig {
	m := make(map[string]NodeConfig, len(javascriptTypes)+24)
	for k, v := range javascriptTypes {
		m[k] = v
	}
	for k, v := range map[string]NodeConfig{
		"interface_declaration":      {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassInterface), NameStrategy: StrategyFindIdentifier},
		"type_alias_declaration":     {Semantic: semantic.TypeComposite, NameStrategy: StrategyFindIdentifier},
		"enum_declaration":           {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassEnum), NameStrategy: StrategyFindIdentifier},
		"abstract_class_declaration": {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
		"module_declaration":         {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindIdentifier},
		"internal_module":            {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindIdentifier},
		"ambient_declaration":        {Semantic: semantic.ExecutionDeclaration},
		"function_signature":         {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
		"method_signature":           {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindProperty},
		"property_signature":         {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindProperty},
		"public_field_definition":    {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindProperty},
		"type_identifier":            {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
		"predefined_type":            {Semantic: semantic.TypePrimitive, NameStrategy: StrategyNodeText},
		"generic_type":               {Semantic: semantic.TypeGeneric, NameStrategy: StrategyFindIdentifier},
		"type_parameters":            {Semantic: semantic.TypeGeneric},
		"type_arguments":             {Semantic: semantic.TypeGeneric},
		"type_annotation":            {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
		"union_type":                 {Semantic: semantic.TypeComposite},
		"intersection_type":          {Semantic: semantic.TypeComposite},
		"object_type":                {Semantic: semantic.TypeComposite},
		"as_expression":              {Semantic: semantic.TypeReference},
		"satisfies_expression":       {Semantic: semantic.TypeReference},
		"decorator":                  {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
		"non_null_expression":        {Semantic: semantic.ComputationExpression},
	} {
		m[k] = v
	}
	return m
}()

// tsVisible extends the JavaScript heuristic with accessibility modifiers.
func tsVisible(node *sitter.Node, source []byte) bool {
	text := node.Utf8Text(source)
	if strings.Contains(text, "private ") || strings.Contains(text, "protected ") {
		return false
	}
	return jsVisible(node, source)
}

func newTypeScriptAdapter() *Adapter {
	return &Adapter{
		name:     "typescript",
		aliases:  []string{"ts"},
		language: sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
		types:    typescriptTypes,
		fallback: jsFallback,
		visible:  tsVisible,
	}
}
