package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var cssTypes = map[string]NodeConfig{
	"stylesheet":              {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"rule_set":                {Semantic: semantic.OrganizationSection, NameStrategy: StrategyFirstChild},
	"selectors":               {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},
	"class_selector":          {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},
	"id_selector":             {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},
	"tag_name":                {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"universal_selector":      {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},
	"pseudo_class_selector":   {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},
	"pseudo_element_selector": {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},
	"attribute_selector":      {Semantic: semantic.PatternMatch, NameStrategy: StrategyNodeText},

	"block":         {Semantic: semantic.OrganizationBlock},
	"declaration":   {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"property_name": {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"plain_value":   {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"integer_value": {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"float_value":   {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string_value":  {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"color_value":   {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"unit":          {Semantic: semantic.TypePrimitive, NameStrategy: StrategyNodeText},

	"call_expression":   {Semantic: semantic.ComputationCall, NameStrategy: StrategyCustom},
	"function_name":     {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"arguments":         {Semantic: semantic.OrganizationList},
	"binary_expression": {Semantic: semantic.OperatorArithmetic},

	"at_rule":             {Semantic: semantic.MetadataDirective, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"media_statement":     {Semantic: semantic.MetadataDirective, NameStrategy: StrategyCustom},
	"import_statement":    {Semantic: semantic.ExternalImport, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"charset_statement":   {Semantic: semantic.MetadataDirective, NameStrategy: StrategyCustom},
	"keyframes_statement": {Semantic: semantic.MetadataDirective, NameStrategy: StrategyFindIdentifier},
	"keyframe_block":      {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom},
	"supports_statement":  {Semantic: semantic.MetadataDirective},
	"namespace_statement": {Semantic: semantic.MetadataDirective},

	"comment": {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
}

// cssCustom names declarations by property, calls by function name, and
// at-rules by keyword.
func cssCustom(node *sitter.Node, source []byte) string {
	switch node.Kind() {
	case "declaration":
		if p := childOfKind(node, "property_name"); p != nil {
			return p.Utf8Text(source)
		}
	case "call_expression":
		if f := childOfKind(node, "function_name"); f != nil {
			return f.Utf8Text(source)
		}
	case "at_rule", "media_statement", "charset_statement", "import_statement":
		if kw := childOfKind(node, "at_keyword"); kw != nil {
			return kw.Utf8Text(source)
		}
		if s := childOfKind(node, "string_value"); s != nil {
			return s.Utf8Text(source)
		}
	case "keyframe_block":
		for _, kind := range []string{"integer_value", "from", "to"} {
			if c := childOfKind(node, kind); c != nil {
				return c.Utf8Text(source)
			}
		}
	}
	return ""
}

func newCSSAdapter() *Adapter {
	return &Adapter{
		name:     "css",
		language: sitter.NewLanguage(tree_sitter_css.Language()),
		types:    cssTypes,
		custom:   cssCustom,
	}
}
