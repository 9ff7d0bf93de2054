package lang

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var htmlTypes = map[string]NodeConfig{
	"document":               {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"doctype":                {Semantic: semantic.MetadataDirective, ValueStrategy: StrategyNodeText},
	"element":                {Semantic: semantic.OrganizationContainer, NameStrategy: StrategyCustom},
	"script_element":         {Semantic: semantic.ExternalEmbed, NameStrategy: StrategyCustom},
	"style_element":          {Semantic: semantic.ExternalEmbed, NameStrategy: StrategyCustom},
	"start_tag":              {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom},
	"end_tag":                {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom},
	"self_closing_tag":       {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom},
	"tag_name":               {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"attribute":              {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"attribute_name":         {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"attribute_value":        {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"quoted_attribute_value": {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"text":                   {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"raw_text":               {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"comment":                {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"entity":                 {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"erroneous_end_tag":      {Semantic: semantic.ParserSyntax},
}

// htmlCustom names elements and attributes by their tag/attribute name.
func htmlCustom(node *sitter.Node, source []byte) string {
	switch node.Kind() {
	case "element", "script_element", "style_element":
		for i := uint(0); i < node.ChildCount(); i++ {
			child := node.Child(i)
			if child == nil {
				continue
			}
			switch child.Kind() {
			case "start_tag", "self_closing_tag":
				if tag := childOfKind(child, "tag_name"); tag != nil {
					return tag.Utf8Text(source)
				}
			}
		}
	case "start_tag", "end_tag", "self_closing_tag":
		if tag := childOfKind(node, "tag_name"); tag != nil {
			return tag.Utf8Text(source)
		}
	case "attribute":
		if name := childOfKind(node, "attribute_name"); name != nil {
			return name.Utf8Text(source)
		}
	}
	return ""
}

func newHTMLAdapter() *Adapter {
	return &Adapter{
		name:     "html",
		aliases:  []string{"htm"},
		language: sitter.NewLanguage(tree_sitter_html.Language()),
		types:    htmlTypes,
		custom:   htmlCustom,
	}
}
