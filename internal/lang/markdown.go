package lang

import (
	forest_markdown "github.com/alexaandru/go-sitter-forest/markdown"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dusk-indust/uast/internal/semantic"
)

var markdownTypes = map[string]NodeConfig{
	"document": {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"section":  {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom},

	"atx_heading":    {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"setext_heading": {Semantic: semantic.OrganizationSection, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},

	"paragraph":      {Semantic: semantic.OrganizationBlock, ValueStrategy: StrategyNodeText},
	"inline":         {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"block_quote":    {Semantic: semantic.OrganizationBlock},
	"thematic_break": {Semantic: semantic.OrganizationSection},

	"list":                       {Semantic: semantic.OrganizationList},
	"list_item":                  {Semantic: semantic.OrganizationList, ValueStrategy: StrategyNodeText},
	"task_list_marker_checked":   {Semantic: semantic.LiteralAtomic},
	"task_list_marker_unchecked": {Semantic: semantic.LiteralAtomic},

	"fenced_code_block":   {Semantic: semantic.ExternalEmbed, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"indented_code_block": {Semantic: semantic.ExternalEmbed, ValueStrategy: StrategyNodeText},
	"code_fence_content":  {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"info_string":         {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"language":            {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},

	"link":                      {Semantic: semantic.ExternalImport, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"image":                     {Semantic: semantic.ExternalEmbed, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"link_text":                 {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"link_destination":          {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"link_label":                {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"link_reference_definition": {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"uri_autolink":              {Semantic: semantic.ExternalImport, ValueStrategy: StrategyNodeText},

	"pipe_table":        {Semantic: semantic.OrganizationContainer},
	"pipe_table_header": {Semantic: semantic.OrganizationList},
	"pipe_table_row":    {Semantic: semantic.OrganizationList},
	"pipe_table_cell":   {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},

	"html_block": {Semantic: semantic.ExternalEmbed, ValueStrategy: StrategyNodeText},
}

// markdownCustom names headings and sections by their inline text, links by
// link text, and code fences by the info string.
func markdownCustom(node *sitter.Node, source []byte) string {
	switch node.Kind() {
	case "atx_heading", "setext_heading", "section":
		if inline := findInline(node); inline != nil {
			return inline.Utf8Text(source)
		}
	case "link", "image":
		if t := childOfKind(node, "link_text"); t != nil {
			return t.Utf8Text(source)
		}
	case "fenced_code_block":
		if info := childOfKind(node, "info_string"); info != nil {
			return info.Utf8Text(source)
		}
	case "link_reference_definition":
		if label := childOfKind(node, "link_label"); label != nil {
			return label.Utf8Text(source)
		}
	}
	return ""
}

// findInline locates the inline text under a heading, looking through the
// heading wrapper a section carries.
func findInline(node *sitter.Node) *sitter.Node {
	if inline := childOfKind(node, "inline"); inline != nil {
		return inline
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "atx_heading", "setext_heading":
			if inline := childOfKind(child, "inline"); inline != nil {
				return inline
			}
		}
	}
	return nil
}

func newMarkdownAdapter() *Adapter {
	return &Adapter{
		name:     "markdown",
		aliases:  []string{"md"},
		language: sitter.NewLanguage(forest_markdown.GetLanguage()),
		types:    markdownTypes,
		custom:   markdownCustom,
	}
}
