package lang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var goTypes = map[string]NodeConfig{
	// Definitions
	"function_declaration":  {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"method_declaration":    {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"func_literal":          {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"type_declaration":      {Semantic: semantic.ExecutionDeclaration, NameStrategy: StrategyFindIdentifier},
	"type_spec":             {Semantic: semantic.TypeComposite, NameStrategy: StrategyFindIdentifier},
	"struct_type":           {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassStruct)},
	"interface_type":        {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassInterface)},
	"var_declaration":       {Semantic: semantic.ExecutionDeclaration, NameStrategy: StrategyFindIdentifier},
	"var_spec":              {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"const_declaration":     {Semantic: semantic.ExecutionDeclaration, NameStrategy: StrategyFindIdentifier},
	"const_spec":            {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"short_var_declaration": {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"field_declaration":     {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"parameter_declaration": {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},

	// Package and imports
	"package_clause":     {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindIdentifier},
	"package_identifier": {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"import_declaration": {Semantic: semantic.ExternalImport, ValueStrategy: StrategyNodeText},
	"import_spec":        {Semantic: semantic.ExternalImport, NameStrategy: StrategyFirstChild, ValueStrategy: StrategyNodeText},

	// Calls and access
	"call_expression":     {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"selector_expression": {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"index_expression":    {Semantic: semantic.ComputationAccess},
	"identifier":          {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"field_identifier":    {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"type_identifier":     {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
	"qualified_type":      {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},

	// Literals
	"int_literal":                {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"float_literal":              {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"imaginary_literal":          {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"rune_literal":               {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"interpreted_string_literal": {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"raw_string_literal":         {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"true":                       {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"false":                      {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"nil":                        {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"composite_literal":          {Semantic: semantic.LiteralStructured},

	// Flow control
	"if_statement":                {Semantic: semantic.FlowConditional},
	"expression_switch_statement": {Semantic: semantic.FlowConditional},
	"type_switch_statement":       {Semantic: semantic.FlowConditional},
	"expression_case":             {Semantic: semantic.PatternMatch},
	"type_case":                   {Semantic: semantic.PatternMatch},
	"for_statement":               {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopFor)},
	"range_clause":                {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopIterator)},
	"break_statement":             {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"continue_statement":          {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return_statement":            {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"goto_statement":              {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"go_statement":                {Semantic: semantic.FlowSync},
	"select_statement":            {Semantic: semantic.FlowSync},
	"send_statement":              {Semantic: semantic.FlowSync},
	"defer_statement":             {Semantic: semantic.FlowSync},

	// Error handling is by convention; panic/recover surface as calls.

	// Structure
	"source_file":            {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"block":                  {Semantic: semantic.OrganizationBlock},
	"expression_statement":   {Semantic: semantic.ExecutionStatement},
	"parameter_list":         {Semantic: semantic.OrganizationList},
	"argument_list":          {Semantic: semantic.OrganizationList},
	"field_declaration_list": {Semantic: semantic.OrganizationList},
	"comment":                {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},

	// Operators
	"binary_expression":    {Semantic: semantic.OperatorArithmetic},
	"unary_expression":     {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"assignment_statement": {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier},
	"inc_statement":        {Semantic: semantic.ExecutionMutation},
	"dec_statement":        {Semantic: semantic.ExecutionMutation},
}

// goVisible follows the exported-identifier rule: an upper-case first letter
// is public.
func goVisible(node *sitter.Node, source []byte) bool {
	name := Extract(StrategyFindIdentifier, node, source)
	if name == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func goFallback(node *sitter.Node, source []byte, rawType string) string {
	if rawType == "package_clause" {
		if child := childOfKind(node, "package_identifier"); child != nil {
			return child.Utf8Text(source)
		}
		return ""
	}
	if strings.Contains(rawType, "declaration") || strings.HasSuffix(rawType, "_spec") {
		return Extract(StrategyFindIdentifier, node, source)
	}
	return ""
}

func newGoAdapter() *Adapter {
	return &Adapter{
		name:     "go",
		aliases:  []string{"golang"},
		language: sitter.NewLanguage(tree_sitter_go.Language()),
		types:    goTypes,
		fallback: goFallback,
		visible:  goVisible,
	}
}
