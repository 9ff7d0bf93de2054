package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var javascriptTypes = map[string]NodeConfig{
	// Definitions
	"function_declaration":           {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"function_expression":            {Semantic: semantic.Refine(semantic.DefinitionFunction, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"arrow_function":                 {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"generator_function_declaration": {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"method_definition":              {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindProperty},
	"class_declaration":              {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"class":                          {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"variable_declarator":            {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"lexical_declaration":            {Semantic: semantic.ExecutionDeclaration, NameStrategy: StrategyFindIdentifier},
	"variable_declaration":           {Semantic: semantic.ExecutionDeclaration, NameStrategy: StrategyFindIdentifier},
	"field_definition":               {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindProperty},

	// Imports / exports
	"import_statement": {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"import_specifier": {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindIdentifier},
	"export_statement": {Semantic: semantic.ExternalExport, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"export_specifier": {Semantic: semantic.ExternalExport, NameStrategy: StrategyFindIdentifier},

	// Calls and access
	"call_expression":               {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"new_expression":                {Semantic: semantic.Refine(semantic.ComputationCall, semantic.CallRegular), NameStrategy: StrategyFindIdentifier},
	"member_expression":             {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"subscript_expression":          {Semantic: semantic.ComputationAccess},
	"identifier":                    {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"property_identifier":           {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"shorthand_property_identifier": {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},

	// Literals
	"number":          {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string":          {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"template_string": {Semantic: semantic.PatternTemplate, ValueStrategy: StrategyNodeText},
	"regex":           {Semantic: semantic.PatternMatch, ValueStrategy: StrategyNodeText},
	"true":            {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"false":           {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"null":            {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"undefined":       {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"array":           {Semantic: semantic.LiteralStructured},
	"object":          {Semantic: semantic.LiteralStructured},

	// Flow control
	"if_statement":       {Semantic: semantic.FlowConditional},
	"ternary_expression": {Semantic: semantic.FlowConditional},
	"switch_statement":   {Semantic: semantic.FlowConditional},
	"switch_case":        {Semantic: semantic.PatternMatch},
	"for_statement":      {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopFor)},
	"for_in_statement":   {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopIterator)},
	"while_statement":    {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"do_statement":       {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"break_statement":    {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"continue_statement": {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return_statement":   {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"yield_expression":   {Semantic: semantic.FlowJump},
	"await_expression":   {Semantic: semantic.FlowSync},

	// Error handling
	"try_statement":   {Semantic: semantic.ErrorTry},
	"catch_clause":    {Semantic: semantic.ErrorCatch},
	"throw_statement": {Semantic: semantic.ErrorThrow},
	"finally_clause":  {Semantic: semantic.ErrorFinally},

	// Structure
	"program":              {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"statement_block":      {Semantic: semantic.OrganizationBlock},
	"expression_statement": {Semantic: semantic.ExecutionStatement},
	"formal_parameters":    {Semantic: semantic.OrganizationList},
	"arguments":            {Semantic: semantic.OrganizationList},
	"comment":              {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"pair":                 {Semantic: semantic.ComputationExpression, NameStrategy: StrategyFindProperty},
	"spread_element":       {Semantic: semantic.PatternDestructure},
	"object_pattern":       {Semantic: semantic.PatternDestructure},
	"array_pattern":        {Semantic: semantic.PatternDestructure},

	// Operators
	"binary_expression":               {Semantic: semantic.OperatorArithmetic},
	"logical_expression":              {Semantic: semantic.OperatorLogical},
	"unary_expression":                {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"update_expression":               {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"assignment_expression":           {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier},
	"augmented_assignment_expression": {Semantic: semantic.Refine(semantic.OperatorAssignment, semantic.OperatorCompound)},
}

// jsVisible treats exported and non-underscore names as public.
func jsVisible(node *sitter.Node, source []byte) bool {
	if strings.Contains(node.Kind(), "export") {
		return true
	}
	if parent := node.Parent(); parent != nil && strings.Contains(parent.Kind(), "export") {
		return true
	}
	name := Extract(StrategyFindIdentifier, node, source)
	if name != "" && name[0] == '_' {
		return false
	}
	return true
}

func jsFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.Contains(rawType, "declaration") {
		return Extract(StrategyFindIdentifier, node, source)
	}
	return ""
}

func newJavaScriptAdapter() *Adapter {
	return &Adapter{
		name:     "javascript",
		aliases:  []string{"js"},
		language: sitter.NewLanguage(tree_sitter_javascript.Language()),
		types:    javascriptTypes,
		fallback: jsFallback,
		visible:  jsVisible,
	}
}
