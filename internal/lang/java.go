package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var javaTypes = map[string]NodeConfig{
	// Definitions
	"method_declaration":          {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"constructor_declaration":     {Semantic: semantic.Refine(semantic.DefinitionFunction, semantic.FunctionConstructor), NameStrategy: StrategyFindIdentifier},
	"class_declaration":           {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"interface_declaration":       {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassInterface), NameStrategy: StrategyFindIdentifier},
	"enum_declaration":            {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassEnum), NameStrategy: StrategyFindIdentifier},
	"record_declaration":          {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassStruct), NameStrategy: StrategyFindIdentifier},
	"annotation_type_declaration": {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyFindIdentifier},
	"field_declaration":           {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"local_variable_declaration":  {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"variable_declarator":         {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"formal_parameter":            {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"lambda_expression":           {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},

	// Package and imports
	"package_declaration": {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindQualifiedIdentifier, ValueStrategy: StrategyNodeText},
	"import_declaration":  {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindQualifiedIdentifier, ValueStrategy: StrategyNodeText},

	// Calls and access
	"method_invocation":          {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"object_creation_expression": {Semantic: semantic.Refine(semantic.ComputationCall, semantic.CallRegular), NameStrategy: StrategyFindIdentifier},
	"field_access":               {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"array_access":               {Semantic: semantic.ComputationAccess},
	"method_reference":           {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"identifier":                 {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"scoped_identifier":          {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},
	"type_identifier":            {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
	"generic_type":               {Semantic: semantic.TypeGeneric, NameStrategy: StrategyFindIdentifier},

	// Literals
	"decimal_integer_literal":        {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"hex_integer_literal":            {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"decimal_floating_point_literal": {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string_literal":                 {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"character_literal":              {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"true":                           {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"false":                          {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"null_literal":                   {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"array_initializer":              {Semantic: semantic.LiteralStructured},

	// Flow control
	"if_statement":                 {Semantic: semantic.FlowConditional},
	"ternary_expression":           {Semantic: semantic.FlowConditional},
	"switch_expression":            {Semantic: semantic.FlowConditional},
	"switch_block_statement_group": {Semantic: semantic.PatternMatch},
	"switch_rule":                  {Semantic: semantic.PatternMatch},
	"for_statement":                {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopFor)},
	"enhanced_for_statement":       {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopIterator)},
	"while_statement":              {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"do_statement":                 {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"break_statement":              {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"continue_statement":           {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return_statement":             {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"synchronized_statement":       {Semantic: semantic.FlowSync},

	// Error handling
	"try_statement":                {Semantic: semantic.ErrorTry},
	"try_with_resources_statement": {Semantic: semantic.ErrorTry},
	"catch_clause":                 {Semantic: semantic.ErrorCatch},
	"throw_statement":              {Semantic: semantic.ErrorThrow},
	"finally_clause":               {Semantic: semantic.ErrorFinally},
	"throws":                       {Semantic: semantic.ErrorThrow, Flags: semantic.FlagKeyword},

	// Structure
	"program":              {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"class_body":           {Semantic: semantic.OrganizationBlock},
	"interface_body":       {Semantic: semantic.OrganizationBlock},
	"block":                {Semantic: semantic.OrganizationBlock},
	"expression_statement": {Semantic: semantic.ExecutionStatement},
	"formal_parameters":    {Semantic: semantic.OrganizationList},
	"argument_list":        {Semantic: semantic.OrganizationList},
	"modifiers":            {Semantic: semantic.MetadataAnnotation},
	"annotation":           {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"marker_annotation":    {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyFindIdentifier},
	"line_comment":         {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"block_comment":        {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},

	// Operators
	"binary_expression":     {Semantic: semantic.OperatorArithmetic},
	"unary_expression":      {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"update_expression":     {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"assignment_expression": {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier},
	"instanceof_expression": {Semantic: semantic.OperatorComparison},
	"cast_expression":       {Semantic: semantic.TypeReference},
}

// javaVisible scans declaration text for access modifiers; no modifier means
// package-private.
func javaVisible(node *sitter.Node, source []byte) bool {
	text := node.Utf8Text(source)
	if strings.Contains(text, "private ") || strings.Contains(text, "protected ") {
		return false
	}
	return strings.Contains(text, "public ")
}

func javaFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.Contains(rawType, "declaration") {
		return Extract(StrategyFindIdentifier, node, source)
	}
	return ""
}

func newJavaAdapter() *Adapter {
	return &Adapter{
		name:     "java",
		language: sitter.NewLanguage(tree_sitter_java.Language()),
		types:    javaTypes,
		fallback: javaFallback,
		visible:  javaVisible,
	}
}
