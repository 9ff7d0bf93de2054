package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var rustTypes = map[string]NodeConfig{
	// Definitions
	"function_item":           {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"function_signature_item": {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"closure_expression":      {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"struct_item":             {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassStruct), NameStrategy: StrategyFindIdentifier},
	"enum_item":               {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassEnum), NameStrategy: StrategyFindIdentifier},
	"union_item":              {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassStruct), NameStrategy: StrategyFindIdentifier},
	"trait_item":              {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassInterface), NameStrategy: StrategyFindIdentifier},
	"impl_item":               {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"mod_item":                {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindIdentifier},
	"let_declaration":         {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"const_item":              {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"static_item":             {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"type_item":               {Semantic: semantic.TypeComposite, NameStrategy: StrategyFindIdentifier},
	"field_declaration":       {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"parameter":               {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},

	// Imports
	"use_declaration":          {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindQualifiedIdentifier, ValueStrategy: StrategyNodeText},
	"extern_crate_declaration": {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"foreign_mod_item":         {Semantic: semantic.ExternalForeign, Flags: semantic.FlagUnsafe},

	// Calls and access
	"call_expression":        {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"macro_invocation":       {Semantic: semantic.Refine(semantic.ComputationCall, semantic.CallBuiltin), NameStrategy: StrategyFindIdentifier},
	"method_call_expression": {Semantic: semantic.Refine(semantic.ComputationCall, semantic.CallMethod), NameStrategy: StrategyFindCallTarget},
	"field_expression":       {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"index_expression":       {Semantic: semantic.ComputationAccess},
	"identifier":             {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"scoped_identifier":      {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},
	"type_identifier":        {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
	"primitive_type":         {Semantic: semantic.TypePrimitive, NameStrategy: StrategyNodeText},
	"generic_type":           {Semantic: semantic.TypeGeneric, NameStrategy: StrategyFindIdentifier},
	"reference_type":         {Semantic: semantic.TypeReference},
	"lifetime":               {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},

	// Literals
	"integer_literal":    {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"float_literal":      {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string_literal":     {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"raw_string_literal": {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"char_literal":       {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"boolean_literal":    {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"array_expression":   {Semantic: semantic.LiteralStructured},
	"tuple_expression":   {Semantic: semantic.LiteralStructured},
	"struct_expression":  {Semantic: semantic.LiteralStructured, NameStrategy: StrategyFindIdentifier},

	// Patterns
	"match_expression": {Semantic: semantic.PatternMatch},
	"match_arm":        {Semantic: semantic.PatternMatch},
	"match_pattern":    {Semantic: semantic.PatternMatch},
	"tuple_pattern":    {Semantic: semantic.PatternDestructure},
	"struct_pattern":   {Semantic: semantic.PatternDestructure},
	"or_pattern":       {Semantic: semantic.PatternMatch},

	// Flow control
	"if_expression":        {Semantic: semantic.FlowConditional},
	"if_let_expression":    {Semantic: semantic.FlowConditional},
	"loop_expression":      {Semantic: semantic.FlowLoop},
	"for_expression":       {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopIterator)},
	"while_expression":     {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"while_let_expression": {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"break_expression":     {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"continue_expression":  {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return_expression":    {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"await_expression":     {Semantic: semantic.FlowSync},
	"async_block":          {Semantic: semantic.FlowSync},
	"unsafe_block":         {Semantic: semantic.OrganizationBlock, Flags: semantic.FlagUnsafe},

	// Error handling
	"try_expression": {Semantic: semantic.ErrorTry},
	"try_block":      {Semantic: semantic.ErrorTry},

	// Structure
	"source_file":            {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"block":                  {Semantic: semantic.OrganizationBlock},
	"declaration_list":       {Semantic: semantic.OrganizationBlock},
	"field_declaration_list": {Semantic: semantic.OrganizationList},
	"parameters":             {Semantic: semantic.OrganizationList},
	"arguments":              {Semantic: semantic.OrganizationList},
	"expression_statement":   {Semantic: semantic.ExecutionStatement},
	"attribute_item":         {Semantic: semantic.MetadataAnnotation, ValueStrategy: StrategyNodeText},
	"inner_attribute_item":   {Semantic: semantic.MetadataAnnotation, ValueStrategy: StrategyNodeText},
	"line_comment":           {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"block_comment":          {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"visibility_modifier":    {Semantic: semantic.MetadataAnnotation, Flags: semantic.FlagKeyword, NameStrategy: StrategyNodeText},

	// Operators
	"binary_expression":        {Semantic: semantic.OperatorArithmetic},
	"unary_expression":         {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"assignment_expression":    {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier},
	"compound_assignment_expr": {Semantic: semantic.Refine(semantic.OperatorAssignment, semantic.OperatorCompound)},
	"reference_expression":     {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
}

// rustVisible: items are private unless marked pub.
func rustVisible(node *sitter.Node, source []byte) bool {
	if childOfKind(node, "visibility_modifier") != nil {
		return true
	}
	text := node.Utf8Text(source)
	return strings.HasPrefix(text, "pub ") || strings.HasPrefix(text, "pub(")
}

func rustFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.HasSuffix(rawType, "_item") || strings.Contains(rawType, "declaration") {
		return Extract(StrategyFindIdentifier, node, source)
	}
	return ""
}

func newRustAdapter() *Adapter {
	return &Adapter{
		name:     "rust",
		aliases:  []string{"rs"},
		language: sitter.NewLanguage(tree_sitter_rust.Language()),
		types:    rustTypes,
		fallback: rustFallback,
		visible:  rustVisible,
	}
}
