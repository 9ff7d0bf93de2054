package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var cppTypes = map[string]NodeConfig{
	// Definitions
	"function_definition":   {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyCustom},
	"function_declarator":   {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindInDeclarator},
	"declaration":           {Semantic: semantic.ExecutionDeclaration, NameStrategy: StrategyFindInDeclarator},
	"class_specifier":       {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"struct_specifier":      {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassStruct), NameStrategy: StrategyFindIdentifier},
	"union_specifier":       {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassStruct), NameStrategy: StrategyFindIdentifier},
	"enum_specifier":        {Semantic: semantic.Refine(semantic.DefinitionClass, semantic.ClassEnum), NameStrategy: StrategyFindIdentifier},
	"namespace_definition":  {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindIdentifier},
	"template_declaration":  {Semantic: semantic.TypeGeneric, NameStrategy: StrategyFindInDeclarator},
	"field_declaration":     {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"parameter_declaration": {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"init_declarator":       {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"lambda_expression":     {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"alias_declaration":     {Semantic: semantic.TypeComposite, NameStrategy: StrategyFindIdentifier},
	"type_definition":       {Semantic: semantic.TypeComposite, NameStrategy: StrategyFindIdentifier},
	"using_declaration":     {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindQualifiedIdentifier, ValueStrategy: StrategyNodeText},

	// Preprocessor
	"preproc_include":      {Semantic: semantic.ExternalImport, NameStrategy: StrategyFirstChild, ValueStrategy: StrategyNodeText},
	"preproc_def":          {Semantic: semantic.MetadataDirective, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"preproc_ifdef":        {Semantic: semantic.MetadataDirective},
	"preproc_if":           {Semantic: semantic.MetadataDirective},
	"preproc_function_def": {Semantic: semantic.MetadataDirective, NameStrategy: StrategyFindIdentifier},

	// Calls and access
	"call_expression":      {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"field_expression":     {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"subscript_expression": {Semantic: semantic.ComputationAccess},
	"identifier":           {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"field_identifier":     {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"qualified_identifier": {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},
	"namespace_identifier": {Semantic: semantic.NameScoped, NameStrategy: StrategyNodeText},
	"type_identifier":      {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
	"primitive_type":       {Semantic: semantic.TypePrimitive, NameStrategy: StrategyNodeText},
	"template_type":        {Semantic: semantic.TypeGeneric, NameStrategy: StrategyFindIdentifier},
	"pointer_declarator":   {Semantic: semantic.TypeReference, NameStrategy: StrategyFindIdentifier},
	"reference_declarator": {Semantic: semantic.TypeReference, NameStrategy: StrategyFindIdentifier},

	// Literals
	"number_literal":     {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string_literal":     {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"raw_string_literal": {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"char_literal":       {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"true":               {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"false":              {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"nullptr":            {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"initializer_list":   {Semantic: semantic.LiteralStructured},

	// Flow control
	"if_statement":           {Semantic: semantic.FlowConditional},
	"conditional_expression": {Semantic: semantic.FlowConditional},
	"switch_statement":       {Semantic: semantic.FlowConditional},
	"case_statement":         {Semantic: semantic.PatternMatch},
	"for_statement":          {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopFor)},
	"for_range_loop":         {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopIterator)},
	"while_statement":        {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"do_statement":           {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"break_statement":        {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"continue_statement":     {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return_statement":       {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"goto_statement":         {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},

	// Error handling
	"try_statement":   {Semantic: semantic.ErrorTry},
	"catch_clause":    {Semantic: semantic.ErrorCatch},
	"throw_statement": {Semantic: semantic.ErrorThrow},
	"throw_specifier": {Semantic: semantic.ErrorThrow},

	// Structure
	"translation_unit":       {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"compound_statement":     {Semantic: semantic.OrganizationBlock},
	"field_declaration_list": {Semantic: semantic.OrganizationList},
	"parameter_list":         {Semantic: semantic.OrganizationList},
	"argument_list":          {Semantic: semantic.OrganizationList},
	"expression_statement":   {Semantic: semantic.ExecutionStatement},
	"access_specifier":       {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyNodeText, Flags: semantic.FlagKeyword},
	"comment":                {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"attribute_declaration":  {Semantic: semantic.MetadataAnnotation, ValueStrategy: StrategyNodeText},

	// Operators
	"binary_expression":     {Semantic: semantic.OperatorArithmetic},
	"unary_expression":      {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"update_expression":     {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"assignment_expression": {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier},
	"pointer_expression":    {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"new_expression":        {Semantic: semantic.Refine(semantic.ComputationCall, semantic.CallRegular), NameStrategy: StrategyFindIdentifier},
	"delete_expression":     {Semantic: semantic.ExecutionMutation},
}

// cppCustom resolves function_definition names by walking into the
// declarator, taking the last segment of a qualified name so
// `Class::method` yields `method`.
func cppCustom(node *sitter.Node, source []byte) string {
	if node.Kind() != "function_definition" {
		return ""
	}
	decl := childOfKind(node, "function_declarator")
	if decl == nil {
		decl = findDeclarator(node)
	}
	if decl == nil {
		return ""
	}
	if q := childOfKind(decl, "qualified_identifier"); q != nil {
		if s := lastIdentifierSegment(q, source); s != "" {
			return s
		}
		return q.Utf8Text(source)
	}
	return Extract(StrategyFindIdentifier, decl, source)
}

// cppVisible: declarations at namespace or translation-unit scope are
// reachable; class members depend on the preceding access specifier.
// Trailing-underscore names follow the member-variable convention.
func cppVisible(node *sitter.Node, source []byte) bool {
	parent := node.Parent()
	if parent == nil {
		return true
	}
	switch parent.Kind() {
	case "translation_unit", "namespace_definition", "declaration_list":
		return true
	}

	// Inside a class body, the latest access_specifier above us decides,
	// taking precedence over the naming convention.
	for prev := node.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if prev.Kind() != "access_specifier" {
			continue
		}
		text := prev.Utf8Text(source)
		if strings.HasPrefix(text, "public") {
			return true
		}
		return false
	}

	// No explicit specifier: a trailing underscore marks internals.
	name := Extract(StrategyFindIdentifier, node, source)
	if strings.HasSuffix(name, "_") {
		return false
	}
	return true
}

func cppFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.Contains(rawType, "specifier") || strings.Contains(rawType, "definition") {
		if s := Extract(StrategyFindIdentifier, node, source); s != "" {
			return s
		}
		if q := childOfKind(node, "qualified_identifier"); q != nil {
			return lastIdentifierSegment(q, source)
		}
		if t := childOfKind(node, "type_identifier"); t != nil {
			return t.Utf8Text(source)
		}
	}
	return ""
}

func newCppAdapter() *Adapter {
	return &Adapter{
		name:     "cpp",
		aliases:  []string{"c++", "cxx"},
		language: sitter.NewLanguage(tree_sitter_cpp.Language()),
		types:    cppTypes,
		custom:   cppCustom,
		fallback: cppFallback,
		visible:  cppVisible,
	}
}
