package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var pythonTypes = map[string]NodeConfig{
	// Definitions
	"function_definition":  {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"class_definition":     {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"decorated_definition": {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"lambda":               {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"global_statement":     {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"assignment":           {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"augmented_assignment": {Semantic: semantic.Refine(semantic.OperatorAssignment, semantic.OperatorCompound), NameStrategy: StrategyFindIdentifier},
	"named_expression":     {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier},

	// Imports
	"import_statement":      {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"import_from_statement": {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"aliased_import":        {Semantic: semantic.ExternalImport, NameStrategy: StrategyFindIdentifier},
	"dotted_name":           {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},

	// Calls and access
	"call":             {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"attribute":        {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"subscript":        {Semantic: semantic.ComputationAccess, NameStrategy: StrategyFindIdentifier},
	"identifier":       {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"keyword_argument": {Semantic: semantic.ComputationExpression, NameStrategy: StrategyFindIdentifier},

	// Literals
	"integer":             {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"float":               {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string":              {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"concatenated_string": {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"true":                {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"false":               {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"none":                {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"list":                {Semantic: semantic.LiteralStructured},
	"dictionary":          {Semantic: semantic.LiteralStructured},
	"set":                 {Semantic: semantic.LiteralStructured},
	"tuple":               {Semantic: semantic.LiteralStructured},

	// Comprehensions
	"list_comprehension":       {Semantic: semantic.TransformProjection},
	"dictionary_comprehension": {Semantic: semantic.TransformProjection},
	"set_comprehension":        {Semantic: semantic.TransformProjection},
	"generator_expression":     {Semantic: semantic.TransformIteration},

	// Flow control
	"if_statement":           {Semantic: semantic.FlowConditional},
	"elif_clause":            {Semantic: semantic.FlowConditional},
	"else_clause":            {Semantic: semantic.FlowConditional},
	"conditional_expression": {Semantic: semantic.FlowConditional},
	"match_statement":        {Semantic: semantic.PatternMatch},
	"case_clause":            {Semantic: semantic.PatternMatch},
	"for_statement":          {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopFor)},
	"while_statement":        {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"break_statement":        {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"continue_statement":     {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return_statement":       {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"yield":                  {Semantic: semantic.FlowJump},
	"pass_statement":         {Semantic: semantic.ExecutionStatement, Flags: semantic.FlagKeyword},
	"with_statement":         {Semantic: semantic.FlowSync},
	"await":                  {Semantic: semantic.FlowSync},

	// Error handling
	"try_statement":    {Semantic: semantic.ErrorTry},
	"except_clause":    {Semantic: semantic.ErrorCatch},
	"raise_statement":  {Semantic: semantic.ErrorThrow},
	"finally_clause":   {Semantic: semantic.ErrorFinally},
	"assert_statement": {Semantic: semantic.ErrorThrow},

	// Structure
	"module":               {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"block":                {Semantic: semantic.OrganizationBlock},
	"expression_statement": {Semantic: semantic.ExecutionStatement},
	"parameters":           {Semantic: semantic.OrganizationList},
	"argument_list":        {Semantic: semantic.OrganizationList},
	"comment":              {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"decorator":            {Semantic: semantic.MetadataAnnotation, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"type":                 {Semantic: semantic.TypeReference, NameStrategy: StrategyNodeText},
	"typed_parameter":      {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"default_parameter":    {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},

	// Operators
	"binary_operator":     {Semantic: semantic.OperatorArithmetic},
	"boolean_operator":    {Semantic: semantic.OperatorLogical},
	"comparison_operator": {Semantic: semantic.OperatorComparison},
	"unary_operator":      {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"not_operator":        {Semantic: semantic.Refine(semantic.OperatorLogical, semantic.OperatorUnary)},
}

// pythonVisible follows the underscore convention: a leading underscore marks
// a private name.
func pythonVisible(node *sitter.Node, source []byte) bool {
	name := Extract(StrategyFindIdentifier, node, source)
	if name == "" {
		return true
	}
	return name[0] != '_'
}

// pythonFallback recovers names for untabled definition-like node types.
func pythonFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.Contains(rawType, "definition") || strings.Contains(rawType, "declaration") {
		return Extract(StrategyFindIdentifier, node, source)
	}
	return ""
}

func newPythonAdapter() *Adapter {
	return &Adapter{
		name:     "python",
		aliases:  []string{"py"},
		language: sitter.NewLanguage(tree_sitter_python.Language()),
		types:    pythonTypes,
		fallback: pythonFallback,
		visible:  pythonVisible,
	}
}
