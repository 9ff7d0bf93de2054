package lang

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"

	"github.com/dusk-indust/uast/internal/semantic"
)

var rubyTypes = map[string]NodeConfig{
	// Definitions
	"method":              {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"singleton_method":    {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyFindIdentifier},
	"class":               {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"singleton_class":     {Semantic: semantic.DefinitionClass, NameStrategy: StrategyFindIdentifier},
	"module":              {Semantic: semantic.DefinitionModule, NameStrategy: StrategyFindIdentifier},
	"lambda":              {Semantic: semantic.Refine(semantic.ComputationLambda, semantic.FunctionLambda), NameStrategy: StrategyFindAssignmentTarget},
	"block":               {Semantic: semantic.OrganizationBlock},
	"do_block":            {Semantic: semantic.OrganizationBlock},
	"assignment":          {Semantic: semantic.OperatorAssignment, NameStrategy: StrategyFindIdentifier, ValueStrategy: StrategyNodeText},
	"operator_assignment": {Semantic: semantic.Refine(semantic.OperatorAssignment, semantic.OperatorCompound), NameStrategy: StrategyFindIdentifier},

	// Requires
	"call":        {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"method_call": {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},

	// Names
	"identifier":        {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"constant":          {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"instance_variable": {Semantic: semantic.NameScoped, NameStrategy: StrategyNodeText},
	"class_variable":    {Semantic: semantic.NameScoped, NameStrategy: StrategyNodeText},
	"global_variable":   {Semantic: semantic.NameScoped, NameStrategy: StrategyNodeText},
	"scope_resolution":  {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},
	"symbol":            {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},

	// Literals
	"integer":        {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"float":          {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"string":         {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"string_content": {Semantic: semantic.LiteralString, ValueStrategy: StrategyNodeText},
	"regex":          {Semantic: semantic.PatternMatch, ValueStrategy: StrategyNodeText},
	"true":           {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"false":          {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"nil":            {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword, ValueStrategy: StrategyNodeText},
	"array":          {Semantic: semantic.LiteralStructured},
	"hash":           {Semantic: semantic.LiteralStructured},
	"pair":           {Semantic: semantic.ComputationExpression, NameStrategy: StrategyFirstChild},

	// Flow control
	"if":          {Semantic: semantic.FlowConditional},
	"unless":      {Semantic: semantic.FlowConditional},
	"elsif":       {Semantic: semantic.FlowConditional},
	"else":        {Semantic: semantic.FlowConditional},
	"conditional": {Semantic: semantic.FlowConditional},
	"case":        {Semantic: semantic.PatternMatch},
	"when":        {Semantic: semantic.PatternMatch},
	"in_clause":   {Semantic: semantic.PatternMatch},
	"for":         {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopFor)},
	"while":       {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"until":       {Semantic: semantic.Refine(semantic.FlowLoop, semantic.LoopWhile)},
	"break":       {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"next":        {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"redo":        {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},
	"return":      {Semantic: semantic.FlowJump, ValueStrategy: StrategyNodeText},
	"yield":       {Semantic: semantic.FlowJump},

	// Error handling
	"begin":  {Semantic: semantic.ErrorTry},
	"rescue": {Semantic: semantic.ErrorCatch},
	"ensure": {Semantic: semantic.ErrorFinally},
	"retry":  {Semantic: semantic.FlowJump, Flags: semantic.FlagKeyword},

	// Structure
	"program":           {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"body_statement":    {Semantic: semantic.OrganizationBlock},
	"method_parameters": {Semantic: semantic.OrganizationList},
	"argument_list":     {Semantic: semantic.OrganizationList},
	"comment":           {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},

	// Operators
	"binary": {Semantic: semantic.OperatorArithmetic},
	"unary":  {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"range":  {Semantic: semantic.OperatorArithmetic},
}

// rubyVisible: underscore prefix marks private helpers; predicate (?) and
// bang (!) methods are conventionally part of the public surface.
func rubyVisible(node *sitter.Node, source []byte) bool {
	name := Extract(StrategyFindIdentifier, node, source)
	if name == "" {
		return true
	}
	// Predicate (?) and bang (!) methods are public by convention; only a
	// leading underscore marks a private helper.
	return name[0] != '_'
}

func rubyFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.Contains(rawType, "definition") || strings.Contains(rawType, "declaration") {
		return Extract(StrategyFindIdentifier, node, source)
	}
	return ""
}

func newRubyAdapter() *Adapter {
	return &Adapter{
		name:     "ruby",
		aliases:  []string{"rb"},
		language: sitter.NewLanguage(tree_sitter_ruby.Language()),
		types:    rubyTypes,
		fallback: rubyFallback,
		visible:  rubyVisible,
	}
}
