package lang

import (
	"strings"

	forest_sql "github.com/alexaandru/go-sitter-forest/sql"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dusk-indust/uast/internal/semantic"
)

var sqlTypes = map[string]NodeConfig{
	// DDL
	"create_table":      {Semantic: semantic.DefinitionClass, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"create_view":       {Semantic: semantic.DefinitionClass, NameStrategy: StrategyCustom, ValueStrategy: StrategyNodeText},
	"create_index":      {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyCustom},
	"create_function":   {Semantic: semantic.DefinitionFunction, NameStrategy: StrategyCustom},
	"create_schema":     {Semantic: semantic.DefinitionModule, NameStrategy: StrategyCustom},
	"create_database":   {Semantic: semantic.DefinitionModule, NameStrategy: StrategyCustom},
	"column_definition": {Semantic: semantic.DefinitionVariable, NameStrategy: StrategyFindIdentifier},
	"alter_table":       {Semantic: semantic.ExecutionMutation, NameStrategy: StrategyCustom},
	"drop_table":        {Semantic: semantic.ExecutionMutation, NameStrategy: StrategyCustom},
	"drop_view":         {Semantic: semantic.ExecutionMutation, NameStrategy: StrategyCustom},

	// Queries
	"statement":         {Semantic: semantic.ExecutionStatement},
	"select":            {Semantic: semantic.TransformQuery},
	"select_expression": {Semantic: semantic.TransformProjection},
	"from":              {Semantic: semantic.TransformQuery},
	"where":             {Semantic: semantic.TransformQuery},
	"group_by":          {Semantic: semantic.TransformAggregation},
	"order_by":          {Semantic: semantic.TransformQuery},
	"having":            {Semantic: semantic.TransformAggregation},
	"limit":             {Semantic: semantic.TransformQuery},
	"join":              {Semantic: semantic.TransformQuery},
	"cte":               {Semantic: semantic.TransformQuery, NameStrategy: StrategyFindIdentifier},
	"subquery":          {Semantic: semantic.TransformQuery},
	"window_function":   {Semantic: semantic.TransformAggregation},

	// DML
	"insert": {Semantic: semantic.ExecutionMutation, NameStrategy: StrategyCustom},
	"update": {Semantic: semantic.ExecutionMutation, NameStrategy: StrategyCustom},
	"delete": {Semantic: semantic.ExecutionMutation},
	"merge":  {Semantic: semantic.ExecutionMutation},

	// Expressions
	"invocation":         {Semantic: semantic.ComputationCall, NameStrategy: StrategyFindCallTarget},
	"object_reference":   {Semantic: semantic.NameQualified, NameStrategy: StrategyNodeText},
	"identifier":         {Semantic: semantic.NameIdentifier, NameStrategy: StrategyNodeText},
	"field":              {Semantic: semantic.ComputationAccess, NameStrategy: StrategyNodeText},
	"alias":              {Semantic: semantic.NameIdentifier, NameStrategy: StrategyFindIdentifier},
	"binary_expression":  {Semantic: semantic.OperatorComparison},
	"unary_expression":   {Semantic: semantic.Refine(semantic.OperatorArithmetic, semantic.OperatorUnary)},
	"between_expression": {Semantic: semantic.OperatorComparison},
	"case":               {Semantic: semantic.FlowConditional},
	"keyword_case":       {Semantic: semantic.NameKeyword, Flags: semantic.FlagKeyword},

	// Literals
	"literal":        {Semantic: semantic.LiteralAtomic, ValueStrategy: StrategyNodeText},
	"natural_number": {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"decimal_number": {Semantic: semantic.LiteralNumber, ValueStrategy: StrategyNodeText},
	"keyword_true":   {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword},
	"keyword_false":  {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword},
	"keyword_null":   {Semantic: semantic.LiteralAtomic, Flags: semantic.FlagKeyword},

	// Structure
	"program":            {Semantic: semantic.DefinitionModule, NameStrategy: StrategyNone},
	"comment":            {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"marginalia":         {Semantic: semantic.MetadataComment, ValueStrategy: StrategyNodeText},
	"list":               {Semantic: semantic.OrganizationList},
	"column_definitions": {Semantic: semantic.OrganizationList},
	"term":               {Semantic: semantic.ComputationExpression},
}

// sqlCustom names DDL and DML statements after the table or view they act
// on. The grammar nests the name inside an object_reference, so a plain
// direct-child identifier scan misses it.
func sqlCustom(node *sitter.Node, source []byte) string {
	if ref := childOfKind(node, "object_reference"); ref != nil {
		if name := lastIdentifierSegment(ref, source); name != "" {
			return name
		}
		return ref.Utf8Text(source)
	}
	return findIdentifier(node, source)
}

// sqlFallback: DDL node kinds carry the defined object's identifier.
func sqlFallback(node *sitter.Node, source []byte, rawType string) string {
	if strings.Contains(rawType, "table") || strings.Contains(rawType, "view") {
		return sqlCustom(node, source)
	}
	return ""
}

func newSQLAdapter() *Adapter {
	return &Adapter{
		name:     "sql",
		language: sitter.NewLanguage(forest_sql.GetLanguage()),
		types:    sqlTypes,
		custom:   sqlCustom,
		fallback: sqlFallback,
		// SQL has no visibility concept; everything is public.
	}
}
