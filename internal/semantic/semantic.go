// Package semantic defines the 8-bit cross-language classification code
// assigned to every syntax node, together with name lookups and mask-based
// predicates.
//
// Byte layout, most significant bits first: [ss kk tt rr]
//
//	ss = super kind (bits 6-7): DATA_STRUCTURE=00, COMPUTATION=01,
//	     CONTROL_EFFECTS=10, META_EXTERNAL=11
//	kk = kind (bits 4-5): four kinds within each super kind
//	tt = type (bits 2-3): four types within each kind
//	rr = refinement (bits 0-1): orthogonal variant flags
//
// The byte values are a compatibility surface: consumers persist and compare
// the raw byte, so new codes may only be appended into unused slots, never
// renumbered.
package semantic

// Type is the 8-bit semantic classification code.
type Type = uint8

// Super kinds (bits 6-7).
const (
	DataStructure  Type = 0x00
	Computation    Type = 0x40
	ControlEffects Type = 0x80
	MetaExternal   Type = 0xC0
)

// Kinds within DATA_STRUCTURE.
const (
	KindLiteral Type = DataStructure | 0x00
	KindName    Type = DataStructure | 0x10
	KindPattern Type = DataStructure | 0x20
	KindType    Type = DataStructure | 0x30
)

// Kinds within COMPUTATION.
const (
	KindOperator    Type = Computation | 0x00
	KindComputation Type = Computation | 0x10
	KindTransform   Type = Computation | 0x20
	KindDefinition  Type = Computation | 0x30
)

// Kinds within CONTROL_EFFECTS.
const (
	KindExecution     Type = ControlEffects | 0x00
	KindFlowControl   Type = ControlEffects | 0x10
	KindErrorHandling Type = ControlEffects | 0x20
	KindOrganization  Type = ControlEffects | 0x30
)

// Kinds within META_EXTERNAL.
const (
	KindMetadata       Type = MetaExternal | 0x00
	KindExternal       Type = MetaExternal | 0x10
	KindParserSpecific Type = MetaExternal | 0x20
	KindReserved       Type = MetaExternal | 0x30
)

// LITERAL types.
const (
	LiteralNumber     Type = KindLiteral | 0x00
	LiteralString     Type = KindLiteral | 0x04
	LiteralAtomic     Type = KindLiteral | 0x08
	LiteralStructured Type = KindLiteral | 0x0C
)

// NAME types.
const (
	NameKeyword    Type = KindName | 0x00
	NameIdentifier Type = KindName | 0x04
	NameQualified  Type = KindName | 0x08
	NameScoped     Type = KindName | 0x0C
)

// PATTERN types.
const (
	PatternDestructure Type = KindPattern | 0x00
	PatternMatch       Type = KindPattern | 0x04
	PatternTemplate    Type = KindPattern | 0x08
	PatternGuard       Type = KindPattern | 0x0C
)

// TYPE types.
const (
	TypePrimitive Type = KindType | 0x00
	TypeComposite Type = KindType | 0x04
	TypeReference Type = KindType | 0x08
	TypeGeneric   Type = KindType | 0x0C
)

// OPERATOR types.
const (
	OperatorArithmetic Type = KindOperator | 0x00
	OperatorLogical    Type = KindOperator | 0x04
	OperatorComparison Type = KindOperator | 0x08
	OperatorAssignment Type = KindOperator | 0x0C
)

// COMPUTATION_NODE types.
const (
	ComputationCall       Type = KindComputation | 0x00
	ComputationAccess     Type = KindComputation | 0x04
	ComputationExpression Type = KindComputation | 0x08
	ComputationLambda     Type = KindComputation | 0x0C
)

// TRANSFORM types.
const (
	TransformQuery       Type = KindTransform | 0x00
	TransformIteration   Type = KindTransform | 0x04
	TransformProjection  Type = KindTransform | 0x08
	TransformAggregation Type = KindTransform | 0x0C
)

// DEFINITION types.
const (
	DefinitionFunction Type = KindDefinition | 0x00
	DefinitionVariable Type = KindDefinition | 0x04
	DefinitionClass    Type = KindDefinition | 0x08
	DefinitionModule   Type = KindDefinition | 0x0C
)

// EXECUTION types.
const (
	ExecutionStatement   Type = KindExecution | 0x00
	ExecutionDeclaration Type = KindExecution | 0x04
	ExecutionInvocation  Type = KindExecution | 0x08
	ExecutionMutation    Type = KindExecution | 0x0C
)

// FLOW_CONTROL types.
const (
	FlowConditional Type = KindFlowControl | 0x00
	FlowLoop        Type = KindFlowControl | 0x04
	FlowJump        Type = KindFlowControl | 0x08
	FlowSync        Type = KindFlowControl | 0x0C
)

// ERROR_HANDLING types.
const (
	ErrorTry     Type = KindErrorHandling | 0x00
	ErrorCatch   Type = KindErrorHandling | 0x04
	ErrorThrow   Type = KindErrorHandling | 0x08
	ErrorFinally Type = KindErrorHandling | 0x0C
)

// ORGANIZATION types.
const (
	OrganizationBlock     Type = KindOrganization | 0x00
	OrganizationList      Type = KindOrganization | 0x04
	OrganizationSection   Type = KindOrganization | 0x08
	OrganizationContainer Type = KindOrganization | 0x0C
)

// METADATA types.
const (
	MetadataComment    Type = KindMetadata | 0x00
	MetadataAnnotation Type = KindMetadata | 0x04
	MetadataDirective  Type = KindMetadata | 0x08
	MetadataDebug      Type = KindMetadata | 0x0C
)

// EXTERNAL types.
const (
	ExternalImport  Type = KindExternal | 0x00
	ExternalExport  Type = KindExternal | 0x04
	ExternalForeign Type = KindExternal | 0x08
	ExternalEmbed   Type = KindExternal | 0x0C
)

// PARSER_SPECIFIC types.
const (
	ParserPunctuation Type = KindParserSpecific | 0x00
	ParserDelimiter   Type = KindParserSpecific | 0x04
	ParserSyntax      Type = KindParserSpecific | 0x08
	ParserConstruct   Type = KindParserSpecific | 0x0C
)

// RESERVED types.
const (
	ReservedFuture1 Type = KindReserved | 0x00
	ReservedFuture2 Type = KindReserved | 0x04
	ReservedFuture3 Type = KindReserved | 0x08
	ReservedFuture4 Type = KindReserved | 0x0C
)

// Masks for the bit fields.
const (
	SuperKindMask  Type = 0xC0
	KindMask       Type = 0xF0
	BaseTypeMask   Type = 0xFC // strips refinement bits
	RefinementMask Type = 0x03
)

// UnknownTypeCode is returned by TypeCode for names the taxonomy does not
// define.
const UnknownTypeCode Type = 255

// UnknownTypeName is returned by TypeName for codes the taxonomy does not
// define.
const UnknownTypeName = "UNKNOWN_SEMANTIC_TYPE"

// SuperKind extracts the super-kind field (bits 6-7, unshifted).
func SuperKind(t Type) Type { return t & SuperKindMask }

// Kind extracts the full kind value (bits 4-7, unshifted).
func Kind(t Type) Type { return t & KindMask }

// Base strips the refinement bits, leaving the base type code.
func Base(t Type) Type { return t & BaseTypeMask }

// Refinement extracts the low two variant bits.
func Refinement(t Type) Type { return t & RefinementMask }

// typeNames maps every defined base code to its canonical name. The reverse
// map is derived from it so the two can never drift apart.
var typeNames = map[Type]string{
	LiteralNumber:     "LITERAL_NUMBER",
	LiteralString:     "LITERAL_STRING",
	LiteralAtomic:     "LITERAL_ATOMIC",
	LiteralStructured: "LITERAL_STRUCTURED",

	NameKeyword:    "NAME_KEYWORD",
	NameIdentifier: "NAME_IDENTIFIER",
	NameQualified:  "NAME_QUALIFIED",
	NameScoped:     "NAME_SCOPED",

	PatternDestructure: "PATTERN_DESTRUCTURE",
	PatternMatch:       "PATTERN_MATCH",
	PatternTemplate:    "PATTERN_TEMPLATE",
	PatternGuard:       "PATTERN_GUARD",

	TypePrimitive: "TYPE_PRIMITIVE",
	TypeComposite: "TYPE_COMPOSITE",
	TypeReference: "TYPE_REFERENCE",
	TypeGeneric:   "TYPE_GENERIC",

	OperatorArithmetic: "OPERATOR_ARITHMETIC",
	OperatorLogical:    "OPERATOR_LOGICAL",
	OperatorComparison: "OPERATOR_COMPARISON",
	OperatorAssignment: "OPERATOR_ASSIGNMENT",

	ComputationCall:       "COMPUTATION_CALL",
	ComputationAccess:     "COMPUTATION_ACCESS",
	ComputationExpression: "COMPUTATION_EXPRESSION",
	ComputationLambda:     "COMPUTATION_LAMBDA",

	TransformQuery:       "TRANSFORM_QUERY",
	TransformIteration:   "TRANSFORM_ITERATION",
	TransformProjection:  "TRANSFORM_PROJECTION",
	TransformAggregation: "TRANSFORM_AGGREGATION",

	DefinitionFunction: "DEFINITION_FUNCTION",
	DefinitionVariable: "DEFINITION_VARIABLE",
	DefinitionClass:    "DEFINITION_CLASS",
	DefinitionModule:   "DEFINITION_MODULE",

	ExecutionStatement:   "EXECUTION_STATEMENT",
	ExecutionDeclaration: "EXECUTION_DECLARATION",
	ExecutionInvocation:  "EXECUTION_INVOCATION",
	ExecutionMutation:    "EXECUTION_MUTATION",

	FlowConditional: "FLOW_CONDITIONAL",
	FlowLoop:        "FLOW_LOOP",
	FlowJump:        "FLOW_JUMP",
	FlowSync:        "FLOW_SYNC",

	ErrorTry:     "ERROR_TRY",
	ErrorCatch:   "ERROR_CATCH",
	ErrorThrow:   "ERROR_THROW",
	ErrorFinally: "ERROR_FINALLY",

	OrganizationBlock:     "ORGANIZATION_BLOCK",
	OrganizationList:      "ORGANIZATION_LIST",
	OrganizationSection:   "ORGANIZATION_SECTION",
	OrganizationContainer: "ORGANIZATION_CONTAINER",

	MetadataComment:    "METADATA_COMMENT",
	MetadataAnnotation: "METADATA_ANNOTATION",
	MetadataDirective:  "METADATA_DIRECTIVE",
	MetadataDebug:      "METADATA_DEBUG",

	ExternalImport:  "EXTERNAL_IMPORT",
	ExternalExport:  "EXTERNAL_EXPORT",
	ExternalForeign: "EXTERNAL_FOREIGN",
	ExternalEmbed:   "EXTERNAL_EMBED",

	ParserPunctuation: "PARSER_PUNCTUATION",
	ParserDelimiter:   "PARSER_DELIMITER",
	ParserSyntax:      "PARSER_SYNTAX",
	ParserConstruct:   "PARSER_CONSTRUCT",

	ReservedFuture1: "RESERVED_FUTURE1",
	ReservedFuture2: "RESERVED_FUTURE2",
	ReservedFuture3: "RESERVED_FUTURE3",
	ReservedFuture4: "RESERVED_FUTURE4",
}

var typeCodes = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for code, name := range typeNames {
		m[name] = code
	}
	return m
}()

// TypeName returns the canonical name for a semantic type code. Refined
// variants of a defined base type report the base type's name, so that
// downstream string comparisons stay stable across refinements. Undefined
// codes return UnknownTypeName.
func TypeName(t Type) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	if Refinement(t) != 0 {
		if name, ok := typeNames[Base(t)]; ok {
			return name
		}
	}
	return UnknownTypeName
}

// TypeCode is the inverse of TypeName for every defined code. Unknown names
// return UnknownTypeCode.
func TypeCode(name string) Type {
	if code, ok := typeCodes[name]; ok {
		return code
	}
	return UnknownTypeCode
}

// superKindNames and kindNames back the coarser lookups.
var superKindNames = map[Type]string{
	DataStructure:  "DATA_STRUCTURE",
	Computation:    "COMPUTATION",
	ControlEffects: "CONTROL_EFFECTS",
	MetaExternal:   "META_EXTERNAL",
}

var kindNames = map[Type]string{
	KindLiteral:        "LITERAL",
	KindName:           "NAME",
	KindPattern:        "PATTERN",
	KindType:           "TYPE",
	KindOperator:       "OPERATOR",
	KindComputation:    "COMPUTATION_NODE",
	KindTransform:      "TRANSFORM",
	KindDefinition:     "DEFINITION",
	KindExecution:      "EXECUTION",
	KindFlowControl:    "FLOW_CONTROL",
	KindErrorHandling:  "ERROR_HANDLING",
	KindOrganization:   "ORGANIZATION",
	KindMetadata:       "METADATA",
	KindExternal:       "EXTERNAL",
	KindParserSpecific: "PARSER_SPECIFIC",
	KindReserved:       "RESERVED",
}

var kindCodes = func() map[string]Type {
	m := make(map[string]Type, len(kindNames))
	for code, name := range kindNames {
		m[name] = code
	}
	return m
}()

// SuperKindName returns the name of a super-kind value, or
// "UNKNOWN_SUPER_KIND" if the value is not one of the four super kinds.
func SuperKindName(sk Type) string {
	if name, ok := superKindNames[sk]; ok {
		return name
	}
	return "UNKNOWN_SUPER_KIND"
}

// KindLabel returns the name of a kind value, or "UNKNOWN_KIND".
func KindLabel(k Type) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN_KIND"
}

// KindCode is the inverse of KindLabel; unknown names return UnknownTypeCode.
func KindCode(name string) Type {
	if code, ok := kindCodes[name]; ok {
		return code
	}
	return UnknownTypeCode
}

// DefinedTypes returns every defined base code in ascending order. Useful for
// exhaustive round-trip checks.
func DefinedTypes() []Type {
	out := make([]Type, 0, len(typeNames))
	for c := 0; c <= 0xFC; c += 4 {
		if _, ok := typeNames[Type(c)]; ok {
			out = append(out, Type(c))
		}
	}
	return out
}

// Predicates. All comparisons mask off the refinement bits so a refined
// variant of a base type still satisfies its category.

// IsDefinition reports whether t is any DEFINITION kind type.
func IsDefinition(t Type) bool { return Kind(t) == KindDefinition }

// IsCall reports whether t is a call or invocation.
func IsCall(t Type) bool {
	return Base(t) == ComputationCall || Base(t) == ExecutionInvocation
}

// IsControlFlow reports whether t is any FLOW_CONTROL kind type.
func IsControlFlow(t Type) bool { return Kind(t) == KindFlowControl }

// IsIdentifier reports whether t is any NAME kind type.
func IsIdentifier(t Type) bool { return Kind(t) == KindName }

// IsLiteral reports whether t is any LITERAL kind type.
func IsLiteral(t Type) bool { return Kind(t) == KindLiteral }

// IsOperator reports whether t is any OPERATOR kind type.
func IsOperator(t Type) bool { return Kind(t) == KindOperator }

// IsType reports whether t is any TYPE kind type.
func IsType(t Type) bool { return Kind(t) == KindType }

// IsExternal reports whether t is any EXTERNAL kind type.
func IsExternal(t Type) bool { return Kind(t) == KindExternal }

// IsError reports whether t is any ERROR_HANDLING kind type.
func IsError(t Type) bool { return Kind(t) == KindErrorHandling }

// IsMetadata reports whether t is any METADATA kind type.
func IsMetadata(t Type) bool { return Kind(t) == KindMetadata }

// DefinitionTypes returns the four DEFINITION base codes.
func DefinitionTypes() []Type {
	return []Type{DefinitionFunction, DefinitionVariable, DefinitionClass, DefinitionModule}
}

// ControlFlowTypes returns the four FLOW_CONTROL base codes.
func ControlFlowTypes() []Type {
	return []Type{FlowConditional, FlowLoop, FlowJump, FlowSync}
}

// SearchableTypes returns the curated subset of codes typically used when
// searching for "interesting" nodes: definitions, calls and member access,
// imports and exports, control flow, error handling, and key identifiers.
func SearchableTypes() []Type {
	return []Type{
		DefinitionFunction, DefinitionVariable, DefinitionClass, DefinitionModule,
		ComputationCall, ComputationAccess,
		ExternalImport, ExternalExport,
		FlowConditional, FlowLoop, FlowJump, FlowSync,
		ErrorTry, ErrorCatch, ErrorThrow, ErrorFinally,
		NameIdentifier, NameQualified,
	}
}
