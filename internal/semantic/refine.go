package semantic

// Refinement values occupy the low two bits of a code and are interpreted
// per base type. A refinement of 0 always means the plain, unrefined form.

// DEFINITION_FUNCTION refinements.
const (
	FunctionRegular     Type = 0
	FunctionLambda      Type = 1
	FunctionConstructor Type = 2
	FunctionAsync       Type = 3
)

// DEFINITION_CLASS refinements.
const (
	ClassRegular   Type = 0
	ClassInterface Type = 1
	ClassStruct    Type = 2
	ClassEnum      Type = 3
)

// COMPUTATION_CALL refinements.
const (
	CallRegular   Type = 0
	CallMethod    Type = 1
	CallBuiltin   Type = 2
	CallRecursive Type = 3
)

// FLOW_LOOP refinements.
const (
	LoopRegular  Type = 0
	LoopFor      Type = 1
	LoopWhile    Type = 2
	LoopIterator Type = 3
)

// OPERATOR refinements, shared by the four operator base types.
const (
	OperatorBinary   Type = 0
	OperatorUnary    Type = 1
	OperatorTernary  Type = 2
	OperatorCompound Type = 3
)

// Refine combines a base code with a refinement value.
func Refine(base, refinement Type) Type {
	return Base(base) | (refinement & RefinementMask)
}

// Universal flags carried alongside the semantic type. These are a separate
// byte, not part of the 8-bit code.
const (
	FlagKeyword uint8 = 0x01 // node is a reserved word of the language
	FlagPublic  uint8 = 0x02 // node is visible outside its enclosing scope
	FlagUnsafe  uint8 = 0x04 // node is in an unsafe or unchecked context
)
