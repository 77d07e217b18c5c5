package diag

// Code identifies the kind of a diagnostic. Kinds are grouped by the
// subsystem that raises them.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexUnknownChar Code = 1001

	// Syntactic.
	SynUnexpectedToken Code = 2001
	SynUnclosedDelimiter Code = 2002

	// Name resolution.
	ErrUndefinedVariable Code = 3001
	ErrRedeclaredVariable Code = 3002

	// Type resolution.
	ErrUnknownType Code = 3101
	ErrAmbiguousType Code = 3102
	ErrWrongTypeArgCount Code = 3103
	ErrDuplicateStructName Code = 3104

	// Overload resolution.
	ErrNoMatchingFunction Code = 3201
	ErrAmbiguousFunction Code = 3202

	// Expression/statement checking.
	ErrAssignToNonName Code = 3301
	ErrCallCalleeNotName Code = 3302
	ErrMemberOnNonStruct Code = 3303
	ErrMissingMember Code = 3304
	ErrTypeMismatch Code = 3305

	// Return checking: a returned value whose type differs from the
	// function's return type, and a non-Void function with a control-flow
	// path that does not return a value.
	ErrReturnTypeMismatch Code = 3401
	ErrMissingReturn Code = 3402

	// Reserved for constructs that are parsed but not yet elaborated.
	ErrUnsupportedConstruct Code = 3901
)
