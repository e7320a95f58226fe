package ast

// ProgramExpression is the root node of every parse: one expression per
// program line, evaluated top to bottom. Lines is never empty.
type ProgramExpression struct {
	Span
	Lines []Expression
}

// LongExpression is a 64-bit integer literal.
type LongExpression struct {
	Span
	Value int64
}

// DoubleExpression is a floating point literal.
type DoubleExpression struct {
	Span
	Value float64
}

// StringExpression is a string literal.
type StringExpression struct {
	Span
	Value string
}

// LiteralExpression is one of true, false or null.
type LiteralExpression struct {
	Span
	Kind LiteralKind
}

// IdentifierExpression is a bare symbol. Resolution is case-insensitive but
// the lexeme is preserved verbatim.
type IdentifierExpression struct {
	Span
	Symbol string
}

// MathExpression applies an arithmetic operation to two operands.
type MathExpression struct {
	Span
	LHS, RHS  Expression
	Operation MathOperation
}

// ComparisonExpression orders two operands.
type ComparisonExpression struct {
	Span
	LHS, RHS  Expression
	Operation ComparisonOperation
}

// EqualityExpression compares two operands for (possibly strict) equality.
type EqualityExpression struct {
	Span
	LHS, RHS  Expression
	Operation EqualityOperation
}

// ConjunctionExpression is a && b. Both sides are always evaluated.
type ConjunctionExpression struct {
	Span
	LHS, RHS Expression
}

// DisjunctionExpression is a || b. Both sides are always evaluated.
type DisjunctionExpression struct {
	Span
	LHS, RHS Expression
}

// ConcatenationExpression is a & b: string concatenation of both sides.
type ConcatenationExpression struct {
	Span
	LHS, RHS Expression
}

// NullCoalesceExpression is a ?? b. The RHS is evaluated only when the LHS
// yields null.
type NullCoalesceExpression struct {
	Span
	LHS, RHS Expression
}

// AssignmentExpression binds the RHS value to an identifier within the
// current interpretation environment.
type AssignmentExpression struct {
	Span
	Target *IdentifierExpression
	Value  Expression
}

// MemberAccessExpression is lhs.field or lhs?.field.
type MemberAccessExpression struct {
	Span
	LHS, RHS Expression
	Optional bool
}

// IndexExpression is lhs[rhs] or lhs?[rhs].
type IndexExpression struct {
	Span
	LHS, RHS Expression
	Optional bool
}

// InvertExpression is logical negation.
type InvertExpression struct {
	Span
	Input Expression
}

// FlipSignExpression is unary minus.
type FlipSignExpression struct {
	Span
	Input Expression
}

// InvocationArgument is a single call argument, optionally named.
type InvocationArgument struct {
	Value Expression
	Name  *IdentifierExpression
}

// FunctionInvocationExpression is name(args) or name?(args), or a direct
// call on a callable-producing expression like (f ?? g)(args). Exactly one
// of Name and Callee is set. A named argument may not be followed by a
// positional one.
type FunctionInvocationExpression struct {
	Span
	Name      *IdentifierExpression
	Callee    Expression
	Arguments []InvocationArgument
	Optional  bool
}

// CallbackExpression is (params) -> body. Evaluating it yields a callable
// closure over a snapshot of the current static variables.
type CallbackExpression struct {
	Span
	Signature []*IdentifierExpression
	Body      Expression
}

// IfThenElseExpression evaluates exactly one of its branches.
type IfThenElseExpression struct {
	Span
	Condition    Expression
	PositiveBody Expression
	NegativeBody Expression
}
