package interpreter

import (
	"math/big"

	"github.com/funvibe/funexpr/internal/ast"
)

// ValueInterpreter defines coercion, equality, ordering and arithmetic over
// dynamically typed runtime values. The interpreter core never touches a
// value directly; it delegates everything here, so hosts can swap in their
// own notion of truthiness or numeric behavior.
type ValueInterpreter interface {
	AsBoolean(value any) bool
	AsLong(value any) int64
	AsDouble(value any) float64
	AsString(value any) string

	// HasDecimalPoint decides whether unary minus and arithmetic stay on
	// the integer path or move to floating point.
	HasDecimalPoint(value any) bool

	// TryParseNumber yields an exact rational for numeric values and
	// numeric strings.
	TryParseNumber(value any) (*big.Rat, bool)

	// AreEqual compares two values; strict disables cross-type coercion.
	AreEqual(a, b any, strict bool) bool

	// Compare orders two values; the sign of the result indicates the
	// ordering, zero means equal.
	Compare(a, b any) int

	// PerformMath applies an arithmetic operation, choosing integer or
	// floating point results based on the operand shapes.
	PerformMath(a, b any, operation ast.MathOperation) any
}
