// Package prettyprinter renders an AST back to source text. The output
// parses to an equivalent AST; parenthesization may differ from the input.
package prettyprinter

import (
	"strconv"
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
)

// Operator precedence (higher = binds tighter), mirroring the parser's
// ladder. Used to decide where parentheses are required.
const (
	precAssignment = iota
	precNullCoalesce
	precConcatenation
	precDisjunction
	precConjunction
	precEquality
	precComparison
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precPrimary
)

// Expressionify renders the expression as source text.
func Expressionify(expr ast.Expression) string {
	var sb strings.Builder
	printExpression(&sb, expr)
	return sb.String()
}

func printExpression(sb *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.ProgramExpression:
		for i, line := range e.Lines {
			if i > 0 {
				sb.WriteString("\n")
			}
			printExpression(sb, line)
		}

	case *ast.LongExpression:
		sb.WriteString(strconv.FormatInt(e.Value, 10))

	case *ast.DoubleExpression:
		text := strconv.FormatFloat(e.Value, 'f', -1, 64)
		if !strings.ContainsRune(text, '.') {
			text += ".0"
		}
		sb.WriteString(text)

	case *ast.StringExpression:
		sb.WriteString("\"")
		sb.WriteString(strings.ReplaceAll(e.Value, "\"", "\\\""))
		sb.WriteString("\"")

	case *ast.LiteralExpression:
		sb.WriteString(e.Kind.String())

	case *ast.IdentifierExpression:
		sb.WriteString(e.Symbol)

	case *ast.MathExpression:
		printBinary(sb, e.LHS, e.RHS, e.Operation.String(), mathPrecedence(e.Operation))

	case *ast.ComparisonExpression:
		printBinary(sb, e.LHS, e.RHS, e.Operation.String(), precComparison)

	case *ast.EqualityExpression:
		printBinary(sb, e.LHS, e.RHS, e.Operation.String(), precEquality)

	case *ast.ConjunctionExpression:
		printBinary(sb, e.LHS, e.RHS, "&&", precConjunction)

	case *ast.DisjunctionExpression:
		printBinary(sb, e.LHS, e.RHS, "||", precDisjunction)

	case *ast.ConcatenationExpression:
		printBinary(sb, e.LHS, e.RHS, "&", precConcatenation)

	case *ast.NullCoalesceExpression:
		printBinary(sb, e.LHS, e.RHS, "??", precNullCoalesce)

	case *ast.AssignmentExpression:
		sb.WriteString(e.Target.Symbol)
		sb.WriteString(" = ")
		printExpression(sb, e.Value)

	case *ast.MemberAccessExpression:
		printChild(sb, e.LHS, precPostfix)
		if e.Optional {
			sb.WriteString("?.")
		} else {
			sb.WriteString(".")
		}
		printExpression(sb, e.RHS)

	case *ast.IndexExpression:
		printChild(sb, e.LHS, precPostfix)
		if e.Optional {
			sb.WriteString("?[")
		} else {
			sb.WriteString("[")
		}
		printExpression(sb, e.RHS)
		sb.WriteString("]")

	case *ast.InvertExpression:
		sb.WriteString("!")
		printChild(sb, e.Input, precUnary)

	case *ast.FlipSignExpression:
		sb.WriteString("-")
		printChild(sb, e.Input, precUnary)

	case *ast.FunctionInvocationExpression:
		if e.Name != nil {
			sb.WriteString(e.Name.Symbol)
		} else {
			printChild(sb, e.Callee, precPostfix)
		}
		if e.Optional {
			sb.WriteString("?(")
		} else {
			sb.WriteString("(")
		}
		for i, argument := range e.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			if argument.Name != nil {
				sb.WriteString(argument.Name.Symbol)
				sb.WriteString(" = ")
			}
			printExpression(sb, argument.Value)
		}
		sb.WriteString(")")

	case *ast.CallbackExpression:
		sb.WriteString("(")
		for i, identifier := range e.Signature {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(identifier.Symbol)
		}
		sb.WriteString(") -> ")
		printExpression(sb, e.Body)

	case *ast.IfThenElseExpression:
		sb.WriteString("if ")
		printExpression(sb, e.Condition)
		sb.WriteString(" then ")
		printExpression(sb, e.PositiveBody)
		sb.WriteString(" else ")
		printExpression(sb, e.NegativeBody)
	}
}

func printBinary(sb *strings.Builder, lhs, rhs ast.Expression, operator string, precedence int) {
	printChild(sb, lhs, precedence)
	sb.WriteString(" ")
	sb.WriteString(operator)
	sb.WriteString(" ")
	// Binary operators are left-associative: an equal-precedence rhs needs
	// parentheses to survive a round trip
	printChild(sb, rhs, precedence+1)
}

// printChild parenthesizes the child when its precedence binds weaker than
// the surrounding context requires.
func printChild(sb *strings.Builder, child ast.Expression, contextPrecedence int) {
	if expressionPrecedence(child) < contextPrecedence {
		sb.WriteString("(")
		printExpression(sb, child)
		sb.WriteString(")")
		return
	}
	printExpression(sb, child)
}

func mathPrecedence(operation ast.MathOperation) int {
	switch operation {
	case ast.MATH_ADDITION, ast.MATH_SUBTRACTION:
		return precAdditive
	case ast.MATH_POWER:
		return precExponent
	default:
		return precMultiplicative
	}
}

func expressionPrecedence(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.AssignmentExpression, *ast.CallbackExpression, *ast.IfThenElseExpression:
		return precAssignment
	case *ast.NullCoalesceExpression:
		return precNullCoalesce
	case *ast.ConcatenationExpression:
		return precConcatenation
	case *ast.DisjunctionExpression:
		return precDisjunction
	case *ast.ConjunctionExpression:
		return precConjunction
	case *ast.EqualityExpression:
		return precEquality
	case *ast.ComparisonExpression:
		return precComparison
	case *ast.MathExpression:
		return mathPrecedence(e.Operation)
	case *ast.InvertExpression, *ast.FlipSignExpression:
		return precUnary
	case *ast.MemberAccessExpression, *ast.IndexExpression, *ast.FunctionInvocationExpression:
		return precPostfix
	default:
		return precPrimary
	}
}
