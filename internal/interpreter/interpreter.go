// Package interpreter walks the AST produced by the parser and evaluates it
// against a caller-supplied evaluation environment. Every evaluation starts
// out with a fresh interpretation environment; no state is kept between
// evaluation sessions, so a parsed program is safe to evaluate concurrently.
package interpreter

import (
	"log/slog"
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/config"
	"github.com/funvibe/funexpr/internal/diagnostics"
)

type Interpreter struct {
	logger   *slog.Logger
	registry StandardFunctionRegistry
}

// New creates an interpreter. registry may be nil when no standard functions
// are available.
func New(logger *slog.Logger, registry StandardFunctionRegistry) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{logger: logger, registry: registry}
}

// EvaluateExpression evaluates expr against env and returns the resulting
// value. The per-call interpretation environment never escapes this call.
func (i *Interpreter) EvaluateExpression(expr ast.Expression, env EvaluationEnvironment) (any, error) {
	if expr == nil {
		return nil, nil
	}
	return i.evaluate(expr, env, newInterpretationEnvironment(), 0)
}

func (i *Interpreter) evaluate(
	expr ast.Expression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (any, error) {
	if depth > config.MaxEvaluationDepth {
		return nil, i.errorAt(diagnostics.ErrInternal, expr, "maximum evaluation depth of %d exceeded", config.MaxEvaluationDepth)
	}

	vi := env.ValueInterpreter()

	switch e := expr.(type) {
	case *ast.ProgramExpression:
		var lastValue any
		for _, line := range e.Lines {
			value, err := i.evaluate(line, env, itp, depth+1)
			if err != nil {
				return nil, err
			}
			lastValue = value
		}
		// The return value of a program is the return value of its last line
		return lastValue, nil

	case *ast.LongExpression:
		return e.Value, nil

	case *ast.DoubleExpression:
		return e.Value, nil

	case *ast.StringExpression:
		return vi.AsString(e.Value), nil

	case *ast.LiteralExpression:
		switch e.Kind {
		case ast.LITERAL_TRUE:
			return true, nil
		case ast.LITERAL_FALSE:
			return false, nil
		default:
			return nil, nil
		}

	case *ast.IdentifierExpression:
		return i.lookupVariable(env, itp, e)

	case *ast.FunctionInvocationExpression:
		return i.evaluateInvocation(e, env, itp, depth)

	case *ast.CallbackExpression:
		return newCallbackFunction(i, e, env, itp), nil

	case *ast.IfThenElseExpression:
		condition, err := i.evaluate(e.Condition, env, itp, depth+1)
		if err != nil {
			return nil, err
		}
		if vi.AsBoolean(condition) {
			return i.evaluate(e.PositiveBody, env, itp, depth+1)
		}
		return i.evaluate(e.NegativeBody, env, itp, depth+1)

	case *ast.MemberAccessExpression:
		return i.evaluateMemberAccess(e, env, itp, depth)

	case *ast.IndexExpression:
		return i.evaluateIndex(e, env, itp, depth)

	case *ast.AssignmentExpression:
		return i.evaluateAssignment(e, env, itp, depth)

	case *ast.MathExpression:
		lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
		if err != nil {
			return nil, err
		}
		return vi.PerformMath(lhs, rhs, e.Operation), nil

	case *ast.EqualityExpression:
		lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
		if err != nil {
			return nil, err
		}
		strict := e.Operation == ast.EQUALITY_EQUAL_EXACT || e.Operation == ast.EQUALITY_NOT_EQUAL_EXACT
		equal := vi.AreEqual(lhs, rhs, strict)
		if e.Operation == ast.EQUALITY_NOT_EQUAL || e.Operation == ast.EQUALITY_NOT_EQUAL_EXACT {
			return !equal, nil
		}
		return equal, nil

	case *ast.ComparisonExpression:
		lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
		if err != nil {
			return nil, err
		}
		cmp := vi.Compare(lhs, rhs)
		switch e.Operation {
		case ast.COMPARE_LESS_THAN:
			return cmp < 0, nil
		case ast.COMPARE_LESS_THAN_OR_EQUAL:
			return cmp <= 0, nil
		case ast.COMPARE_GREATER_THAN:
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}

	// Conjunction and disjunction evaluate both sides unconditionally;
	// only ?? and if-then-else short-circuit.
	case *ast.ConjunctionExpression:
		lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
		if err != nil {
			return nil, err
		}
		return vi.AsBoolean(lhs) && vi.AsBoolean(rhs), nil

	case *ast.DisjunctionExpression:
		lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
		if err != nil {
			return nil, err
		}
		return vi.AsBoolean(lhs) || vi.AsBoolean(rhs), nil

	case *ast.ConcatenationExpression:
		lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
		if err != nil {
			return nil, err
		}
		return vi.AsString(lhs) + vi.AsString(rhs), nil

	case *ast.NullCoalesceExpression:
		lhs, err := i.evaluate(e.LHS, env, itp, depth+1)
		if err != nil {
			return nil, err
		}
		if lhs != nil {
			return lhs, nil
		}
		return i.evaluate(e.RHS, env, itp, depth+1)

	case *ast.InvertExpression:
		input, err := i.evaluate(e.Input, env, itp, depth+1)
		if err != nil {
			return nil, err
		}
		return !vi.AsBoolean(input), nil

	case *ast.FlipSignExpression:
		input, err := i.evaluate(e.Input, env, itp, depth+1)
		if err != nil {
			return nil, err
		}
		if vi.HasDecimalPoint(input) {
			return -vi.AsDouble(input), nil
		}
		return -vi.AsLong(input), nil

	default:
		return nil, i.errorAt(diagnostics.ErrInternal, expr, "cannot evaluate unknown expression type %T", expr)
	}
}

func (i *Interpreter) evaluateOperands(
	lhsExpr, rhsExpr ast.Expression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (any, any, error) {
	lhs, err := i.evaluate(lhsExpr, env, itp, depth+1)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := i.evaluate(rhsExpr, env, itp, depth+1)
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func (i *Interpreter) evaluateAssignment(
	e *ast.AssignmentExpression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (any, error) {
	rhs, err := i.evaluate(e.Value, env, itp, depth+1)
	if err != nil {
		return nil, err
	}

	symbol := strings.ToLower(e.Target.Symbol)

	if fn, isFunction := rhs.(Function); isFunction {
		inUse := itp.functions[symbol] != nil
		if _, exists := env.Functions()[symbol]; exists {
			inUse = true
		}
		if i.registry != nil && i.registry.Lookup(symbol) != nil {
			inUse = true
		}
		if inUse {
			return nil, i.errorAt(diagnostics.ErrIdentifierInUse, e.Target, "function name %q is already in use", e.Target.Symbol)
		}

		i.logger.Debug("storing function in interpretation environment", "symbol", symbol)
		itp.functions[symbol] = fn
		return rhs, nil
	}

	_, inStatic := env.StaticVariables()[symbol]
	_, inLive := env.LiveVariables()[symbol]
	_, inScratch := itp.variables[symbol]
	if inStatic || inLive || inScratch {
		return nil, i.errorAt(diagnostics.ErrIdentifierInUse, e.Target, "variable name %q is already in use", e.Target.Symbol)
	}

	i.logger.Debug("storing variable in interpretation environment", "symbol", symbol)
	itp.variables[symbol] = rhs

	// Assignments always yield their assigned value
	return rhs, nil
}

func (i *Interpreter) evaluateMemberAccess(
	e *ast.MemberAccessExpression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (any, error) {
	value, err := i.evaluate(e.LHS, env, itp, depth+1)
	if err != nil {
		return nil, err
	}

	var fieldName string
	if identifier, ok := e.RHS.(*ast.IdentifierExpression); ok {
		fieldName = identifier.Symbol
	} else {
		nameValue, err := i.evaluate(e.RHS, env, itp, depth+1)
		if err != nil {
			return nil, err
		}
		fieldName = env.ValueInterpreter().AsString(nameValue)
	}

	// Cannot access any members of null
	if value == nil {
		if e.Optional {
			return nil, nil
		}
		return nil, i.errorAt(diagnostics.ErrUnknownMember, e, "cannot access member %q of null", fieldName)
	}

	switch container := value.(type) {
	case FieldSource:
		if field, ok := container.GetField(fieldName); ok {
			return field, nil
		}

	case map[string]any:
		for key, field := range container {
			if strings.EqualFold(key, fieldName) {
				return field, nil
			}
		}
	}

	if e.Optional {
		return nil, nil
	}

	return nil, i.errorAt(diagnostics.ErrUnknownMember, e, "value has no member %q", fieldName)
}

func (i *Interpreter) evaluateIndex(
	e *ast.IndexExpression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (any, error) {
	lhs, rhs, err := i.evaluateOperands(e.LHS, e.RHS, env, itp, depth)
	if err != nil {
		return nil, err
	}

	vi := env.ValueInterpreter()

	if lhs == nil {
		if e.Optional {
			return nil, nil
		}
		return nil, i.errorAt(diagnostics.ErrNonIndexableValue, e, "cannot index into null")
	}

	switch container := lhs.(type) {
	case []any:
		key := vi.AsLong(rhs)
		if key < 0 || key >= int64(len(container)) {
			if e.Optional {
				return nil, nil
			}
			return nil, i.errorAt(diagnostics.ErrInvalidIndex, e, "index %d out of bounds for length %d", key, len(container))
		}
		return container[key], nil

	case map[string]any:
		key := vi.AsString(rhs)
		value, exists := container[key]
		if !exists {
			if e.Optional {
				return nil, nil
			}
			return nil, i.errorAt(diagnostics.ErrInvalidMapKey, e, "map has no key %q", key)
		}
		return value, nil

	default:
		return nil, i.errorAt(diagnostics.ErrNonIndexableValue, e, "cannot index into a value of type %T", lhs)
	}
}

// lookupVariable resolves an identifier through static variables, then live
// variables, then the interpretation environment's assignments.
func (i *Interpreter) lookupVariable(
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	identifier *ast.IdentifierExpression,
) (any, error) {
	symbol := strings.ToLower(identifier.Symbol)

	if value, exists := env.StaticVariables()[symbol]; exists {
		return value, nil
	}

	if producer, exists := env.LiveVariables()[symbol]; exists && producer != nil {
		return producer(), nil
	}

	if value, exists := itp.variables[symbol]; exists {
		return value, nil
	}

	return nil, i.errorAt(diagnostics.ErrUndefinedVariable, identifier, "undefined variable %q", identifier.Symbol)
}

// lookupFunction resolves an identifier through the standard registry, then
// the environment's functions, then the interpretation environment's. A nil
// result lets the caller decide between optional-call null and an error.
func (i *Interpreter) lookupFunction(
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	identifier *ast.IdentifierExpression,
) Function {
	symbol := strings.ToLower(identifier.Symbol)

	if i.registry != nil {
		if fn := i.registry.Lookup(symbol); fn != nil {
			return fn
		}
	}

	if fn, exists := env.Functions()[symbol]; exists {
		return fn
	}

	if fn, exists := itp.functions[symbol]; exists {
		return fn
	}

	return nil
}

func (i *Interpreter) errorAt(code diagnostics.Code, expr ast.Expression, format string, args ...any) *diagnostics.Error {
	head := expr.HeadToken()
	return diagnostics.New(code, head.Row, head.Col, expr.SourceText(), format, args...)
}
