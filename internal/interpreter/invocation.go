package interpreter

import (
	"errors"
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/diagnostics"
)

func (i *Interpreter) evaluateInvocation(
	e *ast.FunctionInvocationExpression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (any, error) {
	fn, err := i.resolveCallee(e, env, itp, depth)
	if err != nil {
		return nil, err
	}

	// Function does not exist within the current environment
	if fn == nil {
		if e.Optional {
			i.logger.Debug("function not found, optional call yields null", "symbol", invocationName(e))
			return nil, nil
		}
		return nil, i.errorAt(diagnostics.ErrUndefinedFunction, e, "undefined function %q", invocationName(e))
	}

	argDefinitions := fn.Arguments()

	var arguments []any

	// With declared arguments available, pad the list with nulls so named
	// arguments can land at their slot
	if argDefinitions != nil {
		arguments = make([]any, len(argDefinitions))
	}

	encounteredNamedArgument := false
	nonNamedArgCounter := 0

	// Evaluate and bind all arguments, left to right
	for _, argument := range e.Arguments {
		argumentValue, err := i.evaluate(argument.Value, env, itp, depth+1)
		if err != nil {
			return nil, err
		}

		// Declared arguments exist and this argument carries a name
		if argDefinitions != nil && argument.Name != nil {
			encounteredNamedArgument = true

			foundMatch := false
			for index, definition := range argDefinitions {
				if !strings.EqualFold(definition.Name, argument.Name.Symbol) {
					continue
				}
				arguments[index] = argumentValue
				foundMatch = true
				break
			}

			if foundMatch {
				continue
			}

			return nil, i.errorAt(
				diagnostics.ErrUndefinedFunctionArgumentName, argument.Name,
				"function %q has no argument named %q", invocationName(e), argument.Name.Symbol,
			)
		}

		// A positional argument may not follow a named argument
		if encounteredNamedArgument {
			return nil, i.errorAt(
				diagnostics.ErrNonNamedFunctionArgument, argument.Value,
				"positional argument after named argument in call to %q", invocationName(e),
			)
		}

		// No declarations provided: variadic of unchecked type. Named
		// arguments cannot be matched against anything and are rejected.
		if argDefinitions == nil {
			if argument.Name != nil {
				return nil, i.errorAt(
					diagnostics.ErrUndefinedFunctionArgumentName, argument.Name,
					"function %q does not accept named arguments", invocationName(e),
				)
			}
			arguments = append(arguments, argumentValue)
			continue
		}

		// Fill the next positional slot; surplus positional arguments to a
		// fully declared function are dropped
		if nonNamedArgCounter < len(arguments) {
			arguments[nonNamedArgCounter] = argumentValue
			nonNamedArgCounter++
		}
	}

	// Let the function validate its invocation before performing the call
	if err := i.validateInvocation(fn, e, env, arguments); err != nil {
		return nil, err
	}

	result, err := fn.Apply(env, arguments)
	if err != nil {
		var invocationErr *InvocationError
		if errors.As(err, &invocationErr) {
			index := invocationErr.ArgumentIndex
			var value any
			if index >= 0 && index < len(arguments) {
				value = arguments[index]
			}
			return nil, i.errorAt(
				diagnostics.ErrInvalidFunctionInvocation, e,
				"invalid invocation of %q, argument %d (value %v): %s",
				invocationName(e), index, value, invocationErr.Message,
			)
		}
		return nil, err
	}

	i.logger.Debug("invoked function", "symbol", invocationName(e))
	return result, nil
}

// resolveCallee yields the function to invoke: a name lookup for identifier
// calls, or the evaluated callee expression for direct calls. A nil result
// with no error means "not found / null callee".
func (i *Interpreter) resolveCallee(
	e *ast.FunctionInvocationExpression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
	depth int,
) (Function, error) {
	if e.Name != nil {
		return i.lookupFunction(env, itp, e.Name), nil
	}

	callee, err := i.evaluate(e.Callee, env, itp, depth+1)
	if err != nil {
		return nil, err
	}

	if callee == nil {
		return nil, nil
	}

	fn, ok := callee.(Function)
	if !ok {
		return nil, i.errorAt(diagnostics.ErrUndefinedFunction, e, "expression does not evaluate to a callable value")
	}

	return fn, nil
}

func invocationName(e *ast.FunctionInvocationExpression) string {
	if e.Name != nil {
		return e.Name.Symbol
	}
	return "<callee expression>"
}

func (i *Interpreter) validateInvocation(
	fn Function,
	e *ast.FunctionInvocationExpression,
	env EvaluationEnvironment,
	arguments []any,
) error {
	err := fn.ValidateArguments(env.ValueInterpreter(), arguments)
	if err == nil {
		return nil
	}

	// Attach the call site to position-less validation errors
	var evalErr *diagnostics.Error
	if errors.As(err, &evalErr) {
		if evalErr.Source == "" {
			head := e.HeadToken()
			evalErr.Row, evalErr.Col = head.Row, head.Col
			evalErr.Source = e.SourceText()
		}
		return evalErr
	}

	return i.errorAt(diagnostics.ErrInvalidFunctionArgumentType, e, "%s", err.Error())
}
