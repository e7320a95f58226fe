package functions

import (
	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/interpreter"
)

// standardFunction couples declared arguments with an apply body. Argument
// validation is shared: required arguments must be non-null and typed
// arguments must pass their check.
type standardFunction struct {
	name  string
	args  []interpreter.Argument
	apply func(env interpreter.EvaluationEnvironment, args []any) (any, error)
}

func (f *standardFunction) Arguments() []interpreter.Argument {
	return f.args
}

func (f *standardFunction) Apply(env interpreter.EvaluationEnvironment, args []any) (any, error) {
	return f.apply(env, args)
}

func (f *standardFunction) ValidateArguments(_ interpreter.ValueInterpreter, args []any) error {
	for index, definition := range f.args {
		var value any
		if index < len(args) {
			value = args[index]
		}

		if value == nil {
			if definition.Required {
				return diagnostics.New(
					diagnostics.ErrInvalidFunctionArgumentType, 0, 0, "",
					"function %q requires argument %q at position %d", f.name, definition.Name, index,
				)
			}
			continue
		}

		if definition.Check != nil && !definition.Check(value) {
			return diagnostics.New(
				diagnostics.ErrInvalidFunctionArgumentType, 0, 0, "",
				"function %q argument %q expects %s", f.name, definition.Name, definition.TypeName,
			)
		}
	}

	return nil
}

func isString(value any) bool {
	_, ok := value.(string)
	return ok
}

func isNonEmptyString(value any) bool {
	s, ok := value.(string)
	return ok && s != ""
}

func isNumeric(value any) bool {
	_, ok := interpreter.DefaultValueInterpreter.TryParseNumber(value)
	return ok
}
