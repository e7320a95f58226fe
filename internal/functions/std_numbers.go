package functions

import (
	"github.com/funvibe/funexpr/internal/interpreter"
)

func minFunction() interpreter.Function {
	return &standardFunction{
		name: "min",
		args: []interpreter.Argument{
			{Name: "a", Description: "first value", Required: true, Check: isNumeric, TypeName: "a number"},
			{Name: "b", Description: "second value", Required: true, Check: isNumeric, TypeName: "a number"},
		},
		apply: func(env interpreter.EvaluationEnvironment, args []any) (any, error) {
			if env.ValueInterpreter().Compare(args[0], args[1]) <= 0 {
				return args[0], nil
			}
			return args[1], nil
		},
	}
}

func maxFunction() interpreter.Function {
	return &standardFunction{
		name: "max",
		args: []interpreter.Argument{
			{Name: "a", Description: "first value", Required: true, Check: isNumeric, TypeName: "a number"},
			{Name: "b", Description: "second value", Required: true, Check: isNumeric, TypeName: "a number"},
		},
		apply: func(env interpreter.EvaluationEnvironment, args []any) (any, error) {
			if env.ValueInterpreter().Compare(args[0], args[1]) >= 0 {
				return args[0], nil
			}
			return args[1], nil
		},
	}
}
