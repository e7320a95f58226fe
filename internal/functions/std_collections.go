package functions

import (
	"github.com/funvibe/funexpr/internal/interpreter"
)

func lenFunction() interpreter.Function {
	return &standardFunction{
		name: "len",
		args: []interpreter.Argument{
			{Name: "value", Description: "string, list or map to measure", Required: true},
		},
		apply: func(_ interpreter.EvaluationEnvironment, args []any) (any, error) {
			switch v := args[0].(type) {
			case string:
				return int64(len([]rune(v))), nil
			case []any:
				return int64(len(v)), nil
			case map[string]any:
				return int64(len(v)), nil
			default:
				return nil, &interpreter.InvocationError{ArgumentIndex: 0, Message: "value has no length"}
			}
		},
	}
}

// rangeFunction yields the inclusive integer sequence start..end; an empty
// list when start exceeds end.
func rangeFunction() interpreter.Function {
	return &standardFunction{
		name: "range",
		args: []interpreter.Argument{
			{Name: "start", Description: "first value", Required: true, Check: isNumeric, TypeName: "a number"},
			{Name: "end", Description: "last value", Required: true, Check: isNumeric, TypeName: "a number"},
		},
		apply: func(env interpreter.EvaluationEnvironment, args []any) (any, error) {
			vi := env.ValueInterpreter()
			start, end := vi.AsLong(args[0]), vi.AsLong(args[1])

			if start > end {
				return []any{}, nil
			}

			result := make([]any, 0, end-start+1)
			for value := start; value <= end; value++ {
				result = append(result, value)
			}
			return result, nil
		},
	}
}

// flattenFunction is variadic: list arguments contribute their elements,
// everything else contributes itself.
func flattenFunction() interpreter.Function {
	return &standardFunction{
		name: "flatten",
		args: nil,
		apply: func(_ interpreter.EvaluationEnvironment, args []any) (any, error) {
			var result []any
			for _, arg := range args {
				if list, ok := arg.([]any); ok {
					result = append(result, list...)
					continue
				}
				result = append(result, arg)
			}
			if result == nil {
				result = []any{}
			}
			return result, nil
		},
	}
}
