package functions

import (
	"regexp"

	"github.com/funvibe/funexpr/internal/interpreter"
)

// splitFunction splits a string on a separator pattern, "," by default. The
// separator is a regular expression, so a literal pipe is "\\|".
func splitFunction() interpreter.Function {
	return &standardFunction{
		name: "split",
		args: []interpreter.Argument{
			{Name: "input", Description: "string to split", Required: true, Check: isNonEmptyString, TypeName: "a non-empty string"},
			{Name: "separator", Description: "separator pattern", Check: isNonEmptyString, TypeName: "a non-empty string"},
		},
		apply: func(_ interpreter.EvaluationEnvironment, args []any) (any, error) {
			input := args[0].(string)

			separator := ","
			if args[1] != nil {
				separator = args[1].(string)
			}

			pattern, err := regexp.Compile(separator)
			if err != nil {
				return nil, &interpreter.InvocationError{ArgumentIndex: 1, Message: "invalid separator pattern"}
			}

			parts := pattern.Split(input, -1)
			result := make([]any, len(parts))
			for i, part := range parts {
				result[i] = part
			}
			return result, nil
		},
	}
}

func strFunction() interpreter.Function {
	return &standardFunction{
		name: "str",
		args: []interpreter.Argument{
			{Name: "value", Description: "value to stringify"},
		},
		apply: func(env interpreter.EvaluationEnvironment, args []any) (any, error) {
			return env.ValueInterpreter().AsString(args[0]), nil
		},
	}
}

// substringFunction slices a string by rune offsets; end defaults to the
// string length. A negative start clamps to 0 and an end past the string
// clamps to its length; a start past the end is an invocation error.
func substringFunction() interpreter.Function {
	return &standardFunction{
		name: "substring",
		args: []interpreter.Argument{
			{Name: "input", Description: "string to slice", Required: true, Check: isString, TypeName: "a string"},
			{Name: "start", Description: "start offset", Required: true, Check: isNumeric, TypeName: "a number"},
			{Name: "end", Description: "end offset", Check: isNumeric, TypeName: "a number"},
		},
		apply: func(env interpreter.EvaluationEnvironment, args []any) (any, error) {
			vi := env.ValueInterpreter()
			runes := []rune(args[0].(string))

			start := vi.AsLong(args[1])
			end := int64(len(runes))
			if args[2] != nil {
				end = vi.AsLong(args[2])
			}

			if start < 0 {
				start = 0
			}
			if end > int64(len(runes)) {
				end = int64(len(runes))
			}
			if start > end {
				return nil, &interpreter.InvocationError{ArgumentIndex: 1, Message: "start offset is past the end offset"}
			}

			return string(runes[start:end]), nil
		},
	}
}
