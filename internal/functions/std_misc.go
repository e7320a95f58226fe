package functions

import (
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/funexpr/internal/interpreter"
)

// dateFormatFunction formats a unix timestamp (seconds) with a Go reference
// layout, in UTC.
func dateFormatFunction() interpreter.Function {
	return &standardFunction{
		name: "date_format",
		args: []interpreter.Argument{
			{Name: "timestamp", Description: "unix timestamp in seconds", Required: true, Check: isNumeric, TypeName: "a number"},
			{Name: "format", Description: "reference layout, e.g. 2006-01-02", Required: true, Check: isNonEmptyString, TypeName: "a non-empty string"},
		},
		apply: func(env interpreter.EvaluationEnvironment, args []any) (any, error) {
			timestamp := env.ValueInterpreter().AsLong(args[0])
			layout := args[1].(string)
			return time.Unix(timestamp, 0).UTC().Format(layout), nil
		},
	}
}

func uuidFunction() interpreter.Function {
	return &standardFunction{
		name: "uuid",
		args: []interpreter.Argument{},
		apply: func(_ interpreter.EvaluationEnvironment, _ []any) (any, error) {
			return uuid.NewString(), nil
		},
	}
}
