package embed

import (
	"strings"

	"github.com/funvibe/funexpr/internal/interpreter"
)

// Environment implements interpreter.EvaluationEnvironment. Build one with
// NewEnvironmentBuilder; symbols are normalized to lowercase so resolution
// is case-insensitive.
type Environment struct {
	staticVariables  map[string]any
	liveVariables    map[string]func() any
	functions        map[string]interpreter.Function
	valueInterpreter interpreter.ValueInterpreter
}

func (e *Environment) StaticVariables() map[string]any {
	return e.staticVariables
}

func (e *Environment) LiveVariables() map[string]func() any {
	return e.liveVariables
}

func (e *Environment) Functions() map[string]interpreter.Function {
	return e.functions
}

func (e *Environment) ValueInterpreter() interpreter.ValueInterpreter {
	return e.valueInterpreter
}

// EnvironmentBuilder assembles an Environment. Host values pass through the
// marshaller, so structs, slices and maps become expression-friendly.
type EnvironmentBuilder struct {
	env *Environment
}

func NewEnvironmentBuilder() *EnvironmentBuilder {
	return &EnvironmentBuilder{
		env: &Environment{
			staticVariables:  make(map[string]any),
			liveVariables:    make(map[string]func() any),
			functions:        make(map[string]interpreter.Function),
			valueInterpreter: interpreter.DefaultValueInterpreter,
		},
	}
}

func (b *EnvironmentBuilder) WithStaticVariable(name string, value any) *EnvironmentBuilder {
	b.env.staticVariables[strings.ToLower(name)] = ToRuntimeValue(value)
	return b
}

func (b *EnvironmentBuilder) WithLiveVariable(name string, producer func() any) *EnvironmentBuilder {
	b.env.liveVariables[strings.ToLower(name)] = func() any {
		return ToRuntimeValue(producer())
	}
	return b
}

func (b *EnvironmentBuilder) WithFunction(name string, fn interpreter.Function) *EnvironmentBuilder {
	b.env.functions[strings.ToLower(name)] = fn
	return b
}

// WithGoFunction wraps a plain Go function as a variadic expression
// function with unchecked arguments.
func (b *EnvironmentBuilder) WithGoFunction(name string, fn func(args []any) (any, error)) *EnvironmentBuilder {
	return b.WithFunction(name, &goFunction{fn: fn})
}

func (b *EnvironmentBuilder) WithValueInterpreter(vi interpreter.ValueInterpreter) *EnvironmentBuilder {
	b.env.valueInterpreter = vi
	return b
}

func (b *EnvironmentBuilder) Build() *Environment {
	return b.env
}

// goFunction adapts a Go closure to the expression function contract.
type goFunction struct {
	fn func(args []any) (any, error)
}

func (g *goFunction) Arguments() []interpreter.Argument {
	return nil
}

func (g *goFunction) ValidateArguments(interpreter.ValueInterpreter, []any) error {
	return nil
}

func (g *goFunction) Apply(_ interpreter.EvaluationEnvironment, args []any) (any, error) {
	result, err := g.fn(args)
	if err != nil {
		return nil, err
	}
	return ToRuntimeValue(result), nil
}
