package interpreter

import (
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
)

// callbackFunction is the callable produced by evaluating a callback
// expression. It owns a snapshot of the static variables taken at capture
// time; there is no shared-mutable back-reference to the defining
// environment.
type callbackFunction struct {
	interp   *Interpreter
	node     *ast.CallbackExpression
	captured EvaluationEnvironment
	statics  map[string]any
	itp      *InterpretationEnvironment
}

func newCallbackFunction(
	interp *Interpreter,
	node *ast.CallbackExpression,
	env EvaluationEnvironment,
	itp *InterpretationEnvironment,
) *callbackFunction {
	statics := make(map[string]any, len(env.StaticVariables()))
	for symbol, value := range env.StaticVariables() {
		statics[symbol] = value
	}

	return &callbackFunction{
		interp:   interp,
		node:     node,
		captured: env,
		statics:  statics,
		itp:      itp,
	}
}

// Arguments is nil: callbacks accept any number of positional arguments and
// reject named ones.
func (c *callbackFunction) Arguments() []Argument {
	return nil
}

func (c *callbackFunction) ValidateArguments(ValueInterpreter, []any) error {
	return nil
}

func (c *callbackFunction) Apply(_ EvaluationEnvironment, args []any) (any, error) {
	// Extend the captured static variables by the signature bindings,
	// position-matched; missing arguments become null
	combined := make(map[string]any, len(c.statics)+len(c.node.Signature))
	for symbol, value := range c.statics {
		combined[symbol] = value
	}

	for index, identifier := range c.node.Signature {
		var value any
		if index < len(args) {
			value = args[index]
		}
		combined[strings.ToLower(identifier.Symbol)] = value
	}

	wrapped := &callbackEnvironment{base: c.captured, statics: combined}

	return c.interp.evaluate(c.node.Body, wrapped, c.itp, 0)
}

// callbackEnvironment extends the defining environment's static variables
// with a callback's bound arguments; everything else passes through.
type callbackEnvironment struct {
	base    EvaluationEnvironment
	statics map[string]any
}

func (c *callbackEnvironment) StaticVariables() map[string]any {
	return c.statics
}

func (c *callbackEnvironment) LiveVariables() map[string]func() any {
	return c.base.LiveVariables()
}

func (c *callbackEnvironment) Functions() map[string]Function {
	return c.base.Functions()
}

func (c *callbackEnvironment) ValueInterpreter() ValueInterpreter {
	return c.base.ValueInterpreter()
}
