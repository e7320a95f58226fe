// Package functions ships the standard function library and its registry.
// Standard functions resolve first during function lookup, before any
// caller-provided functions.
package functions

import (
	"strings"

	"github.com/funvibe/funexpr/internal/interpreter"
)

// Registry implements interpreter.StandardFunctionRegistry.
type Registry struct {
	functions map[string]interpreter.Function
}

// NewStandardRegistry returns a registry preloaded with the full standard
// library.
func NewStandardRegistry() *Registry {
	r := &Registry{functions: make(map[string]interpreter.Function)}

	r.Register("split", splitFunction())
	r.Register("len", lenFunction())
	r.Register("str", strFunction())
	r.Register("substring", substringFunction())
	r.Register("range", rangeFunction())
	r.Register("flatten", flattenFunction())
	r.Register("min", minFunction())
	r.Register("max", maxFunction())
	r.Register("date_format", dateFormatFunction())
	r.Register("uuid", uuidFunction())

	return r
}

// NewEmptyRegistry returns a registry with no functions, for hosts that
// want full control over the available set.
func NewEmptyRegistry() *Registry {
	return &Registry{functions: make(map[string]interpreter.Function)}
}

func (r *Registry) Register(name string, fn interpreter.Function) {
	r.functions[strings.ToLower(name)] = fn
}

func (r *Registry) Lookup(symbol string) interpreter.Function {
	return r.functions[strings.ToLower(symbol)]
}

// Names returns the registered function names, unordered.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	return names
}
