// Package embed is the host-facing API: parse an expression once, evaluate
// it many times against different environments.
package embed

import (
	"log/slog"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/functions"
	"github.com/funvibe/funexpr/internal/interpreter"
	"github.com/funvibe/funexpr/internal/parser"
	"github.com/funvibe/funexpr/internal/prettyprinter"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

// Program is a parsed expression. It is immutable and safe to evaluate
// concurrently, provided each evaluation supplies its own environment and
// the value interpreter is thread safe.
type Program struct {
	root   *ast.ProgramExpression
	source string
}

// Source returns the raw text the program was parsed from.
func (p *Program) Source() string {
	return p.source
}

// Expressionify renders the program back to equivalent source text.
func (p *Program) Expressionify() string {
	return prettyprinter.Expressionify(p.root)
}

// Evaluator owns a parser, an interpreter and a standard function registry.
type Evaluator struct {
	logger      *slog.Logger
	parser      *parser.Parser
	interpreter *interpreter.Interpreter
	registry    *functions.Registry
}

// Option configures an Evaluator.
type Option func(*evaluatorConfig)

type evaluatorConfig struct {
	logger   *slog.Logger
	registry *functions.Registry
}

// WithLogger routes the core's debug logging through the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *evaluatorConfig) { c.logger = logger }
}

// WithRegistry replaces the standard function registry.
func WithRegistry(registry *functions.Registry) Option {
	return func(c *evaluatorConfig) { c.registry = registry }
}

func New(options ...Option) *Evaluator {
	cfg := &evaluatorConfig{}
	for _, option := range options {
		option(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.registry == nil {
		cfg.registry = functions.NewStandardRegistry()
	}

	return &Evaluator{
		logger:      cfg.logger,
		parser:      parser.New(cfg.logger),
		interpreter: interpreter.New(cfg.logger, cfg.registry),
		registry:    cfg.registry,
	}
}

// Registry exposes the evaluator's standard function registry so hosts can
// register additional functions.
func (e *Evaluator) Registry() *functions.Registry {
	return e.registry
}

// Parse turns source text into a reusable program.
func (e *Evaluator) Parse(source string) (*Program, error) {
	root, err := e.parser.Parse(tokenizer.New(e.logger, source))
	if err != nil {
		return nil, err
	}
	return &Program{root: root, source: source}, nil
}

// Evaluate runs a parsed program against an environment.
func (e *Evaluator) Evaluate(program *Program, env *Environment) (any, error) {
	return e.interpreter.EvaluateExpression(program.root, env)
}

// EvaluateString parses and evaluates in one step, for one-shot use.
func (e *Evaluator) EvaluateString(source string, env *Environment) (any, error) {
	program, err := e.Parse(source)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(program, env)
}
