// Package pipeline sequences the processing stages shared by the CLI and
// the embedding API: tokenize+parse, then evaluate.
package pipeline

import (
	"log/slog"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/interpreter"
	"github.com/funvibe/funexpr/internal/parser"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

// Context flows through the stages, accumulating results. A stage that
// encounters an error records it; later stages skip themselves.
type Context struct {
	Source string
	Logger *slog.Logger

	Program *ast.ProgramExpression
	Result  any

	Err error
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// ParseProcessor tokenizes and parses ctx.Source into ctx.Program. The
// tokenizer is pull-driven by the parser, so both run as one stage.
type ParseProcessor struct {
	Parser *parser.Parser
}

func (p *ParseProcessor) Process(ctx *Context) *Context {
	if ctx.Err != nil {
		return ctx
	}

	program, err := p.Parser.Parse(tokenizer.New(ctx.Logger, ctx.Source))
	if err != nil {
		ctx.Err = err
		return ctx
	}

	ctx.Program = program
	return ctx
}

// EvaluateProcessor evaluates ctx.Program into ctx.Result.
type EvaluateProcessor struct {
	Interpreter *interpreter.Interpreter
	Environment interpreter.EvaluationEnvironment
}

func (p *EvaluateProcessor) Process(ctx *Context) *Context {
	if ctx.Err != nil || ctx.Program == nil {
		return ctx
	}

	result, err := p.Interpreter.EvaluateExpression(ctx.Program, p.Environment)
	if err != nil {
		ctx.Err = err
		return ctx
	}

	ctx.Result = result
	return ctx
}
