// Package cli implements the funexpr command line: one-shot evaluation of
// expression text or files, and an interactive REPL.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/funvibe/funexpr/internal/config"
	"github.com/funvibe/funexpr/internal/interpreter"
	"github.com/funvibe/funexpr/internal/parser"
	"github.com/funvibe/funexpr/internal/pipeline"
	"github.com/funvibe/funexpr/pkg/embed"
)

// Globals are the flags shared by every subcommand.
type Globals struct {
	LogLevel string `help:"Log level for core debug tracing." enum:"debug,info,warn,error" default:"warn"`
	Env      string `help:"Environment file with static variables (YAML)." type:"path"`
	NoColor  bool   `help:"Disable styled output."`
}

// CLI is the kong command grammar.
type CLI struct {
	Globals

	Eval EvalCmd `cmd:"" help:"Evaluate an expression string or source file."`
	Repl ReplCmd `cmd:"" default:"1" help:"Start an interactive session."`
}

// Logger builds the slog logger the core components trace through.
func (g *Globals) Logger() *slog.Logger {
	var level slog.Level
	switch g.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// runtime bundles everything a command needs to evaluate source text.
type runtime struct {
	logger      *slog.Logger
	parser      *parser.Parser
	interpreter *interpreter.Interpreter
	environment *embed.Environment
	styles      *styles
}

// newRuntime assembles parser, interpreter and the environment described by
// the optional environment file. Without --env, a funexpr.yaml in the
// working directory is picked up when present.
func newRuntime(g *Globals) (*runtime, error) {
	logger := g.Logger()

	envPath := g.Env
	if envPath == "" {
		if _, err := os.Stat(config.DefaultEnvironmentFile); err == nil {
			envPath = config.DefaultEnvironmentFile
		}
	}

	envFile, err := loadEnvironmentFile(envPath)
	if err != nil {
		return nil, err
	}

	return &runtime{
		logger:      logger,
		parser:      parser.New(logger),
		interpreter: interpreter.New(logger, envFile.buildRegistry()),
		environment: envFile.buildEnvironment(),
		styles:      newStyles(!g.NoColor),
	}, nil
}

// evaluate runs the parse+evaluate pipeline over one source text.
func (r *runtime) evaluate(source string) (any, error) {
	ctx := pipeline.New(
		&pipeline.ParseProcessor{Parser: r.parser},
		&pipeline.EvaluateProcessor{Interpreter: r.interpreter, Environment: r.environment},
	).Run(&pipeline.Context{Source: source, Logger: r.logger})

	return ctx.Result, ctx.Err
}

// EvalCmd evaluates a single expression and prints the result.
type EvalCmd struct {
	Expression string `short:"e" help:"Expression text to evaluate."`
	File       string `arg:"" optional:"" type:"existingfile" help:"Expression source file."`
}

func (c *EvalCmd) Run(g *Globals) error {
	source := c.Expression

	if source == "" {
		if c.File == "" {
			return fmt.Errorf("nothing to evaluate: pass -e or a source file")
		}
		content, err := os.ReadFile(c.File)
		if err != nil {
			return err
		}
		source = strings.TrimRight(string(content), "\n")
	}

	r, err := newRuntime(g)
	if err != nil {
		return err
	}

	result, err := r.evaluate(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, r.styles.renderError(err))
		os.Exit(1)
	}

	fmt.Println(r.styles.renderResult(interpreter.DefaultValueInterpreter.AsString(result)))
	return nil
}
