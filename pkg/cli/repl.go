package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/funexpr/internal/config"
	"github.com/funvibe/funexpr/internal/interpreter"
)

// ReplCmd runs an interactive session. Assignments persist between inputs
// by accumulating the session's successful lines into one growing program
// that is re-evaluated per input; the core itself stays stateless.
type ReplCmd struct{}

func (c *ReplCmd) Run(g *Globals) error {
	r, err := newRuntime(g)
	if err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFile()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println("funexpr — type an expression, ctrl-d to exit")

	var session []string

	for {
		input, err := line.Prompt(r.styles.renderPrompt("fx> "))
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		source := strings.Join(append(session, input), "\n")
		result, err := r.evaluate(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, r.styles.renderError(err))
			continue
		}

		// Only successful inputs become part of the session program
		session = append(session, input)
		fmt.Println(r.styles.renderResult(interpreter.DefaultValueInterpreter.AsString(result)))
	}

	if historyPath != "" {
		if f, err := os.Create(historyPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}

	return nil
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, config.HistoryFileName)
}
