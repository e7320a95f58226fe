package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles renders results and errors, plain when stdout is not a terminal.
type styles struct {
	enabled bool
	result  lipgloss.Style
	err     lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles(colorWanted bool) *styles {
	enabled := colorWanted &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	return &styles{
		enabled: enabled,
		result:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (s *styles) renderResult(text string) string {
	if !s.enabled {
		return text
	}
	return s.result.Render(text)
}

func (s *styles) renderError(err error) string {
	if !s.enabled {
		return err.Error()
	}
	return s.err.Render(err.Error())
}

func (s *styles) renderPrompt(text string) string {
	if !s.enabled {
		return text
	}
	return s.prompt.Render(text)
}
