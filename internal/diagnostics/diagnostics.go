// Package diagnostics defines the error taxonomy shared by the tokenizer,
// the parser and the interpreter. Every error carries a zero-based source
// position so hosts can quote the offending span.
package diagnostics

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a kind of evaluator error.
type Code string

const (
	// Lexical
	ErrUnknownToken       Code = "T001"
	ErrUnterminatedString Code = "T002"

	// Syntactic
	ErrUnexpectedToken Code = "P001"

	// Semantic
	ErrUndefinedVariable             Code = "I001"
	ErrUndefinedFunction             Code = "I002"
	ErrUndefinedFunctionArgumentName Code = "I003"
	ErrNonNamedFunctionArgument      Code = "I004"
	ErrIdentifierInUse               Code = "I005"
	ErrUnknownMember                 Code = "I006"
	ErrInvalidIndex                  Code = "I007"
	ErrInvalidMapKey                 Code = "I008"
	ErrNonIndexableValue             Code = "I009"
	ErrInvalidFunctionInvocation     Code = "I010"
	ErrInvalidFunctionArgumentType   Code = "I011"

	// Internal
	ErrInternal Code = "X001"
)

// Error is the single error value produced by the evaluator core.
type Error struct {
	Code    Code
	Row     int
	Col     int
	Message string
	Source  string
}

func New(code Code, row, col int, source, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Row:     row,
		Col:     col,
		Message: fmt.Sprintf(format, args...),
		Source:  source,
	}
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %d:%d: %s", e.Code, e.Row+1, e.Col+1, e.Message)

	if excerpt := e.excerpt(); excerpt != "" {
		sb.WriteString("\n")
		sb.WriteString(excerpt)
	}

	return sb.String()
}

// excerpt renders the offending source line with a column marker.
func (e *Error) excerpt() string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if e.Row < 0 || e.Row >= len(lines) {
		return ""
	}

	line := lines[e.Row]
	col := e.Col
	if col > len(line) {
		col = len(line)
	}

	return line + "\n" + strings.Repeat(" ", col) + "^"
}

// IsCode reports whether err is (or wraps) an evaluator error with the given code.
func IsCode(err error, code Code) bool {
	var evalErr *Error
	if errors.As(err, &evalErr) {
		return evalErr.Code == code
	}
	return false
}
