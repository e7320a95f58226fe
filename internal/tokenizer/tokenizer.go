// Package tokenizer turns raw source text into a stream of tokens. The
// parser drives it pull-style through PeekToken/ConsumeToken and may save,
// restore and discard full tokenizer states for speculative reads.
package tokenizer

import (
	"log/slog"

	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/token"
)

// State is a full snapshot of the tokenizer's cursor. Copies are cheap and
// are pushed onto a LIFO stack by SaveState.
type State struct {
	charIndex int
	row       int
	col       int
	// colStack records the column count of every line already crossed so
	// that UndoNextChar over a newline restores col exactly.
	colStack      []int
	currentToken  *token.Token
	previousToken *token.Token
}

func (s *State) copy() *State {
	dup := *s
	dup.colStack = make([]int, len(s.colStack))
	copy(dup.colStack, s.colStack)
	return &dup
}

type Tokenizer struct {
	raw        string
	text       []rune
	logger     *slog.Logger
	state      *State
	saveStates []*State
}

func New(logger *slog.Logger, text string) *Tokenizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tokenizer{
		raw:    text,
		text:   []rune(text),
		logger: logger,
		state:  &State{},
	}
}

// RawText returns the full source this tokenizer was created with.
func (t *Tokenizer) RawText() string {
	return t.raw
}

func (t *Tokenizer) CurrentRow() int {
	return t.state.row
}

func (t *Tokenizer) CurrentCol() int {
	return t.state.col
}

//=========================================================================//
//                             Character cursor                            //
//=========================================================================//

func (t *Tokenizer) HasNextChar() bool {
	return t.state.charIndex < len(t.text)
}

// IsConsideredWhitespace reports whether c separates tokens within a line.
// Newlines are not whitespace per se but are consumed between tokens.
func (t *Tokenizer) IsConsideredWhitespace(c rune) bool {
	return c == ' ' || c == '\t'
}

func (t *Tokenizer) NextChar() rune {
	next := t.text[t.state.charIndex]
	t.state.charIndex++

	if next == '\n' {
		t.state.row++
		t.state.colStack = append(t.state.colStack, t.state.col)
		t.state.col = 0
	} else {
		t.state.col++
	}

	return next
}

// PreviousChar returns the character before the one most recently read, or
// zero if there is none.
func (t *Tokenizer) PreviousChar() rune {
	if t.state.charIndex < 2 {
		return 0
	}
	return t.text[t.state.charIndex-2]
}

func (t *Tokenizer) PeekNextChar() rune {
	return t.text[t.state.charIndex]
}

func (t *Tokenizer) UndoNextChar() {
	lastChar := t.text[t.state.charIndex-1]

	if lastChar == '\n' {
		t.state.row--
		t.state.col = t.state.colStack[len(t.state.colStack)-1]
		t.state.colStack = t.state.colStack[:len(t.state.colStack)-1]
	} else {
		t.state.col--
	}

	t.state.charIndex--
}

//=========================================================================//
//                               State stack                               //
//=========================================================================//

func (t *Tokenizer) SaveState() {
	t.saveStates = append(t.saveStates, t.state.copy())
	t.logger.Debug("saved tokenizer state", "depth", len(t.saveStates), "charIndex", t.state.charIndex)
}

func (t *Tokenizer) RestoreState() {
	depth := len(t.saveStates)
	t.state = t.saveStates[depth-1]
	t.saveStates = t.saveStates[:depth-1]
	t.logger.Debug("restored tokenizer state", "depth", depth, "charIndex", t.state.charIndex)
}

// DiscardState pops the most recent save frame without rewinding and returns
// it, so callers can use the frame's position as a token's row/col supplier.
func (t *Tokenizer) DiscardState() *State {
	depth := len(t.saveStates)
	discarded := t.saveStates[depth-1]
	t.saveStates = t.saveStates[:depth-1]
	t.logger.Debug("discarded tokenizer state", "depth", depth, "charIndex", discarded.charIndex)
	return discarded
}

// SaveStateDepth returns the number of open save frames. After a full parse,
// success or failure, this must be zero.
func (t *Tokenizer) SaveStateDepth() int {
	return len(t.saveStates)
}

//=========================================================================//
//                               Token stream                              //
//=========================================================================//

// PeekToken returns the next token without consuming it, or nil at
// end of input.
func (t *Tokenizer) PeekToken() (*token.Token, error) {
	if t.state.currentToken == nil {
		if err := t.readNextToken(); err != nil {
			return nil, err
		}
	}
	return t.state.currentToken, nil
}

// ConsumeToken returns the next token and advances past it, or nil at
// end of input.
func (t *Tokenizer) ConsumeToken() (*token.Token, error) {
	if t.state.currentToken == nil {
		if err := t.readNextToken(); err != nil {
			return nil, err
		}
	}

	result := t.state.currentToken
	if result == nil {
		return nil, nil
	}

	// The following token is read lazily by the next peek or consume
	t.state.previousToken = result
	t.state.currentToken = nil

	t.logger.Debug("consumed token", "type", result.Type.String(), "lexeme", result.Lexeme)
	return result, nil
}

// PreviousToken returns the most recently consumed token, or nil if no token
// has been consumed yet.
func (t *Tokenizer) PreviousToken() *token.Token {
	return t.state.previousToken
}

func (t *Tokenizer) eatWhitespace() {
	for t.HasNextChar() {
		c := t.PeekNextChar()
		if !t.IsConsideredWhitespace(c) && c != '\n' && c != '\r' {
			break
		}
		t.NextChar()
	}
}

// readNextToken reads the next token into the local state, skipping
// whitespace and comments. At end of input currentToken becomes nil.
func (t *Tokenizer) readNextToken() error {
	for {
		t.eatWhitespace()

		if !t.HasNextChar() {
			t.state.currentToken = nil
			return nil
		}

		matched := false
		for _, trial := range readersInTrialOrder {
			t.SaveState()

			lexeme, ok, err := trial.read(t)
			if err != nil {
				t.RestoreState()
				return err
			}

			if !ok {
				t.RestoreState()
				continue
			}

			// Use the pre-read state as the token's row/col supplier
			previousState := t.DiscardState()
			t.state.currentToken = &token.Token{
				Type:   trial.typ,
				Row:    previousState.row,
				Col:    previousState.col,
				Lexeme: lexeme,
			}
			matched = true
			break
		}

		if !matched {
			return diagnostics.New(
				diagnostics.ErrUnknownToken,
				t.state.row, t.state.col, t.raw,
				"unknown token",
			)
		}

		// Invisible tokens never surface to the parser
		if t.state.currentToken.Type == token.COMMENT {
			continue
		}

		return nil
	}
}
