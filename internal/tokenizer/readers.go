package tokenizer

import (
	"strings"

	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/token"
)

// readerFunc attempts to read one token's lexeme. It returns ok=false when
// the upcoming characters don't form this token; the caller restores the
// pre-read state in that case. A non-nil error aborts tokenizing entirely.
type readerFunc func(t *Tokenizer) (lexeme string, ok bool, err error)

// readersInTrialOrder lists every token type with its reader, tried first to
// last. Multi-character operators come before their prefixes, keywords
// before IDENTIFIER and DOUBLE before LONG.
var readersInTrialOrder = []struct {
	typ  token.Type
	read readerFunc
}{
	{token.COMMENT, readComment},

	{token.DOUBLE, readDouble},
	{token.LONG, readLong},
	{token.STRING, readString},

	{token.TRUE, keywordReader("true")},
	{token.FALSE, keywordReader("false")},
	{token.NULL, keywordReader("null")},
	{token.KW_IF, keywordReader("if")},
	{token.KW_THEN, keywordReader("then")},
	{token.KW_ELSE, keywordReader("else")},

	{token.IDENTIFIER, readIdentifier},

	{token.ARROW, sequenceReader("->")},
	{token.NULL_COALESCE, sequenceReader("??")},
	{token.OPTIONAL_DOT, sequenceReader("?.")},
	{token.OPTIONAL_BRACKET_OPEN, sequenceReader("?[")},
	{token.OPTIONAL_PARENTHESIS_OPEN, sequenceReader("?(")},
	{token.VALUE_EQUALS_EXACT, sequenceReader("===")},
	{token.VALUE_NOT_EQUALS_EXACT, sequenceReader("!==")},
	{token.VALUE_EQUALS, sequenceReader("==")},
	{token.VALUE_NOT_EQUALS, sequenceReader("!=")},
	{token.GREATER_THAN_OR_EQUAL, sequenceReader(">=")},
	{token.LESS_THAN_OR_EQUAL, sequenceReader("<=")},
	{token.BOOL_AND, sequenceReader("&&")},
	{token.BOOL_OR, sequenceReader("||")},

	{token.EXPONENT, sequenceReader("^")},
	{token.MULTIPLICATION, sequenceReader("*")},
	{token.DIVISION, sequenceReader("/")},
	{token.MODULO, sequenceReader("%")},
	{token.PLUS, sequenceReader("+")},
	{token.MINUS, sequenceReader("-")},
	{token.GREATER_THAN, sequenceReader(">")},
	{token.LESS_THAN, sequenceReader("<")},
	{token.BOOL_NOT, sequenceReader("!")},
	{token.CONCATENATE, sequenceReader("&")},
	{token.ASSIGN, sequenceReader("=")},

	{token.PARENTHESIS_OPEN, sequenceReader("(")},
	{token.PARENTHESIS_CLOSE, sequenceReader(")")},
	{token.BRACKET_OPEN, sequenceReader("[")},
	{token.BRACKET_CLOSE, sequenceReader("]")},
	{token.COMMA, sequenceReader(",")},
	{token.DOT, sequenceReader(".")},
}

func isIdentifierChar(c rune, isFirst bool) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(!isFirst && (c == '_' || (c >= '0' && c <= '9')))
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func readIdentifier(t *Tokenizer) (string, bool, error) {
	firstChar := t.NextChar()

	// Identifiers always start with letters
	if !isIdentifierChar(firstChar, true) {
		return "", false, nil
	}

	var sb strings.Builder
	sb.WriteRune(firstChar)

	for t.HasNextChar() && isIdentifierChar(t.PeekNextChar(), false) {
		sb.WriteRune(t.NextChar())
	}

	return sb.String(), true, nil
}

// keywordReader matches word exactly, requiring that no identifier character
// follows, so "iffy" still lexes as an identifier.
func keywordReader(word string) readerFunc {
	return func(t *Tokenizer) (string, bool, error) {
		for _, c := range word {
			if !t.HasNextChar() || t.NextChar() != c {
				return "", false, nil
			}
		}

		if t.HasNextChar() && isIdentifierChar(t.PeekNextChar(), false) {
			return "", false, nil
		}

		return word, true, nil
	}
}

// sequenceReader matches the given operator or symbol verbatim. Longer
// sequences sharing a prefix must be tried earlier.
func sequenceReader(sequence string) readerFunc {
	return func(t *Tokenizer) (string, bool, error) {
		for _, c := range sequence {
			if !t.HasNextChar() || t.NextChar() != c {
				return "", false, nil
			}
		}
		return sequence, true, nil
	}
}

// readLong reads -?[0-9]+ with an optional e[0-9]+ integer exponent suffix.
func readLong(t *Tokenizer) (string, bool, error) {
	var sb strings.Builder

	if t.HasNextChar() && t.PeekNextChar() == '-' {
		sb.WriteRune(t.NextChar())
	}

	if !collectDigits(t, &sb) {
		return "", false, nil
	}

	// Optional integer exponent notation: 12e3
	if t.HasNextChar() && t.PeekNextChar() == 'e' {
		t.SaveState()
		t.NextChar()

		var exponent strings.Builder
		if collectDigits(t, &exponent) {
			t.DiscardState()
			sb.WriteRune('e')
			sb.WriteString(exponent.String())
		} else {
			t.RestoreState()
		}
	}

	// A trailing identifier character means this was not a number at all
	if t.HasNextChar() && isIdentifierChar(t.PeekNextChar(), false) {
		return "", false, nil
	}

	return sb.String(), true, nil
}

// readDouble reads -?[0-9]*\.[0-9]+; the shorthand .5 is normalized to 0.5.
func readDouble(t *Tokenizer) (string, bool, error) {
	var sb strings.Builder

	if t.HasNextChar() && t.PeekNextChar() == '-' {
		sb.WriteRune(t.NextChar())
	}

	hasIntegerPart := false
	for t.HasNextChar() && isDigit(t.PeekNextChar()) {
		sb.WriteRune(t.NextChar())
		hasIntegerPart = true
	}

	if !hasIntegerPart {
		sb.WriteRune('0')
	}

	if !t.HasNextChar() || t.NextChar() != '.' {
		return "", false, nil
	}
	sb.WriteRune('.')

	if !collectDigits(t, &sb) {
		return "", false, nil
	}

	if t.HasNextChar() && isIdentifierChar(t.PeekNextChar(), false) {
		return "", false, nil
	}

	return sb.String(), true, nil
}

func collectDigits(t *Tokenizer, sb *strings.Builder) bool {
	collected := false
	for t.HasNextChar() && isDigit(t.PeekNextChar()) {
		sb.WriteRune(t.NextChar())
		collected = true
	}
	return collected
}

// readString reads a double-quoted string; \" escapes a literal quote.
func readString(t *Tokenizer) (string, bool, error) {
	startRow, startCol := t.CurrentRow(), t.CurrentCol()

	if t.NextChar() != '"' {
		return "", false, nil
	}

	var sb strings.Builder
	terminated := false

	for t.HasNextChar() {
		c := t.NextChar()

		if c == '\\' && t.HasNextChar() && t.PeekNextChar() == '"' {
			sb.WriteRune(t.NextChar())
			continue
		}

		if c == '"' {
			terminated = true
			break
		}

		sb.WriteRune(c)
	}

	if !terminated {
		return "", false, diagnostics.New(
			diagnostics.ErrUnterminatedString,
			startRow, startCol, t.RawText(),
			"unterminated string",
		)
	}

	return sb.String(), true, nil
}

func readComment(t *Tokenizer) (string, bool, error) {
	if t.NextChar() != '#' {
		return "", false, nil
	}

	var sb strings.Builder
	for t.HasNextChar() && t.PeekNextChar() != '\n' {
		sb.WriteRune(t.NextChar())
	}

	return sb.String(), true, nil
}
