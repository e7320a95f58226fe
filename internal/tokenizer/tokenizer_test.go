package tokenizer_test

import (
	"testing"

	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/token"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

func collectTokens(t *testing.T, source string) []token.Token {
	t.Helper()

	tk := tokenizer.New(nil, source)
	var tokens []token.Token
	for {
		next, err := tk.ConsumeToken()
		if err != nil {
			t.Fatalf("tokenizing %q: %v", source, err)
		}
		if next == nil {
			return tokens
		}
		tokens = append(tokens, *next)
	}
}

func TestTokenSequences(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		types   []token.Type
		lexemes []string
	}{
		{
			"arithmetic",
			"1 + 2 * 3",
			[]token.Type{token.LONG, token.PLUS, token.LONG, token.MULTIPLICATION, token.LONG},
			[]string{"1", "+", "2", "*", "3"},
		},
		{
			"double_shorthand",
			".5 + 12.25",
			[]token.Type{token.DOUBLE, token.PLUS, token.DOUBLE},
			[]string{"0.5", "+", "12.25"},
		},
		{
			"long_exponent",
			"12e3",
			[]token.Type{token.LONG},
			[]string{"12e3"},
		},
		{
			"negative_long",
			"-42",
			[]token.Type{token.LONG},
			[]string{"-42"},
		},
		{
			"string_with_escape",
			`"he said \"hi\""`,
			[]token.Type{token.STRING},
			[]string{`he said "hi"`},
		},
		{
			"keywords_and_identifiers",
			"if cond then iffy else falsey",
			[]token.Type{token.KW_IF, token.IDENTIFIER, token.KW_THEN, token.IDENTIFIER, token.KW_ELSE, token.IDENTIFIER},
			[]string{"if", "cond", "then", "iffy", "else", "falsey"},
		},
		{
			"literals",
			"true false null",
			[]token.Type{token.TRUE, token.FALSE, token.NULL},
			[]string{"true", "false", "null"},
		},
		{
			"optional_operators",
			"a?.b ?? c?[0]",
			[]token.Type{token.IDENTIFIER, token.OPTIONAL_DOT, token.IDENTIFIER, token.NULL_COALESCE, token.IDENTIFIER, token.OPTIONAL_BRACKET_OPEN, token.LONG, token.BRACKET_CLOSE},
			[]string{"a", "?.", "b", "??", "c", "?[", "0", "]"},
		},
		{
			"equality_family",
			"a == b != c === d !== e",
			[]token.Type{token.IDENTIFIER, token.VALUE_EQUALS, token.IDENTIFIER, token.VALUE_NOT_EQUALS, token.IDENTIFIER, token.VALUE_EQUALS_EXACT, token.IDENTIFIER, token.VALUE_NOT_EQUALS_EXACT, token.IDENTIFIER},
			nil,
		},
		{
			"concat_vs_and",
			"a & b && c",
			[]token.Type{token.IDENTIFIER, token.CONCATENATE, token.IDENTIFIER, token.BOOL_AND, token.IDENTIFIER},
			nil,
		},
		{
			"arrow_vs_minus",
			"(x) -> x - 1",
			[]token.Type{token.PARENTHESIS_OPEN, token.IDENTIFIER, token.PARENTHESIS_CLOSE, token.ARROW, token.IDENTIFIER, token.MINUS, token.LONG},
			nil,
		},
		{
			"comment_skipped",
			"1 # everything after is invisible\n2",
			[]token.Type{token.LONG, token.LONG},
			[]string{"1", "2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := collectTokens(t, tc.input)

			if len(tokens) != len(tc.types) {
				t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(tc.types), tokens)
			}
			for i, typ := range tc.types {
				if tokens[i].Type != typ {
					t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, typ)
				}
				if tc.lexemes != nil && tokens[i].Lexeme != tc.lexemes[i] {
					t.Errorf("token %d: got lexeme %q, want %q", i, tokens[i].Lexeme, tc.lexemes[i])
				}
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := collectTokens(t, "1 +\n 2")

	if tokens[0].Row != 0 || tokens[0].Col != 0 {
		t.Errorf("token 1: got %d:%d, want 0:0", tokens[0].Row, tokens[0].Col)
	}
	if tokens[1].Row != 0 || tokens[1].Col != 2 {
		t.Errorf("token +: got %d:%d, want 0:2", tokens[1].Row, tokens[1].Col)
	}
	if tokens[2].Row != 1 || tokens[2].Col != 1 {
		t.Errorf("token 2: got %d:%d, want 1:1", tokens[2].Row, tokens[2].Col)
	}
}

func TestSaveRestoreToken(t *testing.T) {
	tk := tokenizer.New(nil, "1 + 2")

	if _, err := tk.ConsumeToken(); err != nil {
		t.Fatal(err)
	}

	tk.SaveState()

	plus, err := tk.ConsumeToken()
	if err != nil {
		t.Fatal(err)
	}
	if plus.Type != token.PLUS {
		t.Fatalf("got %s, want PLUS", plus.Type)
	}

	tk.RestoreState()

	again, err := tk.ConsumeToken()
	if err != nil {
		t.Fatal(err)
	}
	if again.Type != token.PLUS {
		t.Fatalf("after restore: got %s, want PLUS", again.Type)
	}

	if tk.SaveStateDepth() != 0 {
		t.Fatalf("save-state stack not empty: depth %d", tk.SaveStateDepth())
	}
}

func TestNestedSaveStates(t *testing.T) {
	tk := tokenizer.New(nil, "a b c")

	tk.SaveState()
	tk.ConsumeToken() // a

	tk.SaveState()
	tk.ConsumeToken() // b
	tk.RestoreState()

	b, _ := tk.PeekToken()
	if b.Lexeme != "b" {
		t.Fatalf("inner restore: got %q, want b", b.Lexeme)
	}

	tk.RestoreState()

	a, _ := tk.PeekToken()
	if a.Lexeme != "a" {
		t.Fatalf("outer restore: got %q, want a", a.Lexeme)
	}
}

func TestUndoNextCharAcrossNewline(t *testing.T) {
	tk := tokenizer.New(nil, "ab\ncd")

	for i := 0; i < 4; i++ { // a b \n c
		tk.NextChar()
	}
	if tk.CurrentRow() != 1 || tk.CurrentCol() != 1 {
		t.Fatalf("after reads: at %d:%d, want 1:1", tk.CurrentRow(), tk.CurrentCol())
	}

	tk.UndoNextChar() // c
	tk.UndoNextChar() // \n
	if tk.CurrentRow() != 0 || tk.CurrentCol() != 2 {
		t.Fatalf("after undo over newline: at %d:%d, want 0:2", tk.CurrentRow(), tk.CurrentCol())
	}

	if c := tk.NextChar(); c != '\n' {
		t.Fatalf("re-read: got %q, want newline", c)
	}
}

func TestUnterminatedString(t *testing.T) {
	tk := tokenizer.New(nil, `"unterminated`)

	_, err := tk.ConsumeToken()
	if !diagnostics.IsCode(err, diagnostics.ErrUnterminatedString) {
		t.Fatalf("got %v, want unterminated-string error", err)
	}

	var evalErr *diagnostics.Error
	if !errorsAs(err, &evalErr) {
		t.Fatal("error is not a diagnostics error")
	}
	if evalErr.Row != 0 || evalErr.Col != 0 {
		t.Errorf("got position %d:%d, want 0:0", evalErr.Row, evalErr.Col)
	}
}

func TestUnknownToken(t *testing.T) {
	tk := tokenizer.New(nil, "1 @ 2")

	if _, err := tk.ConsumeToken(); err != nil {
		t.Fatal(err)
	}

	_, err := tk.ConsumeToken()
	if !diagnostics.IsCode(err, diagnostics.ErrUnknownToken) {
		t.Fatalf("got %v, want unknown-token error", err)
	}
}

func errorsAs(err error, target **diagnostics.Error) bool {
	e, ok := err.(*diagnostics.Error)
	if ok {
		*target = e
	}
	return ok
}
