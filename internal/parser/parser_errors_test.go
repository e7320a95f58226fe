package parser_test

import (
	"testing"

	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/parser"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		code  diagnostics.Code
	}{
		{"empty_program", "", diagnostics.ErrUnexpectedToken},
		{"unclosed_invocation", "f(", diagnostics.ErrUnexpectedToken},
		{"unclosed_parenthesis", "(1", diagnostics.ErrUnexpectedToken},
		{"missing_then", "if 1 2 else 3", diagnostics.ErrUnexpectedToken},
		{"missing_else", "if 1 then 2", diagnostics.ErrUnexpectedToken},
		{"dangling_operator", "1 +", diagnostics.ErrUnexpectedToken},
		{"dangling_assignment", "a = ", diagnostics.ErrUnexpectedToken},
		{"missing_argument_comma", "f(1 2)", diagnostics.ErrUnexpectedToken},
		{"unclosed_index", "items[0", diagnostics.ErrUnexpectedToken},
		{"stray_bracket", "[1]", diagnostics.ErrUnexpectedToken},
		{"unterminated_string", `"oops`, diagnostics.ErrUnterminatedString},
		{"unknown_token", "1 @ 2", diagnostics.ErrUnknownToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk := tokenizer.New(nil, tc.input)

			_, err := parser.New(nil).Parse(tk)
			if err == nil {
				t.Fatalf("parsing %q succeeded, want %s", tc.input, tc.code)
			}
			if !diagnostics.IsCode(err, tc.code) {
				t.Errorf("parsing %q: got %v, want code %s", tc.input, err, tc.code)
			}

			// The save-state stack must be balanced even on failures
			if tk.SaveStateDepth() != 0 {
				t.Errorf("parsing %q leaked %d save frames", tc.input, tk.SaveStateDepth())
			}
		})
	}
}
