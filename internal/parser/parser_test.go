package parser_test

import (
	"testing"

	"github.com/funvibe/funexpr/internal/parser"
	"github.com/funvibe/funexpr/internal/prettyprinter"
	"github.com/funvibe/funexpr/internal/tokenizer"
)

func parseProgram(t *testing.T, source string) string {
	t.Helper()

	tk := tokenizer.New(nil, source)
	program, err := parser.New(nil).Parse(tk)
	if err != nil {
		t.Fatalf("parsing %q: %v", source, err)
	}
	if tk.SaveStateDepth() != 0 {
		t.Fatalf("parsing %q leaked %d save frames", source, tk.SaveStateDepth())
	}

	return prettyprinter.Expressionify(program)
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"precedence_mul_over_add", "1 + 2 * 3", "1 + 2 * 3"},
		{"parenthesized_add", "(1 + 2) * 3", "(1 + 2) * 3"},
		{"exponent_left_assoc", "2 ^ 3 ^ 2", "2 ^ 3 ^ 2"},
		{"comparison_chain", "1 < 2 == true", "1 < 2 == true"},
		{"bool_operators", "a && b || !c", "a && b || !c"},
		{"concatenation", `"a" & "b" & "c"`, `"a" & "b" & "c"`},
		{"null_coalesce", "x ?? 5", "x ?? 5"},
		{"assignment", "a = 5 + 2 * 10", "a = 5 + 2 * 10"},
		{"double_shorthand", ".5", "0.5"},
		{"negative_literal", "-42", "-42"},
		{"flip_sign", "-x", "-x"},
		{"string_escape", `"he said \"hi\""`, `"he said \"hi\""`},
		{"if_then_else", `if 1 < 2 then "y" else "n"`, `if 1 < 2 then "y" else "n"`},
		{"nested_if", "if a then if b then 1 else 2 else 3", "if a then if b then 1 else 2 else 3"},
		{"member_access", "user.name", "user.name"},
		{"optional_member_access", "user?.name", "user?.name"},
		{"chained_member_access", "a.b.c", "a.b.c"},
		{"index", "items[0]", "items[0]"},
		{"optional_index", "items?[0]", "items?[0]"},
		{"index_then_member", "items[0].name", "items[0].name"},
		{"invocation", "f(1, 2)", "f(1, 2)"},
		{"optional_invocation", "f?(1)", "f?(1)"},
		{"named_arguments", "f(1, y = 2, z = 3)", "f(1, y = 2, z = 3)"},
		{"callback", "(x, y) -> x + y", "(x, y) -> x + y"},
		{"callback_no_args", "() -> 42", "() -> 42"},
		{"callback_direct_call", "((x, y) -> x + y)(3, 4)", "((x, y) -> x + y)(3, 4)"},
		{"chained_calls", "f(1)(2)", "f(1)(2)"},
		{"parenthesized_identifier", "(a)", "a"},
		{"null_chain", "null?.foo?.bar", "null?.foo?.bar"},
		{"multi_line_program", "a = 1\nb = a + 1", "a = 1\nb = a + 1"},
		{"comment_only_trailing", "1 # the answer's half", "1"},
		{"long_exponent", "12e2", "1200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseProgram(t, tc.input)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// A printed program must parse back to an equivalent AST: printing the
// re-parse yields the same text.
func TestExpressionifyRoundTrip(t *testing.T) {
	inputs := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"a = (x) -> x * x\na(4)",
		`if cond then items[0] else fallback ?? "none"`,
		"!(a && b) || c",
		"-(1 + 2)",
		"f(g(1), h = 2)",
		"((x, y) -> x + y)(3, 4)",
	}

	for _, input := range inputs {
		printed := parseProgram(t, input)
		reprinted := parseProgram(t, printed)
		if printed != reprinted {
			t.Errorf("round trip diverged for %q: %q vs %q", input, printed, reprinted)
		}
	}
}
