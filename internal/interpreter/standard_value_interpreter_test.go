package interpreter_test

import (
	"testing"

	"github.com/funvibe/funexpr/internal/ast"
	"github.com/funvibe/funexpr/internal/interpreter"
)

var vi = interpreter.DefaultValueInterpreter

func TestAsBoolean(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"zero_long", int64(0), false},
		{"nonzero_long", int64(3), true},
		{"zero_double", 0.0, false},
		{"nonzero_double", 0.25, true},
		{"true_string", "TRUE", true},
		{"false_string", "false", false},
		{"numeric_string_zero", "0", false},
		{"numeric_string", "42", true},
		{"plain_string", "hello", true},
		{"empty_string", "", false},
		{"empty_list", []any{}, false},
		{"list", []any{int64(1)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := vi.AsBoolean(tc.value); got != tc.want {
				t.Errorf("AsBoolean(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestAsString(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "null"},
		{"long", int64(42), "42"},
		{"double", 2.5, "2.5"},
		{"whole_double", 2.0, "2"},
		{"bool", true, "true"},
		{"string", "x", "x"},
		{"list", []any{int64(1), "a"}, "[1, a]"},
		{"map", map[string]any{"b": int64(2), "a": int64(1)}, "{a: 1, b: 2}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := vi.AsString(tc.value); got != tc.want {
				t.Errorf("AsString(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestAreEqual(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   any
		strict bool
		want   bool
	}{
		{"long_vs_double_loose", int64(2), 2.0, false, true},
		{"long_vs_double_strict", int64(2), 2.0, true, false},
		{"long_vs_string_loose", int64(2), "2", false, true},
		{"long_vs_string_strict", int64(2), "2", true, false},
		{"same_strings_strict", "a", "a", true, true},
		{"nil_vs_nil", nil, nil, false, true},
		{"nil_vs_zero", nil, int64(0), false, false},
		{"lists_loose", []any{int64(1), "2"}, []any{"1", int64(2)}, false, true},
		{"lists_strict", []any{int64(1)}, []any{"1"}, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := vi.AreEqual(tc.a, tc.b, tc.strict); got != tc.want {
				t.Errorf("AreEqual(%v, %v, strict=%v) = %v, want %v", tc.a, tc.b, tc.strict, got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if got := vi.Compare(int64(1), int64(2)); got >= 0 {
		t.Errorf("Compare(1, 2) = %d, want negative", got)
	}
	if got := vi.Compare(2.5, "2.5"); got != 0 {
		t.Errorf("Compare(2.5, \"2.5\") = %d, want 0", got)
	}
	if got := vi.Compare("10", int64(9)); got <= 0 {
		t.Errorf("Compare(\"10\", 9) = %d, want positive", got)
	}
	if got := vi.Compare("b", "a"); got <= 0 {
		t.Errorf("Compare(\"b\", \"a\") = %d, want positive", got)
	}
}

func TestPerformMath(t *testing.T) {
	testCases := []struct {
		name string
		a, b any
		op   ast.MathOperation
		want any
	}{
		{"long_addition", int64(1), int64(2), ast.MATH_ADDITION, int64(3)},
		{"long_multiplication", int64(4), int64(5), ast.MATH_MULTIPLICATION, int64(20)},
		{"exact_division_stays_long", int64(10), int64(2), ast.MATH_DIVISION, int64(5)},
		{"inexact_division_widens", int64(5), int64(2), ast.MATH_DIVISION, 2.5},
		{"modulo", int64(7), int64(3), ast.MATH_MODULO, int64(1)},
		{"integer_power", int64(2), int64(10), ast.MATH_POWER, int64(1024)},
		{"double_addition", 1.5, int64(1), ast.MATH_ADDITION, 2.5},
		{"double_power", 4.0, 0.5, ast.MATH_POWER, 2.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := vi.PerformMath(tc.a, tc.b, tc.op)
			if got != tc.want {
				t.Errorf("PerformMath(%v, %v, %s) = %v (%T), want %v (%T)", tc.a, tc.b, tc.op, got, got, tc.want, tc.want)
			}
		})
	}
}

func TestHasDecimalPoint(t *testing.T) {
	if vi.HasDecimalPoint(int64(2)) {
		t.Error("HasDecimalPoint(2) = true, want false")
	}
	if !vi.HasDecimalPoint(2.0) {
		t.Error("HasDecimalPoint(2.0) = false, want true")
	}
	if !vi.HasDecimalPoint("2.5") {
		t.Error("HasDecimalPoint(\"2.5\") = false, want true")
	}
	if vi.HasDecimalPoint("2") {
		t.Error("HasDecimalPoint(\"2\") = true, want false")
	}
}
