package embed_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/funvibe/funexpr/internal/diagnostics"
	"github.com/funvibe/funexpr/internal/interpreter"
	"github.com/funvibe/funexpr/pkg/embed"
)

func emptyEnv() *embed.Environment {
	return embed.NewEnvironmentBuilder().Build()
}

func mustEval(t *testing.T, source string, env *embed.Environment) any {
	t.Helper()

	result, err := embed.New().EvaluateString(source, env)
	if err != nil {
		t.Fatalf("evaluating %q: %v", source, err)
	}
	return result
}

func evalError(t *testing.T, source string, env *embed.Environment, code diagnostics.Code) {
	t.Helper()

	_, err := embed.New().EvaluateString(source, env)
	if err == nil {
		t.Fatalf("evaluating %q succeeded, want %s", source, code)
	}
	if !diagnostics.IsCode(err, code) {
		t.Fatalf("evaluating %q: got %v, want code %s", source, err, code)
	}
}

func TestArithmetic(t *testing.T) {
	testCases := []struct {
		source string
		want   any
	}{
		{"1 + 2 * 3", int64(7)},
		{"(1 + 2) * 3", int64(9)},
		{"2 ^ 3 ^ 2", int64(64)},
		{"10 / 2", int64(5)},
		{"5 / 2", 2.5},
		{"7 % 3", int64(1)},
		{"-(1 + 2)", int64(-3)},
		{"1.5 + 1", 2.5},
		{"12e2", int64(1200)},
		{".5 * 2", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.source, func(t *testing.T) {
			got := mustEval(t, tc.source, emptyEnv())
			if got != tc.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestIfThenElse(t *testing.T) {
	if got := mustEval(t, `if 1 < 2 then "y" else "n"`, emptyEnv()); got != "y" {
		t.Errorf("got %v, want y", got)
	}
	if got := mustEval(t, `if 1 > 2 then "y" else "n"`, emptyEnv()); got != "n" {
		t.Errorf("got %v, want n", got)
	}
}

func TestEqualityOperators(t *testing.T) {
	testCases := []struct {
		source string
		want   bool
	}{
		{"2 == 2.0", true},
		{"2 === 2.0", false},
		{`2 == "2"`, true},
		{`2 === "2"`, false},
		{"1 != 2", true},
		{"1 !== 1", false},
		{"1 < 2 && 2 <= 2 && 3 > 2 && 2 >= 2", true},
	}

	for _, tc := range testCases {
		t.Run(tc.source, func(t *testing.T) {
			if got := mustEval(t, tc.source, emptyEnv()); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConcatenation(t *testing.T) {
	if got := mustEval(t, `"a" & 1 & null`, emptyEnv()); got != "a1null" {
		t.Errorf("got %v, want a1null", got)
	}
}

func TestProgramYieldsLastLine(t *testing.T) {
	if got := mustEval(t, "1\n2\n3", emptyEnv()); got != int64(3) {
		t.Errorf("got %v, want 3", got)
	}
}

func TestCaseInsensitiveResolution(t *testing.T) {
	env := embed.NewEnvironmentBuilder().WithStaticVariable("Answer", 42).Build()

	if got := mustEval(t, "answer", env); got != int64(42) {
		t.Errorf("lowercase: got %v, want 42", got)
	}
	if got := mustEval(t, "ANSWER", env); got != int64(42) {
		t.Errorf("uppercase: got %v, want 42", got)
	}
}

func TestUndefinedVariable(t *testing.T) {
	evalError(t, "nope", emptyEnv(), diagnostics.ErrUndefinedVariable)
}

func TestSplitStandardFunction(t *testing.T) {
	got := mustEval(t, `split("a,b,c")`, emptyEnv())
	want := []any{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = mustEval(t, `split("a|b,c", "\|")`, emptyEnv())
	want = []any{"a", "b,c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("custom separator: got %v, want %v", got, want)
	}

	evalError(t, "split()", emptyEnv(), diagnostics.ErrInvalidFunctionArgumentType)
	evalError(t, `split("")`, emptyEnv(), diagnostics.ErrInvalidFunctionArgumentType)
	evalError(t, `split("a", "[")`, emptyEnv(), diagnostics.ErrInvalidFunctionInvocation)
}

// declaredFunction records the bound arguments it was applied with.
type declaredFunction struct {
	received []any
}

func (f *declaredFunction) Arguments() []interpreter.Argument {
	return []interpreter.Argument{{Name: "x"}, {Name: "y"}, {Name: "z"}}
}

func (f *declaredFunction) ValidateArguments(interpreter.ValueInterpreter, []any) error {
	return nil
}

func (f *declaredFunction) Apply(_ interpreter.EvaluationEnvironment, args []any) (any, error) {
	f.received = append([]any(nil), args...)
	return args, nil
}

func TestNamedArguments(t *testing.T) {
	fn := &declaredFunction{}
	env := embed.NewEnvironmentBuilder().WithFunction("f", fn).Build()

	mustEval(t, "f(1, y = 2, z = 3)", env)
	want := []any{int64(1), int64(2), int64(3)}
	if !reflect.DeepEqual(fn.received, want) {
		t.Errorf("got %v, want %v", fn.received, want)
	}

	mustEval(t, "f(Y = 2)", env)
	want = []any{nil, int64(2), nil}
	if !reflect.DeepEqual(fn.received, want) {
		t.Errorf("case-insensitive name: got %v, want %v", fn.received, want)
	}

	evalError(t, "f(y = 1, 2)", env, diagnostics.ErrNonNamedFunctionArgument)
	evalError(t, "f(q = 1)", env, diagnostics.ErrUndefinedFunctionArgumentName)
}

func TestVariadicFunctionsRejectNamedArguments(t *testing.T) {
	env := embed.NewEnvironmentBuilder().
		WithGoFunction("g", func(args []any) (any, error) { return args, nil }).
		Build()

	evalError(t, "g(x = 1)", env, diagnostics.ErrUndefinedFunctionArgumentName)
}

func TestAssignments(t *testing.T) {
	if got := mustEval(t, "a = 10\na + 5", emptyEnv()); got != int64(15) {
		t.Errorf("got %v, want 15", got)
	}

	evalError(t, "a = 1\na = 2", emptyEnv(), diagnostics.ErrIdentifierInUse)

	env := embed.NewEnvironmentBuilder().WithStaticVariable("taken", 1).Build()
	evalError(t, "taken = 2", env, diagnostics.ErrIdentifierInUse)

	if got := mustEval(t, "sq = (x) -> x * x\nsq(5)", emptyEnv()); got != int64(25) {
		t.Errorf("callback assignment: got %v, want 25", got)
	}

	evalError(t, "split = (x) -> x", emptyEnv(), diagnostics.ErrIdentifierInUse)
}

func TestCallbacks(t *testing.T) {
	if got := mustEval(t, "((x, y) -> x + y)(3, 4)", emptyEnv()); got != int64(7) {
		t.Errorf("direct call: got %v, want 7", got)
	}

	// Missing callback arguments bind to null
	if got := mustEval(t, "((a, b) -> b ?? 9)(1)", emptyEnv()); got != int64(9) {
		t.Errorf("missing arg: got %v, want 9", got)
	}

	// Callbacks capture static variables
	env := embed.NewEnvironmentBuilder().WithStaticVariable("base", 100).Build()
	if got := mustEval(t, "add = (x) -> base + x\nadd(1)", env); got != int64(101) {
		t.Errorf("capture: got %v, want 101", got)
	}
}

func TestOptionalChaining(t *testing.T) {
	if got := mustEval(t, "null?.foo?.bar", emptyEnv()); got != nil {
		t.Errorf("member chain: got %v, want null", got)
	}
	if got := mustEval(t, "null?[0]", emptyEnv()); got != nil {
		t.Errorf("index on null: got %v, want null", got)
	}

	env := embed.NewEnvironmentBuilder().WithStaticVariable("items", []int{1}).Build()
	if got := mustEval(t, "items?[5]", env); got != nil {
		t.Errorf("out of bounds: got %v, want null", got)
	}
	evalError(t, "items[5]", env, diagnostics.ErrInvalidIndex)

	if got := mustEval(t, "missing?(1)", emptyEnv()); got != nil {
		t.Errorf("optional invocation: got %v, want null", got)
	}
	evalError(t, "missing(1)", emptyEnv(), diagnostics.ErrUndefinedFunction)
}

func TestNullCoalesceShortCircuits(t *testing.T) {
	calls := 0
	env := embed.NewEnvironmentBuilder().
		WithGoFunction("bump", func([]any) (any, error) { calls++; return calls, nil }).
		Build()

	if got := mustEval(t, "1 ?? bump()", env); got != int64(1) {
		t.Errorf("got %v, want 1", got)
	}
	if calls != 0 {
		t.Errorf("rhs evaluated %d times, want 0", calls)
	}

	if got := mustEval(t, "null ?? bump()", env); got != int64(1) {
		t.Errorf("got %v, want 1", got)
	}
	if calls != 1 {
		t.Errorf("rhs evaluated %d times, want 1", calls)
	}
}

func TestConjunctionEvaluatesBothSides(t *testing.T) {
	calls := 0
	env := embed.NewEnvironmentBuilder().
		WithGoFunction("bump", func([]any) (any, error) { calls++; return true, nil }).
		Build()

	if got := mustEval(t, "false && bump()", env); got != false {
		t.Errorf("got %v, want false", got)
	}
	if calls != 1 {
		t.Errorf("rhs evaluated %d times, want 1 (no short-circuit)", calls)
	}

	calls = 0
	if got := mustEval(t, "true || bump()", env); got != true {
		t.Errorf("got %v, want true", got)
	}
	if calls != 1 {
		t.Errorf("rhs evaluated %d times, want 1 (no short-circuit)", calls)
	}
}

func TestArgumentEvaluationOrder(t *testing.T) {
	counter := 0
	env := embed.NewEnvironmentBuilder().
		WithGoFunction("tick", func([]any) (any, error) { counter++; return counter, nil }).
		WithGoFunction("pair", func(args []any) (any, error) { return args, nil }).
		Build()

	got := mustEval(t, "pair(tick(), tick())", env)
	want := []any{int64(1), int64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLiveVariables(t *testing.T) {
	value := 0
	env := embed.NewEnvironmentBuilder().
		WithLiveVariable("seq", func() any { value++; return value }).
		Build()

	evaluator := embed.New()
	program, err := evaluator.Parse("seq")
	if err != nil {
		t.Fatal(err)
	}

	first, _ := evaluator.Evaluate(program, env)
	second, _ := evaluator.Evaluate(program, env)
	if first != int64(1) || second != int64(2) {
		t.Errorf("got %v then %v, want 1 then 2", first, second)
	}
}

func TestMemberAccess(t *testing.T) {
	type user struct {
		Name string
		Age  int
	}

	env := embed.NewEnvironmentBuilder().
		WithStaticVariable("user", user{Name: "Ada", Age: 36}).
		WithStaticVariable("m", map[string]any{"key": "value"}).
		Build()

	if got := mustEval(t, "user.name", env); got != "Ada" {
		t.Errorf("struct field: got %v, want Ada", got)
	}
	if got := mustEval(t, "user.AGE", env); got != int64(36) {
		t.Errorf("case-insensitive field: got %v, want 36", got)
	}
	evalError(t, "user.missing", env, diagnostics.ErrUnknownMember)
	if got := mustEval(t, "user?.missing", env); got != nil {
		t.Errorf("optional missing field: got %v, want null", got)
	}

	if got := mustEval(t, "m.key", env); got != "value" {
		t.Errorf("map member: got %v, want value", got)
	}
}

func TestIndexing(t *testing.T) {
	env := embed.NewEnvironmentBuilder().
		WithStaticVariable("items", []string{"a", "b"}).
		WithStaticVariable("m", map[string]any{"key": int64(1)}).
		Build()

	if got := mustEval(t, "items[1]", env); got != "b" {
		t.Errorf("list index: got %v, want b", got)
	}
	if got := mustEval(t, `m["key"]`, env); got != int64(1) {
		t.Errorf("map index: got %v, want 1", got)
	}
	evalError(t, `m["nope"]`, env, diagnostics.ErrInvalidMapKey)
	if got := mustEval(t, `m?["nope"]`, env); got != nil {
		t.Errorf("optional map index: got %v, want null", got)
	}
	evalError(t, "42[0]", emptyEnv(), diagnostics.ErrNonIndexableValue)
}

func TestExpressionify(t *testing.T) {
	program, err := embed.New().Parse("1+2*3")
	if err != nil {
		t.Fatal(err)
	}
	if got := program.Expressionify(); got != "1 + 2 * 3" {
		t.Errorf("got %q, want %q", got, "1 + 2 * 3")
	}
}

// A parsed program is immutable and safe to evaluate concurrently, provided
// each evaluation has its own environment.
func TestConcurrentEvaluation(t *testing.T) {
	evaluator := embed.New()
	program, err := evaluator.Parse("x * 2")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			env := embed.NewEnvironmentBuilder().WithStaticVariable("x", i).Build()
			got, err := evaluator.Evaluate(program, env)
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			if got != int64(i*2) {
				t.Errorf("worker %d: got %v, want %d", i, got, i*2)
			}
		}(i)
	}
	wg.Wait()
}
