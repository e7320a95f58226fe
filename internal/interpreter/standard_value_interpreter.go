package interpreter

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/funvibe/funexpr/internal/ast"
)

// StandardValueInterpreter is the default ValueInterpreter. Numbers parse
// through big.Rat so numeric strings, longs and doubles all compare exactly;
// arithmetic stays on int64 until a decimal point shows up on either side.
type StandardValueInterpreter struct{}

// DefaultValueInterpreter is the shared stateless instance.
var DefaultValueInterpreter = &StandardValueInterpreter{}

func (s *StandardValueInterpreter) AsBoolean(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case int32:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case string:
		switch strings.ToLower(v) {
		case "true":
			return true
		case "false":
			return false
		}
		if rat, ok := s.TryParseNumber(v); ok {
			return rat.Sign() != 0
		}
		return len(v) > 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		// Functions and host objects are truthy by existence
		return true
	}
}

func (s *StandardValueInterpreter) AsLong(value any) int64 {
	switch v := value.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		if rat, ok := s.TryParseNumber(v); ok {
			return ratToLong(rat)
		}
		return 0
	case []any:
		return int64(len(v))
	case map[string]any:
		return int64(len(v))
	default:
		return 0
	}
}

func (s *StandardValueInterpreter) AsDouble(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case float64:
		return v
	case float32:
		return float64(v)
	case string:
		if rat, ok := s.TryParseNumber(v); ok {
			f, _ := rat.Float64()
			return f
		}
		return 0
	case []any:
		return float64(len(v))
	case map[string]any:
		return float64(len(v))
	default:
		return 0
	}
}

func (s *StandardValueInterpreter) AsString(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = s.AsString(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + ": " + s.AsString(v[key])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Function:
		return "<function>"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (s *StandardValueInterpreter) HasDecimalPoint(value any) bool {
	switch v := value.(type) {
	case float64, float32:
		return true
	case string:
		if !strings.ContainsRune(v, '.') {
			return false
		}
		_, ok := s.TryParseNumber(v)
		return ok
	default:
		return false
	}
}

func (s *StandardValueInterpreter) TryParseNumber(value any) (*big.Rat, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return big.NewRat(1, 1), true
		}
		return new(big.Rat), true
	case int64:
		return new(big.Rat).SetInt64(v), true
	case int:
		return new(big.Rat).SetInt64(int64(v)), true
	case int32:
		return new(big.Rat).SetInt64(int64(v)), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(v), true
	case float32:
		return s.TryParseNumber(float64(v))
	case string:
		rat, ok := new(big.Rat).SetString(strings.TrimSpace(v))
		if !ok {
			return nil, false
		}
		return rat, true
	default:
		return nil, false
	}
}

func (s *StandardValueInterpreter) AreEqual(a, b any, strict bool) bool {
	if strict {
		return s.equalExact(a, b)
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ratA, okA := s.TryParseNumber(a)
	ratB, okB := s.TryParseNumber(b)
	if okA && okB {
		return ratA.Cmp(ratB) == 0
	}

	listA, isListA := a.([]any)
	listB, isListB := b.([]any)
	if isListA && isListB {
		if len(listA) != len(listB) {
			return false
		}
		for i := range listA {
			if !s.AreEqual(listA[i], listB[i], false) {
				return false
			}
		}
		return true
	}

	return s.AsString(a) == s.AsString(b)
}

// equalExact requires matching dynamic types: 2 === 2.0 is false.
func (s *StandardValueInterpreter) equalExact(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !s.equalExact(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for key, value := range av {
			other, present := bv[key]
			if !present || !s.equalExact(value, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func (s *StandardValueInterpreter) Compare(a, b any) int {
	ratA, okA := s.TryParseNumber(a)
	ratB, okB := s.TryParseNumber(b)

	if okA && okB {
		return ratA.Cmp(ratB)
	}

	// Unparseable operands fall back on the zero value, matching the
	// numeric-compare behavior for partially numeric input
	if okA {
		return ratA.Sign()
	}
	if okB {
		return -ratB.Sign()
	}

	return strings.Compare(s.AsString(a), s.AsString(b))
}

func (s *StandardValueInterpreter) PerformMath(a, b any, operation ast.MathOperation) any {
	if s.HasDecimalPoint(a) || s.HasDecimalPoint(b) {
		return performDoubleMath(s.AsDouble(a), s.AsDouble(b), operation)
	}

	la, lb := s.AsLong(a), s.AsLong(b)

	switch operation {
	case ast.MATH_ADDITION:
		return la + lb
	case ast.MATH_SUBTRACTION:
		return la - lb
	case ast.MATH_MULTIPLICATION:
		return la * lb
	case ast.MATH_DIVISION:
		// Stay on the integer path only when the quotient is exact
		if lb != 0 && la%lb == 0 {
			return la / lb
		}
		return performDoubleMath(float64(la), float64(lb), operation)
	case ast.MATH_MODULO:
		if lb == 0 {
			return math.NaN()
		}
		return la % lb
	case ast.MATH_POWER:
		if lb >= 0 {
			result := int64(1)
			for ; lb > 0; lb-- {
				result *= la
			}
			return result
		}
		return performDoubleMath(float64(la), float64(lb), operation)
	}

	return nil
}

func performDoubleMath(a, b float64, operation ast.MathOperation) float64 {
	switch operation {
	case ast.MATH_ADDITION:
		return a + b
	case ast.MATH_SUBTRACTION:
		return a - b
	case ast.MATH_MULTIPLICATION:
		return a * b
	case ast.MATH_DIVISION:
		return a / b
	case ast.MATH_MODULO:
		return math.Mod(a, b)
	case ast.MATH_POWER:
		return math.Pow(a, b)
	}
	return math.NaN()
}

func ratToLong(rat *big.Rat) int64 {
	return new(big.Int).Quo(rat.Num(), rat.Denom()).Int64()
}
