package embed

import (
	"fmt"
	"reflect"
	"strings"
)

// ToRuntimeValue converts an arbitrary Go value into the shapes the
// interpreter core understands: int64, float64, string, bool, []any,
// map[string]any and field sources. Structs (and pointers to them) become
// reflection-backed field sources so member access works on them without
// the core ever touching reflection itself.
func ToRuntimeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool, int64, float64, string:
		return v
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return float64(v)
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = ToRuntimeValue(item)
		}
		return result
	case []string:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = item
		}
		return result
	case []int:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = int64(item)
		}
		return result
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, item := range v {
			result[key] = ToRuntimeValue(item)
		}
		return result
	}

	return toRuntimeReflect(reflect.ValueOf(value))
}

func toRuntimeReflect(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return toRuntimeReflect(rv.Elem())

	case reflect.Slice, reflect.Array:
		result := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result[i] = ToRuntimeValue(rv.Index(i).Interface())
		}
		return result

	case reflect.Map:
		result := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok {
				key = fmt.Sprintf("%v", iter.Key().Interface())
			}
			result[key] = ToRuntimeValue(iter.Value().Interface())
		}
		return result

	case reflect.Struct:
		return &structFieldSource{value: rv}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())

	case reflect.Float32, reflect.Float64:
		return rv.Float()

	case reflect.Bool:
		return rv.Bool()

	case reflect.String:
		return rv.String()

	default:
		return rv.Interface()
	}
}

// structFieldSource exposes a struct's exported fields to member access,
// matched case-insensitively.
type structFieldSource struct {
	value reflect.Value
}

func (s *structFieldSource) GetField(name string) (any, bool) {
	structType := s.value.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() || !strings.EqualFold(field.Name, name) {
			continue
		}
		return ToRuntimeValue(s.value.Field(i).Interface()), true
	}

	return nil, false
}
