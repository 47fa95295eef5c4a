package schema

import (
	"encoding/json"
	"math"
	"reflect"
	"time"
	"unicode/utf8"
)

// TypeNames lists the canonical type names in classification
// priority order. "any" is not part of it.
var TypeNames = []string{
	"string",
	"number",
	"integer",
	"boolean",
	"null",
	"date",
	"object",
	"array",
}

// TypeIs tells whether v is of the canonical type typeName, an
// unknown type name is treated as "any" and always matches.
func TypeIs(typeName string, v any) bool {
	switch typeName {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		f, ok := ToFloat(v)
		return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
	case "integer":
		f, ok := ToFloat(v)
		return ok && !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "null":
		return v == nil
	case "date":
		return IsDate(v)
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	default:
		return true
	}
}

// TypeOf returns the canonical type name of v, the first one in
// TypeNames that matches. Values outside the canonical types report
// "NaN" or "Infinity" for numbers that are not finite and the Go kind
// name otherwise.
func TypeOf(v any) string {
	for _, name := range TypeNames {
		if TypeIs(name, v) {
			return name
		}
	}
	if IsUndefined(v) {
		return "undefined"
	}
	if f, ok := ToFloat(v); ok {
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		}
		return "number"
	}
	return reflect.TypeOf(v).Kind().String()
}

func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// ToFloat converts any Go numeric value, or a json.Number, to
// float64. NaN is a number here.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// IsNumeric tells whether v is of any numeric kind, NaN included.
func IsNumeric(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// Length returns the count of characters of a string or of elements
// of an array.
func Length(v any) (int, bool) {
	switch c := v.(type) {
	case string:
		return utf8.RuneCountInString(c), true
	case []any:
		return len(c), true
	}
	return 0, false
}

// SameValue is strict equality on candidate values, containers
// compare by identity.
func SameValue(a, b any) bool {
	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		return ok && fa == fb
	}
	switch va := a.(type) {
	case nil:
		return b == nil
	case string:
		vb, ok := b.(string)
		return ok && va == vb
	case bool:
		vb, ok := b.(bool)
		return ok && va == vb
	case undefinedValue:
		return IsUndefined(b)
	case map[string]any:
		vb, ok := b.(map[string]any)
		return ok && reflect.ValueOf(va).Pointer() == reflect.ValueOf(vb).Pointer()
	case []any:
		vb, ok := b.([]any)
		if !ok || len(va) != len(vb) {
			return false
		}
		return len(va) == 0 || &va[0] == &vb[0]
	}
	if ta, ok := asTime(a); ok {
		tb, ok := asTime(b)
		return ok && ta.Equal(tb)
	}
	return false
}

func IsNow(v any) bool {
	_, ok := v.(nowValue)
	return ok
}
