package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SortedKeys returns the keys of an object candidate in the order the
// engines visit them.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatNumber renders a float the way JSON-minded people expect:
// integral values without a fraction.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToString gives the natural text form of a candidate value, arrays
// join their elements with commas.
func ToString(v any) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case undefinedValue:
		return "undefined"
	case string:
		return tv
	case bool:
		return strconv.FormatBool(tv)
	case json.Number:
		return tv.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", tv)
	case []any:
		parts := make([]string, len(tv))
		for i, elem := range tv {
			if elem == nil || IsUndefined(elem) {
				continue
			}
			parts[i] = ToString(elem)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	}
	if f, ok := ToFloat(v); ok {
		return FormatNumber(f)
	}
	if t, ok := asTime(v); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprint(v)
}

// Clone deep copies objects and arrays, other values are returned as
// they are. Defaults are cloned before landing in a candidate so that
// later rewrites do not reach back into the schema.
func Clone(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(tv))
		for k, elem := range tv {
			m[k] = Clone(elem)
		}
		return m
	case []any:
		arr := make([]any, len(tv))
		for i, elem := range tv {
			arr[i] = Clone(elem)
		}
		return arr
	}
	return v
}
