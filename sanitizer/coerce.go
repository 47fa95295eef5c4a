package sanitizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	json "github.com/goccy/go-json"
	"github.com/superisaac/jsinspect/schema"
)

type outcome int

const (
	coerced outcome = iota
	// nothing usable came out
	failed
	// a number was expected but the text does not start with one
	notANumber
)

type coerceFunc func(post any) (any, outcome)

// coercions by target type, "null", "array" and "any" have none
var coercions = map[string]coerceFunc{
	"number":  toNumber,
	"integer": toInteger,
	"string":  toString,
	"date":    toDate,
	"boolean": toBoolean,
	"object":  toObject,
}

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// date layouts tried in order on strings
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

// parseFloatPrefix reads the longest leading number of str, the rest
// is ignored. "12.5kg" gives 12.5. Numbers out of float64 range are
// not numbers.
func parseFloatPrefix(str string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimLeftFunc(str, unicode.IsSpace))
	if m == "" {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN(), false
	}
	return f, true
}

func parseIntPrefix(str string) (any, bool) {
	m := intPrefix.FindString(strings.TrimLeftFunc(str, unicode.IsSpace))
	if m == "" {
		return nil, false
	}
	if n, err := strconv.ParseInt(m, 10, 64); err == nil {
		return n, true
	}
	// out of int64 range
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func toNumber(post any) (any, outcome) {
	if f, ok := schema.ToFloat(post); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return post, notANumber
		}
		return post, coerced
	}
	if str, ok := post.(string); ok {
		str = strings.ReplaceAll(str, ",", ".")
		str = strings.ReplaceAll(str, " ", "")
		f, ok := parseFloatPrefix(str)
		if !ok {
			return nil, notANumber
		}
		return f, coerced
	}
	return nil, failed
}

func toInteger(post any) (any, outcome) {
	if f, ok := schema.ToFloat(post); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, notANumber
		}
		if f == math.Trunc(f) {
			return post, coerced
		}
		return int64(math.Trunc(f)), coerced
	}
	switch v := post.(type) {
	case string:
		n, ok := parseIntPrefix(strings.ReplaceAll(v, " ", ""))
		if !ok {
			return nil, notANumber
		}
		return n, coerced
	case bool:
		if v {
			return int64(1), coerced
		}
		return int64(0), coerced
	}
	return nil, failed
}

func toString(post any) (any, outcome) {
	switch v := post.(type) {
	case string:
		if v == "" {
			return nil, failed
		}
		return v, coerced
	case bool, []any:
		return schema.ToString(v), coerced
	case map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, failed
		}
		return string(data), coerced
	}
	if schema.IsNumeric(post) || schema.IsDate(post) {
		return schema.ToString(post), coerced
	}
	return nil, failed
}

func toDate(post any) (any, outcome) {
	if schema.IsDate(post) {
		return post, coerced
	}
	if str, ok := post.(string); ok {
		str = strings.TrimSpace(str)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, str); err == nil {
				return t, coerced
			}
		}
		return nil, failed
	}
	// numbers are unix milliseconds
	if f, ok := schema.ToFloat(post); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return time.UnixMilli(int64(f)).UTC(), coerced
	}
	return nil, failed
}

func toBoolean(post any) (any, outcome) {
	if schema.IsUndefined(post) {
		return nil, failed
	}
	if str, ok := post.(string); ok && strings.ToLower(str) == "false" {
		return false, coerced
	}
	return truthy(post), coerced
}

func truthy(v any) bool {
	switch tv := v.(type) {
	case nil:
		return false
	case bool:
		return tv
	case string:
		return tv != ""
	}
	if schema.IsUndefined(v) {
		return false
	}
	if f, ok := schema.ToFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func toObject(post any) (any, outcome) {
	str, ok := post.(string)
	if !ok {
		return post, coerced
	}
	var v any
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, failed
	}
	return v, coerced
}
