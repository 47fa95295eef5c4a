package schema

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
)

func stringInList(a string, candidates ...string) bool {
	for _, ca := range candidates {
		if ca == a {
			return true
		}
	}
	return false
}

// NewOrderedMap builds an ordered map out of a plain map, keys are
// sorted as a plain map has no order of its own.
func NewOrderedMap(m map[string]any) *OrderedMap {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &OrderedMap{Keys: keys, Values: m}
}

func (om *OrderedMap) Get(key string) (any, bool) {
	v, ok := om.Values[key]
	return v, ok
}

func (om *OrderedMap) Set(key string, v any) {
	if om.Values == nil {
		om.Values = make(map[string]any)
	}
	if _, found := om.Values[key]; !found {
		om.Keys = append(om.Keys, key)
	}
	om.Values[key] = v
}

// util functions
func convertTypeMap(maybeType any) (*OrderedMap, bool) {
	switch v := maybeType.(type) {
	case string:
		if stringInList(v, TypeNames...) || v == "any" {
			// type is single string, build a simple map
			om := &OrderedMap{}
			om.Set("type", v)
			return om, true
		}
	case *OrderedMap:
		return v, v != nil
	case map[string]any:
		return NewOrderedMap(v), true
	}
	return nil, false
}

func convertAttrBool(node *OrderedMap, attrName string) (bool, bool) {
	if v, ok := node.Get(attrName); ok {
		if bf, ok := v.(bool); ok {
			return bf, true
		}
	}
	return false, false
}

func convertAttrString(node *OrderedMap, attrName string) (string, bool) {
	if v, ok := node.Get(attrName); ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func convertAttrInt(node *OrderedMap, attrName string) (int, bool) {
	if v, ok := node.Get(attrName); ok {
		if n, ok := v.(json.Number); ok {
			intv, err := n.Int64()
			if err != nil {
				return 0, false
			}
			return int(intv), true
		}
		if f, ok := ToFloat(v); ok && !math.IsNaN(f) && f == math.Trunc(f) {
			return int(f), true
		}
	}
	return 0, false
}

func convertAttrFloat(node *OrderedMap, attrName string) (float64, bool) {
	if v, ok := node.Get(attrName); ok {
		return ToFloat(v)
	}
	return 0, false
}

// one string or a list of strings
func convertAttrStrings(node *OrderedMap, attrName string) ([]string, bool) {
	v, ok := node.Get(attrName)
	if !ok {
		return nil, false
	}
	switch sv := v.(type) {
	case string:
		return []string{sv}, true
	case []string:
		return sv, true
	case []any:
		arr := make([]string, 0, len(sv))
		for _, item := range sv {
			strItem, ok := item.(string)
			if !ok {
				return nil, false
			}
			arr = append(arr, strItem)
		}
		return arr, true
	}
	return nil, false
}

func convertAttrEnum(node *OrderedMap, attrName string) (*Enum, bool) {
	v, ok := node.Get(attrName)
	if !ok {
		return nil, false
	}
	if list, ok := v.([]any); ok {
		return &Enum{Values: plainValue(list).([]any), List: true}, true
	}
	if _, ok := v.(string); ok || IsNumeric(v) {
		return &Enum{Values: []any{plainValue(v)}}, true
	}
	return nil, false
}

// a number or a string
func convertAttrBound(node *OrderedMap, attrName string) (any, bool) {
	v, ok := node.Get(attrName)
	if !ok {
		return nil, false
	}
	if _, ok := v.(string); ok || IsNumeric(v) {
		return plainValue(v), true
	}
	return nil, false
}

func convertAttrPatterns(node *OrderedMap, attrName string) ([]Pattern, bool) {
	v, ok := node.Get(attrName)
	if !ok {
		return nil, false
	}
	entries, isList := v.([]any)
	if !isList {
		entries = []any{v}
	}
	patterns := make([]Pattern, 0, len(entries))
	for _, entry := range entries {
		switch p := entry.(type) {
		case string:
			patterns = append(patterns, NewPattern(p))
		case *regexp.Regexp:
			patterns = append(patterns, RegexpPattern(p))
		case Pattern:
			patterns = append(patterns, p)
		}
	}
	return patterns, len(patterns) > 0
}

func convertCheckFunc(v any) (CheckFunc, bool) {
	switch fn := v.(type) {
	case CheckFunc:
		return fn, fn != nil
	case func(*Schema, any, ReportFunc):
		return fn, fn != nil
	}
	return nil, false
}

func convertTransformFunc(v any) (TransformFunc, bool) {
	switch fn := v.(type) {
	case TransformFunc:
		return fn, fn != nil
	case func(*Schema, any) any:
		return fn, fn != nil
	}
	return nil, false
}

// exec holds one or a list of functions, each either flavor
func convertAttrExec(node *OrderedMap, attrName string) ([]CheckFunc, []TransformFunc) {
	v, ok := node.Get(attrName)
	if !ok {
		return nil, nil
	}
	entries, isList := v.([]any)
	if !isList {
		entries = []any{v}
	}
	var checks []CheckFunc
	var transforms []TransformFunc
	for _, entry := range entries {
		if fn, ok := convertCheckFunc(entry); ok {
			checks = append(checks, fn)
		} else if fn, ok := convertTransformFunc(entry); ok {
			transforms = append(transforms, fn)
		}
	}
	return checks, transforms
}

// plainValue turns ordered maps back into plain maps and numbers into
// int64 or float64, for values handed over to callers as they are
// (def, custom keys).
func plainValue(v any) any {
	switch tv := v.(type) {
	case *OrderedMap:
		m := make(map[string]any, len(tv.Values))
		for k, elem := range tv.Values {
			m[k] = plainValue(elem)
		}
		return m
	case []any:
		arr := make([]any, len(tv))
		for i, elem := range tv {
			arr[i] = plainValue(elem)
		}
		return arr
	case json.Number:
		if n, err := tv.Int64(); err == nil {
			return n
		}
		if f, err := tv.Float64(); err == nil {
			return f
		}
	}
	return v
}
