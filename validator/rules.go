package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/superisaac/jsinspect/schema"
)

type rule struct {
	name    string
	applies func(s *schema.Schema) bool
	check   func(v *Validator, s *schema.Schema, candidate any)
}

// rules run in this order on every node, set up in init as the
// property and item rules recurse back into the table.
var rules []rule

func init() {
	rules = []rule{
		{"optional", always, (*Validator).checkOptional},
		{"type", func(s *schema.Schema) bool { return len(s.Type) > 0 }, (*Validator).checkType},
		{"uniqueness", func(s *schema.Schema) bool { return s.Uniqueness }, (*Validator).checkUniqueness},
		{"pattern", func(s *schema.Schema) bool { return len(s.Pattern) > 0 }, (*Validator).checkPattern},
		{"minLength", func(s *schema.Schema) bool { return s.MinLength != nil }, (*Validator).checkMinLength},
		{"maxLength", func(s *schema.Schema) bool { return s.MaxLength != nil }, (*Validator).checkMaxLength},
		{"exactLength", func(s *schema.Schema) bool { return s.ExactLength != nil }, (*Validator).checkExactLength},
		{"lt", func(s *schema.Schema) bool { return s.Lt != nil }, (*Validator).checkLt},
		{"lte", func(s *schema.Schema) bool { return s.Lte != nil }, (*Validator).checkLte},
		{"gt", func(s *schema.Schema) bool { return s.Gt != nil }, (*Validator).checkGt},
		{"gte", func(s *schema.Schema) bool { return s.Gte != nil }, (*Validator).checkGte},
		{"eq", func(s *schema.Schema) bool { return s.Eq != nil }, (*Validator).checkEq},
		{"ne", func(s *schema.Schema) bool { return s.Ne != nil }, (*Validator).checkNe},
		{"someKeys", func(s *schema.Schema) bool { return s.SomeKeys != nil }, (*Validator).checkSomeKeys},
		{"exec", func(s *schema.Schema) bool { return len(s.Exec) > 0 }, (*Validator).checkExec},
		{"strict", func(s *schema.Schema) bool { return s.Strict }, (*Validator).checkStrict},
		{"properties", func(s *schema.Schema) bool { return s.Properties != nil }, (*Validator).checkProperties},
		{"items", func(s *schema.Schema) bool { return s.Items != nil }, (*Validator).checkItems},
	}
}

// RuleNames lists the built-in rules in run order
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

func always(s *schema.Schema) bool {
	return true
}

func quote(v any) string {
	return `"` + schema.ToString(v) + `"`
}

func quoteAll(values []any) []string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, quote(value))
	}
	return quoted
}

func (v *Validator) checkOptional(s *schema.Schema, candidate any) {
	if !s.IsOptional(false) && schema.IsUndefined(candidate) {
		v.report("is missing and not optional")
	}
}

func (v *Validator) checkType(s *schema.Schema, candidate any) {
	if schema.IsUndefined(candidate) {
		return
	}
	for _, typeName := range s.Type {
		if schema.TypeIs(typeName, candidate) {
			return
		}
	}
	v.report(fmt.Sprintf("must be %s, but is %s",
		strings.Join(s.Type, " or "), schema.TypeOf(candidate)))
}

func (v *Validator) checkUniqueness(s *schema.Schema, candidate any) {
	var elems []any
	switch c := candidate.(type) {
	case string:
		for _, r := range c {
			elems = append(elems, string(r))
		}
	case []any:
		elems = c
	default:
		return
	}

	var reported []any
	for i, elem := range elems {
		if containsSame(reported, elem) {
			continue
		}
		var indexes []string
		for j := i; j < len(elems); j++ {
			if schema.SameValue(elems[j], elem) {
				indexes = append(indexes, strconv.Itoa(j))
			}
		}
		if len(indexes) > 1 {
			reported = append(reported, elem)
			v.report(fmt.Sprintf("has value [%s] more than once at indexes [%s]",
				schema.ToString(elem), strings.Join(indexes, ", ")))
		}
	}
}

func containsSame(values []any, v any) bool {
	for _, value := range values {
		if schema.SameValue(value, v) {
			return true
		}
	}
	return false
}

func (v *Validator) checkPattern(s *schema.Schema, candidate any) {
	str, ok := candidate.(string)
	if !ok {
		return
	}
	names := make([]string, 0, len(s.Pattern))
	for _, p := range s.Pattern {
		if p.MatchString(str) {
			return
		}
		names = append(names, p.String())
	}
	v.report(fmt.Sprintf("must match [%s], but is equal to %s",
		strings.Join(names, " or "), quote(str)))
}

func (v *Validator) checkMinLength(s *schema.Schema, candidate any) {
	if n, ok := schema.Length(candidate); ok && n < *s.MinLength {
		v.report(fmt.Sprintf("must be longer than %d elements, but it has %d", *s.MinLength, n))
	}
}

func (v *Validator) checkMaxLength(s *schema.Schema, candidate any) {
	if n, ok := schema.Length(candidate); ok && n > *s.MaxLength {
		v.report(fmt.Sprintf("must be shorter than %d elements, but it has %d", *s.MaxLength, n))
	}
}

func (v *Validator) checkExactLength(s *schema.Schema, candidate any) {
	if n, ok := schema.Length(candidate); ok && n != *s.ExactLength {
		v.report(fmt.Sprintf("must have exactly %d elements, but it have %d", *s.ExactLength, n))
	}
}

func (v *Validator) checkBound(candidate any, limit float64, pass func(c, l float64) bool, what string) {
	c, ok := schema.ToFloat(candidate)
	if !ok || pass(c, limit) {
		return
	}
	v.report(fmt.Sprintf("must be %s %s, but is equal to %s",
		what, schema.FormatNumber(limit), quote(candidate)))
}

func (v *Validator) checkLt(s *schema.Schema, candidate any) {
	v.checkBound(candidate, *s.Lt, func(c, l float64) bool { return c < l }, "less than")
}

func (v *Validator) checkLte(s *schema.Schema, candidate any) {
	v.checkBound(candidate, *s.Lte, func(c, l float64) bool { return c <= l }, "less than or equal to")
}

func (v *Validator) checkGt(s *schema.Schema, candidate any) {
	v.checkBound(candidate, *s.Gt, func(c, l float64) bool { return c > l }, "greater than")
}

func (v *Validator) checkGte(s *schema.Schema, candidate any) {
	v.checkBound(candidate, *s.Gte, func(c, l float64) bool { return c >= l }, "greater than or equal to")
}

// eq and ne compare numbers and strings only
func isComparable(candidate any) bool {
	_, isStr := candidate.(string)
	return isStr || schema.IsNumeric(candidate)
}

func (v *Validator) checkEq(s *schema.Schema, candidate any) {
	if !isComparable(candidate) {
		return
	}
	if containsSame(s.Eq.Values, candidate) {
		return
	}
	if s.Eq.List {
		v.report(fmt.Sprintf("must be equal to [%s], but is equal to %s",
			strings.Join(quoteAll(s.Eq.Values), " or "), quote(candidate)))
	} else if len(s.Eq.Values) > 0 {
		v.report(fmt.Sprintf("must be equal to %s, but is equal to %s",
			quote(s.Eq.Values[0]), quote(candidate)))
	}
}

func (v *Validator) checkNe(s *schema.Schema, candidate any) {
	if !isComparable(candidate) {
		return
	}
	for _, forbidden := range s.Ne.Values {
		if schema.SameValue(forbidden, candidate) {
			v.report(fmt.Sprintf("must not be equal to %s", quote(forbidden)))
			return
		}
	}
}

func (v *Validator) checkSomeKeys(s *schema.Schema, candidate any) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return
	}
	for _, key := range s.SomeKeys {
		if _, found := obj[key]; found {
			return
		}
	}
	keys := make([]any, 0, len(s.SomeKeys))
	for _, key := range s.SomeKeys {
		keys = append(keys, key)
	}
	v.report(fmt.Sprintf("must have at least key %s", strings.Join(quoteAll(keys), " or ")))
}

func (v *Validator) checkExec(s *schema.Schema, candidate any) {
	for _, fn := range s.Exec {
		if fn != nil {
			fn(s, candidate, v.report)
		}
	}
}

func (v *Validator) checkStrict(s *schema.Schema, candidate any) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return
	}
	if _, hasWildcard := s.Properties.Wildcard(); hasWildcard {
		return
	}
	var intruders []any
	for _, key := range schema.SortedKeys(obj) {
		if !s.Properties.Has(key) {
			intruders = append(intruders, key)
		}
	}
	if len(intruders) == 0 {
		return
	}
	noun := "properties"
	if len(intruders) == 1 {
		noun = "property"
	}
	v.report(fmt.Sprintf("should not contains %s [%s]", noun, strings.Join(quoteAll(intruders), ", ")))
}

func (v *Validator) checkProperties(s *schema.Schema, candidate any) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return
	}
	if wildcard, found := s.Properties.Wildcard(); found {
		for _, key := range schema.SortedKeys(obj) {
			if s.Properties.Has(key) {
				continue
			}
			v.descendProperty(key, wildcard, obj[key])
		}
	}
	for _, key := range s.Properties.Keys() {
		if key == "*" {
			continue
		}
		child, _ := s.Properties.Get(key)
		value, found := obj[key]
		if !found {
			value = schema.Undefined
		}
		v.descendProperty(key, child, value)
	}
}

func (v *Validator) checkItems(s *schema.Schema, candidate any) {
	arr, ok := candidate.([]any)
	if !ok {
		return
	}
	if s.Items.IsTuple() {
		for i, child := range s.Items.Tuple {
			if i >= len(arr) {
				break
			}
			v.descendIndex(i, child, arr[i])
		}
		return
	}
	if s.Items.Single == nil {
		return
	}
	for i, elem := range arr {
		v.descendIndex(i, s.Items.Single, elem)
	}
}
