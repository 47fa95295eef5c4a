package sanitizer

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/superisaac/jsinspect/schema"
)

type rule struct {
	name    string
	applies func(s *schema.Schema) bool
	apply   func(z *Sanitizer, s *schema.Schema, post any) any
}

// every rule returns the next value of the candidate, set up in init
// as the property and item rules recurse back into the table.
var rules []rule

func init() {
	rules = []rule{
		{"optional", always, (*Sanitizer).applyOptional},
		{"type", func(s *schema.Schema) bool { return len(s.Type) == 1 && !s.TypeList }, (*Sanitizer).applyType},
		{"rules", func(s *schema.Schema) bool { return len(s.Rules) > 0 }, (*Sanitizer).applyRules},
		{"min", func(s *schema.Schema) bool { return s.Min != nil }, (*Sanitizer).applyMin},
		{"max", func(s *schema.Schema) bool { return s.Max != nil }, (*Sanitizer).applyMax},
		{"minLength", func(s *schema.Schema) bool { return s.MinLength != nil }, (*Sanitizer).applyMinLength},
		{"maxLength", func(s *schema.Schema) bool { return s.MaxLength != nil }, (*Sanitizer).applyMaxLength},
		{"properties", func(s *schema.Schema) bool { return s.Properties != nil }, (*Sanitizer).applyProperties},
		{"items", func(s *schema.Schema) bool { return s.Items != nil }, (*Sanitizer).applyItems},
		{"exec", func(s *schema.Schema) bool { return len(s.Transform) > 0 }, (*Sanitizer).applyExec},
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

func (z *Sanitizer) applyOptional(s *schema.Schema, post any) any {
	if s.IsOptional(true) || !schema.IsUndefined(post) {
		return post
	}
	z.report("")
	if schema.IsNow(s.Def) {
		return time.Now()
	}
	if s.Def == nil && !s.HasDef {
		return schema.Undefined
	}
	return schema.Clone(s.Def)
}

func (z *Sanitizer) applyType(s *schema.Schema, post any) any {
	switch post.(type) {
	case map[string]any, []any:
		return post
	}
	typeName, _ := s.SingleType()
	coerce, ok := coercions[typeName]
	if !ok {
		return post
	}
	optional := s.IsOptional(true)
	n, res := coerce(post)
	if res == coerced && schema.IsUndefined(n) {
		// an absent value passed through is as unusable as NaN
		res = notANumber
	}
	if (res == failed && !optional) || res == notANumber || (res == failed && typeName == "string") {
		n = schema.Clone(s.Def)
		if schema.IsNow(n) {
			n = time.Now()
		}
	}
	if n != nil && !schema.IsUndefined(n) && !schema.SameValue(n, post) {
		z.report("")
		return n
	}
	return post
}

func (z *Sanitizer) applyRules(s *schema.Schema, post any) any {
	str, ok := post.(string)
	if !ok {
		return post
	}
	modified := false
	for _, name := range s.Rules {
		if fn, found := transforms[name]; found {
			str = fn(str)
			modified = true
		}
	}
	if modified {
		z.report("")
		return str
	}
	return post
}

// compareBound orders a candidate against a min/max bound, numbers
// against numbers and strings against strings only.
func compareBound(post, bound any) (int, bool) {
	if pf, ok := schema.ToFloat(post); ok {
		bf, ok := schema.ToFloat(bound)
		if !ok {
			return 0, false
		}
		switch {
		case pf < bf:
			return -1, true
		case pf > bf:
			return 1, true
		}
		return 0, true
	}
	if ps, ok := post.(string); ok {
		bs, ok := bound.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(ps, bs), true
	}
	return 0, false
}

func (z *Sanitizer) applyMin(s *schema.Schema, post any) any {
	if cmp, ok := compareBound(post, s.Min); ok && cmp < 0 {
		z.report("")
		return s.Min
	}
	return post
}

func (z *Sanitizer) applyMax(s *schema.Schema, post any) any {
	if cmp, ok := compareBound(post, s.Max); ok && cmp > 0 {
		z.report("")
		return s.Max
	}
	return post
}

func (z *Sanitizer) applyMinLength(s *schema.Schema, post any) any {
	str, ok := post.(string)
	if !ok || *s.MinLength < 0 {
		return post
	}
	gap := *s.MinLength - utf8.RuneCountInString(str)
	if gap > 0 {
		z.report("")
		return str + strings.Repeat("-", gap)
	}
	return post
}

func (z *Sanitizer) applyMaxLength(s *schema.Schema, post any) any {
	str, ok := post.(string)
	if !ok || *s.MaxLength < 0 {
		return post
	}
	if utf8.RuneCountInString(str) > *s.MaxLength {
		z.report("")
		return string([]rune(str)[:*s.MaxLength])
	}
	return post
}

func (z *Sanitizer) applyProperties(s *schema.Schema, post any) any {
	obj, ok := post.(map[string]any)
	if !ok {
		return post
	}
	if wildcard, found := s.Properties.Wildcard(); found {
		for _, key := range schema.SortedKeys(obj) {
			if s.Properties.Has(key) {
				continue
			}
			if tmp := z.descendProperty(key, wildcard, obj[key]); !schema.IsUndefined(tmp) {
				obj[key] = tmp
			}
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
		if tmp := z.descendProperty(key, child, value); !schema.IsUndefined(tmp) {
			obj[key] = tmp
		}
	}
	return obj
}

func (z *Sanitizer) applyItems(s *schema.Schema, post any) any {
	arr, ok := post.([]any)
	if !ok {
		return post
	}
	if s.Items.IsTuple() {
		for i, child := range s.Items.Tuple {
			if i >= len(arr) {
				break
			}
			arr[i] = z.descendIndex(i, child, arr[i])
		}
		return arr
	}
	if s.Items.Single == nil {
		return arr
	}
	for i := range arr {
		arr[i] = z.descendIndex(i, s.Items.Single, arr[i])
	}
	return arr
}

func (z *Sanitizer) applyExec(s *schema.Schema, post any) any {
	for _, fn := range s.Transform {
		if fn == nil {
			continue
		}
		tmp := fn(s, post)
		if !schema.SameValue(tmp, post) {
			z.report("")
		}
		post = tmp
	}
	return post
}
