// Package generator synthesizes random values which conform to a
// schema, handy for fixtures and tests. It is best effort: constraints
// it cannot honor together are silently approximated.
package generator

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsinspect/schema"
)

const (
	DefaultMaxDepth = 32

	defaultMaxStringLength = 32
	defaultMaxArrayLength  = 16

	// attempts to find a value outside ne, or not yet in a unique array
	maxResample = 64

	// below this depth "any" no longer picks objects or arrays
	maxAnyNesting = 2
)

var scalarTypeNames = []string{"string", "number", "integer", "boolean", "null", "date"}

type Options struct {
	// 0 picks a random seed
	Seed     int64
	MaxDepth int
}

type Generator struct {
	options Options
	faker   *gofakeit.Faker
	depth   int
}

func New(options ...Options) *Generator {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Generator{
		options: opts,
		faker:   gofakeit.New(opts.Seed),
	}
}

// Generate returns one random value conforming to s
func (g *Generator) Generate(s *schema.Schema) any {
	if s == nil {
		s = &schema.Schema{}
	}
	if g.depth >= g.options.MaxDepth {
		log.Warnf("generation stops at depth %d", g.depth)
		return nil
	}
	g.depth++
	defer func() { g.depth-- }()
	return g.generateType(g.pickType(s), s)
}

// GenerateN returns n random values conforming to s
func (g *Generator) GenerateN(s *schema.Schema, n int) []any {
	values := make([]any, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, g.Generate(s))
	}
	return values
}

func (g *Generator) pickType(s *schema.Schema) string {
	switch len(s.Type) {
	case 0:
		return "any"
	case 1:
		return s.Type[0]
	}
	return s.Type[g.faker.IntRange(0, len(s.Type)-1)]
}

func (g *Generator) generateType(typeName string, s *schema.Schema) any {
	switch typeName {
	case "string":
		return g.generateString(s)
	case "number":
		return g.generateNumber(s)
	case "integer":
		return g.generateInteger(s)
	case "boolean":
		if v, ok := g.pickEq(s); ok {
			return v
		}
		return g.faker.Bool()
	case "null":
		return nil
	case "date":
		if v, ok := g.pickEq(s); ok {
			return v
		}
		return g.faker.Date()
	case "object":
		return g.generateObject(s)
	case "array":
		return g.generateArray(s)
	}
	// "any" and unknown type names
	names := schema.TypeNames
	if g.depth > maxAnyNesting {
		names = scalarTypeNames
	}
	typeName = names[g.faker.IntRange(0, len(names)-1)]
	return g.generateType(typeName, s)
}

// pickEq returns the eq value, a random member if eq is a list
func (g *Generator) pickEq(s *schema.Schema) (any, bool) {
	if s.Eq == nil || len(s.Eq.Values) == 0 {
		return nil, false
	}
	return s.Eq.Values[g.faker.IntRange(0, len(s.Eq.Values)-1)], true
}

func isForbidden(s *schema.Schema, v any) bool {
	if s.Ne == nil {
		return false
	}
	for _, forbidden := range s.Ne.Values {
		if schema.SameValue(forbidden, v) {
			return true
		}
	}
	return false
}

// limits narrows lt/lte/gt/gte into an inclusive window, the 32 bit
// signed range by default.
func limits(s *schema.Schema) (float64, float64) {
	min, max := float64(math.MinInt32), float64(math.MaxInt32)
	if s.Gte != nil {
		min = *s.Gte
	} else if s.Gt != nil {
		min = *s.Gt + 1
	}
	if s.Lte != nil {
		max = *s.Lte
	} else if s.Lt != nil {
		max = *s.Lt - 1
	}
	if min > max {
		min, max = max, min
	}
	return min, max
}

func (g *Generator) generateNumber(s *schema.Schema) any {
	if v, ok := g.pickEq(s); ok {
		return v
	}
	min, max := limits(s)
	n := g.faker.Float64Range(min, max)
	for i := 0; i < maxResample && isForbidden(s, n); i++ {
		n = g.faker.Float64Range(min, max)
	}
	return n
}

func (g *Generator) generateInteger(s *schema.Schema) any {
	if v, ok := g.pickEq(s); ok {
		return v
	}
	min, max := limits(s)
	lo, hi := int(math.Ceil(min)), int(math.Floor(max))
	if lo > hi {
		lo, hi = hi, lo
	}
	n := int64(g.faker.IntRange(lo, hi))
	for i := 0; i < maxResample && isForbidden(s, n); i++ {
		n = int64(g.faker.IntRange(lo, hi))
	}
	return n
}

func lengthBounds(s *schema.Schema, defaultMax int) (int, int) {
	min, max := 0, defaultMax
	if s.MinLength != nil && *s.MinLength > 0 {
		min = *s.MinLength
	}
	if s.MaxLength != nil && *s.MaxLength >= 0 {
		max = *s.MaxLength
	}
	if max < min {
		max = min
	}
	return min, max
}

func (g *Generator) generateString(s *schema.Schema) any {
	if v, ok := g.pickEq(s); ok {
		return v
	}
	minLength, maxLength := lengthBounds(s, defaultMaxStringLength)
	if s.ExactLength != nil && *s.ExactLength >= 0 {
		minLength, maxLength = *s.ExactLength, *s.ExactLength
	}
	if len(s.Pattern) > 0 {
		if str, ok := g.generatePatterned(s, minLength, maxLength); ok {
			return str
		}
	}
	length := g.faker.IntRange(minLength, maxLength)
	str := g.randomChars(length, s.Uniqueness)
	for i := 0; i < maxResample && isForbidden(s, str); i++ {
		str = g.randomChars(length, s.Uniqueness)
	}
	return str
}

// generatePatterned samples the patterns until a string also fits the
// length, ne and uniqueness rules, the last sample wins otherwise.
func (g *Generator) generatePatterned(s *schema.Schema, minLength, maxLength int) (string, bool) {
	var last string
	found := false
	for i := 0; i < maxResample; i++ {
		p := s.Pattern[g.faker.IntRange(0, len(s.Pattern)-1)]
		str, ok := g.samplePattern(p, minLength, maxLength)
		if !ok {
			continue
		}
		last, found = str, true
		if fitsString(s, str) {
			return str, true
		}
	}
	return last, found
}

func fitsString(s *schema.Schema, str string) bool {
	n := utf8.RuneCountInString(str)
	if s.MinLength != nil && n < *s.MinLength {
		return false
	}
	if s.MaxLength != nil && n > *s.MaxLength {
		return false
	}
	if s.ExactLength != nil && n != *s.ExactLength {
		return false
	}
	if s.Uniqueness {
		seen := make(map[rune]bool)
		for _, r := range str {
			if seen[r] {
				return false
			}
			seen[r] = true
		}
	}
	return !isForbidden(s, str)
}

// randomChars picks printable ascii characters, all distinct when
// unique is set (at most 95 of them then).
func (g *Generator) randomChars(length int, unique bool) string {
	chars := make([]rune, 0, length)
	used := make(map[rune]bool)
	for len(chars) < length {
		c := rune(g.faker.IntRange(32, 126))
		if unique {
			if len(used) >= 95 {
				break
			}
			if used[c] {
				continue
			}
			used[c] = true
		}
		chars = append(chars, c)
	}
	return string(chars)
}

const randomKeyPrefix = "__random_key_"

func (g *Generator) generateObject(s *schema.Schema) any {
	obj := make(map[string]any)
	for _, key := range s.Properties.Keys() {
		child, _ := s.Properties.Get(key)
		if child != nil && child.IsOptional(false) && g.faker.Bool() {
			continue
		}
		if key != "*" {
			obj[key] = g.Generate(child)
			continue
		}
		n := g.faker.IntRange(1, 9)
		for i := 0; i < n; i++ {
			randomKey := fmt.Sprintf("%s%d", randomKeyPrefix, i)
			if !s.Properties.Has(randomKey) {
				obj[randomKey] = g.Generate(child)
			}
		}
	}
	return obj
}

func (g *Generator) generateArray(s *schema.Schema) any {
	minLength, maxLength := lengthBounds(s, defaultMaxArrayLength)
	if s.Items != nil && s.Items.IsTuple() {
		size := len(s.Items.Tuple)
		if s.ExactLength != nil && *s.ExactLength >= 0 {
			size = *s.ExactLength
		} else if size < minLength {
			size = minLength
		} else if size > maxLength {
			size = maxLength
		}
		arr := make([]any, 0, size)
		for i := 0; i < size; i++ {
			var child *schema.Schema
			if i < len(s.Items.Tuple) {
				child = s.Items.Tuple[i]
			}
			arr = append(arr, g.uniqueElement(s, arr, child))
		}
		return arr
	}

	var child *schema.Schema
	if s.Items != nil {
		child = s.Items.Single
	}
	size := g.faker.IntRange(minLength, maxLength)
	if s.ExactLength != nil && *s.ExactLength >= 0 {
		size = *s.ExactLength
	}
	arr := make([]any, 0, size)
	for i := 0; i < size; i++ {
		arr = append(arr, g.uniqueElement(s, arr, child))
	}
	return arr
}

// uniqueElement generates the next element, avoiding values already
// in arr when the array must hold distinct values.
func (g *Generator) uniqueElement(s *schema.Schema, arr []any, child *schema.Schema) any {
	elem := g.Generate(child)
	if !s.Uniqueness {
		return elem
	}
	for i := 0; i < maxResample && containsSame(arr, elem); i++ {
		elem = g.Generate(child)
	}
	return elem
}

func containsSame(values []any, v any) bool {
	for _, value := range values {
		if schema.SameValue(value, v) {
			return true
		}
	}
	return false
}
