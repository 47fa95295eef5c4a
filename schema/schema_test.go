package schema

import (
	"encoding/json"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildBasicSchema(t *testing.T) {
	assert := assert.New(t)

	s1 := []byte(`{"type": "number"}`)
	builder := NewSchemaBuilder()
	s, err := builder.BuildBytes(s1)
	assert.Nil(err)
	assert.Equal([]string{"number"}, s.Type)

	s1 = []byte(`"string"`)
	s, err = builder.BuildBytes(s1)
	assert.Nil(err)
	tp, ok := s.SingleType()
	assert.True(ok)
	assert.Equal("string", tp)

	s1 = []byte(`{"type": ["string", "null"], "optional": true}`)
	s, err = builder.BuildBytes(s1)
	assert.Nil(err)
	_, ok = s.SingleType()
	assert.False(ok)
	assert.Equal([]string{"string", "null"}, s.Type)
	assert.True(s.TypeList)

	s, err = builder.BuildBytes([]byte(`{"type": ["string"]}`))
	assert.Nil(err)
	assert.True(s.TypeList)
	assert.Equal(map[string]any{"type": []string{"string"}}, s.Map())
	assert.True(s.IsOptional(false))

	s1 = []byte(`"bad2"`)
	_, err = builder.BuildBytes(s1)
	assert.NotNil(err)
	assert.Equal("ParseError data is not an object, paths: ", err.Error())

	s1 = []byte(`{"type": "string"} {}`)
	_, err = builder.BuildBytes(s1)
	assert.NotNil(err)
	assert.Equal("ParseError trailing data after schema, paths: ", err.Error())

	s1 = []byte(`{"type": `)
	_, err = builder.BuildBytes(s1)
	assert.NotNil(err)
	_, ok = err.(*ParseError)
	assert.True(ok)

	// an empty object is a schema accepting everything
	s, err = builder.BuildBytes([]byte(`{}`))
	assert.Nil(err)
	assert.Nil(s.Type)
	assert.True(s.IsOptional(true))
	assert.False(s.IsOptional(false))
}

func TestBuildAttributes(t *testing.T) {
	assert := assert.New(t)

	s1 := []byte(`{
"type": "string",
"pattern": ["email", "^a.*"],
"minLength": 2,
"maxLength": 10,
"exactLength": 5,
"lt": 1.5, "lte": 2, "gt": -1, "gte": 0,
"eq": ["a", 1],
"ne": "b",
"min": 3,
"max": "zz",
"uniqueness": true,
"strict": true,
"someKeys": ["x", "y"],
"def": {"a": [1, 2.5]},
"rules": ["trim", "upper"],
"alias": "Name",
"error": "bad name",
"divisibleBy": 4
}`)
	s, err := NewSchemaBuilder().BuildBytes(s1)
	assert.Nil(err)

	assert.Equal(2, len(s.Pattern))
	assert.True(s.Pattern[0].IsFormat())
	assert.Equal("email", s.Pattern[0].String())
	assert.False(s.Pattern[1].IsFormat())
	assert.Equal("/^a.*/", s.Pattern[1].String())

	assert.Equal(2, *s.MinLength)
	assert.Equal(10, *s.MaxLength)
	assert.Equal(5, *s.ExactLength)
	assert.Equal(1.5, *s.Lt)
	assert.Equal(2.0, *s.Lte)
	assert.Equal(-1.0, *s.Gt)
	assert.Equal(0.0, *s.Gte)

	assert.True(s.Eq.List)
	assert.Equal([]any{"a", int64(1)}, s.Eq.Values)
	assert.False(s.Ne.List)
	assert.Equal([]any{"b"}, s.Ne.Values)

	assert.Equal(int64(3), s.Min)
	assert.Equal("zz", s.Max)
	assert.True(s.Uniqueness)
	assert.True(s.Strict)
	assert.Equal([]string{"x", "y"}, s.SomeKeys)
	assert.Equal(map[string]any{"a": []any{int64(1), 2.5}}, s.Def)
	assert.Equal([]string{"trim", "upper"}, s.Rules)
	assert.Equal("Name", s.Alias)
	assert.Equal("bad name", s.Error)

	assert.True(s.HasExtra("divisibleBy"))
	assert.False(s.HasExtra("other"))
	assert.Equal(int64(4), s.Extra["divisibleBy"])
}

func TestBuildListSchema(t *testing.T) {
	assert := assert.New(t)

	s1 := []byte(`{
"type": "array",
"items": "number"
}`)
	builder := NewSchemaBuilder()
	s, err := builder.BuildBytes(s1)
	assert.Nil(err)
	assert.False(s.Items.IsTuple())
	assert.Equal([]string{"number"}, s.Items.Single.Type)

	s1 = []byte(`{
"type": "array",
"items": [
"number",
{"type": "string"},
"boolean"
]}`)
	s, err = builder.BuildBytes(s1)
	assert.Nil(err)
	assert.True(s.Items.IsTuple())
	assert.Equal(3, len(s.Items.Tuple))
	assert.Equal([]string{"number"}, s.Items.Tuple[0].Type)
	assert.Equal([]string{"string"}, s.Items.Tuple[1].Type)
	assert.Equal([]string{"boolean"}, s.Items.Tuple[2].Type)
}

func TestBuildObjectSchema(t *testing.T) {
	assert := assert.New(t)

	s1 := []byte(`{
"type": "object",
"properties": {
  "zeta": "string",
  "alpha": {"type": "integer"},
  "*": {"type": "number"},
  "mid": {}
}}`)
	s, err := NewSchemaBuilder().BuildBytes(s1)
	assert.Nil(err)
	assert.Equal([]string{"zeta", "alpha", "*", "mid"}, s.Properties.Keys())
	assert.Equal(4, s.Properties.Len())
	assert.True(s.Properties.Has("alpha"))
	assert.False(s.Properties.Has("beta"))

	wildcard, ok := s.Properties.Wildcard()
	assert.True(ok)
	assert.Equal([]string{"number"}, wildcard.Type)

	alpha, _ := s.Properties.Get("alpha")
	assert.Equal([]string{"integer"}, alpha.Type)
}

func TestBuildFromMap(t *testing.T) {
	assert := assert.New(t)

	check := func(s *Schema, candidate any, report ReportFunc) {}
	data := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"b":    "string",
			"a":    map[string]any{"type": "number", "exec": check},
			"when": map[string]any{"pattern": regexp.MustCompile(`^x$`)},
		},
	}
	s, err := NewSchemaBuilder().Build(data)
	assert.Nil(err)
	// plain maps have no order, keys come sorted
	assert.Equal([]string{"a", "b", "when"}, s.Properties.Keys())

	a, _ := s.Properties.Get("a")
	assert.Equal(1, len(a.Exec))
	assert.Equal(0, len(a.Transform))

	when, _ := s.Properties.Get("when")
	assert.True(when.Pattern[0].MatchString("x"))
	assert.False(when.Pattern[0].MatchString("y"))

	// already built schemas pass through
	s2, err := NewSchemaBuilder().Build(s)
	assert.Nil(err)
	assert.Same(s, s2)

	_, err = NewSchemaBuilder().Build(42)
	assert.NotNil(err)
}

func TestBuildYamlSchema(t *testing.T) {
	assert := assert.New(t)
	s0 := []byte(`---
properties:
  bbb:
    type: string
  aaa: "string"
`)
	builder := NewSchemaBuilder()
	s, err := builder.BuildYamlBytes(s0)
	assert.Nil(err)
	assert.Nil(s.Type)
	assert.Equal([]string{"bbb", "aaa"}, s.Properties.Keys())

	s1 := []byte(`---
type: object
properties:
  abc: "string"
  5:
    type: string
`)
	_, err = builder.BuildYamlBytes(s1)
	assert.NotNil(err)
	assert.Contains(err.Error(), ".properties.5")
	_, ok := err.(*NonStringKeyError)
	assert.True(ok)

	s2 := []byte(`---
type: array
items:
  - type: integer
    gte: 1
  - string
`)
	s, err = builder.BuildYamlBytes(s2)
	assert.Nil(err)
	assert.True(s.Items.IsTuple())
	assert.Equal(1.0, *s.Items.Tuple[0].Gte)
}

func TestSchemaMap(t *testing.T) {
	assert := assert.New(t)

	s1 := []byte(`{
"type": "object",
"strict": true,
"properties": {
  "name": {"type": "string", "pattern": "alpha", "maxLength": 8},
  "tags": {"type": "array", "items": {"type": "string"}}
}}`)
	s, err := NewSchemaBuilder().BuildBytes(s1)
	assert.Nil(err)
	assert.Equal(map[string]any{
		"type":   "object",
		"strict": true,
		"properties": map[string]any{
			"name": map[string]any{
				"type":      "string",
				"pattern":   []string{"alpha"},
				"maxLength": 8,
			},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}, s.Map())
}

func TestTypeIs(t *testing.T) {
	assert := assert.New(t)

	assert.True(TypeIs("string", "a"))
	assert.False(TypeIs("string", 1))
	assert.True(TypeIs("number", 1.5))
	assert.True(TypeIs("number", json.Number("12")))
	assert.False(TypeIs("number", math.NaN()))
	assert.True(TypeIs("integer", 3))
	assert.True(TypeIs("integer", 3.0))
	assert.False(TypeIs("integer", 3.2))
	assert.True(TypeIs("boolean", false))
	assert.True(TypeIs("null", nil))
	assert.False(TypeIs("null", Undefined))
	assert.True(TypeIs("date", time.Now()))
	assert.True(TypeIs("object", map[string]any{}))
	assert.False(TypeIs("object", []any{}))
	assert.True(TypeIs("array", []any{}))
	assert.True(TypeIs("whatever", 1))

	assert.Equal("string", TypeOf("x"))
	assert.Equal("number", TypeOf(1.5))
	assert.Equal("number", TypeOf(2))
	assert.Equal("null", TypeOf(nil))
	assert.Equal("undefined", TypeOf(Undefined))
	assert.Equal("NaN", TypeOf(math.NaN()))
	assert.Equal("Infinity", TypeOf(math.Inf(1)))
	assert.Equal("-Infinity", TypeOf(math.Inf(-1)))
	assert.False(TypeIs("number", math.Inf(1)))
	assert.Equal("date", TypeOf(time.Now()))
	assert.Equal("array", TypeOf([]any{1}))
}

func TestSameValue(t *testing.T) {
	assert := assert.New(t)

	assert.True(SameValue(1, 1.0))
	assert.True(SameValue(json.Number("2"), int64(2)))
	assert.False(SameValue(1, "1"))
	assert.True(SameValue(nil, nil))
	assert.False(SameValue(nil, Undefined))
	assert.True(SameValue(Undefined, Undefined))
	assert.False(SameValue(math.NaN(), math.NaN()))

	m := map[string]any{"a": 1}
	assert.True(SameValue(m, m))
	assert.False(SameValue(m, map[string]any{"a": 1}))

	arr := []any{1, 2}
	assert.True(SameValue(arr, arr))
	assert.False(SameValue(arr, []any{1, 2}))

	now := time.Now()
	assert.True(SameValue(now, now))
}

func TestLength(t *testing.T) {
	assert := assert.New(t)

	n, ok := Length("héllo")
	assert.True(ok)
	assert.Equal(5, n)
	n, ok = Length([]any{1, 2, 3})
	assert.True(ok)
	assert.Equal(3, n)
	_, ok = Length(12)
	assert.False(ok)
}

func TestFormats(t *testing.T) {
	assert := assert.New(t)

	valid := map[string]string{
		"void":         "",
		"url":          "https://www.example.com",
		"date-time":    "2014-08-21T13:21:03.000Z",
		"date":         "2014-08-21",
		"coolDateTime": "2014/08/21 13:21:03",
		"time":         "13:21:03",
		"color":        "#fF00aa",
		"email":        "someone@example.org",
		"numeric":      "0123",
		"integer":      "-12",
		"decimal":      "-1.25",
		"alpha":        "abcXYZ",
		"alphaNumeric": "abc123",
		"alphaDash":    "abc_1-2",
		"javascript":   "$_var1",
	}
	invalid := map[string]string{
		"void":         " ",
		"url":          "not a url",
		"date-time":    "2014-08-21 13:21:03",
		"date":         "21/08/2014",
		"coolDateTime": "2014-08-21",
		"time":         "13:21",
		"color":        "ff00aa",
		"email":        "someone@",
		"numeric":      "-1",
		"integer":      "1.5",
		"decimal":      "1.",
		"alpha":        "abc1",
		"alphaNumeric": "abc-1",
		"alphaDash":    "abc 1",
		"javascript":   "1var",
	}
	assert.Equal(len(valid), len(FormatNames()))
	for _, name := range FormatNames() {
		p := NewPattern(name)
		assert.True(p.IsFormat(), name)
		assert.True(p.MatchString(valid[name]), name)
		assert.False(p.MatchString(invalid[name]), name)
	}

	// raw patterns that do not compile never match
	bad := NewPattern("(")
	assert.False(bad.IsFormat())
	assert.False(bad.MatchString("("))
}

func TestToString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("null", ToString(nil))
	assert.Equal("undefined", ToString(Undefined))
	assert.Equal("abc", ToString("abc"))
	assert.Equal("true", ToString(true))
	assert.Equal("12", ToString(12))
	assert.Equal("1.5", ToString(1.5))
	assert.Equal("3", ToString(3.0))
	assert.Equal("100", ToString(json.Number("100")))
	assert.Equal("1,,b", ToString([]any{1, nil, "b"}))
	assert.Equal("[object Object]", ToString(map[string]any{"a": 1}))

	assert.Equal("NaN", FormatNumber(math.NaN()))
	assert.Equal("Infinity", FormatNumber(math.Inf(1)))
	assert.Equal("-Infinity", FormatNumber(math.Inf(-1)))
	assert.Equal("0.25", FormatNumber(0.25))
	assert.Equal("1e+21", FormatNumber(1e21))
}

func TestClone(t *testing.T) {
	assert := assert.New(t)

	src := map[string]any{"a": []any{1, map[string]any{"b": 2}}}
	cp := Clone(src).(map[string]any)
	assert.Equal(src, cp)

	cp["a"].([]any)[1].(map[string]any)["b"] = 3
	assert.Equal(2, src["a"].([]any)[1].(map[string]any)["b"])
	assert.Equal("x", Clone("x"))
}

func TestSortedKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"a", "b", "c"}, SortedKeys(map[string]any{"c": 1, "a": 2, "b": 3}))
	assert.Equal([]string{}, SortedKeys(map[string]any{}))
}
