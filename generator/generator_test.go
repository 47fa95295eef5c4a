package generator

import (
	"io"
	"os"
	"regexp"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/superisaac/jsinspect/schema"
	"github.com/superisaac/jsinspect/validator"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func buildSchema(t *testing.T, text string) *schema.Schema {
	s, err := schema.NewSchemaBuilder().BuildBytes([]byte(text))
	if err != nil {
		t.Fatalf("build schema %s: %s", text, err)
	}
	return s
}

const personSchema = `{
  "type": "object",
  "properties": {
    "id": {"type": "integer", "gte": 1, "lte": 1000, "ne": [13]},
    "name": {"type": "string", "minLength": 3, "maxLength": 12},
    "score": {"type": "number", "gt": 0, "lt": 10},
    "code": {"type": "string", "exactLength": 6},
    "email": {"type": "string", "pattern": "email"},
    "homepage": {"type": "string", "pattern": "url"},
    "color": {"type": "string", "pattern": "color"},
    "kind": {"type": "string", "eq": ["a", "b", "c"]},
    "created": {"type": "date"},
    "flag": {"type": "boolean"},
    "nothing": {"type": "null"},
    "nick": {"type": "string", "optional": true, "pattern": "alphaDash"},
    "tags": {
      "type": "array", "minLength": 1, "maxLength": 5, "uniqueness": true,
      "items": {"type": "string", "pattern": "alpha"}
    },
    "pair": {"type": "array", "items": [{"type": "integer"}, {"type": "string", "pattern": "date"}]},
    "extra": {"type": "object", "properties": {"*": {"type": ["integer", "boolean"]}}},
    "when": {"type": "string", "pattern": ["date-time", "coolDateTime", "time"]},
    "ident": {"type": "string", "pattern": "javascript", "maxLength": 8},
    "amount": {"type": "string", "pattern": ["decimal", "integer", "numeric", "alphaNumeric"]},
    "empty": {"type": "string", "pattern": "void"},
    "anything": {}
  }
}`

func TestGenerateValidates(t *testing.T) {
	assert := assert.New(t)
	s := buildSchema(t, personSchema)
	for seed := int64(1); seed <= 50; seed++ {
		value := New(Options{Seed: seed}).Generate(s)
		res := validator.New().Validate(s, value)
		assert.True(res.Valid, "seed %d: %s", seed, res.Format())
	}
}

func TestGenerateWildcardKeys(t *testing.T) {
	assert := assert.New(t)
	s := buildSchema(t, `{"type": "object", "properties": {"*": {"type": "integer"}}}`)
	obj, ok := New(Options{Seed: 7}).Generate(s).(map[string]any)
	assert.True(ok)
	assert.GreaterOrEqual(len(obj), 1)
	assert.LessOrEqual(len(obj), 9)
	for key := range obj {
		assert.Regexp(`^__random_key_\d$`, key)
	}
}

func TestGenerateTupleLength(t *testing.T) {
	assert := assert.New(t)
	g := New(Options{Seed: 3})

	s := buildSchema(t, `{"type": "array", "items": [{"type": "string"}, {"type": "boolean"}]}`)
	arr := g.Generate(s).([]any)
	assert.Equal(2, len(arr))
	assert.IsType("", arr[0])
	assert.IsType(true, arr[1])

	s = buildSchema(t, `{"type": "array", "exactLength": 4, "items": [{"type": "integer"}]}`)
	arr = g.Generate(s).([]any)
	assert.Equal(4, len(arr))
	assert.IsType(int64(0), arr[0])

	s = buildSchema(t, `{"type": "array", "minLength": 3, "items": [{"type": "integer"}]}`)
	arr = g.Generate(s).([]any)
	assert.Equal(3, len(arr))
}

func TestGenerateEq(t *testing.T) {
	assert := assert.New(t)
	g := New(Options{Seed: 11})
	assert.Equal("fixed", g.Generate(buildSchema(t, `{"type": "string", "eq": "fixed"}`)))
	assert.Equal(int64(5), g.Generate(buildSchema(t, `{"type": "integer", "eq": 5}`)))
	for i := 0; i < 20; i++ {
		v := g.Generate(buildSchema(t, `{"type": "string", "eq": ["x", "y"]}`))
		assert.Contains([]any{"x", "y"}, v)
	}
}

func TestGenerateNumericWindow(t *testing.T) {
	assert := assert.New(t)
	g := New(Options{Seed: 5})
	s := buildSchema(t, `{"type": "integer", "gt": 1, "lt": 4, "ne": 2}`)
	for i := 0; i < 50; i++ {
		assert.Equal(int64(3), g.Generate(s))
	}
}

func TestGenerateRawPattern(t *testing.T) {
	assert := assert.New(t)
	g := New(Options{Seed: 9})
	s := buildSchema(t, `{"type": "string", "pattern": "^[a-z]{3}-[0-9]{2}$"}`)
	for i := 0; i < 10; i++ {
		str, ok := g.Generate(s).(string)
		assert.True(ok)
		assert.Regexp(regexp.MustCompile(`^[a-z]{3}-[0-9]{2}$`), str)
	}
}

func TestGenerateBoundedPatterns(t *testing.T) {
	assert := assert.New(t)
	schemas := []string{
		`{"type": "string", "pattern": "alpha", "exactLength": 5}`,
		`{"type": "string", "pattern": "alphaNumeric", "exactLength": 3}`,
		`{"type": "string", "pattern": "alphaDash", "exactLength": 7}`,
		`{"type": "string", "pattern": "color", "exactLength": 4}`,
		`{"type": "string", "pattern": "javascript", "exactLength": 6}`,
		`{"type": "string", "pattern": "javascript", "maxLength": 1}`,
		`{"type": "string", "pattern": "alpha", "exactLength": 1, "ne": ["a", "b", "c"]}`,
		`{"type": "string", "pattern": "alpha", "minLength": 4, "maxLength": 8, "uniqueness": true}`,
	}
	for _, text := range schemas {
		s := buildSchema(t, text)
		for seed := int64(1); seed <= 20; seed++ {
			value := New(Options{Seed: seed}).Generate(s)
			res := validator.New().Validate(s, value)
			assert.True(res.Valid, "%s seed %d: %s", text, seed, res.Format())
		}
	}
}

func TestFormatSamplersMatch(t *testing.T) {
	assert := assert.New(t)
	g := New(Options{Seed: 13})
	for _, name := range schema.FormatNames() {
		fn, ok := samplers[name]
		assert.True(ok, "no sampler for %s", name)
		re, _ := schema.LookupFormat(name)
		for i := 0; i < 10; i++ {
			str := fn(g, 0, 16)
			assert.True(re.MatchString(str), "%s sample %q", name, str)
		}
	}
}

func TestGenerateAny(t *testing.T) {
	assert := assert.New(t)
	g := New(Options{Seed: 21})
	s := buildSchema(t, `{"type": ["string", "integer"]}`)
	for _, v := range g.GenerateN(s, 20) {
		assert.True(schema.TypeIs("string", v) || schema.TypeIs("integer", v))
	}
	assert.Equal(5, len(g.GenerateN(&schema.Schema{}, 5)))
}

func TestSameSeedSameValues(t *testing.T) {
	assert := assert.New(t)
	s := buildSchema(t, `{
  "type": "object",
  "properties": {
    "a": {"type": "integer"},
    "b": {"type": "string", "pattern": "alpha"},
    "c": {"type": "array", "items": {"type": "number"}}
  }
}`)
	assert.Equal(New(Options{Seed: 99}).Generate(s), New(Options{Seed: 99}).Generate(s))
}

func TestGenerateMaxDepth(t *testing.T) {
	assert := assert.New(t)
	nested := &schema.Schema{Type: []string{"array"}, MinLength: schema.Int(1), MaxLength: schema.Int(2)}
	nested.Items = schema.ItemsOf(nested)
	g := New(Options{Seed: 1, MaxDepth: 4})
	arr, ok := g.Generate(nested).([]any)
	assert.True(ok)
	assert.NotEmpty(arr)
	assert.Equal(0, g.depth)
}
