package jsinspect

import (
	"github.com/superisaac/jsinspect/generator"
	"github.com/superisaac/jsinspect/sanitizer"
	"github.com/superisaac/jsinspect/schema"
	"github.com/superisaac/jsinspect/validator"
)

// Validate checks candidate against s, the candidate is left untouched
func Validate(s *schema.Schema, candidate any) *validator.Result {
	return NewCandidate(candidate).Validate(s).Validation
}

// Sanitize rewrites candidate under s, objects and arrays in place.
// The result carries the sanitized value.
func Sanitize(s *schema.Schema, candidate any) *sanitizer.Result {
	return NewCandidate(candidate).Sanitize(s).Sanitization
}

// Generate returns a random value conforming to s, or a list of n
// such values if n is given.
func Generate(s *schema.Schema, n ...int) any {
	g := generator.New()
	if len(n) > 0 {
		return g.GenerateN(s, n[0])
	}
	return g.Generate(s)
}

// ValidateBytes is Validate with a schema given as JSON or YAML text
func ValidateBytes(schemaText []byte, candidate any) (*validator.Result, error) {
	s, err := ParseSchema(schemaText)
	if err != nil {
		return nil, err
	}
	return Validate(s, candidate), nil
}

func SanitizeBytes(schemaText []byte, candidate any) (*sanitizer.Result, error) {
	s, err := ParseSchema(schemaText)
	if err != nil {
		return nil, err
	}
	return Sanitize(s, candidate), nil
}

func GenerateBytes(schemaText []byte, n ...int) (any, error) {
	s, err := ParseSchema(schemaText)
	if err != nil {
		return nil, err
	}
	return Generate(s, n...), nil
}
