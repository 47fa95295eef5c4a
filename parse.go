package jsinspect

import (
	"bytes"

	"github.com/bitly/go-simplejson"
	"github.com/pkg/errors"
	"github.com/superisaac/jsinspect/schema"
)

// ParseSchema builds a schema out of JSON text, or YAML text when the
// data does not look like JSON.
func ParseSchema(data []byte) (*schema.Schema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptySchema
	}
	builder := schema.NewSchemaBuilder()
	if trimmed[0] == '{' || trimmed[0] == '"' {
		s, err := builder.BuildBytes(trimmed)
		if err != nil {
			return nil, errors.Wrap(err, "parse schema")
		}
		return s, nil
	}
	return ParseSchemaYaml(trimmed)
}

func ParseSchemaYaml(data []byte) (*schema.Schema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptySchema
	}
	s, err := schema.NewSchemaBuilder().BuildYamlBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse yaml schema")
	}
	return s, nil
}

// ParseCandidate decodes candidate JSON text, numbers are kept as
// json.Number so no precision is lost.
func ParseCandidate(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyCandidate
	}
	parsed, err := simplejson.NewJson(data)
	if err != nil {
		return nil, errors.Wrap(err, "simplejson.NewJson")
	}
	return parsed.Interface(), nil
}
