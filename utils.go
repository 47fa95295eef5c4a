package jsinspect

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

func MarshalJson(data any) (string, error) {
	marshaled, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(marshaled), nil
}

// EncodePretty renders v as indented JSON, reports included
func EncodePretty(v any) (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "json.MarshalIndent")
	}
	return string(bytes), nil
}

// GuessJson turns a command line argument into a candidate value:
// booleans, numbers, JSON arrays, objects and strings are decoded,
// anything else is kept as a plain string.
func GuessJson(input string) (any, error) {
	if len(input) == 0 {
		return "", nil
	}
	if input == "true" || input == "false" {
		bv, _ := strconv.ParseBool(input)
		return bv, nil
	}
	if input == "null" {
		return nil, nil
	}

	iv, err := strconv.ParseInt(input, 10, 64)
	if err == nil {
		return iv, nil
	}
	fv, err := strconv.ParseFloat(input, 64)
	if err == nil {
		return fv, nil
	}

	switch input[0] {
	case '[':
		var arr []any
		if err := decodeJson(input, &arr); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		var m map[string]any
		if err := decodeJson(input, &m); err != nil {
			return nil, err
		}
		return m, nil
	case '"':
		var s string
		if err := decodeJson(input, &s); err != nil {
			return nil, err
		}
		return s, nil
	}
	return input, nil
}

func decodeJson(input string, v any) error {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "decode json")
	}
	return nil
}

func GuessJsonArray(inputArr []string) ([]any, error) {
	var arr []any
	for _, input := range inputArr {
		v, err := GuessJson(input)
		if err != nil {
			return arr, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func NewUuid() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func DecodeInterface(input any, output any) error {
	config := &mapstructure.DecoderConfig{
		Metadata:         nil,
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           output,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return errors.Wrap(err, "decode interface")
	}
	return decoder.Decode(input)
}
