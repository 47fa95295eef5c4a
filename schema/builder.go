package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

func NewNonStringKeyError(paths ...string) *NonStringKeyError {
	return &NonStringKeyError{paths: paths}
}

func (err NonStringKeyError) Error() string {
	return fmt.Sprintf("not string key %s", strings.Join(err.paths, ""))
}

// Schema parse error
func (err ParseError) Error() string {
	return fmt.Sprintf("ParseError %s, paths: %s", err.info, strings.Join(err.paths, ""))
}

func NewParseError(info string, paths []string) *ParseError {
	return &ParseError{info: info, paths: paths}
}

// Builder
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{}
}

// BuildBytes parses JSON text, the declaration order of object keys
// is kept.
func (builder *SchemaBuilder) BuildBytes(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeOrdered(dec)
	if err != nil {
		return nil, NewParseError(err.Error(), nil)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, NewParseError("trailing data after schema", nil)
	}
	return builder.Build(v)
}

// Build accepts a structural schema: a map, an ordered map, a bare
// type name or an already built schema.
func (builder *SchemaBuilder) Build(data any) (*Schema, error) {
	if s, ok := data.(*Schema); ok && s != nil {
		return s, nil
	}
	node, ok := convertTypeMap(data)
	if !ok {
		return nil, NewParseError("data is not an object", nil)
	}
	return builder.buildNodeMap(node), nil
}

func (builder *SchemaBuilder) BuildYamlBytes(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "yaml.Unmarshal")
	}
	v, err := builder.FixYamlNode(&doc)
	if err != nil {
		return nil, err
	}
	return builder.Build(v)
}

// FixYamlNode turns a yaml node tree into ordered maps and lists,
// mapping keys must be strings.
func (builder SchemaBuilder) FixYamlNode(node *yaml.Node, paths ...string) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return builder.FixYamlNode(node.Content[0], paths...)
	case yaml.AliasNode:
		return builder.FixYamlNode(node.Alias, paths...)
	case yaml.MappingNode:
		om := &OrderedMap{Values: make(map[string]any)}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				newPaths := append(paths, fmt.Sprintf(".%s", keyNode.Value))
				return nil, NewNonStringKeyError(newPaths...)
			}
			newPaths := append(paths, fmt.Sprintf(".%s", keyNode.Value))
			v, err := builder.FixYamlNode(valueNode, newPaths...)
			if err != nil {
				return nil, err
			}
			om.Set(keyNode.Value, v)
		}
		return om, nil
	case yaml.SequenceNode:
		list1 := make([]any, 0, len(node.Content))
		for i, elem := range node.Content {
			newPaths := append(paths, fmt.Sprintf("[%d]", i))
			v, err := builder.FixYamlNode(elem, newPaths...)
			if err != nil {
				return nil, err
			}
			list1 = append(list1, v)
		}
		return list1, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, errors.Wrap(err, "yaml scalar")
		}
		return v, nil
	}
}

// decodeOrdered reads one JSON value off the token stream, objects
// become *OrderedMap.
func decodeOrdered(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		om := &OrderedMap{Values: make(map[string]any)}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errors.New("object key is not a string")
			}
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			om.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return om, nil
	case '[':
		arr := make([]any, 0)
		for dec.More() {
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, errors.Errorf("unexpected delimiter %s", delim)
}

// buildNode never fails, a node that is not an object is an empty
// rule-set.
func (builder *SchemaBuilder) buildNode(data any) *Schema {
	if s, ok := data.(*Schema); ok && s != nil {
		return s
	}
	if node, ok := convertTypeMap(data); ok {
		return builder.buildNodeMap(node)
	}
	return &Schema{}
}

func (builder *SchemaBuilder) buildNodeMap(node *OrderedMap) *Schema {
	schema := &Schema{}
	for _, key := range node.Keys {
		switch key {
		case "type":
			if types, ok := convertAttrStrings(node, key); ok {
				schema.Type = types
				switch v, _ := node.Get(key); v.(type) {
				case []any, []string:
					schema.TypeList = true
				}
			}
		case "optional":
			if opt, ok := convertAttrBool(node, key); ok {
				schema.Optional = &opt
			}
		case "properties":
			schema.Properties = builder.buildProperties(node)
		case "items":
			schema.Items = builder.buildItems(node)
		case "pattern":
			if patterns, ok := convertAttrPatterns(node, key); ok {
				schema.Pattern = patterns
			}
		case "minLength":
			schema.MinLength = intAttr(node, key)
		case "maxLength":
			schema.MaxLength = intAttr(node, key)
		case "exactLength":
			schema.ExactLength = intAttr(node, key)
		case "lt":
			schema.Lt = floatAttr(node, key)
		case "lte":
			schema.Lte = floatAttr(node, key)
		case "gt":
			schema.Gt = floatAttr(node, key)
		case "gte":
			schema.Gte = floatAttr(node, key)
		case "eq":
			if enum, ok := convertAttrEnum(node, key); ok {
				schema.Eq = enum
			}
		case "ne":
			if enum, ok := convertAttrEnum(node, key); ok {
				schema.Ne = enum
			}
		case "min":
			if bound, ok := convertAttrBound(node, key); ok {
				schema.Min = bound
			}
		case "max":
			if bound, ok := convertAttrBound(node, key); ok {
				schema.Max = bound
			}
		case "uniqueness":
			schema.Uniqueness, _ = convertAttrBool(node, key)
		case "strict":
			schema.Strict, _ = convertAttrBool(node, key)
		case "someKeys":
			if keys, ok := convertAttrStrings(node, key); ok {
				schema.SomeKeys = keys
			}
		case "exec":
			schema.Exec, schema.Transform = convertAttrExec(node, key)
		case "def":
			def, _ := node.Get(key)
			schema.Def = plainValue(def)
			schema.HasDef = true
		case "rules":
			if rules, ok := convertAttrStrings(node, key); ok {
				schema.Rules = rules
			}
		case "alias":
			schema.Alias, _ = convertAttrString(node, key)
		case "error":
			schema.Error, _ = convertAttrString(node, key)
		default:
			if schema.Extra == nil {
				schema.Extra = make(map[string]any)
			}
			v, _ := node.Get(key)
			schema.Extra[key] = plainValue(v)
		}
	}
	return schema
}

func (builder *SchemaBuilder) buildProperties(node *OrderedMap) *Properties {
	v, _ := node.Get("properties")
	propNodes, ok := v.(*OrderedMap)
	if !ok {
		if m, isMap := v.(map[string]any); isMap {
			propNodes, ok = NewOrderedMap(m), true
		}
	}
	if !ok {
		return nil
	}
	props := NewProperties()
	for _, propName := range propNodes.Keys {
		propNode, _ := propNodes.Get(propName)
		props.Set(propName, builder.buildNode(propNode))
	}
	return props
}

func (builder *SchemaBuilder) buildItems(node *OrderedMap) *Items {
	v, _ := node.Get("items")
	// build tuple
	if itemsTuple, ok := v.([]any); ok {
		items := &Items{Tuple: make([]*Schema, 0, len(itemsTuple))}
		for _, item := range itemsTuple {
			items.Tuple = append(items.Tuple, builder.buildNode(item))
		}
		return items
	}
	if tuple, ok := v.([]*Schema); ok {
		return &Items{Tuple: tuple}
	}
	if _, ok := convertTypeMap(v); ok {
		return &Items{Single: builder.buildNode(v)}
	}
	if s, ok := v.(*Schema); ok && s != nil {
		return &Items{Single: s}
	}
	return nil
}

func intAttr(node *OrderedMap, attrName string) *int {
	if n, ok := convertAttrInt(node, attrName); ok {
		return &n
	}
	return nil
}

func floatAttr(node *OrderedMap, attrName string) *float64 {
	if f, ok := convertAttrFloat(node, attrName); ok {
		return &f
	}
	return nil
}
