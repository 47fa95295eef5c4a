package schema

import (
	"regexp"
)

// Schema build errors
type ParseError struct {
	info  string
	paths []string
}

// Fix string map issue from yaml format
type NonStringKeyError struct {
	paths []string
}

type SchemaBuilder struct {
}

// Undefined marks an absent value, e.g. an object property the
// candidate does not carry. It is distinct from nil, which is JSON
// null.
var Undefined any = undefinedValue{}

type undefinedValue struct{}

// Now used as a `def` substitutes the current time when sanitizing.
var Now any = nowValue{}

type nowValue struct{}

// ReportFunc records a violation at the current path.
type ReportFunc func(message string)

// CheckFunc is a user supplied validation rule, it decides by itself
// whether and what to report.
type CheckFunc func(s *Schema, candidate any, report ReportFunc)

// TransformFunc is a user supplied sanitization rule, it returns the
// new value of the candidate.
type TransformFunc func(s *Schema, candidate any) any

// Schema is the rule-set of one position in a value tree. A nil
// pointer or slice field means the rule is absent.
type Schema struct {
	Type []string
	// type was written as a list, even a list of one name
	TypeList bool
	Optional *bool

	Properties *Properties
	Items      *Items

	Pattern []Pattern

	MinLength   *int
	MaxLength   *int
	ExactLength *int

	Lt  *float64
	Lte *float64
	Gt  *float64
	Gte *float64
	Eq  *Enum
	Ne  *Enum

	// sanitization clamps, a number or a string
	Min any
	Max any

	Uniqueness bool
	SomeKeys   []string
	Strict     bool

	// exec, validation and sanitization flavors
	Exec      []CheckFunc
	Transform []TransformFunc

	// default value for sanitization, nil means no default unless
	// HasDef is set, then it stands for null
	Def    any
	HasDef bool
	Rules  []string

	Alias string
	Error string

	// keys not recognized above, consulted by custom rules
	Extra map[string]any
}

// Properties keeps child schemas in declaration order.
type Properties struct {
	keys  []string
	nodes map[string]*Schema
}

// Items is either a single schema applied to every element or a
// tuple applied positionally.
type Items struct {
	Single *Schema
	Tuple  []*Schema
}

// Pattern is either a named format or a raw regular expression.
type Pattern struct {
	Name   string
	Source string
	Regexp *regexp.Regexp
}

// Enum holds the operand of eq/ne, a single value or a list.
type Enum struct {
	Values []any
	List   bool
}

// OrderedMap is a decoded object which remembers the key order of
// its source text.
type OrderedMap struct {
	Keys   []string
	Values map[string]any
}
