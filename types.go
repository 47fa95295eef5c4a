// jsinspect validates, sanitizes and generates loosely typed JSON
// values against a declarative schema.
package jsinspect

import (
	"github.com/superisaac/jsinspect/sanitizer"
	"github.com/superisaac/jsinspect/schema"
	"github.com/superisaac/jsinspect/validator"
)

// Candidate binds a value to an inspection session. Custom rules
// registered on it apply to its own passes only.
//
// A candidate is not safe for concurrent use, sanitization rewrites
// the bound value in place.
type Candidate struct {
	obj     any
	traceId string

	validationRules   map[string]schema.CheckFunc
	validationOrder   []string
	sanitizationRules map[string]schema.TransformFunc
	sanitizationOrder []string

	// results of the latest passes, nil until run
	Validation   *validator.Result
	Sanitization *sanitizer.Result
}
