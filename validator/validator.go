// Package validator walks a candidate value under a schema and collects
// every violation with the path it occurred at. It never mutates the
// candidate.
package validator

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsinspect/inspection"
	"github.com/superisaac/jsinspect/schema"
)

const DefaultMaxDepth = 256

type Options struct {
	// custom rules keyed by schema attribute name, run after the
	// built-in ones on nodes carrying that attribute
	Custom map[string]schema.CheckFunc
	// run order of custom rules, sorted names of Custom if empty
	CustomOrder []string
	MaxDepth    int
}

type Validator struct {
	options   Options
	path      *inspection.Path
	overrides inspection.Overrides
	errors    []inspection.Report
}

func New(options ...Options) *Validator {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if len(opts.CustomOrder) == 0 && len(opts.Custom) > 0 {
		for name := range opts.Custom {
			opts.CustomOrder = append(opts.CustomOrder, name)
		}
		sort.Strings(opts.CustomOrder)
	}
	return &Validator{options: opts}
}

// Validate runs one pass over candidate, the validator can be reused
// for further passes but not concurrently.
func (v *Validator) Validate(s *schema.Schema, candidate any) *Result {
	v.path = inspection.NewPath()
	v.overrides = inspection.Overrides{}
	v.errors = nil
	v.validate(s, candidate)
	return &Result{
		Error: v.errors,
		Valid: len(v.errors) == 0,
	}
}

func (v *Validator) report(message string) {
	if v.overrides.Error != "" {
		message = v.overrides.Error
	} else if message == "" {
		message = "is invalid"
	}
	v.errors = append(v.errors, inspection.Report{
		Message:  message,
		Property: v.path.Property(v.overrides.Alias),
	})
}

func (v *Validator) validate(s *schema.Schema, candidate any) {
	if s == nil {
		s = &schema.Schema{}
	}
	restore := v.overrides.Scope(s.Alias, s.Error)
	defer restore()

	for _, r := range rules {
		if r.applies(s) {
			r.check(v, s, candidate)
		}
	}
	for _, name := range v.options.CustomOrder {
		fn, ok := v.options.Custom[name]
		if !ok || fn == nil || !s.HasExtra(name) {
			continue
		}
		fn(s, candidate, v.report)
	}
}

func (v *Validator) descend(s *schema.Schema, candidate any) {
	if v.path.Depth() > v.options.MaxDepth {
		log.Warnf("validation stops at %s, depth over %d", v.path, v.options.MaxDepth)
		v.report(fmt.Sprintf("exceeds maximum depth %d", v.options.MaxDepth))
		return
	}
	v.validate(s, candidate)
}

func (v *Validator) descendProperty(name string, s *schema.Schema, candidate any) {
	v.path.PushProperty(name)
	defer v.path.Pop()
	v.descend(s, candidate)
}

func (v *Validator) descendIndex(i int, s *schema.Schema, candidate any) {
	v.path.PushIndex(i)
	defer v.path.Pop()
	v.descend(s, candidate)
}
