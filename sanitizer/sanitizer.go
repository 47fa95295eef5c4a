// Package sanitizer walks a candidate value under a schema and rewrites
// it: type coercion, defaults, string transforms and length fixes.
// Objects and arrays are rewritten in place.
package sanitizer

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsinspect/inspection"
	"github.com/superisaac/jsinspect/schema"
)

const DefaultMaxDepth = 256

type Options struct {
	// custom transforms keyed by schema attribute name, run after the
	// built-in ones on nodes carrying that attribute
	Custom map[string]schema.TransformFunc
	// run order of custom transforms, sorted names of Custom if empty
	CustomOrder []string
	MaxDepth    int
}

type Sanitizer struct {
	options   Options
	path      *inspection.Path
	overrides inspection.Overrides
	reporting []inspection.Report
	reported  map[string]bool
}

func New(options ...Options) *Sanitizer {
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
	return &Sanitizer{options: opts}
}

// Sanitize runs one pass over candidate and returns the sanitized
// value along with the change notices.
func (z *Sanitizer) Sanitize(s *schema.Schema, candidate any) *Result {
	z.path = inspection.NewPath()
	z.overrides = inspection.Overrides{}
	z.reporting = nil
	z.reported = make(map[string]bool)
	value := z.sanitize(s, candidate)
	return &Result{
		Reporting: z.reporting,
		Value:     value,
	}
}

// report keeps the first notice of every path only
func (z *Sanitizer) report(message string) {
	if message == "" {
		message = "was sanitized"
	}
	property := z.path.Property(z.overrides.Alias)
	if z.reported[property] {
		return
	}
	z.reported[property] = true
	z.reporting = append(z.reporting, inspection.Report{
		Message:  message,
		Property: property,
	})
}

func (z *Sanitizer) sanitize(s *schema.Schema, candidate any) any {
	if s == nil {
		s = &schema.Schema{}
	}
	restore := z.overrides.Scope(s.Alias, "")
	defer restore()

	post := candidate
	for _, r := range rules {
		if r.applies(s) {
			post = r.apply(z, s, post)
		}
	}
	for _, name := range z.options.CustomOrder {
		fn, ok := z.options.Custom[name]
		if !ok || fn == nil || !s.HasExtra(name) {
			continue
		}
		out := fn(s, post)
		if !schema.SameValue(out, post) {
			z.report("")
		}
		post = out
	}
	return post
}

func (z *Sanitizer) descend(s *schema.Schema, candidate any) any {
	if z.path.Depth() > z.options.MaxDepth {
		log.Warnf("sanitization stops at %s, depth over %d", z.path, z.options.MaxDepth)
		return candidate
	}
	return z.sanitize(s, candidate)
}

func (z *Sanitizer) descendProperty(name string, s *schema.Schema, candidate any) any {
	z.path.PushProperty(name)
	defer z.path.Pop()
	return z.descend(s, candidate)
}

func (z *Sanitizer) descendIndex(i int, s *schema.Schema, candidate any) any {
	z.path.PushIndex(i)
	defer z.path.Pop()
	return z.descend(s, candidate)
}
