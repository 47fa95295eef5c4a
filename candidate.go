package jsinspect

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/superisaac/jsinspect/sanitizer"
	"github.com/superisaac/jsinspect/schema"
	"github.com/superisaac/jsinspect/validator"
)

func NewCandidate(obj any) *Candidate {
	return &Candidate{
		obj:               obj,
		traceId:           NewUuid(),
		validationRules:   make(map[string]schema.CheckFunc),
		sanitizationRules: make(map[string]schema.TransformFunc),
	}
}

func (c Candidate) TraceId() string {
	return c.traceId
}

func (c *Candidate) SetTraceId(traceId string) {
	c.traceId = traceId
}

func (c Candidate) Log() *log.Entry {
	return log.WithFields(log.Fields{
		"traceid": c.traceId,
	})
}

// Value returns the bound value, sanitized if Sanitize ran
func (c Candidate) Value() any {
	return c.obj
}

// ValidationRule registers a custom validation rule run on every
// schema node carrying the attribute name. Rules run in registration
// order after the built-in ones.
func (c *Candidate) ValidationRule(name string, fn schema.CheckFunc) *Candidate {
	if _, found := c.validationRules[name]; !found {
		c.validationOrder = append(c.validationOrder, name)
	}
	c.validationRules[name] = fn
	return c
}

// SanitizationRule registers a custom sanitization transform, the
// counterpart of ValidationRule.
func (c *Candidate) SanitizationRule(name string, fn schema.TransformFunc) *Candidate {
	if _, found := c.sanitizationRules[name]; !found {
		c.sanitizationOrder = append(c.sanitizationOrder, name)
	}
	c.sanitizationRules[name] = fn
	return c
}

func (c *Candidate) Validate(s *schema.Schema) *Candidate {
	v := validator.New(validator.Options{
		Custom:      c.validationRules,
		CustomOrder: c.validationOrder,
	})
	c.Validation = v.Validate(s, c.obj)
	c.Log().Debugf("validated, %d errors", len(c.Validation.Error))
	return c
}

func (c *Candidate) Sanitize(s *schema.Schema) *Candidate {
	z := sanitizer.New(sanitizer.Options{
		Custom:      c.sanitizationRules,
		CustomOrder: c.sanitizationOrder,
	})
	c.Sanitization = z.Sanitize(s, c.obj)
	c.obj = c.Sanitization.Value
	c.Log().Debugf("sanitized, %d changes", len(c.Sanitization.Reporting))
	return c
}

// Decode copies the value into a struct, fields matched by json tags
func (c Candidate) Decode(output any) error {
	if err := DecodeInterface(c.obj, output); err != nil {
		return errors.Wrap(err, "candidate decode")
	}
	return nil
}
