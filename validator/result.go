package validator

import (
	"fmt"
	"strings"

	"github.com/superisaac/jsinspect/inspection"
)

type Result struct {
	Error []inspection.Report `json:"error"`
	Valid bool                `json:"valid"`
}

// Format renders the result for humans, one line per error
func (r Result) Format() string {
	if r.Valid {
		return "Candidate is valid"
	}
	lines := make([]string, 0, len(r.Error))
	for _, e := range r.Error {
		lines = append(lines, fmt.Sprintf("Property %s: %s", e.Property, e.Message))
	}
	return strings.Join(lines, "\n")
}
