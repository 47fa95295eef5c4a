package sanitizer

import (
	"fmt"
	"strings"

	"github.com/superisaac/jsinspect/inspection"
)

type Result struct {
	Reporting []inspection.Report `json:"reporting"`
	// the sanitized candidate
	Value any `json:"-"`
}

func (r Result) Changed() bool {
	return len(r.Reporting) > 0
}

// Format renders one line per sanitized property
func (r Result) Format() string {
	lines := make([]string, 0, len(r.Reporting))
	for _, n := range r.Reporting {
		lines = append(lines, fmt.Sprintf("Property %s %s", n.Property, n.Message))
	}
	return strings.Join(lines, "\n")
}
