// Package inspection holds what the validator and the sanitizer
// share: the breadcrumb path of the current position in the tree and
// the report entry both produce.
package inspection

import (
	"regexp"
	"strconv"
	"strings"
)

const Root = "@"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type segment struct {
	name    string
	bracket bool
}

// Path is a stack of property names and array indexes, rendered like
// @.a.b[3]["odd key"]
type Path struct {
	segments []segment
}

func NewPath() *Path {
	return &Path{}
}

// PushProperty descends into an object property, names that are not
// identifiers are rendered quoted between brackets.
func (p *Path) PushProperty(name string) {
	if identifierPattern.MatchString(name) {
		p.segments = append(p.segments, segment{name: name})
	} else {
		p.segments = append(p.segments, segment{name: strconv.Quote(name), bracket: true})
	}
}

func (p *Path) PushIndex(i int) {
	p.segments = append(p.segments, segment{name: strconv.Itoa(i), bracket: true})
}

func (p *Path) Pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

// Depth counts the root
func (p Path) Depth() int {
	return len(p.segments) + 1
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(Root)
	for _, seg := range p.segments {
		if seg.bracket {
			sb.WriteString("[")
			sb.WriteString(seg.name)
			sb.WriteString("]")
		} else {
			sb.WriteString(".")
			sb.WriteString(seg.name)
		}
	}
	return sb.String()
}

// Property renders the current path, prefixed by alias if given
func (p Path) Property(alias string) string {
	if alias != "" {
		return alias + " (" + p.String() + ")"
	}
	return p.String()
}
