package schema

import (
	"regexp"
	"sort"
)

// named string formats, usable wherever a pattern is expected
var formats = map[string]*regexp.Regexp{
	"void":         regexp.MustCompile(`^$`),
	"url":          regexp.MustCompile(`^(https?://)?(www\.)?[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,5}\.?`),
	"date-time":    regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?(Z?|(-|\+)\d{2}:\d{2})$`),
	"date":         regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	"coolDateTime": regexp.MustCompile(`^\d{4}(-|/)\d{2}(-|/)\d{2}(T| )\d{2}:\d{2}:\d{2}(\.\d{3})?Z?$`),
	"time":         regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`),
	"color":        regexp.MustCompile(`(?i)^#[0-9a-f]+$`),
	"email":        regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,6}$`),
	"numeric":      regexp.MustCompile(`^[0-9]+$`),
	"integer":      regexp.MustCompile(`^-?[0-9]+$`),
	"decimal":      regexp.MustCompile(`^-?[0-9]*\.?[0-9]+$`),
	"alpha":        regexp.MustCompile(`(?i)^[a-z]+$`),
	"alphaNumeric": regexp.MustCompile(`(?i)^[a-z0-9]+$`),
	"alphaDash":    regexp.MustCompile(`(?i)^[a-z0-9_-]+$`),
	"javascript":   regexp.MustCompile(`(?i)^[a-z_$][a-z0-9_$]*$`),
}

func LookupFormat(name string) (*regexp.Regexp, bool) {
	re, ok := formats[name]
	return re, ok
}

// FormatNames returns the known format names, sorted
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPattern resolves src into a named format, or compiles it as a
// raw pattern. A raw pattern that does not compile never matches.
func NewPattern(src string) Pattern {
	if re, ok := formats[src]; ok {
		return Pattern{Name: src, Source: src, Regexp: re}
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return Pattern{Source: src}
	}
	return Pattern{Source: src, Regexp: re}
}

// RegexpPattern wraps an already compiled expression.
func RegexpPattern(re *regexp.Regexp) Pattern {
	return Pattern{Source: re.String(), Regexp: re}
}

func (p Pattern) IsFormat() bool {
	return p.Name != ""
}

func (p Pattern) MatchString(s string) bool {
	return p.Regexp != nil && p.Regexp.MatchString(s)
}

// String renders named formats by name and raw patterns between
// slashes.
func (p Pattern) String() string {
	if p.IsFormat() {
		return p.Name
	}
	return "/" + p.Source + "/"
}
