package sanitizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// named string transforms of the "rules" attribute
var transforms = map[string]func(string) string{
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"title":      title,
	"capitalize": capitalize,
	"trim":       strings.TrimSpace,
}

var nonSpaceRun = regexp.MustCompile(`\S+`)

// TransformNames lists the names usable in "rules"
func TransformNames() []string {
	return []string{"upper", "lower", "title", "capitalize", "trim"}
}

// capitalize uppercases the first character and lowercases the rest
func capitalize(str string) string {
	r, size := utf8.DecodeRuneInString(str)
	if size == 0 {
		return str
	}
	return strings.ToUpper(string(r)) + strings.ToLower(str[size:])
}

// title capitalizes every run of non-space characters
func title(str string) string {
	return nonSpaceRun.ReplaceAllStringFunc(str, capitalize)
}
