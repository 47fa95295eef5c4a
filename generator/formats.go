package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/superisaac/jsinspect/schema"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	hexDigits    = "0123456789abcdefABCDEF"
)

type sampler func(g *Generator, minLength, maxLength int) string

// samplers by format name, each output matches its format
var samplers = map[string]sampler{
	"void": func(g *Generator, minLength, maxLength int) string {
		return ""
	},
	"date-time": func(g *Generator, minLength, maxLength int) string {
		return g.faker.Date().UTC().Format("2006-01-02T15:04:05.000Z")
	},
	"date": func(g *Generator, minLength, maxLength int) string {
		return g.faker.Date().Format("2006-01-02")
	},
	"coolDateTime": func(g *Generator, minLength, maxLength int) string {
		return g.faker.Date().Format("2006-01-02 15:04:05")
	},
	"time": func(g *Generator, minLength, maxLength int) string {
		return g.faker.Date().Format("15:04:05")
	},
	"color": func(g *Generator, minLength, maxLength int) string {
		// the leading # counts in the length
		return "#" + g.pickChars(hexDigits, minLength-1, maxLength-1)
	},
	"numeric": func(g *Generator, minLength, maxLength int) string {
		return g.numeric()
	},
	"integer": func(g *Generator, minLength, maxLength int) string {
		return g.integer()
	},
	"decimal": func(g *Generator, minLength, maxLength int) string {
		return g.integer() + "." + g.numeric()
	},
	"alpha": func(g *Generator, minLength, maxLength int) string {
		return g.pickChars(lowerLetters+upperLetters, minLength, maxLength)
	},
	"alphaNumeric": func(g *Generator, minLength, maxLength int) string {
		return g.pickChars(lowerLetters+upperLetters+digits, minLength, maxLength)
	},
	"alphaDash": func(g *Generator, minLength, maxLength int) string {
		return g.pickChars("_-"+lowerLetters+upperLetters+digits, minLength, maxLength)
	},
	"javascript": func(g *Generator, minLength, maxLength int) string {
		head := g.pickChars("_$"+lowerLetters+upperLetters, 1, 1)
		// the tail may be empty
		lo, hi := minLength-1, maxLength-1
		if lo < 0 {
			lo = 0
		}
		if hi < lo {
			hi = lo
		}
		return head + g.repeatChars("_$"+lowerLetters+upperLetters+digits, g.faker.IntRange(lo, hi))
	},
	"email": func(g *Generator, minLength, maxLength int) string {
		return g.fromFaker("email", g.faker.Email, func() string {
			return strings.ToLower(g.pickChars(lowerLetters, 3, 10) + "@" + g.pickChars(lowerLetters, 3, 10) + ".com")
		})
	},
	"url": func(g *Generator, minLength, maxLength int) string {
		return g.fromFaker("url", g.faker.URL, func() string {
			return "https://www." + g.pickChars(lowerLetters, 3, 10) + ".com"
		})
	},
}

// samplePattern draws a string matching p, raw expressions go through
// the faker regex generator.
func (g *Generator) samplePattern(p schema.Pattern, minLength, maxLength int) (string, bool) {
	if p.IsFormat() {
		if fn, ok := samplers[p.Name]; ok {
			return fn(g, minLength, maxLength), true
		}
		return "", false
	}
	if p.Regexp == nil {
		return "", false
	}
	str := g.faker.Regex(p.Source)
	return str, p.MatchString(str)
}

// fromFaker keeps the faker value if it matches the named format,
// otherwise falls back to a plain construction.
func (g *Generator) fromFaker(format string, fake func() string, fallback func() string) string {
	str := fake()
	if re, ok := schema.LookupFormat(format); ok && re.MatchString(str) {
		return str
	}
	return fallback()
}

// pickChars builds a string of at least one character out of alphabet
func (g *Generator) pickChars(alphabet string, minLength, maxLength int) string {
	if minLength < 1 {
		minLength = 1
	}
	if maxLength < minLength {
		maxLength = minLength
	}
	return g.repeatChars(alphabet, g.faker.IntRange(minLength, maxLength))
}

func (g *Generator) repeatChars(alphabet string, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[g.faker.IntRange(0, len(alphabet)-1)])
	}
	return sb.String()
}

func (g *Generator) numeric() string {
	return strconv.Itoa(g.faker.IntRange(0, math.MaxInt32))
}

func (g *Generator) integer() string {
	if g.faker.Bool() {
		return "-" + g.numeric()
	}
	return g.numeric()
}
