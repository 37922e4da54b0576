package echo

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one compiled include rule: a literal compared for equality,
// or, when the source string was wrapped in '/' delimiters, a regular
// expression. Delimited expressions are unanchored, so /^N/ matches every
// value that starts with N; anchor with ^ and $ explicitly for a full
// match. Literals never pass through the regex engine.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// Compile parses a raw pattern string. A pattern is treated as a delimited
// regex only when it is at least two characters long and both its first
// and last character are '/'; the single character "/" is a literal.
// A malformed expression is a configuration error.
func Compile(raw string) (Pattern, error) {
	if len(raw) >= 2 && strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") {
		re, err := regexp.Compile(raw[1 : len(raw)-1])
		if err != nil {
			return Pattern{}, fmt.Errorf("compile pattern %q: %w", raw, err)
		}
		return Pattern{raw: raw, re: re}, nil
	}
	return Pattern{raw: raw}, nil
}

// Literal wraps an exact value without delimiter interpretation. The
// implicit same-value filter is built from it, so a token whose text is
// "/" or "/x/" still only echoes itself literally.
func Literal(value string) Pattern {
	return Pattern{raw: value}
}

func (p Pattern) Matches(value string) bool {
	if p.re != nil {
		return p.re.MatchString(value)
	}
	return p.raw == value
}

func (p Pattern) String() string {
	return p.raw
}
