package fift

import (
	"strings"

	"github.com/tonfift/fift/internal/bigint"
)

// ParseNumber implements `(number)` (spec §4.7): a token that fails
// dictionary lookup is parsed as an optionally-signed, optionally
// base-prefixed integer, or as a pair of such integers separated by `/`
// (a fraction literal, numerator then denominator -- see DESIGN.md's
// Open Question decision not to reduce it to lowest terms here). ok is
// false if tok is neither.
func ParseNumber(tok string) (vals []Value, ok bool) {
	if tok == "" {
		return nil, false
	}
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		num, okN := parseInt(tok[:i])
		den, okD := parseInt(tok[i+1:])
		if !okN || !okD {
			return nil, false
		}
		return []Value{num, den}, true
	}
	n, okN := parseInt(tok)
	if !okN {
		return nil, false
	}
	return []Value{n}, true
}

// parseInt parses one optionally-signed, optionally base-prefixed
// (0x/0b/0o, else decimal) integer token into an Integer.
func parseInt(tok string) (Integer, bool) {
	if tok == "" {
		return Integer{}, false
	}
	neg := false
	s := tok
	if s[0] == '-' {
		neg, s = true, s[1:]
	} else if s[0] == '+' {
		s = s[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	}
	if s == "" {
		return Integer{}, false
	}
	if neg {
		s = "-" + s
	}
	n, ok := bigint.FromString(s, base)
	if !ok {
		return Integer{}, false
	}
	return Integer{I: n}, true
}
