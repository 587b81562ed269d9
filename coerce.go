package vexflag

import (
	"math"
	"strconv"
	"strings"
)

// Infers the type of a bare argument. All digits is an Integer, digits around exactly
// one '.' is a Float, and anything else is a String.
func inferType(s string) ArgType {
	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c):
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return String
			}
		default:
			return String
		}
	}
	switch {
	case digits == 0:
		return String
	case dots == 1:
		return Float
	default:
		return Integer
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Converts s to a value of the given type. Numbers are read from the longest valid
// prefix and anything after it is ignored. Coercion never fails: text without a
// numeric prefix is zero.
func coerce(s string, t ArgType) Value {
	switch t {
	case Integer:
		return IntValue(parseIntPrefix(s))
	case Float:
		return FloatValue(parseFloatPrefix(s))
	default:
		return StringValue(strings.Clone(s))
	}
}

func skipSpace(s string) string {
	for len(s) != 0 && isSpace(s[0]) {
		s = s[1:]
	}
	return s
}

func signLen(s string) int {
	if len(s) != 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitsLen(s string) (n int) {
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return
}

// Out of range values saturate.
func parseIntPrefix(s string) int64 {
	s = skipSpace(s)
	n := signLen(s)
	d := digitsLen(s[n:])
	if d == 0 {
		return 0
	}
	// On a range error ParseInt returns the saturated value.
	i, _ := strconv.ParseInt(s[:n+d], 10, 64)
	return i
}

func parseFloatPrefix(s string) float64 {
	s = skipSpace(s)
	n := signLen(s)
	if f, ok := parseSpecialFloat(s[n:]); ok {
		if n == 1 && s[0] == '-' {
			return -f
		}
		return f
	}
	mant := digitsLen(s[n:])
	end := n + mant
	if end < len(s) && s[end] == '.' {
		frac := digitsLen(s[end+1:])
		if mant != 0 || frac != 0 {
			end += 1 + frac
			mant += frac
		}
	}
	if mant == 0 {
		return 0
	}
	// The exponent only counts if it has digits.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		e := end + 1
		e += signLen(s[e:])
		if ed := digitsLen(s[e:]); ed != 0 {
			end = e + ed
		}
	}
	// Range errors come back as ±Inf or 0, as strtod does.
	f, _ := strconv.ParseFloat(s[:end], 64)
	return f
}

func parseSpecialFloat(s string) (float64, bool) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "inf"):
		return math.Inf(1), true
	case strings.HasPrefix(lower, "nan"):
		return math.NaN(), true
	}
	return 0, false
}
