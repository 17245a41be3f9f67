package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Infer converts raw text into a typed scalar node. The precedence is fixed
// and total: boolean literal, then integer literal, then float literal, then
// string fallback. Leading zeros disqualify numeric inference ("00042" stays
// a string), so canonical numeric formatting re-produces the input literal
// for everything that is inferred as a number.
func Infer(text string) *Node {
	switch text {
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	}
	if intLike(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return FromInt(i)
		}
		// out of int64 range: preserve the literal
		return FromString(text)
	}
	if floatLike(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return FromFloat(f)
		}
	}
	return FromString(text)
}

// CanonicalText formats a scalar node back to its canonical literal, the
// inverse of [Infer].
func (y *Node) CanonicalText() (string, error) {
	switch y.Type {
	case BoolType:
		return strconv.FormatBool(y.Bool), nil
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10), nil
		}
		if y.Float64 == nil {
			return "", fmt.Errorf("%w: number with no value", ErrUnsupportedScalar)
		}
		f := *y.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v has no textual form", ErrUnsupportedScalar, f)
		}
		return formatFloat(f), nil
	case StringType:
		return y.String, nil
	default:
		return "", fmt.Errorf("%w: %s is not a scalar", ErrUnsupportedScalar, y.Type)
	}
}

// formatFloat formats f so the literal re-infers as a float: integral
// values get a ".0" suffix, keeping floats and integers distinct across a
// round trip.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// intLike matches an optionally negated run of digits with no leading zero.
func intLike(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	if s[0] == '0' && len(s) > 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// floatLike matches decimal float literals: an optional sign, an integer
// part with no leading zeros, then a fraction and/or an exponent. Hex
// floats, infinities and NaN spellings deliberately do not match; they stay
// strings.
func floatLike(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	i, n := 0, len(s)
	digits := 0
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if digits > 1 && s[0] == '0' {
		return false
	}
	frac, exp := false, false
	if i < n && s[i] == '.' {
		frac = true
		i++
		fd := 0
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			fd++
		}
		digits += fd
	}
	if digits == 0 {
		return false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		exp = true
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		ed := 0
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			ed++
		}
		if ed == 0 {
			return false
		}
	}
	return i == n && (frac || exp)
}
