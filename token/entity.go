package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var entities = map[string]rune{
	"lt":   '<',
	"gt":   '>',
	"amp":  '&',
	"apos": '\'',
	"quot": '"',
}

// Unescape resolves the five predefined entities and numeric character
// references in s. It is the inverse of [EscapeText] and [EscapeAttr].
func Unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '&') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}
		semi := strings.IndexByte(s[i:], ';')
		if semi < 0 || semi == 1 {
			return "", fmt.Errorf("%w %q", ErrBadEntity, tail(s[i:]))
		}
		name := s[i+1 : i+semi]
		i += semi + 1
		if name[0] == '#' {
			r, err := numericRef(name[1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			continue
		}
		r, ok := entities[name]
		if !ok {
			return "", fmt.Errorf("%w &%s;", ErrBadEntity, name)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func numericRef(s string) (rune, error) {
	base := 10
	if len(s) > 0 && (s[0] == 'x' || s[0] == 'X') {
		base = 16
		s = s[1:]
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("%w &#%s;", ErrBadEntity, s)
	}
	return rune(n), nil
}

func tail(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#10;", "\t", "&#9;", "\r", "&#13;")
)

// EscapeText escapes character data for element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes an attribute value for a double-quoted attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
