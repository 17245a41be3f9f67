package token

import (
	"errors"
	"testing"
)

func TestUnescape(t *testing.T) {
	tts := []struct {
		in, out string
		e       error
	}{
		{in: "plain", out: "plain"},
		{in: "a &amp; b", out: "a & b"},
		{in: "&lt;&gt;&apos;&quot;", out: `<>'"`},
		{in: "&#65;&#x42;", out: "AB"},
		{in: "&#10;", out: "\n"},
		{in: "&bogus;", e: ErrBadEntity},
		{in: "&;", e: ErrBadEntity},
		{in: "&amp", e: ErrBadEntity},
		{in: "&#xZZ;", e: ErrBadEntity},
		{in: "&#1114112;", e: ErrBadEntity}, // beyond max rune
	}
	for _, tt := range tts {
		got, err := Unescape(tt.in)
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("%q: got err %v, want %v", tt.in, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"a & b < c > d",
		`quote " and tick '`,
		"tabs\tand\nnewlines",
		"unicode é ☺",
	} {
		un, err := Unescape(EscapeText(s))
		if err != nil {
			t.Fatalf("text %q: %v", s, err)
		}
		if un != s {
			t.Errorf("text %q: round tripped to %q", s, un)
		}
		un, err = Unescape(EscapeAttr(s))
		if err != nil {
			t.Fatalf("attr %q: %v", s, err)
		}
		if un != s {
			t.Errorf("attr %q: round tripped to %q", s, un)
		}
	}
}
