package token

import (
	"errors"
	"fmt"
)

// ErrMalformedXML is the sentinel wrapped by every tokenization failure.
var ErrMalformedXML = errors.New("malformed xml")

var (
	ErrUnterminated  = fmt.Errorf("%w: unterminated", ErrMalformedXML)
	ErrBadName       = fmt.Errorf("%w: bad name", ErrMalformedXML)
	ErrBadAttr       = fmt.Errorf("%w: bad attribute", ErrMalformedXML)
	ErrDuplicateAttr = fmt.Errorf("%w: duplicate attribute", ErrMalformedXML)
	ErrBadEntity     = fmt.Errorf("%w: bad entity reference", ErrMalformedXML)
	ErrBadUTF8       = fmt.Errorf("%w: bad utf8", ErrMalformedXML)
)

// NewTokenizeErr attaches a position to a tokenization error.
func NewTokenizeErr(err error, pos *Pos) error {
	return fmt.Errorf("%w %s", err, pos)
}

// UnexpectedErr reports unexpected input at pos.
func UnexpectedErr(what string, pos *Pos) error {
	return fmt.Errorf("%w: unexpected %q %s", ErrMalformedXML, what, pos)
}
