package xmlmap

import "errors"

var (
	// ErrAmbiguousStructure reports a mapping whose shape cannot be
	// lowered to XML: no unique root key, or a sequence nested directly
	// inside another sequence with no wrapping key.
	ErrAmbiguousStructure = errors.New("ambiguous structure")

	// ErrReservedName reports an element or attribute name colliding
	// with the "@"/"#" key markers.
	ErrReservedName = errors.New("reserved name")
)
