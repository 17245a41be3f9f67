package ir

import "errors"

var (
	// ErrUnsupportedScalar reports a scalar with no canonical textual
	// form, such as a NaN or infinite float.
	ErrUnsupportedScalar = errors.New("unsupported scalar")

	// ErrPath reports a path that does not resolve in a node.
	ErrPath = errors.New("bad path")
)
