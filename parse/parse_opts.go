package parse

type parseOpts struct {
	keepWhitespace bool
}

type ParseOption func(*parseOpts)

// KeepWhitespace preserves leading and trailing whitespace of text content.
// By default text content is trimmed; whitespace-only runs between elements
// are dropped either way.
func KeepWhitespace() ParseOption {
	return func(o *parseOpts) { o.keepWhitespace = true }
}
