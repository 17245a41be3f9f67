package parse

import (
	"fmt"

	"github.com/signadot/xmlmap/token"
)

// Every parse failure wraps token.ErrMalformedXML so callers can treat
// tokenization and document structure errors as one kind.
var (
	ErrMalformed     = token.ErrMalformedXML
	ErrTagMismatch   = fmt.Errorf("%w: mismatched closing tag", ErrMalformed)
	ErrUnexpectedEnd = fmt.Errorf("%w: unexpected end of document", ErrMalformed)
	ErrMixedContent  = fmt.Errorf("%w: mixed content", ErrMalformed)
	ErrEmptyDoc      = fmt.Errorf("%w: no root element", ErrMalformed)
	ErrTrailingData  = fmt.Errorf("%w: data after root element", ErrMalformed)
)
