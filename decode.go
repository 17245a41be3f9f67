package xmlmap

import (
	"github.com/signadot/xmlmap/debug"
	"github.com/signadot/xmlmap/ir"
	"github.com/signadot/xmlmap/parse"
)

// Decode converts raw XML text to its ordered mapping.
func Decode(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	m, err := ToMapping(root)
	if err != nil {
		return nil, err
	}
	if debug.Map() {
		debug.Logf("decoded mapping:\n%s\n", debug.Mapping{Node: m})
	}
	return m, nil
}
