package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/xmlmap/xmltree"
)

// MustString wire-encodes el, panicking on write errors. Intended for tests.
func MustString(el *xmltree.Element) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(el, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
