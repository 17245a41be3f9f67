package xmlmap

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/xmlmap/debug"
	"github.com/signadot/xmlmap/gomap"
	"github.com/signadot/xmlmap/ir"
)

// Patch applies an RFC 6902 JSON patch to a decoded document, bridging
// through the mapping's JSON form. Patched objects come back in the
// order the patch library emits them, not necessarily document order.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patched %s -> %s\n", d, out)
	}
	return gomap.Load(out)
}

// MergePatch applies an RFC 7386 merge patch the same way.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return gomap.Load(out)
}
