package xmlmap

import (
	"github.com/signadot/xmlmap/debug"
	"github.com/signadot/xmlmap/ir"
	"github.com/signadot/xmlmap/libdiff"
)

// Diff returns a mapping describing how a becomes b, or nil when the two
// are structurally equal. See package libdiff for the diff shape.
func Diff(a, b *ir.Node) *ir.Node {
	res := libdiff.Make(a, b)
	if debug.Diff() && res != nil {
		debug.Logf("diff:\n%s\n", debug.Mapping{Node: res})
	}
	return res
}
