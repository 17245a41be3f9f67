package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/xmlmap/ir"
)

// DiffString diffs two string scalars. Single-line strings just get
// replaced; multiline strings also carry a "~" patch so large text blocks
// stay readable in diff output.
func DiffString(from, to *ir.Node) *ir.Node {
	res := replace(from, to)
	if !strings.Contains(from.String, "\n") || !strings.Contains(to.String, "\n") {
		return res
	}
	diffCfg := diffpatch.New()
	patches := diffCfg.PatchMake(from.String, to.String)
	if len(patches) == 0 {
		return res
	}
	res.Set(PatchKey, ir.FromString(diffCfg.PatchToText(patches)))
	return res
}
