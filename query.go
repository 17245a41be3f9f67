package xmlmap

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/xmlmap/debug"
	"github.com/signadot/xmlmap/gomap"
	"github.com/signadot/xmlmap/ir"
)

// Query evaluates an expr-lang expression against a decoded document. The
// document's top-level keys become the expression environment, so a
// document decoded from <config>...</config> is addressed as `config.x`.
// The result is converted back to a mapping node.
func Query(doc *ir.Node, src string) (*ir.Node, error) {
	if doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("query needs a mapping document, got %s", doc.Type)
	}
	env, _ := gomap.FromIRMap(doc).(map[string]any)
	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	if debug.Query() {
		debug.Logf("query %q -> %v\n", src, res)
	}
	return gomap.ToIR(res)
}
