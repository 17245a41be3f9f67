package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/xmlmap/gomap"
	"github.com/signadot/xmlmap/ir"
)

type JSON any

// Mapping wraps a node so %s renders it as YAML in log output.
type Mapping struct{ *ir.Node }

func (m Mapping) String() string {
	d, err := gomap.DumpYAML(m.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", m.Node)
	}
	return string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			d, err := gomap.DumpYAML(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
