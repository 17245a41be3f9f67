package debug

import (
	"fmt"
	"strings"
	"testing"

	"github.com/signadot/xmlmap/ir"
)

var _ fmt.Stringer = Mapping{}

func TestMappingString(t *testing.T) {
	m := ir.Object()
	m.Set("a", ir.FromInt(1))
	m.Set("b", ir.FromString("x"))
	s := Mapping{Node: m}.String()
	if !strings.Contains(s, "a: 1") || !strings.Contains(s, "b: x") {
		t.Errorf("got %q", s)
	}
}
