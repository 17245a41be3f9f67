package gomap

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xmlmap/ir"
)

func sampleNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "root", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "@id", Val: ir.FromString("r")},
			{Key: "n", Val: ir.FromInt(3)},
			{Key: "xs", Val: ir.FromSlice([]*ir.Node{
				ir.FromFloat(1.5), ir.FromBool(true),
			})},
		})},
	})
}

func TestFromIR(t *testing.T) {
	got := FromIR(sampleNode())
	want := yaml.MapSlice{
		{Key: "root", Value: yaml.MapSlice{
			{Key: "@id", Value: "r"},
			{Key: "n", Value: int64(3)},
			{Key: "xs", Value: []any{1.5, true}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromIR mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRMap(t *testing.T) {
	got := FromIRMap(sampleNode())
	want := map[string]any{
		"root": map[string]any{
			"@id": "r",
			"n":   int64(3),
			"xs":  []any{1.5, true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromIRMap mismatch (-want +got):\n%s", diff)
	}
}

func TestToIRRoundTrip(t *testing.T) {
	node := sampleNode()
	back, err := ToIR(FromIR(node))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("ToIR(FromIR(node)) != node")
	}
}

func TestLoadJSON(t *testing.T) {
	node, err := Load([]byte(`{"b": 1, "a": {"x": [true, "s"]}}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s", node.Type)
	}
	keys := node.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("key order not preserved: %v", keys)
	}
}

func TestLoadYAMLDumpYAML(t *testing.T) {
	in := "z: 1\na:\n  y: true\n  x: s\n"
	node, err := Load([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, err := DumpYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("yaml round trip changed the mapping:\n%s", out)
	}
	if keys := node.Keys(); keys[0] != "z" {
		t.Errorf("yaml key order not preserved: %v", keys)
	}
}

func TestDumpJSON(t *testing.T) {
	d, err := DumpJSON(sampleNode())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"root":{"@id":"r","n":3,"xs":[1.5,true]}}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}

func TestToIRUnsupported(t *testing.T) {
	if _, err := ToIR(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}
