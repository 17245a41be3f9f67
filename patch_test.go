package xmlmap

import (
	"testing"

	"github.com/signadot/xmlmap/ir"
)

func TestPatch(t *testing.T) {
	doc, err := Decode([]byte(`<cfg><host>db.local</host><port>5432</port></cfg>`))
	if err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[
		{"op": "replace", "path": "/cfg/port", "value": 5433},
		{"op": "add", "path": "/cfg/tls", "value": true}
	]`)
	got, err := Patch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	cfg := ir.Get(got, "cfg")
	if v := ir.Get(cfg, "port"); v.Type != ir.NumberType || *v.Int64 != 5433 {
		t.Errorf("port: %+v", v)
	}
	if v := ir.Get(cfg, "tls"); v == nil || v.Type != ir.BoolType || !v.Bool {
		t.Errorf("tls: %+v", v)
	}
	if v := ir.Get(cfg, "host"); v == nil || v.String != "db.local" {
		t.Errorf("host: %+v", v)
	}
	// the input document is untouched
	if v := ir.Get(ir.Get(doc, "cfg"), "port"); *v.Int64 != 5432 {
		t.Errorf("input mutated: %+v", v)
	}
}

func TestPatchBadOp(t *testing.T) {
	doc, err := Decode([]byte(`<a><b>1</b></a>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Patch(doc, []byte(`[{"op": "remove", "path": "/a/nope"}]`)); err == nil {
		t.Error("expected error removing a missing path")
	}
}

func TestMergePatch(t *testing.T) {
	doc, err := Decode([]byte(`<cfg><host>db.local</host><port>5432</port><old>x</old></cfg>`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := MergePatch(doc, []byte(`{"cfg": {"port": 5433, "old": null, "name": "primary"}}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := ir.Get(got, "cfg")
	if v := ir.Get(cfg, "port"); *v.Int64 != 5433 {
		t.Errorf("port: %+v", v)
	}
	if v := ir.Get(cfg, "old"); v != nil {
		t.Errorf("old should be removed: %+v", v)
	}
	if v := ir.Get(cfg, "name"); v == nil || v.String != "primary" {
		t.Errorf("name: %+v", v)
	}
	out, err := Encode(got)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Error("patched mapping should still encode")
	}
}
