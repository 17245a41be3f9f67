package xmltree

import "testing"

func TestEqual(t *testing.T) {
	a := New("a").SetAttr("id", "1").Append(New("b").WithText("x"))
	if !Equal(a, a.Clone()) {
		t.Error("clone is not equal")
	}
	b := New("a").SetAttr("id", "2").Append(New("b").WithText("x"))
	if Equal(a, b) {
		t.Error("different attribute values compare equal")
	}
	c := New("a").Append(New("b").WithText("x")).SetAttr("id", "1")
	if !Equal(a, c) {
		t.Error("construction order should not matter")
	}
	d := New("a").SetAttr("id", "1").Append(New("b"))
	if Equal(a, d) {
		t.Error("different text compares equal")
	}
}

func TestSetAttrReplaces(t *testing.T) {
	e := New("a").SetAttr("k", "1").SetAttr("k", "2")
	if len(e.Attrs) != 1 {
		t.Fatalf("got %d attrs, want 1", len(e.Attrs))
	}
	if v, ok := e.Attr("k"); !ok || v != "2" {
		t.Errorf("got %q, want 2", v)
	}
}
