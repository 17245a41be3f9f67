package xmlmap

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/xmlmap/ir"
	"github.com/signadot/xmlmap/token"
	"github.com/signadot/xmlmap/xmltree"
)

func TestDecodeShape(t *testing.T) {
	doc := []byte(`<survey id="s1" open="true">
  <q n="1">ok</q>
  <q n="2">3.14</q>
  <note>free text</note>
  <empty/>
</survey>`)
	m, err := Decode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Fields) != 1 || m.Fields[0].String != "survey" {
		t.Fatalf("top level: %v", m.Keys())
	}
	s := m.Values[0]
	wantKeys := []string{"@id", "@open", "q", "note", "empty"}
	gotKeys := s.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("keys %v, want %v", gotKeys, wantKeys)
	}
	for i := range wantKeys {
		if gotKeys[i] != wantKeys[i] {
			t.Errorf("key %d is %q, want %q", i, gotKeys[i], wantKeys[i])
		}
	}
	if v := ir.Get(s, "@open"); v.Type != ir.BoolType || !v.Bool {
		t.Errorf("@open: %+v", v)
	}
	qs := ir.Get(s, "q")
	if qs.Type != ir.ArrayType || len(qs.Values) != 2 {
		t.Fatalf("q group: %+v", qs)
	}
	q0 := qs.Values[0]
	if v := ir.Get(q0, "@n"); v.Type != ir.NumberType || *v.Int64 != 1 {
		t.Errorf("q[0].@n: %+v", v)
	}
	if v := ir.Get(q0, "#text"); v.Type != ir.StringType || v.String != "ok" {
		t.Errorf("q[0].#text: %+v", v)
	}
	if v := ir.Get(qs.Values[1], "#text"); v.Type != ir.NumberType || *v.Float64 != 3.14 {
		t.Errorf("q[1].#text: %+v", v)
	}
	if v := ir.Get(s, "note"); v.Type != ir.StringType || v.String != "free text" {
		t.Errorf("note: %+v", v)
	}
	if v := ir.Get(s, "empty"); v.Type != ir.ObjectType || len(v.Fields) != 0 {
		t.Errorf("empty element should decode to an empty mapping: %+v", v)
	}
}

func TestAttrChildNamespaceSeparation(t *testing.T) {
	m, err := Decode([]byte(`<a name="x"><name>y</name></a>`))
	if err != nil {
		t.Fatal(err)
	}
	a := ir.Get(m, "a")
	if v := ir.Get(a, "@name"); v == nil || v.String != "x" {
		t.Errorf("@name: %+v", v)
	}
	if v := ir.Get(a, "name"); v == nil || v.String != "y" {
		t.Errorf("name: %+v", v)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	docs := []string{
		`<a/>`,
		`<a>42</a>`,
		`<a>100.0</a>`,
		`<a b="1"><c>x</c><c>y</c><d/></a>`,
		`<m k="a&amp;b"><t>1 &lt; 2</t></m>`,
		`<a b="1">text</a>`,
		`<deep><er><est>true</est></er></deep>`,
	}
	for _, doc := range docs {
		m, err := Decode([]byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		out, err := Encode(m)
		if err != nil {
			t.Fatalf("%s: encode: %v", doc, err)
		}
		if string(out) != doc {
			t.Errorf("round trip %s -> %s", doc, out)
		}
	}
}

func TestMappingRoundTrip(t *testing.T) {
	docs := []string{
		`<a x="1" y="two"><b>3</b><b>4.5</b><c/></a>`,
		`<cfg><host>db.local</host><port>5432</port><tls>false</tls></cfg>`,
		`<a b="1">text</a>`,
		`<v><f>100.0</f><i>100</i></v>`,
	}
	for _, doc := range docs {
		m, err := Decode([]byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		out, err := Encode(m)
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		m2, err := Decode(out)
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		if !ir.Equal(m, m2) {
			t.Errorf("%s: mapping round trip changed the mapping", doc)
		}
	}
}

func TestCardinalityIdempotence(t *testing.T) {
	// a sequence of length 1 encodes to one element...
	m := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "k", Val: ir.FromSlice([]*ir.Node{ir.FromInt(7)})},
		})},
	})
	out, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<a><k>7</k></a>` {
		t.Fatalf("got %s", out)
	}
	// ...and decodes back to a non-sequence single value.
	m2, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	k := ir.Get(ir.Get(m2, "a"), "k")
	if k.Type == ir.ArrayType {
		t.Error("single element decoded to a sequence")
	}
	if k.Type != ir.NumberType || *k.Int64 != 7 {
		t.Errorf("k: %+v", k)
	}
}

func TestMalformedAndAmbiguous(t *testing.T) {
	if _, err := Decode([]byte(`<a><b></a>`)); !errors.Is(err, token.ErrMalformedXML) {
		t.Errorf("mismatched close: %v", err)
	}
	two := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromInt(2)},
	})
	if _, err := Encode(two); !errors.Is(err, ErrAmbiguousStructure) {
		t.Errorf("two top-level keys: %v", err)
	}
	if _, err := Encode(ir.FromInt(3)); !errors.Is(err, ErrAmbiguousStructure) {
		t.Errorf("scalar top level: %v", err)
	}
	nested := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "k", Val: ir.FromSlice([]*ir.Node{
				ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
			})},
		})},
	})
	if _, err := Encode(nested); !errors.Is(err, ErrAmbiguousStructure) {
		t.Errorf("nested sequence: %v", err)
	}
	rootSeq := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
	})
	if _, err := Encode(rootSeq); !errors.Is(err, ErrAmbiguousStructure) {
		t.Errorf("sequence at root: %v", err)
	}
	textObj := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "#text", Val: ir.Object().Set("x", ir.FromInt(1))},
		})},
	})
	if _, err := Encode(textObj); !errors.Is(err, ErrAmbiguousStructure) {
		t.Errorf("mapping under #text: %v", err)
	}
	textSeq := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "#text", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
		})},
	})
	if _, err := Encode(textSeq); !errors.Is(err, ErrAmbiguousStructure) {
		t.Errorf("sequence under #text: %v", err)
	}
}

func TestReservedNames(t *testing.T) {
	tree := xmltree.New("@bad")
	if _, err := ToMapping(tree); !errors.Is(err, ErrReservedName) {
		t.Errorf("element @bad: %v", err)
	}
	tree = xmltree.New("a").SetAttr("#t", "v")
	if _, err := ToMapping(tree); !errors.Is(err, ErrReservedName) {
		t.Errorf("attribute #t: %v", err)
	}
	m := ir.FromKeyVals([]ir.KeyVal{
		{Key: "#a", Val: ir.FromInt(1)},
	})
	if _, err := Encode(m); !errors.Is(err, ErrReservedName) {
		t.Errorf("root #a: %v", err)
	}
	m = ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "#weird", Val: ir.FromInt(1)},
		})},
	})
	if _, err := Encode(m); !errors.Is(err, ErrReservedName) {
		t.Errorf("key #weird: %v", err)
	}
}

func TestScalarTyping(t *testing.T) {
	m, err := Decode([]byte(`<v><i>42</i><f>3.14</f><b>false</b><s>00042</s></v>`))
	if err != nil {
		t.Fatal(err)
	}
	v := ir.Get(m, "v")
	if n := ir.Get(v, "i"); n.Type != ir.NumberType || *n.Int64 != 42 {
		t.Errorf("i: %+v", n)
	}
	if n := ir.Get(v, "f"); n.Type != ir.NumberType || *n.Float64 != 3.14 {
		t.Errorf("f: %+v", n)
	}
	if n := ir.Get(v, "b"); n.Type != ir.BoolType || n.Bool {
		t.Errorf("b: %+v", n)
	}
	if n := ir.Get(v, "s"); n.Type != ir.StringType || n.String != "00042" {
		t.Errorf("s: %+v", n)
	}
	out, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `<v><i>42</i><f>3.14</f><b>false</b><s>00042</s></v>`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

func TestAttrOrderPreserved(t *testing.T) {
	m, err := Decode([]byte(`<a z="1" a="2" m="3"/>`))
	if err != nil {
		t.Fatal(err)
	}
	keys := ir.Get(m, "a").Keys()
	want := []string{"@z", "@a", "@m"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("attr order lost: %v", keys)
		}
	}
	out, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `<a z="1" a="2" m="3"/>` {
		t.Errorf("got %s", out)
	}
}

func TestUnsupportedScalar(t *testing.T) {
	m := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromFloat(math.NaN())},
	})
	if _, err := Encode(m); !errors.Is(err, ir.ErrUnsupportedScalar) {
		t.Errorf("NaN: %v", err)
	}
}
