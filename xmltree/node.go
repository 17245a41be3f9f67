// Package xmltree provides the in-memory element tree shared by the parser,
// the structural mapper and the encoder.
//
// An [Element] models one XML tag instance: a name, ordered attributes with
// unique names, order-significant children and optional text content. Text
// is mutually exclusive with children; mixed content is outside the
// supported subset and rejected at parse time.
package xmltree

// Attr is one attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Element is one XML tag instance. An Element is owned by its parent;
// the document root is owned by the caller.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New returns an element named name.
func New(name string) *Element {
	return &Element{Name: name}
}

// SetAttr appends or replaces the attribute named name.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Attr returns the value of the attribute named name and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// Append adds children to e in order.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// WithText sets e's text content.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// Equal reports structural equality: same names, same attributes in the
// same order with the same values, same text, and pairwise equal children.
func Equal(a, b *Element) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name != b.Name || a.Text != b.Text {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	res := &Element{Name: e.Name, Text: e.Text}
	if e.Attrs != nil {
		res.Attrs = make([]Attr, len(e.Attrs))
		copy(res.Attrs, e.Attrs)
	}
	if e.Children != nil {
		res.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}
