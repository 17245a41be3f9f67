package encode

import (
	"io"
	"strings"

	"github.com/signadot/xmlmap/token"
	"github.com/signadot/xmlmap/xmltree"
)

// Decl is the declaration emitted by EncodeDecl(true).
const Decl = `<?xml version="1.0" encoding="utf-8"?>`

type EncState struct {
	depth, indent int
	decl          bool

	Color func(ColorAttr, string) string
}

// Encode writes el to w. With no options the output is the canonical wire
// form on a single line.
func Encode(el *xmltree.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.decl {
		if err := writeString(w, es.color(DeclColor, Decl)); err != nil {
			return err
		}
		if err := es.writeNL(w); err != nil {
			return err
		}
	}
	if err := encode(el, w, es); err != nil {
		return err
	}
	if es.indent > 0 {
		return writeString(w, "\n")
	}
	return nil
}

func encode(el *xmltree.Element, w io.Writer, es *EncState) error {
	selfClose := len(el.Children) == 0 && el.Text == ""
	if err := es.writeOpen(w, el, selfClose); err != nil {
		return err
	}
	if selfClose {
		return nil
	}
	if len(el.Children) == 0 {
		if err := writeString(w, es.color(TextColor, token.EscapeText(el.Text))); err != nil {
			return err
		}
		return es.writeClose(w, el.Name)
	}
	es.depth++
	for _, c := range el.Children {
		if err := es.writeNL(w); err != nil {
			return err
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.writeNL(w); err != nil {
		return err
	}
	return es.writeClose(w, el.Name)
}

func (es *EncState) writeOpen(w io.Writer, el *xmltree.Element, selfClose bool) error {
	if err := writeString(w, es.color(SepColor, "<")+es.color(TagColor, el.Name)); err != nil {
		return err
	}
	for i := range el.Attrs {
		a := &el.Attrs[i]
		s := " " + es.color(AttrNameColor, a.Name) +
			es.color(SepColor, `="`) +
			es.color(AttrValueColor, token.EscapeAttr(a.Value)) +
			es.color(SepColor, `"`)
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	end := ">"
	if selfClose {
		end = "/>"
	}
	return writeString(w, es.color(SepColor, end))
}

func (es *EncState) writeClose(w io.Writer, name string) error {
	return writeString(w, es.color(SepColor, "</")+es.color(TagColor, name)+es.color(SepColor, ">"))
}

// writeNL starts a new indented line; in wire form it writes nothing.
func (es *EncState) writeNL(w io.Writer) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
