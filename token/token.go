package token

import "fmt"

// Type enumerates the kinds of XML tokens.
type Type int

const (
	// TOpen is an opening tag <a ...> or <a ... />.
	TOpen Type = iota
	// TClose is a closing tag </a>.
	TClose
	// TText is a run of character data between tags, entity references
	// resolved.
	TText
	// TComment is <!-- ... -->.
	TComment
	// TProcInst is <? ... ?>, including the XML declaration.
	TProcInst
	// TDirective is <! ... >, such as a DOCTYPE.
	TDirective
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TOpen:      "Open",
		TClose:     "Close",
		TText:      "Text",
		TComment:   "Comment",
		TProcInst:  "ProcInst",
		TDirective: "Directive",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Attr is one name="value" pair inside an opening tag, value unescaped.
type Attr struct {
	Name  string
	Value string
}

// Token is one lexical element of an XML document.
type Token struct {
	Type Type
	Pos  *Pos

	// Name is set for TOpen and TClose.
	Name string
	// Attrs are the opening tag's attributes in document order.
	Attrs []Attr
	// SelfClosing marks <a/> style opening tags.
	SelfClosing bool
	// Text holds character data for TText and the raw body for
	// TComment, TProcInst and TDirective.
	Text string
}

func (t *Token) String() string {
	switch t.Type {
	case TOpen:
		if t.SelfClosing {
			return fmt.Sprintf("%s(%s/) %s", t.Type, t.Name, t.Pos)
		}
		return fmt.Sprintf("%s(%s) %s", t.Type, t.Name, t.Pos)
	case TClose:
		return fmt.Sprintf("%s(%s) %s", t.Type, t.Name, t.Pos)
	default:
		return fmt.Sprintf("%s(%q) %s", t.Type, t.Text, t.Pos)
	}
}
