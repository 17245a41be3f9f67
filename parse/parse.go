// Package parse provides XML parsing support, producing element trees.
package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/xmlmap/debug"
	"github.com/signadot/xmlmap/token"
	"github.com/signadot/xmlmap/xmltree"
)

// Parse turns raw XML text into its root element. The XML declaration,
// processing instructions, comments and the DOCTYPE are skipped. Recursion
// depth is bounded only by available memory.
func Parse(d []byte, opts ...ParseOption) (*xmltree.Element, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("token %d: %s\n", i, &toks[i])
		}
	}
	var root *xmltree.Element
	off := 0
	for off < len(toks) {
		t := &toks[off]
		switch t.Type {
		case token.TComment, token.TProcInst, token.TDirective:
			off++
		case token.TText:
			if strings.TrimSpace(t.Text) != "" {
				if root == nil {
					return nil, fmt.Errorf("%w: character data before root element %s", ErrMalformed, t.Pos)
				}
				return nil, fmt.Errorf("%w: character data %s", ErrTrailingData, t.Pos)
			}
			off++
		case token.TClose:
			return nil, fmt.Errorf("%w: </%s> has no opening tag %s", ErrTagMismatch, t.Name, t.Pos)
		case token.TOpen:
			if root != nil {
				return nil, fmt.Errorf("%w: second root element <%s> %s", ErrTrailingData, t.Name, t.Pos)
			}
			root, err = parseElement(toks, &off, pOpts)
			if err != nil {
				return nil, err
			}
		}
	}
	if root == nil {
		return nil, ErrEmptyDoc
	}
	return root, nil
}

// parseElement consumes the open tag at toks[*pi] and everything through
// its matching close tag.
func parseElement(toks []token.Token, pi *int, opts *parseOpts) (*xmltree.Element, error) {
	open := &toks[*pi]
	*pi++
	el := &xmltree.Element{Name: open.Name}
	if len(open.Attrs) > 0 {
		el.Attrs = make([]xmltree.Attr, len(open.Attrs))
		for i, a := range open.Attrs {
			el.Attrs[i] = xmltree.Attr{Name: a.Name, Value: a.Value}
		}
	}
	if open.SelfClosing {
		return el, nil
	}
	var (
		texts   []string
		textPos *token.Pos
	)
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: <%s> %s is never closed", ErrUnexpectedEnd, open.Name, open.Pos)
		}
		t := &toks[*pi]
		switch t.Type {
		case token.TClose:
			*pi++
			if t.Name != open.Name {
				return nil, fmt.Errorf("%w: <%s> %s closed by </%s> %s",
					ErrTagMismatch, open.Name, open.Pos, t.Name, t.Pos)
			}
			joined := strings.Join(texts, "")
			trimmed := strings.TrimSpace(joined)
			if trimmed == "" {
				// whitespace between elements is not content
				return el, nil
			}
			if len(el.Children) > 0 {
				return nil, fmt.Errorf("%w: text and elements mixed in <%s> %s",
					ErrMixedContent, open.Name, textPos)
			}
			if opts.keepWhitespace {
				el.Text = joined
			} else {
				el.Text = trimmed
			}
			return el, nil
		case token.TText:
			if textPos == nil && strings.TrimSpace(t.Text) != "" {
				textPos = t.Pos
			}
			texts = append(texts, t.Text)
			*pi++
		case token.TComment, token.TProcInst, token.TDirective:
			*pi++
		case token.TOpen:
			child, err := parseElement(toks, pi, opts)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		}
	}
}
