package token

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits d into XML tokens. It performs no balance checking; that
// is the parser's job. The returned tokens share no state with d beyond
// position bookkeeping.
func Tokenize(d []byte) ([]Token, error) {
	tz := &tokenizer{d: d, doc: NewPosDoc(d)}
	var toks []Token
	for tz.i < len(tz.d) {
		tok, err := tz.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

type tokenizer struct {
	d   []byte
	doc *PosDoc
	i   int
}

func (t *tokenizer) pos() *Pos {
	if t.i >= len(t.d) {
		return t.doc.end()
	}
	return t.doc.Pos(t.i)
}

func (t *tokenizer) next() (Token, error) {
	if t.d[t.i] != '<' {
		return t.text()
	}
	start := t.pos()
	t.i++
	if t.i >= len(t.d) {
		return Token{}, NewTokenizeErr(ErrUnterminated, start)
	}
	switch t.d[t.i] {
	case '/':
		t.i++
		return t.closeTag(start)
	case '?':
		t.i++
		return t.bracketed(start, TProcInst, []byte("?>"))
	case '!':
		switch {
		case bytes.HasPrefix(t.d[t.i:], []byte("!--")):
			t.i += 3
			return t.bracketed(start, TComment, []byte("-->"))
		case bytes.HasPrefix(t.d[t.i:], []byte("![CDATA[")):
			t.i += 8
			return t.cdata(start)
		default:
			t.i++
			return t.directive(start)
		}
	default:
		return t.openTag(start)
	}
}

// text scans a run of character data up to the next tag.
func (t *tokenizer) text() (Token, error) {
	start := t.pos()
	end := bytes.IndexByte(t.d[t.i:], '<')
	if end < 0 {
		end = len(t.d) - t.i
	}
	raw := string(t.d[t.i : t.i+end])
	t.i += end
	s, err := Unescape(raw)
	if err != nil {
		return Token{}, NewTokenizeErr(err, start)
	}
	return Token{Type: TText, Pos: start, Text: s}, nil
}

// cdata scans <![CDATA[ ... ]]> content, taken literally.
func (t *tokenizer) cdata(start *Pos) (Token, error) {
	end := bytes.Index(t.d[t.i:], []byte("]]>"))
	if end < 0 {
		return Token{}, NewTokenizeErr(ErrUnterminated, start)
	}
	s := string(t.d[t.i : t.i+end])
	t.i += end + 3
	return Token{Type: TText, Pos: start, Text: s}, nil
}

func (t *tokenizer) bracketed(start *Pos, typ Type, close []byte) (Token, error) {
	end := bytes.Index(t.d[t.i:], close)
	if end < 0 {
		return Token{}, NewTokenizeErr(ErrUnterminated, start)
	}
	s := string(t.d[t.i : t.i+end])
	t.i += end + len(close)
	return Token{Type: typ, Pos: start, Text: s}, nil
}

// directive scans <! ... >, tracking square brackets so DOCTYPE internal
// subsets do not end the directive early.
func (t *tokenizer) directive(start *Pos) (Token, error) {
	depth := 0
	for j := t.i; j < len(t.d); j++ {
		switch t.d[j] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				s := string(t.d[t.i:j])
				t.i = j + 1
				return Token{Type: TDirective, Pos: start, Text: s}, nil
			}
		}
	}
	return Token{}, NewTokenizeErr(ErrUnterminated, start)
}

func (t *tokenizer) closeTag(start *Pos) (Token, error) {
	name, err := t.scanName()
	if err != nil {
		return Token{}, err
	}
	t.skipSpace()
	if t.i >= len(t.d) {
		return Token{}, NewTokenizeErr(ErrUnterminated, start)
	}
	if t.d[t.i] != '>' {
		return Token{}, UnexpectedErr(string(t.d[t.i]), t.pos())
	}
	t.i++
	return Token{Type: TClose, Pos: start, Name: name}, nil
}

func (t *tokenizer) openTag(start *Pos) (Token, error) {
	name, err := t.scanName()
	if err != nil {
		return Token{}, err
	}
	tok := Token{Type: TOpen, Pos: start, Name: name}
	for {
		t.skipSpace()
		if t.i >= len(t.d) {
			return Token{}, NewTokenizeErr(ErrUnterminated, start)
		}
		switch t.d[t.i] {
		case '>':
			t.i++
			return tok, nil
		case '/':
			t.i++
			if t.i >= len(t.d) || t.d[t.i] != '>' {
				return Token{}, UnexpectedErr("/", t.pos())
			}
			t.i++
			tok.SelfClosing = true
			return tok, nil
		}
		attr, err := t.attr(&tok)
		if err != nil {
			return Token{}, err
		}
		tok.Attrs = append(tok.Attrs, attr)
	}
}

func (t *tokenizer) attr(tok *Token) (Attr, error) {
	aPos := t.pos()
	name, err := t.scanName()
	if err != nil {
		return Attr{}, err
	}
	for i := range tok.Attrs {
		if tok.Attrs[i].Name == name {
			return Attr{}, NewTokenizeErr(fmt.Errorf("%w %q", ErrDuplicateAttr, name), aPos)
		}
	}
	t.skipSpace()
	if t.i >= len(t.d) || t.d[t.i] != '=' {
		return Attr{}, NewTokenizeErr(fmt.Errorf("%w %q: missing =", ErrBadAttr, name), aPos)
	}
	t.i++
	t.skipSpace()
	if t.i >= len(t.d) {
		return Attr{}, NewTokenizeErr(ErrUnterminated, aPos)
	}
	quote := t.d[t.i]
	if quote != '"' && quote != '\'' {
		return Attr{}, NewTokenizeErr(fmt.Errorf("%w %q: unquoted value", ErrBadAttr, name), t.pos())
	}
	t.i++
	end := bytes.IndexByte(t.d[t.i:], quote)
	if end < 0 {
		return Attr{}, NewTokenizeErr(ErrUnterminated, aPos)
	}
	raw := string(t.d[t.i : t.i+end])
	t.i += end + 1
	val, err := Unescape(raw)
	if err != nil {
		return Attr{}, NewTokenizeErr(err, aPos)
	}
	return Attr{Name: name, Value: val}, nil
}

func (t *tokenizer) scanName() (string, error) {
	start := t.i
	r, sz := utf8.DecodeRune(t.d[t.i:])
	if r == utf8.RuneError && sz <= 1 {
		return "", NewTokenizeErr(ErrBadUTF8, t.pos())
	}
	if !nameStart(r) {
		return "", NewTokenizeErr(ErrBadName, t.pos())
	}
	t.i += sz
	for t.i < len(t.d) {
		r, sz = utf8.DecodeRune(t.d[t.i:])
		if r == utf8.RuneError && sz <= 1 {
			return "", NewTokenizeErr(ErrBadUTF8, t.pos())
		}
		if !nameRune(r) {
			break
		}
		t.i += sz
	}
	return string(t.d[start:t.i]), nil
}

func nameStart(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

func nameRune(r rune) bool {
	return nameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r)
}

func (t *tokenizer) skipSpace() {
	for t.i < len(t.d) {
		switch t.d[t.i] {
		case ' ', '\t', '\n', '\r':
			t.i++
		default:
			return
		}
	}
}
