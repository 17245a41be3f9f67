package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets in an input document to line/column pairs.
type PosDoc struct {
	d []byte
	n []int
}

// NewPosDoc scans d for line boundaries.
func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, b := range d {
		if b == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	case N:
		if N != 0 {
			return di, off - p.n[di-1] - 1
		}
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) end() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

// Pos is a position in an input document.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
