package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/xmlmap"
	"github.com/signadot/xmlmap/format"
	"github.com/signadot/xmlmap/gomap"
	"github.com/signadot/xmlmap/ir"
	"github.com/signadot/xmlmap/parse"

	"github.com/scott-cotton/cli"
)

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return xmlmap.Decode(d, opts...)
}

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// render writes node to w in cfg's output format, def applying when no
// format was requested.
func render(cfg *MainConfig, w io.Writer, node *ir.Node, def format.Format) error {
	switch cfg.outFormat(def) {
	case format.XMLFormat:
		if err := xmlmap.EncodeTo(node, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	case format.YAMLFormat:
		d, err := gomap.DumpYAML(node)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		d, err := gomap.DumpJSON(node)
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	default:
		return format.ErrBadFormat
	}
}
