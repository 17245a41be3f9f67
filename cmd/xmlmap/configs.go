package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/xmlmap/encode"
	"github.com/signadot/xmlmap/format"
	"github.com/signadot/xmlmap/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Decl   bool `cli:"name=decl desc='emit an xml declaration'"`
	Indent int  `cli:"name=i aliases=indent desc='indent step for xml output (0 for wire form)'"`
	Ws     bool `cli:"name=w aliases=ws desc='keep surrounding whitespace in text content'"`

	X bool `cli:"name=x aliases=xml desc='output in xml'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outFormat resolves the output format, def winning only when nothing was
// requested on the command line.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	switch {
	case cfg.X:
		return format.XMLFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Ws {
		res = append(res, parse.KeepWhitespace())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeDecl(cfg.Decl),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Encode *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='apply the patch as an rfc 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
