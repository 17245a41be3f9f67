package main

import (
	"fmt"

	"github.com/signadot/xmlmap/format"
	"github.com/signadot/xmlmap/gomap"

	"github.com/scott-cotton/cli"
)

// encodeCmd is view's inverse: its inputs are yaml or json mappings.
func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		m, err := gomap.Load(d)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		if err := render(cfg.MainConfig, cc.Out, m, format.XMLFormat); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}
