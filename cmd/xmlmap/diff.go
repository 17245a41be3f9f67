package main

import (
	"fmt"

	"github.com/signadot/xmlmap"
	"github.com/signadot/xmlmap/format"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := xmlmap.Diff(a, b)
	if d == nil {
		return nil
	}
	// diffs use reserved keys and so have no xml form
	if err := render(cfg.MainConfig, cc.Out, d, format.YAMLFormat); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
