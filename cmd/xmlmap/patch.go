package main

import (
	"fmt"

	"github.com/signadot/xmlmap"
	"github.com/signadot/xmlmap/format"
	"github.com/signadot/xmlmap/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *ir.Node
	if cfg.Merge {
		res, err = xmlmap.MergePatch(target, p)
	} else {
		res, err = xmlmap.Patch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := render(cfg.MainConfig, cc.Out, res, format.XMLFormat); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := readArg(cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}
