package main

import (
	"fmt"

	"github.com/signadot/xmlmap"
	"github.com/signadot/xmlmap/format"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		m, err := getDocFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := xmlmap.Query(m, src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if err := render(cfg.MainConfig, cc.Out, res, format.YAMLFormat); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
