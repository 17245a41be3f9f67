package main

import (
	"fmt"

	"github.com/signadot/xmlmap/format"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a mapping path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		m, err := getDocFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		v, err := m.GetPath(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
		if err := render(cfg.MainConfig, cc.Out, v, format.YAMLFormat); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
