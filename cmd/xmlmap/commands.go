package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xmlmap").
		WithSynopsis("xmlmap [opts] command [opts]").
		WithDescription("xmlmap is a tool for working with xml documents as ordered mappings.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlmapMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			EncodeCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("decode xml documents and render their mappings").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [mapping-files]").
		WithDescription("encode yaml or json mappings as xml").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get mapping elements from xml documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff xml documents structurally").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> <file>").
		WithDescription("patch an xml document with a json patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expression against xml documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}
