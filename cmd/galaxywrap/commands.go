package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/galaxywrap"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "year",
			Description: "pin the copyright year (default: current year)",
			Type:        cli.NamedFuncOpt(cfg.yearOpt, "(year)"),
		})

	return cli.NewCommandAt(&cfg.Main, "galaxywrap").
		WithSynopsis("galaxywrap [opts] command [opts]").
		WithDescription("galaxywrap generates Galaxy tool wrapper XML from tool descriptions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wrapMain(cfg, cc, args)
		}).
		WithSubs(
			GenerateCommand(cfg),
			DiffCommand(cfg),
			EscCommand(cfg),
			UnescCommand(cfg),
			UIVarCommand(cfg),
			VersionCommand(cfg))
}

func GenerateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenerateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("generate").
		WithAliases("g", "gen").
		WithSynopsis("generate [-d dir] [files]").
		WithDescription("generate wrapper XML from description files ('-' reads stdin)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return generate(cfg, cc, args)
		})
	cfg.Generate = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <description> <existing.xml>").
		WithDescription("regenerate a wrapper and diff it against an existing file").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func EscCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EscConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("esc").
		WithSynopsis("esc [-none|-true|-false] [text]").
		WithDescription("encode a value with the wrapper escape codec ('-' reads stdin)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return esc(cfg, cc, args)
		})
	cfg.Esc = cmd
	return cmd
}

func UnescCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EscConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("unesc").
		WithSynopsis("unesc [text]").
		WithDescription("decode an escaped value ('-' reads stdin)").
		WithRun(func(cc *cli.Context, args []string) error {
			return unesc(cfg, cc, args)
		})
	return cmd
}

func UIVarCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UIVarConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("uivar").
		WithSynopsis("uivar [-value v | -tag t -name n]").
		WithDescription("print the control token for a UI-bindable field").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return uivar(cfg, cc, args)
		})
	cfg.UIVar = cmd
	return cmd
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version").
		WithDescription("print the galaxywrap version").
		WithRun(func(cc *cli.Context, args []string) error {
			_, err := fmt.Fprintln(cc.Out, galaxywrap.Version)
			return err
		})
}
