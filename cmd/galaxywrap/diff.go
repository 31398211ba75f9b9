package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/galaxywrap/assemble"
	"github.com/signadot/galaxywrap/describe"
	"github.com/signadot/galaxywrap/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires a description and an existing wrapper", cli.ErrUsage)
	}
	tool, err := loadArg(args[0])
	if err != nil {
		return err
	}
	root, err := describe.Build(tool)
	if err != nil {
		return err
	}
	fresh, err := assemble.Bytes(root, cfg.meta())
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	if !textdiff.Changed(string(existing), string(fresh)) {
		return nil
	}
	diffs := textdiff.Diff(string(existing), string(fresh))
	if err := textdiff.Render(cc.Out, diffs, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
