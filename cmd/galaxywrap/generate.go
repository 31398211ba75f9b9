package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/signadot/galaxywrap/assemble"
	"github.com/signadot/galaxywrap/describe"
	"github.com/signadot/galaxywrap/format"
)

func generate(cfg *GenerateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Generate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := generateOne(cfg, cc, arg); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return nil
}

func generateOne(cfg *GenerateConfig, cc *cli.Context, arg string) error {
	tool, err := loadArg(arg)
	if err != nil {
		return err
	}
	root, err := describe.Build(tool)
	if err != nil {
		return err
	}
	if cfg.Dir == "" {
		return assemble.Assemble(root, cfg.meta(), cc.Out)
	}
	path := filepath.Join(cfg.Dir, tool.ID+".xml")
	return assemble.Write(root, cfg.meta(), path)
}

func loadArg(arg string) (*describe.Tool, error) {
	if arg == "-" {
		return describe.Load(os.Stdin)
	}
	if _, ok := format.FromPath(arg); !ok {
		return nil, fmt.Errorf("%w: %q is not a description file", format.ErrBadFormat, arg)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return describe.Load(f)
}

func readArgOrStdin(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	return args[0], nil
}
