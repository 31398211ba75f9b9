package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/galaxywrap"
	"github.com/signadot/galaxywrap/assemble"
	"github.com/signadot/galaxywrap/textdiff"
)

type MainConfig struct {
	GenVersion string `cli:"name=gen-version desc='generator version stamped into wrappers'"`
	FwVersion  string `cli:"name=fw-version desc='framework version stamped into wrappers'"`
	Color      bool   `cli:"name=color desc='force colored diff output'"`

	Year int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) meta() assemble.Meta {
	gen := cfg.GenVersion
	if gen == "" {
		gen = galaxywrap.Version
	}
	return assemble.Meta{
		GeneratorVersion: gen,
		FrameworkVersion: cfg.FwVersion,
		Year:             cfg.Year,
	}
}

// colors returns the diff color scheme: forced by -color, otherwise enabled
// only when writing to a terminal.
func (cfg *MainConfig) colors(w io.Writer) *textdiff.Colors {
	if cfg.Color {
		return textdiff.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return textdiff.NewColors()
	}
	return nil
}

type GenerateConfig struct {
	*MainConfig
	Dir string `cli:"name=d desc='write wrappers into this directory, one <id>.xml each'"`

	Generate *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type EscConfig struct {
	*MainConfig
	None  bool `cli:"name=none desc='encode the absence-of-value sentinel'"`
	True  bool `cli:"name=true desc='encode boolean true'"`
	False bool `cli:"name=false desc='encode boolean false'"`

	Esc *cli.Command
}

type UIVarConfig struct {
	*MainConfig
	Value string `cli:"name=value desc='direct-value control token'"`
	Tag   string `cli:"name=tag desc='tag element of the control path'"`
	Name  string `cli:"name=name desc='name element of the control path'"`

	UIVar *cli.Command
}
