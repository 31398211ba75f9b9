package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/galaxywrap/escape"
)

func esc(cfg *EscConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Esc.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.None, cfg.True, cfg.False) > 1 {
		return fmt.Errorf("%w: at most one of -none -true -false", cli.ErrUsage)
	}
	var v escape.Value
	switch {
	case cfg.None:
		v = escape.Absent()
	case cfg.True:
		v = escape.Bool(true)
	case cfg.False:
		v = escape.Bool(false)
	default:
		text, err := readArgOrStdin(args)
		if err != nil {
			return err
		}
		v = escape.Str(text)
	}
	tok, err := escape.Esc(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, tok)
	return err
}

func unesc(cfg *EscConfig, cc *cli.Context, args []string) error {
	text, err := readArgOrStdin(args)
	if err != nil {
		return err
	}
	v := escape.Unesc(text)
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}

func uivar(cfg *UIVarConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.UIVar.Parse(cc, args); err != nil {
		return err
	}
	var tok string
	switch {
	case cfg.Value != "":
		if cfg.Tag != "" || cfg.Name != "" {
			return fmt.Errorf("%w: -value excludes -tag and -name", cli.ErrUsage)
		}
		tok = escape.UIVarValue(cfg.Value)
	default:
		tok = escape.UIVarPath(cfg.Tag, cfg.Name)
	}
	_, err := fmt.Fprintln(cc.Out, tok)
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
