package textdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Colors holds the render functions for inserted and deleted lines.
type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
}

// NewColors returns the default green/red scheme.
func NewColors() *Colors {
	return &Colors{
		Insert: color.GreenString,
		Delete: color.RedString,
	}
}

// Diff computes a line-level diff from `from` to `to`.
func Diff(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Changed reports whether the two inputs differ.
func Changed(from, to string) bool {
	for _, d := range Diff(from, to) {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Render writes a unified-style rendering of diffs to w. colors may be nil
// for plain output.
func Render(w io.Writer, diffs []diffpatch.Diff, colors *Colors) error {
	for _, d := range diffs {
		var prefix string
		render := func(s string, _ ...any) string { return s }
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
			if colors != nil {
				render = colors.Insert
			}
		case diffpatch.DiffDelete:
			prefix = "-"
			if colors != nil {
				render = colors.Delete
			}
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, ln := range splitLines(d.Text) {
			if _, err := io.WriteString(w, render(prefix+ln)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(v string) []string {
	v = strings.TrimSuffix(v, "\n")
	if v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}
