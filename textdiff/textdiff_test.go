package textdiff

import (
	"bytes"
	"strings"
	"testing"
)

func TestChanged(t *testing.T) {
	if Changed("a\nb\n", "a\nb\n") {
		t.Errorf("identical inputs reported changed")
	}
	if !Changed("a\nb\n", "a\nc\n") {
		t.Errorf("different inputs reported unchanged")
	}
}

func TestRenderPlain(t *testing.T) {
	diffs := Diff("one\ntwo\nthree\n", "one\n2\nthree\n")
	buf := &bytes.Buffer{}
	if err := Render(buf, diffs, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{" one\n", "-two\n", "+2\n", " three\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderEmptyDiff(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Render(buf, Diff("same\n", "same\n"), nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != " same\n" {
		t.Errorf("Render = %q", got)
	}
}
