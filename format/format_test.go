package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"y", YAMLFormat},
		{"yml", YAMLFormat},
		{"yaml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrBadFormat", err)
	}
}

func TestFromPath(t *testing.T) {
	if f, ok := FromPath("a/tool.yml"); !ok || f != YAMLFormat {
		t.Errorf("FromPath(.yml) = %v, %v", f, ok)
	}
	if f, ok := FromPath("tool.json"); !ok || f != JSONFormat {
		t.Errorf("FromPath(.json) = %v, %v", f, ok)
	}
	if _, ok := FromPath("tool.xml"); ok {
		t.Errorf("FromPath(.xml) should not match")
	}
}

func TestRoundTripText(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat} {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("round trip %v != %v", g, f)
		}
	}
}
