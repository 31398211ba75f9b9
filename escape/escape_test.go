package escape

import (
	"errors"
	"testing"
)

func TestEscText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"empty", "", ""},
		{"brackets", "[x]", "__ob__x__cb__"},
		{"angle", "<tool>", "__lt__tool__gt__"},
		{"quotes", `'a' "b"`, "__sq__a__sq__ __dq__b__dq__"},
		{"braces", "{x}", "__oc__x__cc__"},
		{"at", "a@b", "a__at__b"},
		{"whitespace", "a\nb\rc\td", "a__cn__b__cr__c__tc__d"},
		{"pound", "#1", "__pd__1"},
		{"comma", "a,b,c", "a__comma__b__comma__c"},
		{"repeat", "[[", "__ob____ob__"},
		{"sentinel spelling stays text", "None", "None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Esc(Str(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Esc(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscSentinels(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"absent", Absent(), "__q2galaxy__::literal::None"},
		{"true", Bool(true), "__q2galaxy__::literal::True"},
		{"false", Bool(false), "__q2galaxy__::literal::False"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Esc(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Esc(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscKindSensitive(t *testing.T) {
	boolTok, err := Esc(Bool(true))
	if err != nil {
		t.Fatal(err)
	}
	strTok, err := Esc(Str("True"))
	if err != nil {
		t.Fatal(err)
	}
	if boolTok == strTok {
		t.Errorf("Esc(Bool(true)) == Esc(Str(%q)) == %q", "True", boolTok)
	}
}

func TestEscUnsupportedKind(t *testing.T) {
	_, err := Esc(Value{Kind: Kind(42)})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("err = %v, want ErrUnsupportedValue", err)
	}
}

func TestUnescSentinelIdentity(t *testing.T) {
	for _, v := range []Value{Absent(), Bool(true), Bool(false)} {
		tok, err := Esc(v)
		if err != nil {
			t.Fatal(err)
		}
		got := Unesc(tok)
		if got.Kind != v.Kind {
			t.Errorf("Unesc(Esc(%v)).Kind = %v, want %v", v, got.Kind, v.Kind)
		}
		if got.IsText() {
			t.Errorf("Unesc(Esc(%v)) decoded as text", v)
		}
	}
}

func TestUnescPlainText(t *testing.T) {
	// The literal string "None" must decode as text, not as the absence
	// sentinel.
	got := Unesc("None")
	if !got.IsText() || got.Text != "None" {
		t.Errorf("Unesc(%q) = %v", "None", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain",
		"[all]{the}<restricted>'chars'\"are\"@here,\n\r\t#",
		"nested [brackets [inside] brackets]",
		"ünïcode ✓ content",
	}
	for _, s := range cases {
		enc, err := Esc(Str(s))
		if err != nil {
			t.Fatal(err)
		}
		got := Unesc(enc)
		if !got.IsText() || got.Text != s {
			t.Errorf("Unesc(Esc(%q)) = %q", s, got.Text)
		}
	}
}

func TestUIVar(t *testing.T) {
	if got := UIVarValue("x"); got != "__q2galaxy__::control::x" {
		t.Errorf("UIVarValue = %q", got)
	}
	tests := []struct {
		tag, name string
		want      string
	}{
		{"inputs", "x", "__q2galaxy__GUI__inputs__x__"},
		{"inputs", "", "__q2galaxy__GUI__inputs__"},
		{"", "x", "__q2galaxy__GUI__x__"},
		{"", "", "__q2galaxy__GUI__"},
	}
	for _, tt := range tests {
		if got := UIVarPath(tt.tag, tt.name); got != tt.want {
			t.Errorf("UIVarPath(%q, %q) = %q, want %q", tt.tag, tt.name, got, tt.want)
		}
	}
}
