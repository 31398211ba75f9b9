package escape

import (
	"fmt"
	"strings"
)

type rule struct {
	char string
	tok  string
}

// escaped maps restricted characters to placeholder tokens. This is Galaxy's
// mapped_chars table plus the comma rule so a <test/> expectation never sees
// multiple values. Order is significant: substitution applies entries
// sequentially in both directions, so the table is a slice, never a map.
var escaped = []rule{
	{"[", "__ob__"},
	{"]", "__cb__"},
	{">", "__gt__"},
	{"<", "__lt__"},
	{"'", "__sq__"},
	{"\"", "__dq__"},
	{"{", "__oc__"},
	{"}", "__cc__"},
	{"@", "__at__"},
	{"\n", "__cn__"},
	{"\r", "__cr__"},
	{"\t", "__tc__"},
	{"#", "__pd__"},
	{",", "__comma__"},
}

type sentinel struct {
	kind Kind
	tok  string
}

// sentinels map the three non-string scalars to whole-string tokens. The
// tokens must never collide with any output of the escaped table.
var sentinels = []sentinel{
	{AbsentKind, "__q2galaxy__::literal::None"},
	{TrueKind, "__q2galaxy__::literal::True"},
	{FalseKind, "__q2galaxy__::literal::False"},
}

// Esc encodes a value for embedding in a restricted wrapper field. Text runs
// the character table in order; sentinel kinds return their fixed token
// without touching the table.
func Esc(v Value) (string, error) {
	if v.Kind == TextKind {
		s := v.Text
		for _, r := range escaped {
			s = strings.ReplaceAll(s, r.char, r.tok)
		}
		return s, nil
	}
	for _, m := range sentinels {
		if v.Kind == m.kind {
			return m.tok, nil
		}
	}
	return "", fmt.Errorf("%w: kind %s", ErrUnsupportedValue, v.Kind)
}

// Unesc reverses Esc. The whole input is checked against the sentinel table
// first; anything else is treated as escaped text and substituted back in
// table order.
func Unesc(s string) Value {
	for _, m := range sentinels {
		if s == m.tok {
			return Value{Kind: m.kind}
		}
	}
	for _, r := range escaped {
		s = strings.ReplaceAll(s, r.tok, r.char)
	}
	return Str(s)
}

// Rules returns the (character, token) pairs of the escape table in
// substitution order. Tests use it to guard the table's reversibility
// invariant.
func Rules() [][2]string {
	res := make([][2]string, len(escaped))
	for i, r := range escaped {
		res[i] = [2]string{r.char, r.tok}
	}
	return res
}

// SentinelTokens returns the sentinel tokens in table order.
func SentinelTokens() []string {
	res := make([]string, len(sentinels))
	for i, m := range sentinels {
		res[i] = m.tok
	}
	return res
}
