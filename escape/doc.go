// Package escape implements the reversible value codec used when populating
// attribute and text values of a wrapper tree.
//
// # Overview
//
// Galaxy restricts the characters that may appear in several wrapper fields.
// The codec substitutes each restricted character with a literal placeholder
// token (`[` becomes `__ob__`, newline becomes `__cn__`, ...) and reverses
// the substitution on decode. Substitution runs in fixed table order in both
// directions; reversibility is a property of the table data, guarded by a
// property test rather than by the algorithm.
//
// Three non-string scalars — absence of a value, boolean true and boolean
// false — are represented as whole-string sentinel tokens. They are modeled
// as a tagged variant (Value) so that the boolean true can never be confused
// with the string "True".
//
// # Usage
//
//	tok, err := escape.Esc(escape.Str("a,b"))   // "a__comma__b"
//	tok, err = escape.Esc(escape.Bool(true))    // "__q2galaxy__::literal::True"
//	v := escape.Unesc("a__comma__b")            // escape.Str("a,b")
//
// # Control Tokens
//
// UIVarValue and UIVarPath generate one-way placeholder tokens identifying
// UI-bindable fields. They are consumed by Galaxy, not by Unesc.
package escape
