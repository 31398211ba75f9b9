package escape

import "strings"

// UIVarValue generates the control token binding a field directly to a
// value. Control tokens are one-way: Unesc does not decode them.
func UIVarValue(value string) string {
	return "__q2galaxy__::control::" + value
}

// UIVarPath generates the control token naming a UI field by its position.
// Empty tag or name segments are omitted. The result is wrapped in double
// underscores, e.g. UIVarPath("inputs", "x") is "__q2galaxy__GUI__inputs__x__".
func UIVarPath(tag, name string) string {
	elements := []string{"", "q2galaxy", "GUI"}
	if tag != "" {
		elements = append(elements, tag)
	}
	if name != "" {
		elements = append(elements, name)
	}
	elements = append(elements, "")
	return strings.Join(elements, "__")
}
