package canon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/galaxywrap/debug"
	"github.com/signadot/galaxywrap/ir"
)

// attrOrder lists the attribute names with a fixed position; any attribute
// not named here sorts alphabetically after all of these.
var attrOrder = []string{
	"name",
	"argument",
	"type",
	"format",
	"min",
	"truevalue",
	"max",
	"falsevalue",
	"value",
	"checked",
	"optional",
	"label",
	"help",
}

// sectionOrder is the authoritative ordering of the direct children of a
// <tool> root. It is also the closed vocabulary of top-level sections.
var sectionOrder = []string{
	"description",
	"macros",
	"edam_topics",
	"edam_operations",
	"parallelism",
	"requirements",
	"code",
	"stdio",
	"version_command",
	"command",
	"environment_variables",
	"configfiles",
	"inputs",
	"request_param_translation",
	"outputs",
	"tests",
	"help",
	"citations",
}

var (
	attrRank    = rankOf(attrOrder)
	sectionRank = rankOf(sectionOrder)
)

func rankOf(order []string) map[string]int {
	m := make(map[string]int, len(order))
	for i, v := range order {
		m[v] = i
	}
	return m
}

// Canonicalize returns a copy of root in canonical order: attributes sorted
// at every depth, root children sorted by section. The input tree is not
// modified. A root child with an unrecognized tag yields ErrUnknownSection.
func Canonicalize(root *ir.Node) (*ir.Node, error) {
	res := sortAttrs(root)
	for _, c := range res.Children {
		if _, ok := sectionRank[c.Tag]; !ok {
			return nil, fmt.Errorf("%w: <%s> under root <%s>", ErrUnknownSection, c.Tag, root.Tag)
		}
	}
	slices.SortStableFunc(res.Children, func(a, b *ir.Node) int {
		return sectionRank[a.Tag] - sectionRank[b.Tag]
	})
	if debug.Canon() {
		debug.Logf("canon: %s\n", debug.Tree{Node: res})
	}
	return res, nil
}

// sortAttrs copies the node with attributes in canonical order, recursively.
// Tag, text and child order carry through unchanged.
func sortAttrs(n *ir.Node) *ir.Node {
	res := &ir.Node{Tag: n.Tag, Text: n.Text}
	res.Attrs = make([]ir.Attr, len(n.Attrs))
	copy(res.Attrs, n.Attrs)
	slices.SortStableFunc(res.Attrs, compareAttrs)
	res.Children = make([]*ir.Node, len(n.Children))
	for i, c := range n.Children {
		res.Children[i] = sortAttrs(c)
	}
	return res
}

// compareAttrs orders two attributes: ranked names by rank, ranked before
// unranked, unranked alphabetically.
func compareAttrs(a, b ir.Attr) int {
	ra, aOK := attrRank[a.Name]
	rb, bOK := attrRank[b.Name]
	switch {
	case aOK && bOK:
		return ra - rb
	case aOK:
		return -1
	case bOK:
		return 1
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

// AttrOrder returns the attribute priority list.
func AttrOrder() []string {
	return slices.Clone(attrOrder)
}

// SectionOrder returns the root section tag list.
func SectionOrder() []string {
	return slices.Clone(sectionOrder)
}
