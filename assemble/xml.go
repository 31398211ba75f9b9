package assemble

import (
	"io"
	"strings"

	"github.com/signadot/galaxywrap/ir"
)

type asmState struct {
	depth  int
	indent int
}

// Option adjusts serialization.
type Option func(*asmState)

// WithIndent overrides the 4-space indentation width.
func WithIndent(n int) Option {
	return func(as *asmState) { as.indent = n }
}

func writeNL(w io.Writer, as *asmState) error {
	pad := strings.Repeat(strings.Repeat(" ", as.indent), as.depth)
	return writeString(w, "\n"+pad)
}

func encodeElem(n *ir.Node, w io.Writer, as *asmState) error {
	if err := writeOpen(n, w); err != nil {
		return err
	}
	if len(n.Children) == 0 && n.Text == "" {
		return nil
	}
	if n.Text != "" {
		if err := writeString(w, escapeText(n.Text)); err != nil {
			return err
		}
	}
	if len(n.Children) != 0 {
		as.depth++
		for _, c := range n.Children {
			if err := writeNL(w, as); err != nil {
				return err
			}
			if err := encodeElem(c, w, as); err != nil {
				return err
			}
		}
		as.depth--
		if err := writeNL(w, as); err != nil {
			return err
		}
	}
	return writeString(w, "</"+n.Tag+">")
}

// writeOpen writes the start tag, self-closing when the element carries
// neither text nor children.
func writeOpen(n *ir.Node, w io.Writer) error {
	b := &strings.Builder{}
	b.WriteString("<")
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteString(`"`)
	}
	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
	return writeString(w, b.String())
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeText escapes element text content. This is XML-level escaping,
// distinct from the escape package, which encodes values before they enter
// the tree.
func escapeText(v string) string {
	return textEscaper.Replace(v)
}

func escapeAttr(v string) string {
	return attrEscaper.Replace(v)
}
