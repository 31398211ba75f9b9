package debug

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/galaxywrap/ir"
)

// Tree renders a node as a compact one-line outline for debug output.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	b := &strings.Builder{}
	outline(t.Node, b)
	return b.String()
}

func outline(n *ir.Node, b *strings.Builder) {
	b.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(b, " %s=%q", a.Name, a.Value)
	}
	if len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for _, c := range n.Children {
		outline(c, b)
	}
	b.WriteString("</" + n.Tag + ">")
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
