package ir

// Attr is a single element attribute. Attributes live in a slice, not a map:
// canonical order is computed once by the canon package and must survive to
// serialization.
type Attr struct {
	Name  string
	Value string
}

// Node is one XML element: a tag, attributes, ordered children and optional
// inline text.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// A is shorthand for constructing an Attr.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Elem creates an element with the given tag and attributes.
func Elem(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// WithText sets the node's inline text and returns the node.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// Append adds children in order and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Set sets an attribute, overwriting an existing attribute of the same name
// and appending otherwise.
func (n *Node) Set(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// Get returns the value of the named attribute and whether it is present.
func (n *Node) Get(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst and returns dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Tag = n.Tag
	dst.Text = n.Text
	dst.Attrs = make([]Attr, len(n.Attrs))
	copy(dst.Attrs, n.Attrs)
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dst.Children[i] = c.Clone()
	}
	return dst
}

// Visit walks the tree in document order. f is called with isPost false
// before a node's children are visited and with isPost true after. Returning
// dive false from the pre call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Equal reports structural equality of two trees.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i] != b.Attrs[i] {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
