package canon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/galaxywrap/ir"
)

func attrNames(n *ir.Node) []string {
	res := make([]string, len(n.Attrs))
	for i, a := range n.Attrs {
		res[i] = a.Name
	}
	return res
}

func childTags(n *ir.Node) []string {
	res := make([]string, len(n.Children))
	for i, c := range n.Children {
		res[i] = c.Tag
	}
	return res
}

func TestAttrOrderDeterminism(t *testing.T) {
	root := ir.Elem("tool",
		ir.A("help", "h"),
		ir.A("name", "n"),
		ir.A("zzz", "z"),
		ir.A("argument", "a"),
	)
	got, err := Canonicalize(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"name", "argument", "help", "zzz"}
	if diff := cmp.Diff(want, attrNames(got)); diff != "" {
		t.Errorf("attr order (-want +got):\n%s", diff)
	}
}

func TestAttrOrderRecursive(t *testing.T) {
	root := ir.Elem("tool").Append(
		ir.Elem("inputs").Append(
			ir.Elem("param",
				ir.A("label", "l"),
				ir.A("optional", "o"),
				ir.A("type", "text"),
				ir.A("name", "x"),
				ir.A("area", "y"),
			),
		),
	)
	got, err := Canonicalize(root)
	if err != nil {
		t.Fatal(err)
	}
	param := got.Children[0].Children[0]
	want := []string{"name", "type", "optional", "label", "area"}
	if diff := cmp.Diff(want, attrNames(param)); diff != "" {
		t.Errorf("nested attr order (-want +got):\n%s", diff)
	}
}

func TestSectionOrderDeterminism(t *testing.T) {
	root := ir.Elem("tool").Append(
		ir.Elem("outputs"),
		ir.Elem("description"),
		ir.Elem("code"),
	)
	got, err := Canonicalize(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"description", "code", "outputs"}
	if diff := cmp.Diff(want, childTags(got)); diff != "" {
		t.Errorf("section order (-want +got):\n%s", diff)
	}
}

func TestNestedChildrenKeepInputOrder(t *testing.T) {
	// Section ordering applies to root children only; deeper levels keep
	// the builder's order.
	root := ir.Elem("tool").Append(
		ir.Elem("inputs").Append(
			ir.Elem("param", ir.A("name", "b")),
			ir.Elem("param", ir.A("name", "a")),
		),
	)
	got, err := Canonicalize(root)
	if err != nil {
		t.Fatal(err)
	}
	inputs := got.Children[0]
	if v, _ := inputs.Children[0].Get("name"); v != "b" {
		t.Errorf("nested children reordered: first param is %q", v)
	}
}

func TestUnknownSectionFailsFast(t *testing.T) {
	root := ir.Elem("tool").Append(ir.Elem("foobar"))
	_, err := Canonicalize(root)
	if !errors.Is(err, ErrUnknownSection) {
		t.Errorf("err = %v, want ErrUnknownSection", err)
	}
}

func TestIdempotence(t *testing.T) {
	root := ir.Elem("tool", ir.A("version", "1"), ir.A("id", "t"), ir.A("name", "t")).Append(
		ir.Elem("outputs").Append(ir.Elem("data", ir.A("format", "qza"), ir.A("name", "o"))),
		ir.Elem("description").WithText("d"),
		ir.Elem("inputs").Append(ir.Elem("param", ir.A("type", "text"), ir.A("name", "x"))),
		ir.Elem("command").WithText("run"),
	)
	once, err := Canonicalize(root)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Canonicalize(once)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(once, twice) {
		t.Errorf("canonicalization is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestInputNotMutated(t *testing.T) {
	root := ir.Elem("tool", ir.A("zz", "1"), ir.A("name", "t")).Append(
		ir.Elem("outputs"),
		ir.Elem("description"),
	)
	if _, err := Canonicalize(root); err != nil {
		t.Fatal(err)
	}
	if root.Attrs[0].Name != "zz" || root.Children[0].Tag != "outputs" {
		t.Errorf("input tree was mutated: %v %v", attrNames(root), childTags(root))
	}
}

func TestStableSectionSort(t *testing.T) {
	// Repeated tags (e.g. two configfiles) keep their relative input order.
	a := ir.Elem("configfiles", ir.A("name", "first"))
	b := ir.Elem("configfiles", ir.A("name", "second"))
	root := ir.Elem("tool").Append(ir.Elem("tests"), a, b)
	got, err := Canonicalize(root)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Children[0].Get("name"); v != "first" {
		t.Errorf("stable sort violated: %v", childTags(got))
	}
	if got.Children[2].Tag != "tests" {
		t.Errorf("section order violated: %v", childTags(got))
	}
}
