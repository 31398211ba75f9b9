// Package ir provides the intermediate representation (IR) for Galaxy tool
// wrapper documents.
//
// # Overview
//
// A wrapper document is a tree of XML elements. The IR models each element as
// an ir.Node carrying a tag, attributes, ordered children and optional inline
// text. Trees are built programmatically by the describe package, put into
// canonical order by the canon package, and serialized by the assemble
// package.
//
// Attribute order and child order on a freshly built node carry no meaning;
// both are fixed by canonicalization. The IR therefore keeps attributes as a
// slice (never a map) so that canonical order, once computed, is preserved
// exactly on the way to serialization.
//
// # Creating Nodes
//
// Use the constructors:
//
//	tool := ir.Elem("tool", ir.A("id", "my_tool"))
//	desc := ir.Elem("description").WithText("Does a thing")
//	tool.Append(desc)
//
// # Comparison
//
// Equal reports structural equality over (tag, attrs, children, text). It is
// used by tests and by callers that want to verify canonicalization
// idempotence.
//
// # Thread Safety
//
// Nodes are not thread-safe. Each generation run builds, canonicalizes and
// serializes its own tree; nothing is shared across runs.
//
// # Related Packages
//
//   - github.com/signadot/galaxywrap/canon - canonical ordering of IR trees
//   - github.com/signadot/galaxywrap/assemble - serializes IR trees to XML
//   - github.com/signadot/galaxywrap/describe - builds IR trees from tool descriptions
package ir
