// Package assemble decorates a canonical wrapper tree and serializes it to
// the final XML byte stream.
//
// # Usage
//
//	meta := assemble.Meta{
//	    GeneratorVersion: "2026.8.0",
//	    FrameworkVersion: "2026.8.1",
//	}
//	err := assemble.Write(tool, meta, "my_tool.xml")
//
// Assembly canonicalizes the tree, stamps the root with the profile and
// license attributes, emits the XML declaration and the two leading comment
// blocks (copyright, generation provenance), and serializes with 4-space
// indentation.
//
// The copyright block carries the year of generation; Meta.Year pins it for
// reproducible output. Everything else is a pure function of the tree and
// the supplied version strings.
//
// # Related Packages
//
//   - github.com/signadot/galaxywrap/canon - canonical ordering applied here
//   - github.com/signadot/galaxywrap/ir - the tree being serialized
package assemble
