// Package format identifies the input syntax of tool description files.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f, ok := format.FromPath("tool.yml")
//
// Descriptions are YAML or JSON; JSON documents parse through the YAML
// loader, so the distinction matters only for file naming and CLI flags.
package format
