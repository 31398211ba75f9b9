// Package galaxywrap generates Galaxy tool wrapper XML from tool
// descriptions. The subpackages do the work: describe builds raw trees,
// canon orders them, assemble serializes them, escape encodes values.
package galaxywrap

// Version is the galaxywrap release version, stamped into generated
// wrappers as the generator version unless overridden.
const Version = "0.2.1"
