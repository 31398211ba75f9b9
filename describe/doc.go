// Package describe loads tool descriptions and builds raw wrapper trees
// from them.
//
// # Overview
//
// A description is a small YAML (or JSON) document naming the tool, its
// requirements, parameters, outputs and tests. Build turns a description
// into an ir tree; the tree is raw — attribute and section order is fixed
// later by the canon package.
//
// Scalar parameter defaults and test expectations pass through the escape
// codec on their way into attribute values, so booleans and absent values
// arrive in Galaxy as the sentinel tokens it knows how to reverse.
//
// Container requirement images are validated with docker-parser and output
// filter expressions are compiled with expr, so malformed descriptions fail
// at generation time.
package describe
