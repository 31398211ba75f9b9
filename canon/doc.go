// Package canon puts a wrapper tree into its one canonical order.
//
// # Overview
//
// A raw tree arrives with attributes and children in whatever order the
// builder produced them. Canonicalize imposes the deterministic order the
// generated XML is expected to have:
//
//   - at every depth, attributes named in the priority list come first, in
//     list order, followed by the remaining attributes alphabetically;
//   - direct children of the root are sorted by the section tag list.
//
// The section list doubles as the schema boundary for top-level sections: a
// root child whose tag is not in the list is an error (ErrUnknownSection),
// so schema drift surfaces at generation time instead of in Galaxy. Unknown
// attribute names are not an error; they sort into the alphabetical bucket.
//
// Canonicalize is a pure function of its input and is idempotent.
package canon
