// Package textdiff renders line diffs between a freshly generated wrapper
// and an existing file. It backs the `galaxywrap diff` subcommand; the diff
// is presentational only, generation itself never reads the old file.
package textdiff
