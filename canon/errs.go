package canon

import "errors"

var (
	// ErrUnknownSection reports a direct child of the document root whose
	// tag is not in the section order list.
	ErrUnknownSection = errors.New("unknown section")
)
