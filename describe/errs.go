package describe

import "errors"

var (
	// ErrBadDescription reports a description missing required fields.
	ErrBadDescription = errors.New("bad tool description")
	// ErrBadRequirement reports an invalid requirement entry, e.g. an
	// unparseable container image reference.
	ErrBadRequirement = errors.New("bad requirement")
	// ErrBadFilter reports an output filter that does not compile.
	ErrBadFilter = errors.New("bad output filter")
)
