package escape

import "errors"

var (
	// ErrUnsupportedValue reports a Value whose kind the codec does not
	// support. The codec handles text and the three sentinel scalars only.
	ErrUnsupportedValue = errors.New("unsupported value")
)
