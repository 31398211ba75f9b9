package escape

import "fmt"

// Kind discriminates the scalar variants the codec accepts.
type Kind int

const (
	// TextKind is an ordinary string value.
	TextKind Kind = iota
	// AbsentKind marks the absence of a value.
	AbsentKind
	// TrueKind is boolean true.
	TrueKind
	// FalseKind is boolean false.
	FalseKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case AbsentKind:
		return "absent"
	case TrueKind:
		return "true"
	case FalseKind:
		return "false"
	default:
		return fmt.Sprintf("<err: %d is not a kind>", int(k))
	}
}

// Value is a tagged scalar: either text or one of the three sentinel
// scalars. The zero Value is the empty text.
type Value struct {
	Kind Kind
	Text string
}

// Str wraps a string value. Str("True") is text, not boolean true.
func Str(v string) Value {
	return Value{Kind: TextKind, Text: v}
}

// Bool wraps a boolean value.
func Bool(v bool) Value {
	if v {
		return Value{Kind: TrueKind}
	}
	return Value{Kind: FalseKind}
}

// Absent is the absence-of-value scalar.
func Absent() Value {
	return Value{Kind: AbsentKind}
}

// IsText reports whether v is an ordinary string.
func (v Value) IsText() bool {
	return v.Kind == TextKind
}

func (v Value) String() string {
	if v.Kind == TextKind {
		return v.Text
	}
	return v.Kind.String()
}
