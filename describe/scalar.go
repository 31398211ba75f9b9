package describe

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/galaxywrap/escape"
)

// Scalar is a description-level scalar value: text, boolean or null. It
// decodes YAML scalars into the codec's tagged variant, so `default: true`
// is boolean true while `default: "true"` is text. A zero Scalar is unset;
// an explicit `null` in the document is the absence scalar, which is set.
type Scalar struct {
	set bool
	escape.Value
}

// Text returns a text scalar.
func Text(v string) Scalar {
	return Scalar{set: true, Value: escape.Str(v)}
}

// Flag returns a boolean scalar.
func Flag(v bool) Scalar {
	return Scalar{set: true, Value: escape.Bool(v)}
}

// None returns the absent scalar.
func None() Scalar {
	return Scalar{set: true, Value: escape.Absent()}
}

// IsSet reports whether the scalar was present in the document.
func (s Scalar) IsSet() bool {
	return s.set
}

func (s *Scalar) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}
	s.set = true
	switch x := v.(type) {
	case nil:
		s.Value = escape.Absent()
	case bool:
		s.Value = escape.Bool(x)
	case string:
		s.Value = escape.Str(x)
	case int:
		s.Value = escape.Str(strconv.Itoa(x))
	case int64:
		s.Value = escape.Str(strconv.FormatInt(x, 10))
	case uint64:
		s.Value = escape.Str(strconv.FormatUint(x, 10))
	case float64:
		s.Value = escape.Str(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("%w: scalar of type %T", ErrBadDescription, v)
	}
	return nil
}

func (s Scalar) MarshalYAML() ([]byte, error) {
	switch s.Kind {
	case escape.AbsentKind:
		return []byte("null"), nil
	case escape.TrueKind:
		return []byte("true"), nil
	case escape.FalseKind:
		return []byte("false"), nil
	default:
		return yaml.Marshal(s.Text)
	}
}
