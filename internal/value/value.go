package value

import (
	"errors"
	"fmt"
	"strconv"
)

type Kind int

const (
	InvalidKind Kind = iota
	NumberKind
	StringKind
	BooleanKind
	NullKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case BooleanKind:
		return "boolean"
	case NullKind:
		return "null"
	default:
		return "invalid"
	}
}

// Value is a runtime value. The set of implementations is closed.
type Value interface {
	fmt.Stringer
	Kind() Kind
}

type Number float64

func (n Number) Kind() Kind {
	return NumberKind
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

var _ Value = Number(0)

type String string

func (s String) Kind() Kind {
	return StringKind
}

func (s String) String() string {
	return string(s)
}

var _ Value = String("")

type Boolean bool

func (b Boolean) Kind() Kind {
	return BooleanKind
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

var _ Value = Boolean(false)

type Null struct{}

func (Null) Kind() Kind {
	return NullKind
}

func (Null) String() string {
	return "null"
}

var _ Value = Null{}

var ErrUnprintableValue = errors.New("value cannot be printed")

// Output tags a value with its kind for display.
type Output struct {
	Kind  Kind
	Value Value
}

// Wrap tags v. A nil v yields an Output of InvalidKind.
func Wrap(v Value) Output {
	if v == nil {
		return Output{Kind: InvalidKind}
	}
	return Output{Kind: v.Kind(), Value: v}
}

// Render returns the textual form of the wrapped value.
func (o Output) Render() (string, error) {
	switch v := o.Value.(type) {
	case Number:
		if o.Kind == NumberKind {
			return v.String(), nil
		}
	case String:
		if o.Kind == StringKind {
			return v.String(), nil
		}
	case Boolean:
		if o.Kind == BooleanKind {
			return v.String(), nil
		}
	case Null:
		if o.Kind == NullKind {
			return v.String(), nil
		}
	}

	return "", fmt.Errorf("%w: %v", ErrUnprintableValue, o.Kind)
}
