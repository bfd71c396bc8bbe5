package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takoeight0821/fredlang/internal/value"
)

func TestRender(t *testing.T) {
	testcases := []struct {
		value    value.Value
		kind     value.Kind
		expected string
	}{
		{value.Number(14), value.NumberKind, "14"},
		{value.Number(-0.5), value.NumberKind, "-0.5"},
		{value.Number(1e21), value.NumberKind, "1000000000000000000000"},
		{value.String("verbatim \"text\""), value.StringKind, "verbatim \"text\""},
		{value.Boolean(true), value.BooleanKind, "true"},
		{value.Boolean(false), value.BooleanKind, "false"},
		{value.Null{}, value.NullKind, "null"},
	}

	for _, testcase := range testcases {
		out := value.Wrap(testcase.value)
		assert.Equal(t, testcase.kind, out.Kind)

		s, err := out.Render()
		require.NoError(t, err)
		assert.Equal(t, testcase.expected, s)
	}
}

func TestUnprintable(t *testing.T) {
	_, err := value.Wrap(nil).Render()
	assert.ErrorIs(t, err, value.ErrUnprintableValue)

	// the tag must agree with the value
	_, err = value.Output{Kind: value.StringKind, Value: value.Number(1)}.Render()
	assert.ErrorIs(t, err, value.ErrUnprintableValue)

	_, err = value.Output{}.Render()
	assert.ErrorIs(t, err, value.ErrUnprintableValue)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number", value.NumberKind.String())
	assert.Equal(t, "invalid", value.InvalidKind.String())
	assert.Equal(t, "null", value.Null{}.Kind().String())
}
