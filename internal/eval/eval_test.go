package eval_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takoeight0821/fredlang/internal/ast"
	"github.com/takoeight0821/fredlang/internal/eval"
	"github.com/takoeight0821/fredlang/internal/lexer"
	"github.com/takoeight0821/fredlang/internal/parser"
	"github.com/takoeight0821/fredlang/internal/token"
	"github.com/takoeight0821/fredlang/internal/utils"
	"github.com/takoeight0821/fredlang/internal/value"
)

func completeEval(t *testing.T, input string) (value.Value, error) {
	t.Helper()
	tokens, err := lexer.Lex(input)
	require.NoError(t, err, input)
	expr, err := parser.Parse(tokens)
	require.NoError(t, err, input)

	return eval.Eval(expr)
}

func TestEval(t *testing.T) {
	testcases := []struct {
		input    string
		expected value.Value
	}{
		{"2 + 3 * 4", value.Number(14)},
		{"(2 + 3) * 4", value.Number(20)},
		{"10 - 2 - 3", value.Number(5)},
		{"7 / 2", value.Number(3.5)},
		{"-(1 + 2)", value.Number(-3)},
		{"!false", value.Boolean(true)},
		{"!!false", value.Boolean(false)},
		{"3 > 2", value.Boolean(true)},
		{"3 >= 3", value.Boolean(true)},
		{"3 < 2", value.Boolean(false)},
		{"2 <= 1", value.Boolean(false)},
		{"1 + 1 == 2", value.Boolean(true)},
		{"1 != 1", value.Boolean(false)},
		{"\"text\"", value.String("text")},
		{"null", value.Null{}},
		{"((true))", value.Boolean(true)},
	}

	for _, testcase := range testcases {
		v, err := completeEval(t, testcase.input)
		require.NoError(t, err, testcase.input)
		assert.Equal(t, testcase.expected, v, testcase.input)
	}
}

func TestEvalErrors(t *testing.T) {
	testcases := []struct {
		input    string
		expected error
		message  string
	}{
		{"10 / 0", eval.ErrCannotDivideByZero, "at 1: `/`, cannot divide by zero"},
		{"1 / (2 - 2)", eval.ErrCannotDivideByZero, "at 1: `/`, cannot divide by zero"},
		{"-true", eval.ErrCannotEvaluateAsNumber, "at 1: `-`, cannot evaluate expression as number"},
		{"!1", eval.ErrCannotEvaluateAsBoolean, "at 1: `!`, cannot evaluate expression as boolean"},
		{"!null", eval.ErrCannotEvaluateAsBoolean, "at 1: `!`, cannot evaluate expression as boolean"},
		{"1 + \"a\"", eval.ErrCannotEvaluateAsNumber, "at 1: `+`, cannot evaluate expression as number"},
		{"\"a\" * 2", eval.ErrCannotEvaluateAsNumber, "at 1: `*`, cannot evaluate expression as number"},
		{"true < false", eval.ErrCannotEvaluateAsNumber, "at 1: `<`, cannot evaluate expression as number"},
		{"\"a\" == \"a\"", eval.ErrCannotEvaluateAsNumber, "at 1: `==`, cannot evaluate expression as number"},
		{"null != 1", eval.ErrCannotEvaluateAsNumber, "at 1: `!=`, cannot evaluate expression as number"},
		// the left operand fails first
		{"1 / 0 + -true", eval.ErrCannotDivideByZero, "at 1: `/`, cannot divide by zero"},
		{"1\n+\n(2 == true)", eval.ErrCannotEvaluateAsNumber, "at 3: `==`, cannot evaluate expression as number"},
	}

	for _, testcase := range testcases {
		v, err := completeEval(t, testcase.input)
		assert.Nil(t, v, testcase.input)
		require.ErrorIs(t, err, testcase.expected, testcase.input)
		assert.Equal(t, testcase.message, err.Error())
	}
}

func TestInvalidOperators(t *testing.T) {
	one := &ast.Number{Value: 1}
	comma := token.Token{Kind: token.COMMA, Lexeme: ",", Line: 2}

	_, err := eval.Eval(&ast.Unary{Op: comma, Operand: one})
	assert.ErrorIs(t, err, eval.ErrInvalidUnaryOperation)

	_, err = eval.Eval(&ast.Binary{Left: one, Op: comma, Right: one})
	assert.ErrorIs(t, err, eval.ErrInvalidBinaryOperation)

	var posErr utils.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, comma, posErr.Where)

	_, err = eval.Eval(nil)
	assert.Error(t, err)
}

func TestNumberRoundTrip(t *testing.T) {
	for _, lexeme := range []string{"0", "1", "42", "1000000", "3.75"} {
		v, err := completeEval(t, lexeme)
		require.NoError(t, err)
		assert.Equal(t, lexeme, v.String())
	}
}

func TestOutOfRangeLiteral(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)

	v, err := completeEval(t, huge)
	require.NoError(t, err)
	assert.Equal(t, value.Number(math.Inf(1)), v)

	v, err = completeEval(t, "-"+huge+" < 0")
	require.NoError(t, err)
	assert.Equal(t, value.Boolean(true), v)
}
