// Package eval evaluates expression trees.
package eval

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/fredlang/internal/ast"
	"github.com/takoeight0821/fredlang/internal/token"
	"github.com/takoeight0821/fredlang/internal/utils"
	"github.com/takoeight0821/fredlang/internal/value"
)

var (
	ErrCannotEvaluateAsNumber     = errors.New("cannot evaluate expression as number")
	ErrCannotEvaluateAsBoolean    = errors.New("cannot evaluate expression as boolean")
	ErrCannotDivideByZero         = errors.New("cannot divide by zero")
	ErrInvalidArithmeticOperation = errors.New("invalid arithmetic operation")
	ErrInvalidComparisonOperation = errors.New("invalid comparison operation")
	ErrInvalidEqualityOperation   = errors.New("invalid equality operation")
	ErrInvalidUnaryOperation      = errors.New("invalid unary operation")
	ErrInvalidBinaryOperation     = errors.New("invalid binary operation")
)

// Eval computes the value of expr. Children are evaluated before their
// parent and the left operand before the right one. The first error stops
// the evaluation.
func Eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return value.Number(e.Value), nil
	case *ast.String:
		return value.String(e.Value), nil
	case *ast.Boolean:
		return value.Boolean(e.Value), nil
	case *ast.Null:
		return value.Null{}, nil
	case *ast.Group:
		return Eval(e.Expr)
	case *ast.Unary:
		operand, err := Eval(e.Operand)
		if err != nil {
			return nil, err
		}
		return evalUnary(e.Op, operand)
	case *ast.Binary:
		left, err := Eval(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := Eval(e.Right)
		if err != nil {
			return nil, err
		}
		return evalBinary(left, e.Op, right)
	default:
		return nil, fmt.Errorf("unexpected node: %v", expr)
	}
}

func evalUnary(op token.Token, operand value.Value) (value.Value, error) {
	//exhaustive:ignore
	switch op.Kind {
	case token.MINUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, utils.ErrorAt(op, ErrCannotEvaluateAsNumber)
		}
		return -n, nil
	case token.BANG:
		b, ok := operand.(value.Boolean)
		if !ok {
			return nil, utils.ErrorAt(op, ErrCannotEvaluateAsBoolean)
		}
		return !b, nil
	default:
		return nil, utils.ErrorAt(op, ErrInvalidUnaryOperation)
	}
}

func evalBinary(left value.Value, op token.Token, right value.Value) (value.Value, error) {
	//exhaustive:ignore
	switch op.Kind {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH:
		return arithmetic(left, op, right)
	case token.GREATER, token.GREATEREQUAL, token.LESS, token.LESSEQUAL:
		return comparison(left, op, right)
	case token.EQUALEQUAL, token.BANGEQUAL:
		return equality(left, op, right)
	default:
		return nil, utils.ErrorAt(op, ErrInvalidBinaryOperation)
	}
}

func numbers(left value.Value, op token.Token, right value.Value) (value.Number, value.Number, error) {
	l, ok := left.(value.Number)
	if !ok {
		return 0, 0, utils.ErrorAt(op, ErrCannotEvaluateAsNumber)
	}
	r, ok := right.(value.Number)
	if !ok {
		return 0, 0, utils.ErrorAt(op, ErrCannotEvaluateAsNumber)
	}

	return l, r, nil
}

func arithmetic(left value.Value, op token.Token, right value.Value) (value.Value, error) {
	l, r, err := numbers(left, op, right)
	if err != nil {
		return nil, err
	}

	//exhaustive:ignore
	switch op.Kind {
	case token.PLUS:
		return l + r, nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, utils.ErrorAt(op, ErrCannotDivideByZero)
		}
		return l / r, nil
	default:
		return nil, utils.ErrorAt(op, ErrInvalidArithmeticOperation)
	}
}

func comparison(left value.Value, op token.Token, right value.Value) (value.Value, error) {
	l, r, err := numbers(left, op, right)
	if err != nil {
		return nil, err
	}

	//exhaustive:ignore
	switch op.Kind {
	case token.GREATER:
		return value.Boolean(l > r), nil
	case token.GREATEREQUAL:
		return value.Boolean(l >= r), nil
	case token.LESS:
		return value.Boolean(l < r), nil
	case token.LESSEQUAL:
		return value.Boolean(l <= r), nil
	default:
		return nil, utils.ErrorAt(op, ErrInvalidComparisonOperation)
	}
}

func equality(left value.Value, op token.Token, right value.Value) (value.Value, error) {
	l, r, err := numbers(left, op, right)
	if err != nil {
		return nil, err
	}

	//exhaustive:ignore
	switch op.Kind {
	case token.EQUALEQUAL:
		return value.Boolean(l == r), nil
	case token.BANGEQUAL:
		return value.Boolean(l != r), nil
	default:
		return nil, utils.ErrorAt(op, ErrInvalidEqualityOperation)
	}
}
