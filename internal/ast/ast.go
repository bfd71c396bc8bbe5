package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/fredlang/internal/token"
)

// Expr is a node of the expression tree.
// The set of implementations is closed; every node owns its children and
// trees are never modified after the parser returns them.
type Expr interface {
	fmt.Stringer
	expr()
}

type Number struct {
	Value float64
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (*Number) expr() {}

var _ Expr = &Number{}

type String struct {
	Value string
}

func (s String) String() string {
	return strconv.Quote(s.Value)
}

func (*String) expr() {}

var _ Expr = &String{}

type Boolean struct {
	Value bool
}

func (b Boolean) String() string {
	return strconv.FormatBool(b.Value)
}

func (*Boolean) expr() {}

var _ Expr = &Boolean{}

type Null struct{}

func (Null) String() string {
	return "null"
}

func (*Null) expr() {}

var _ Expr = &Null{}

type Group struct {
	Expr Expr
}

func (g Group) String() string {
	return parenthesize("group", g.Expr).String()
}

func (*Group) expr() {}

var _ Expr = &Group{}

type Unary struct {
	Op      token.Token
	Operand Expr
}

func (u Unary) String() string {
	return parenthesize(u.Op.Lexeme, u.Operand).String()
}

func (*Unary) expr() {}

var _ Expr = &Unary{}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b Binary) String() string {
	return parenthesize(b.Op.Lexeme, b.Left, b.Right).String()
}

func (*Binary) expr() {}

var _ Expr = &Binary{}

func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, elem := range elems {
		b.WriteString(" ")
		b.WriteString(elem.String())
	}
	b.WriteString(")")
	return &b
}

// Children returns the direct subexpressions of e, left to right.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case *Group:
		return []Expr{e.Expr}
	case *Unary:
		return []Expr{e.Operand}
	case *Binary:
		return []Expr{e.Left, e.Right}
	default:
		return nil
	}
}

// Universe returns every node of the tree rooted at e in post-order,
// children before their parent.
func Universe(e Expr) []Expr {
	var nodes []Expr
	for _, child := range Children(e) {
		nodes = append(nodes, Universe(child)...)
	}
	return append(nodes, e)
}
