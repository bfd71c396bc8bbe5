package driver

import (
	"fmt"
	"io"

	"github.com/takoeight0821/fredlang/internal/ast"
)

// Dump is a pass that writes the expression tree and leaves it unchanged.
type Dump struct {
	W io.Writer
}

func (d Dump) Init(ast.Expr) error {
	return nil
}

func (d Dump) Run(expr ast.Expr) (ast.Expr, error) {
	_, err := fmt.Fprintln(d.W, expr)
	return expr, err
}

var _ Pass = Dump{}
