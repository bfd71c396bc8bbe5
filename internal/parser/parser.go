package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/takoeight0821/fredlang/internal/ast"
	"github.com/takoeight0821/fredlang/internal/lookahead"
	"github.com/takoeight0821/fredlang/internal/token"
)

type Parser struct {
	tokens *lookahead.Buffer[token.Token]
	line   int // line of the last consumed token
	errs   []error

	parsed bool
	expr   ast.Expr
	err    error
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: lookahead.New(lookahead.FromSlice(tokens)), line: 1}
}

// Parse parses a whole expression from tokens.
func Parse(tokens []token.Token) (ast.Expr, error) {
	return New(tokens).Parse()
}

// Parse returns the parsed expression together with every diagnostic found
// on the way. The expression is nil when a subtree could not be built; it
// may be non-nil while diagnostics are reported (e.g. an unclosed group).
// A Parser reads its tokens once; later calls return the first result.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.parsed {
		return p.expr, p.err
	}
	p.parsed = true

	expr := p.expression()

	if expr != nil && len(p.errs) == 0 {
		if tok, ok := p.tokens.Peek(); ok {
			p.recover(&UnexpectedTokenError{Expected: "end of input", Got: tok})
		}
		p.tokens.ResetPeek()
	}

	p.expr, p.err = expr, errors.Join(p.errs...)

	return p.expr, p.err
}

// expression = equality ;
func (p *Parser) expression() ast.Expr {
	return p.equality()
}

// equality = comparison (("==" | "!=") comparison)* ;
func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, token.EQUALEQUAL, token.BANGEQUAL)
}

// comparison = term ((">" | ">=" | "<" | "<=") term)* ;
func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, token.GREATER, token.GREATEREQUAL, token.LESS, token.LESSEQUAL)
}

// term = factor (("+" | "-") factor)* ;
func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, token.PLUS, token.MINUS)
}

// factor = unary (("*" | "/") unary)* ;
func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, token.STAR, token.SLASH)
}

// binary parses a left-associative chain of operand separated by any of ops.
func (p *Parser) binary(operand func() ast.Expr, ops ...token.Kind) ast.Expr {
	expr := operand()
	if expr == nil {
		return nil
	}

	for {
		op, ok := p.match(ops...)
		if !ok {
			return expr
		}
		right := operand()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
}

// unary = ("!" | "-") unary | primary ;
func (p *Parser) unary() ast.Expr {
	if op, ok := p.match(token.BANG, token.MINUS); ok {
		operand := p.unary()
		if operand == nil {
			return nil
		}

		return &ast.Unary{Op: op, Operand: operand}
	}

	return p.primary()
}

// primary = NUMBER | STRING | "true" | "false" | "null" | "(" expression ")" ;
func (p *Parser) primary() ast.Expr {
	tok, ok := p.advance()
	if !ok {
		p.recover(&ExpectedExpressionError{AtEnd: true})

		return nil
	}

	//exhaustive:ignore
	switch tok.Kind {
	case token.NUMBER:
		// out of range literals parse to ±Inf
		n, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic(fmt.Sprintf("lexer produced a malformed number: %v", tok))
		}

		return &ast.Number{Value: n}
	case token.STRING:
		return &ast.String{Value: tok.Lexeme}
	case token.TRUE, token.FALSE:
		b, err := strconv.ParseBool(tok.Lexeme)
		if err != nil {
			panic(fmt.Sprintf("lexer produced a malformed boolean: %v", tok))
		}

		return &ast.Boolean{Value: b}
	case token.NULL:
		return &ast.Null{}
	case token.LEFTPAREN:
		expr := p.expression()
		if expr == nil {
			return nil
		}
		p.consume(token.RIGHTPAREN)

		return &ast.Group{Expr: expr}
	default:
		p.recover(&ExpectedExpressionError{Got: tok})

		return nil
	}
}

func (p *Parser) recover(err error) {
	p.errs = append(p.errs, err)
}

func (p *Parser) advance() (token.Token, bool) {
	tok, ok := p.tokens.Next()
	if ok {
		p.line = tok.Line
	}

	return tok, ok
}

// match consumes the next token if its kind is one of kinds.
func (p *Parser) match(kinds ...token.Kind) (token.Token, bool) {
	tok, ok := p.tokens.NextIf(func(t token.Token) bool {
		for _, kind := range kinds {
			if t.Kind == kind {
				return true
			}
		}
		return false
	})
	if ok {
		p.line = tok.Line
	}

	return tok, ok
}

// consume expects the next token to be of kind. A mismatch is recorded and
// the offending token is left in the stream.
func (p *Parser) consume(kind token.Kind) {
	if _, ok := p.match(kind); ok {
		return
	}

	got, ok := p.tokens.Peek()
	p.tokens.ResetPeek()
	p.recover(&UnexpectedTokenError{Expected: lexemeOf(kind), Got: got, AtEnd: !ok, Line: p.line})
}

func lexemeOf(kind token.Kind) string {
	//exhaustive:ignore
	switch kind {
	case token.RIGHTPAREN:
		return ")"
	default:
		return kind.String()
	}
}

// UnexpectedTokenError reports a required token that was missing.
// AtEnd is set when the input ended instead; Got is then the zero Token and
// Line is the line of the last token read.
type UnexpectedTokenError struct {
	Expected string
	Got      token.Token
	AtEnd    bool
	Line     int
}

func (e *UnexpectedTokenError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("at %d: unexpected end of input, expected `%s`", e.Line, e.Expected)
	}
	return fmt.Sprintf("at %d: unexpected token `%s`, expected `%s`", e.Got.Line, e.Got.Lexeme, e.Expected)
}

// ExpectedExpressionError reports a token that cannot start an expression.
type ExpectedExpressionError struct {
	Got   token.Token
	AtEnd bool
}

func (e *ExpectedExpressionError) Error() string {
	if e.AtEnd {
		return "at end: expected expression"
	}
	return fmt.Sprintf("at %d: `%s`, expected expression", e.Got.Line, e.Got.Lexeme)
}
