package driver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jcgregorio/logger"
	"github.com/takoeight0821/fredlang/internal/ast"
	"github.com/takoeight0821/fredlang/internal/eval"
	"github.com/takoeight0821/fredlang/internal/lexer"
	"github.com/takoeight0821/fredlang/internal/parser"
	"github.com/takoeight0821/fredlang/internal/value"
)

// Pass inspects or rewrites a parsed expression before evaluation.
type Pass interface {
	Init(ast.Expr) error
	Run(ast.Expr) (ast.Expr, error)
}

type Runner struct {
	passes    []Pass
	log       *logger.Logger
	tokenDump io.Writer
}

// NewRunner returns a Runner that logs to log. A nil log discards logs.
func NewRunner(log *logger.Logger) *Runner {
	if log == nil {
		log = NewLogger(discard{}, false)
	}
	return &Runner{log: log}
}

// NewLogger builds the logger used by the runner and the command line.
func NewLogger(w logger.SyncWriter, debug bool) *logger.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   w,
		IncludeDebug: debug,
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) {
	return len(p), nil
}

func (discard) Sync() error {
	return nil
}

// AddPass adds a pass to the end of the pass list.
func (r *Runner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// DumpTokens makes the runner write every lexed token to w.
func (r *Runner) DumpTokens(w io.Writer) {
	r.tokenDump = w
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current expression.
func (r *Runner) Run(expr ast.Expr) (ast.Expr, error) {
	for _, pass := range r.passes {
		err := pass.Init(expr)
		if err != nil {
			return expr, fmt.Errorf("init: %w", err)
		}
		expr, err = pass.Run(expr)
		if err != nil {
			return expr, fmt.Errorf("run: %w", err)
		}
	}

	return expr, nil
}

// RunSource lexes and parses the source code and executes passes in order.
// Lexical diagnostics come first, followed by the parse diagnostics of the
// tokens the lexer recovered. Passes only run on a clean parse.
func (r *Runner) RunSource(source string) (ast.Expr, error) {
	start := time.Now()
	tokens, lexErr := lexer.Lex(source)
	if lexErr != nil {
		r.log.Debugf("lex failed with %d diagnostics", len(Diagnostics(lexErr)))
	} else {
		r.log.Debugf("lexed %d tokens in %v", len(tokens), time.Since(start))
	}

	if r.tokenDump != nil {
		for _, tok := range tokens {
			fmt.Fprintln(r.tokenDump, tok)
		}
	}

	if lexErr != nil {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("lex: %w", lexErr)
		}
		_, parseErr := parser.Parse(tokens)
		errs := append(append([]error(nil), Diagnostics(lexErr)...), Diagnostics(parseErr)...)
		return nil, fmt.Errorf("lex: %w", errors.Join(errs...))
	}

	start = time.Now()
	expr, err := parser.Parse(tokens)
	if err != nil {
		r.log.Debugf("parse failed with %d diagnostics", len(Diagnostics(err)))
		return nil, fmt.Errorf("parse: %w", err)
	}
	r.log.Debugf("parsed %d nodes in %v", len(ast.Universe(expr)), time.Since(start))

	return r.Run(expr)
}

// EvaluateSource runs the source code through every stage and returns its value.
func (r *Runner) EvaluateSource(source string) (value.Value, error) {
	expr, err := r.RunSource(source)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	v, err := eval.Eval(expr)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	r.log.Debugf("evaluated to a %v in %v", v.Kind(), time.Since(start))

	return v, nil
}

// EvaluateSource evaluates source with a runner that has no passes.
func EvaluateSource(source string) (value.Value, error) {
	return NewRunner(nil).EvaluateSource(source)
}

// Diagnostics lists the individual errors joined inside err.
func Diagnostics(err error) []error {
	if err == nil {
		return nil
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
	}

	return []error{err}
}
