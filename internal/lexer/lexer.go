package lexer

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/takoeight0821/fredlang/internal/token"
)

// Lex scans the whole source and returns the tokens it recognized.
// Lexical errors do not stop the scan: the rest of the offending line is
// skipped and scanning resumes on the next line. All errors are joined in
// source order.
func Lex(source string) ([]token.Token, error) {
	l := lexer{
		source:  source,
		tokens:  []token.Token{},
		start:   0,
		current: 0,
		line:    1,
	}

	var errs []error

	for !l.isAtEnd() {
		if err := l.scanToken(); err != nil {
			errs = append(errs, err)
		}
	}

	return l.tokens, errors.Join(errs...)
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
	line    int // current line number
}

// Error reports a character sequence that does not start any token.
// Fragment is the part of the line that was skipped.
type Error struct {
	Fragment string
	Line     int
}

func (e *Error) Error() string {
	return fmt.Sprintf("at %d: unexpected character sequence %q", e.Line, e.Fragment)
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return r
}

func (l lexer) peekNext() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	_, width := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+width >= len(l.source) {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current+width:])

	return r
}

func (l *lexer) advance() rune {
	r, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return r
}

func (l *lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()

	return true
}

func (l *lexer) addToken(kind token.Kind) {
	l.addTokenAt(kind, l.source[l.start:l.current], l.line)
}

func (l *lexer) addTokenAt(kind token.Kind, lexeme string, line int) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: lexeme, Line: line})
}

func (l *lexer) scanToken() error {
	l.start = l.current
	c := l.advance()

	switch {
	case c == '\n':
		l.line++
	case unicode.IsSpace(c):
		// ignore whitespace
	case c == '#':
		l.skipLine()
	case c == '=':
		l.addToken(l.either('=', token.EQUALEQUAL, token.EQUAL))
	case c == '!':
		l.addToken(l.either('=', token.BANGEQUAL, token.BANG))
	case c == '>':
		l.addToken(l.either('=', token.GREATEREQUAL, token.GREATER))
	case c == '<':
		l.addToken(l.either('=', token.LESSEQUAL, token.LESS))
	default:
		if k, ok := punctuation[c]; ok {
			l.addToken(k)
			return nil
		}
		if c == '"' {
			l.string()
			return nil
		}
		if isDigit(c) {
			l.number()
			return nil
		}
		if unicode.IsLetter(c) {
			l.identifier()
			return nil
		}

		l.skipLine()
		return &Error{Fragment: l.source[l.start:l.current], Line: l.line}
	}

	return nil
}

// either consumes next and returns matched if the upcoming rune is next.
func (l *lexer) either(next rune, matched, otherwise token.Kind) token.Kind {
	if l.match(next) {
		return matched
	}
	return otherwise
}

// skipLine advances to the next newline, leaving it for scanToken so that
// the line counter stays correct.
func (l *lexer) skipLine() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
}

var punctuation = map[rune]token.Kind{
	'(': token.LEFTPAREN,
	')': token.RIGHTPAREN,
	'{': token.LEFTBRACE,
	'}': token.RIGHTBRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'/': token.SLASH,
	'*': token.STAR,
}

// string scans a string literal. There are no escape sequences.
// An unterminated string runs to the end of the input.
func (l *lexer) string() {
	line := l.line
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	end := l.current
	if !l.isAtEnd() {
		l.advance() // closing quote
	}

	l.addTokenAt(token.STRING, l.source[l.start+1:end], line)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A dot is part of the number only when a digit follows it.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	l.addToken(token.NUMBER)
}

func isAlphaNumeric(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	l.addToken(token.LookupIdent(l.source[l.start:l.current]))
}
