package token

import "fmt"

type Kind int

const (
	// Single-character tokens.
	LEFTPAREN Kind = iota
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANGEQUAL
	EQUAL
	EQUALEQUAL
	GREATER
	GREATEREQUAL
	LESS
	LESSEQUAL

	// Literals and identifiers.
	IDENT
	STRING
	NUMBER

	// Keywords.
	AND
	OR
	IF
	ELSE
	FOR
	WHILE
	TRUE
	FALSE
	FUNCTION
	RETURN
	NULL
	PRINT
	VAR
)

var kindNames = [...]string{
	LEFTPAREN:    "LEFTPAREN",
	RIGHTPAREN:   "RIGHTPAREN",
	LEFTBRACE:    "LEFTBRACE",
	RIGHTBRACE:   "RIGHTBRACE",
	COMMA:        "COMMA",
	DOT:          "DOT",
	MINUS:        "MINUS",
	PLUS:         "PLUS",
	SEMICOLON:    "SEMICOLON",
	SLASH:        "SLASH",
	STAR:         "STAR",
	BANG:         "BANG",
	BANGEQUAL:    "BANGEQUAL",
	EQUAL:        "EQUAL",
	EQUALEQUAL:   "EQUALEQUAL",
	GREATER:      "GREATER",
	GREATEREQUAL: "GREATEREQUAL",
	LESS:         "LESS",
	LESSEQUAL:    "LESSEQUAL",
	IDENT:        "IDENT",
	STRING:       "STRING",
	NUMBER:       "NUMBER",
	AND:          "AND",
	OR:           "OR",
	IF:           "IF",
	ELSE:         "ELSE",
	FOR:          "FOR",
	WHILE:        "WHILE",
	TRUE:         "TRUE",
	FALSE:        "FALSE",
	FUNCTION:     "FUNCTION",
	RETURN:       "RETURN",
	NULL:         "NULL",
	PRINT:        "PRINT",
	VAR:          "VAR",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Keywords maps every reserved word to its kind.
// `function` and `func` are spellings of the same keyword.
var Keywords = map[string]Kind{
	"and":      AND,
	"or":       OR,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"true":     TRUE,
	"false":    FALSE,
	"function": FUNCTION,
	"func":     FUNCTION,
	"return":   RETURN,
	"null":     NULL,
	"print":    PRINT,
	"var":      VAR,
}

// LookupIdent returns the keyword kind for ident, or IDENT.
func LookupIdent(ident string) Kind {
	if k, ok := Keywords[ident]; ok {
		return k
	}
	return IDENT
}

type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d}", t.Kind, t.Lexeme, t.Line)
}
