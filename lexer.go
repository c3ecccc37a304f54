// lexer.go: single-pass scanner for the scripting language
//
// The lexer walks the source byte-by-byte, left to right, and emits a flat
// token slice. Tokens themselves carry no positions; the lexer tracks the
// current line (and column, for caret snippets in errors.go) purely for
// error reporting. The first lexical error aborts the whole scan: callers
// never see a partial token slice.
package interpreter

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Punctuation
	LPAREN TokenType = iota // "("
	RPAREN                  // ")"
	LBRACE                  // "{"
	RBRACE                  // "}"
	COMMA                   // ","
	DOT                     // "."
	SEMICOLON               // ";"

	// Operators
	MINUS
	PLUS
	SLASH
	STAR
	BANG
	BANG_EQ
	ASSIGN // "="
	EQ     // "=="
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ

	// Literals & identifiers
	IDENT
	STRING
	NUMBER

	// Keywords
	KW_AND
	KW_CLASS
	KW_ELSE
	KW_FALSE
	KW_FOR
	KW_FUN
	KW_IF
	KW_NIL
	KW_OR
	KW_PRINT
	KW_RETURN
	KW_SUPER
	KW_THIS
	KW_TRUE
	KW_VAR
	KW_WHILE
)

// Token is a lexical unit. Literal holds the parsed payload for NUMBER
// tokens (float32). STRING tokens keep the raw source slice, quotes
// included, in Lexeme; unquoting happens at literal construction in the
// parser.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
}

// keywords map; matched case-sensitively against scanned identifiers.
var keywords = map[string]TokenType{
	"and":    KW_AND,
	"class":  KW_CLASS,
	"else":   KW_ELSE,
	"false":  KW_FALSE,
	"for":    KW_FOR,
	"fun":    KW_FUN,
	"if":     KW_IF,
	"nil":    KW_NIL,
	"or":     KW_OR,
	"print":  KW_PRINT,
	"return": KW_RETURN,
	"super":  KW_SUPER,
	"this":   KW_THIS,
	"true":   KW_TRUE,
	"var":    KW_VAR,
	"while":  KW_WHILE,
}

// LexError reports the first lexical failure. Line and Col are 1-based and
// 0-based respectively, matching what the caret renderer in errors.go
// expects.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string { return e.Msg }

// Lexer scans one source string into tokens.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int // 1-based
	col   int // 0-based column within line

	tokens []Token

	// position where the current token began, for errors
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

// matchNext consumes the next byte iff it equals want.
func (l *Lexer) matchNext(want byte) bool {
	if b, ok := l.peek(); ok && b == want {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
	})
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// scanString consumes until the closing quote. Newlines inside the literal
// are legal and bump the line counter via advance. The token keeps the
// delimiters.
func (l *Lexer) scanString() error {
	for {
		ch, ok := l.advance()
		if !ok {
			return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: "Unterminated string"}
		}
		if ch == '"' {
			l.addToken(STRING, nil)
			return nil
		}
	}
}

// scanNumber consumes a maximal digit run with at most one embedded '.'.
// A trailing '.' not followed by a digit is left unconsumed (one byte of
// lookahead decides the boundary).
func (l *Lexer) scanNumber() error {
	sawDot := false
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		if isDigit(b) {
			l.advance()
			continue
		}
		if b == '.' && !sawDot {
			// only part of the number when followed by a digit
			if l.cur+1 < len(l.src) && isDigit(l.src[l.cur+1]) {
				sawDot = true
				l.advance()
				continue
			}
		}
		break
	}
	lex := l.src[l.start:l.cur]
	// numbers are 32-bit floats; parsing rounds to the nearest float32
	v, err := strconv.ParseFloat(lex, 32)
	if err != nil {
		return l.err(fmt.Sprintf("Invalid number literal (%s)", lex))
	}
	l.addToken(NUMBER, float32(v))
	return nil
}

func (l *Lexer) scanIdentifier() {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	if tt, ok := keywords[lex]; ok {
		l.addToken(tt, nil)
		return
	}
	l.addToken(IDENT, nil)
}

func (l *Lexer) scanToken() error {
	l.start = l.cur
	l.tokStartLine = l.line
	l.tokStartCol = l.col

	ch, _ := l.advance()
	switch ch {
	case ' ', '\r', '\t', '\n':
		// advance already tracked the line counter
		return nil
	case '(':
		l.addToken(LPAREN, nil)
	case ')':
		l.addToken(RPAREN, nil)
	case '{':
		l.addToken(LBRACE, nil)
	case '}':
		l.addToken(RBRACE, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(DOT, nil)
	case '-':
		l.addToken(MINUS, nil)
	case '+':
		l.addToken(PLUS, nil)
	case '*':
		l.addToken(STAR, nil)
	case ';':
		l.addToken(SEMICOLON, nil)
	case '!':
		if l.matchNext('=') {
			l.addToken(BANG_EQ, nil)
		} else {
			l.addToken(BANG, nil)
		}
	case '=':
		if l.matchNext('=') {
			l.addToken(EQ, nil)
		} else {
			l.addToken(ASSIGN, nil)
		}
	case '<':
		if l.matchNext('=') {
			l.addToken(LESS_EQ, nil)
		} else {
			l.addToken(LESS, nil)
		}
	case '>':
		if l.matchNext('=') {
			l.addToken(GREATER_EQ, nil)
		} else {
			l.addToken(GREATER, nil)
		}
	case '/':
		if l.matchNext('/') {
			// line comment; runs to newline or end of input
			for {
				b, ok := l.peek()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
		} else {
			l.addToken(SLASH, nil)
		}
	case '"':
		return l.scanString()
	default:
		if isDigit(ch) {
			return l.scanNumber()
		}
		if isAlpha(ch) {
			l.scanIdentifier()
			return nil
		}
		// decode the whole rune so multi-byte characters report intact
		r, _ := utf8.DecodeRuneInString(l.src[l.start:])
		return &LexError{
			Line: l.tokStartLine,
			Col:  l.tokStartCol,
			Msg:  fmt.Sprintf("Unexpected character (%c) on line %d", r, l.tokStartLine),
		}
	}
	return nil
}

// Scan tokenizes the entire source. The returned slice is complete or nil:
// the first error aborts the scan.
func (l *Lexer) Scan() ([]Token, error) {
	for !l.isAtEnd() {
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}
