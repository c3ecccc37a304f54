// parser.go: recursive-descent parser over the token slice
//
// The grammar, lowest to highest precedence:
//
//	declaration  := block | variable_assignment | statement
//	block        := '{' declaration* '}'
//	variable_assignment := IDENT '=' expression ';'
//	statement    := print | if | expression_stmt
//	print        := 'print' expression ';'
//	if           := 'if' expression declaration
//	expression_stmt := expression ';'
//	expression   := equality
//	equality     := comparison (('!=' | '==') comparison)*
//	comparison   := term (('>' | '>=' | '<' | '<=') term)*
//	term         := factor (('-' | '+') factor)*
//	factor       := unary (('/' | '*') unary)*
//	unary        := ('!' | '-' | '+') unary | primary
//	primary      := 'false' | 'true' | 'nil' | NUMBER | STRING | IDENT
//	              | '(' expression ')'
//
// One token of lookahead everywhere, plus a second token only to decide
// whether a leading identifier starts an assignment (IDENT followed by '=')
// or an ordinary expression statement. Each precedence level folds its
// operators left to right, nesting the accumulated expression as the new
// left operand, which yields left associativity.
//
// The failure model is all-or-nothing: the first structural mismatch
// returns a *ParseError and no Program.
package interpreter

import "fmt"

// ParseError reports the first structural mismatch in the token sequence.
// Tokens carry no positions, so neither does the error.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// Parse consumes the whole token slice and returns the Program, or the
// first parse error with no partial result.
func Parse(tokens []Token) (Program, error) {
	p := &parser{toks: tokens}
	var prog Program
	for !p.atEnd() {
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		prog = append(prog, d)
	}
	return prog, nil
}

type parser struct {
	toks []Token
	i    int
}

/* ---------- token basics ---------- */

func (p *parser) atEnd() bool { return p.i >= len(p.toks) }

func (p *parser) peek() (Token, bool) {
	if p.atEnd() {
		return Token{}, false
	}
	return p.toks[p.i], true
}

func (p *parser) peekAt(n int) (Token, bool) {
	if p.i+n >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.i+n], true
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) check(tt TokenType) bool {
	t, ok := p.peek()
	return ok && t.Type == tt
}

func (p *parser) match(tts ...TokenType) bool {
	t, ok := p.peek()
	if !ok {
		return false
	}
	for _, tt := range tts {
		if t.Type == tt {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(tt TokenType, msg string) (Token, error) {
	if p.match(tt) {
		return p.prev(), nil
	}
	if t, ok := p.peek(); ok {
		return Token{}, &ParseError{Msg: fmt.Sprintf("%s, found %q", msg, t.Lexeme)}
	}
	return Token{}, &ParseError{Msg: fmt.Sprintf("%s, found end of input", msg)}
}

/* ---------- declarations ---------- */

func (p *parser) declaration() (Decl, error) {
	if p.match(LBRACE) {
		return p.block()
	}
	// assignment only when the identifier is immediately followed by '=';
	// a bare identifier falls through to an expression statement
	if p.check(IDENT) {
		if next, ok := p.peekAt(1); ok && next.Type == ASSIGN {
			return p.assignment()
		}
	}
	s, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &StmtDecl{Stmt: s}, nil
}

func (p *parser) block() (Decl, error) {
	var decls []Decl
	for !p.check(RBRACE) && !p.atEnd() {
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	if _, err := p.need(RBRACE, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return &BlockDecl{Decls: decls}, nil
}

func (p *parser) assignment() (Decl, error) {
	name, err := p.need(IDENT, "Expected identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ASSIGN, "Expected '=' after identifier"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after assignment"); err != nil {
		return nil, err
	}
	return &AssignDecl{Name: name.Lexeme, Value: value}, nil
}

/* ---------- statements ---------- */

func (p *parser) statement() (Stmt, error) {
	if p.match(KW_PRINT) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(SEMICOLON, "Expected ';' after value"); err != nil {
			return nil, err
		}
		return &PrintStmt{Expr: expr}, nil
	}
	if p.match(KW_IF) {
		cond, err := p.expression()
		if err != nil {
			return nil, err
		}
		body, err := p.declaration()
		if err != nil {
			return nil, err
		}
		return &IfStmt{Cond: cond, Body: body}, nil
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

/* ---------- expressions ---------- */

func (p *parser) expression() (Expr, error) {
	return p.equality()
}

func (p *parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(BANG_EQ, EQ) {
		op := operatorForToken(p.prev().Type)
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		op := operatorForToken(p.prev().Type)
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := operatorForToken(p.prev().Type)
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(SLASH, STAR) {
		op := operatorForToken(p.prev().Type)
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Right: right, Op: op}
	}
	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	// unary '+' is accepted as a no-op so chains like !-+1 parse
	if p.match(BANG, MINUS, PLUS) {
		op := operatorForToken(p.prev().Type)
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Right: right, Op: op}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	t, ok := p.peek()
	if !ok {
		return nil, &ParseError{Msg: "Unexpected end of input"}
	}
	p.i++
	switch t.Type {
	case KW_FALSE:
		return &LiteralExpr{Value: Bool(false)}, nil
	case KW_TRUE:
		return &LiteralExpr{Value: Bool(true)}, nil
	case KW_NIL:
		return &LiteralExpr{Value: Nil}, nil
	case NUMBER:
		return &LiteralExpr{Value: Num(t.Literal.(float32))}, nil
	case STRING:
		// strip exactly one delimiter from each end
		return &LiteralExpr{Value: Str(t.Lexeme[1 : len(t.Lexeme)-1])}, nil
	case IDENT:
		return &LiteralExpr{Value: Ident(t.Lexeme)}, nil
	case LPAREN:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: expr}, nil
	}
	return nil, &ParseError{Msg: fmt.Sprintf("Unexpected token %q", t.Lexeme)}
}
