// ast.go: the syntax tree produced by the parser
//
// Nodes form a plain ownership tree: every child is held exclusively by its
// parent and nothing is shared, so the interpreter can walk it without
// bookkeeping. A Program is the ordered top-level declaration list; order is
// execution order.
package interpreter

import "fmt"

// Operator is the operator of a unary or binary expression. Not every
// operator is valid in both positions; the interpreter rejects invalid
// pairings at evaluation time.
type Operator int

const (
	OpBangEqual Operator = iota
	OpEqualEqual
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpMinus
	OpPlus
	OpSlash
	OpStar
	OpBang
)

func (op Operator) String() string {
	switch op {
	case OpBangEqual:
		return "!="
	case OpEqualEqual:
		return "=="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpMinus:
		return "-"
	case OpPlus:
		return "+"
	case OpSlash:
		return "/"
	case OpStar:
		return "*"
	case OpBang:
		return "!"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// operatorForToken maps an operator token to its Operator. The parser only
// calls it for tokens it already matched as operators.
func operatorForToken(tt TokenType) Operator {
	switch tt {
	case BANG_EQ:
		return OpBangEqual
	case EQ:
		return OpEqualEqual
	case GREATER:
		return OpGreater
	case GREATER_EQ:
		return OpGreaterEqual
	case LESS:
		return OpLess
	case LESS_EQ:
		return OpLessEqual
	case MINUS:
		return OpMinus
	case PLUS:
		return OpPlus
	case SLASH:
		return OpSlash
	case STAR:
		return OpStar
	case BANG:
		return OpBang
	}
	panic(fmt.Sprintf("not an operator token: %d", tt))
}

// Expr is an expression node.
type Expr interface{ exprNode() }

// BinaryExpr applies Op to the values of Left and Right.
type BinaryExpr struct {
	Left  Expr
	Right Expr
	Op    Operator
}

// GroupingExpr is a parenthesized sub-expression, kept in the tree to
// document explicit precedence.
type GroupingExpr struct {
	Inner Expr
}

// LiteralExpr wraps a runtime value (or a not-yet-resolved identifier).
type LiteralExpr struct {
	Value Value
}

// UnaryExpr applies Op to the value of Right.
type UnaryExpr struct {
	Right Expr
	Op    Operator
}

func (*BinaryExpr) exprNode()   {}
func (*GroupingExpr) exprNode() {}
func (*LiteralExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}

// Stmt is a statement node.
type Stmt interface{ stmtNode() }

// PrintStmt writes the human-readable form of its expression's value.
type PrintStmt struct {
	Expr Expr
}

// IfStmt executes Body once when Cond is truthy. There is no else branch.
type IfStmt struct {
	Cond Expr
	Body Decl
}

// ExprStmt evaluates its expression and surfaces the diagnostic form
// (REPL-style feedback).
type ExprStmt struct {
	Expr Expr
}

func (*PrintStmt) stmtNode() {}
func (*IfStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()  {}

// Decl is a top-level executable unit.
type Decl interface{ declNode() }

// AssignDecl stores the value of its expression under Name.
type AssignDecl struct {
	Name  string
	Value Expr
}

// StmtDecl wraps a statement.
type StmtDecl struct {
	Stmt Stmt
}

// BlockDecl is an ordered declaration sequence. Blocks do not open a child
// scope: their declarations run against the same flat environment as the
// enclosing code.
type BlockDecl struct {
	Decls []Decl
}

func (*AssignDecl) declNode() {}
func (*StmtDecl) declNode()   {}
func (*BlockDecl) declNode()  {}

// Program is an ordered sequence of declarations.
type Program []Decl
