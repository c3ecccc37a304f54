// interpreter.go: tree-walking evaluator
//
// The interpreter owns one Env for its whole lifetime and executes programs
// against it in order. Expression evaluation is strictly recursive and
// post-order: children first, then the parent operator. Identifier literals
// resolve against the environment at the moment they are evaluated, so a
// reassignment between two uses of a name is visible.
//
// Every failure is a *RuntimeError returned as an ordinary Go error. An
// error aborts the current Run but leaves the interpreter and its
// environment intact, which is what lets a REPL carry on after a bad line.
package interpreter

import (
	"fmt"
	"io"
	"os"
)

// RuntimeError represents an execution-time failure.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

// Interpreter executes programs against a persistent environment.
type Interpreter struct {
	env *Env
	out io.Writer
}

// NewInterpreter creates an interpreter writing to stdout.
func NewInterpreter() *Interpreter {
	return NewInterpreterWithOutput(os.Stdout)
}

// NewInterpreterWithOutput creates an interpreter writing program output to
// w. Used by tests and embedders that capture output.
func NewInterpreterWithOutput(w io.Writer) *Interpreter {
	return &Interpreter{env: NewEnv(), out: w}
}

// Environment exposes the variable store so hosts can seed bindings before
// the first run or inspect state afterwards.
func (ip *Interpreter) Environment() *Env { return ip.env }

// Run executes all declarations in order. The first error aborts the run;
// output produced before the error has already been written.
func (ip *Interpreter) Run(prog Program) error {
	for _, d := range prog {
		if err := ip.execDecl(d); err != nil {
			return err
		}
	}
	return nil
}

// RunSource lexes, parses and runs one unit of input (a REPL line or a
// whole script) against the persistent environment.
func (ip *Interpreter) RunSource(src string) error {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return err
	}
	prog, err := Parse(toks)
	if err != nil {
		return err
	}
	return ip.Run(prog)
}

/* ---------- declarations & statements ---------- */

func (ip *Interpreter) execDecl(d Decl) error {
	switch d := d.(type) {
	case *AssignDecl:
		v, err := ip.evalExpr(d.Value)
		if err != nil {
			return err
		}
		ip.env.Assign(d.Name, v)
		return nil
	case *BlockDecl:
		// no child scope: block bodies run against the same flat env
		for _, inner := range d.Decls {
			if err := ip.execDecl(inner); err != nil {
				return err
			}
		}
		return nil
	case *StmtDecl:
		return ip.execStmt(d.Stmt)
	}
	return &RuntimeError{Msg: fmt.Sprintf("Internal error: unknown declaration %T", d)}
}

func (ip *Interpreter) execStmt(s Stmt) error {
	switch s := s.(type) {
	case *PrintStmt:
		v, err := ip.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ip.out, v.String())
		return nil
	case *IfStmt:
		cond, err := ip.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		truthy, err := cond.Truthy()
		if err != nil {
			return err
		}
		if truthy {
			return ip.execDecl(s.Body)
		}
		return nil
	case *ExprStmt:
		v, err := ip.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ip.out, v.Repr())
		return nil
	}
	return &RuntimeError{Msg: fmt.Sprintf("Internal error: unknown statement %T", s)}
}

/* ---------- expressions ---------- */

func (ip *Interpreter) evalExpr(e Expr) (Value, error) {
	switch e := e.(type) {
	case *LiteralExpr:
		if e.Value.Tag == VTIdent {
			return ip.env.Resolve(e.Value.Data.(string)), nil
		}
		return e.Value, nil
	case *GroupingExpr:
		return ip.evalExpr(e.Inner)
	case *UnaryExpr:
		right, err := ip.evalExpr(e.Right)
		if err != nil {
			return Nil, err
		}
		return applyUnary(e.Op, right)
	case *BinaryExpr:
		left, err := ip.evalExpr(e.Left)
		if err != nil {
			return Nil, err
		}
		right, err := ip.evalExpr(e.Right)
		if err != nil {
			return Nil, err
		}
		return applyBinary(e.Op, left, right)
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Internal error: unknown expression %T", e)}
}

func applyBinary(op Operator, lhs, rhs Value) (Value, error) {
	switch op {
	case OpBangEqual:
		eq, err := equalValues(lhs, rhs)
		if err != nil {
			return Nil, err
		}
		return Bool(!eq), nil
	case OpEqualEqual:
		eq, err := equalValues(lhs, rhs)
		if err != nil {
			return Nil, err
		}
		return Bool(eq), nil
	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		b, err := compareValues(op, lhs, rhs)
		if err != nil {
			return Nil, err
		}
		return Bool(b), nil
	case OpMinus:
		return subValues(lhs, rhs)
	case OpPlus:
		return addValues(lhs, rhs)
	case OpSlash:
		return divValues(lhs, rhs)
	case OpStar:
		return mulValues(lhs, rhs)
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Invalid binary operator (%s)", op)}
}

func applyUnary(op Operator, right Value) (Value, error) {
	switch op {
	case OpMinus:
		switch right.Tag {
		case VTNum:
			return Num(-right.num()), nil
		case VTIdent:
			return Nil, unresolvedIdent(right)
		default:
			return Nil, &RuntimeError{Msg: fmt.Sprintf("Cannot negate %s values", right.Tag)}
		}
	case OpPlus:
		// no-op unary: passes any value through unchanged
		if right.Tag == VTIdent {
			return Nil, unresolvedIdent(right)
		}
		return right, nil
	case OpBang:
		truthy, err := right.Truthy()
		if err != nil {
			return Nil, err
		}
		return Bool(!truthy), nil
	}
	return Nil, &RuntimeError{Msg: fmt.Sprintf("Invalid unary operator (%s)", op)}
}
