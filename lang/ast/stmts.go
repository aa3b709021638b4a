package ast

import (
	"fmt"

	"github.com/aspen-lang/aspen/lang/token"
)

type (
	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct {
		Expr Expr
	}

	// PrintStmt prints the value of an expression followed by a newline.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt declares a variable, optionally with an initializer.
	VarStmt struct {
		Name token.Token
		Init Expr // nil if no initializer
	}

	// BlockStmt is a sequence of statements in a fresh lexical scope.
	BlockStmt struct {
		LeftBrace token.Token
		Stmts     []Stmt
	}

	// IfStmt is a conditional with an optional else branch.
	IfStmt struct {
		Keyword token.Token
		Cond    Expr
		Then    Stmt
		Else    Stmt // nil if no else branch
	}

	// WhileStmt is a condition-tested loop. for-loops are desugared into this
	// by the parser.
	WhileStmt struct {
		Keyword token.Token
		Cond    Expr
		Body    Stmt
	}

	// FunctionStmt declares a named function (or, inside a ClassStmt, a
	// method).
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt returns from the enclosing function, optionally with a
	// value.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr // nil if no value given
	}

	// ClassStmt declares a class, its optional superclass and its methods.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr // nil if no superclass
		Methods    []*FunctionStmt
	}
)

func (*ExprStmt) stmtNode()     {}
func (*PrintStmt) stmtNode()    {}
func (*VarStmt) stmtNode()      {}
func (*BlockStmt) stmtNode()    {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
func (*ClassStmt) stmtNode()    {}

func (n *ExprStmt) Line() int  { return n.Expr.Line() }
func (n *PrintStmt) Line() int { return n.Keyword.Line }
func (n *VarStmt) Line() int   { return n.Name.Line }
func (n *BlockStmt) Line() int { return n.LeftBrace.Line }
func (n *IfStmt) Line() int    { return n.Keyword.Line }
func (n *WhileStmt) Line() int { return n.Keyword.Line }
func (n *FunctionStmt) Line() int {
	return n.Name.Line
}
func (n *ReturnStmt) Line() int { return n.Keyword.Line }
func (n *ClassStmt) Line() int  { return n.Name.Line }

func (n *ExprStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "expr stmt", nil)
}
func (n *PrintStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "print", nil)
}
func (n *VarStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "var "+n.Name.Lexeme, nil)
}
func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *IfStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "if", nil)
}
func (n *WhileStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "while", nil)
}
func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "function "+n.Name.Lexeme, map[string]int{"params": len(n.Params)})
}
func (n *ReturnStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "return", nil)
}
func (n *ClassStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "class "+n.Name.Lexeme, map[string]int{"methods": len(n.Methods)})
}
