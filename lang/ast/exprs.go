package ast

import (
	"fmt"

	"github.com/aspen-lang/aspen/lang/token"
)

type (
	// LiteralExpr is a number, string, boolean or nil literal.
	LiteralExpr struct {
		Token token.Token // NUMBER, STRING, TRUE, FALSE or NIL
		// Value is float64 for NUMBER, string for STRING, bool for TRUE/FALSE,
		// nil for NIL.
		Value any
	}

	// UnaryExpr is a prefix unary expression, e.g. -x or !x.
	UnaryExpr struct {
		Op    token.Token // MINUS or BANG
		Right Expr
	}

	// BinaryExpr is a binary arithmetic/comparison/equality expression.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		Lparen token.Token
		Inner  Expr
	}

	// VariableExpr is a reference to a variable by name.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr assigns a new value to a variable.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// LogicalExpr is a short-circuiting `and`/`or` expression.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// CallExpr is a function or method call.
	CallExpr struct {
		Callee Expr
		Paren  token.Token // closing ')' token, used to report arity errors
		Args   []Expr
	}

	// GetExpr reads a property off an object, e.g. obj.name.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr writes a property on an object, e.g. obj.name = value.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr is a reference to the implicit receiver inside a method body.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr is a reference to a method defined on the superclass.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (*LiteralExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*GroupingExpr) exprNode() {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}

func (n *LiteralExpr) Line() int  { return n.Token.Line }
func (n *UnaryExpr) Line() int    { return n.Op.Line }
func (n *BinaryExpr) Line() int   { return n.Op.Line }
func (n *GroupingExpr) Line() int { return n.Lparen.Line }
func (n *VariableExpr) Line() int { return n.Name.Line }
func (n *AssignExpr) Line() int   { return n.Name.Line }
func (n *LogicalExpr) Line() int  { return n.Op.Line }
func (n *CallExpr) Line() int     { return n.Paren.Line }
func (n *GetExpr) Line() int      { return n.Name.Line }
func (n *SetExpr) Line() int      { return n.Name.Line }
func (n *ThisExpr) Line() int     { return n.Keyword.Line }
func (n *SuperExpr) Line() int    { return n.Keyword.Line }

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("literal %v", n.Value), nil)
}
func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Op.Lexeme, nil)
}
func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Op.Lexeme, nil)
}
func (n *GroupingExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "grouping", nil)
}
func (n *VariableExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "variable "+n.Name.Lexeme, nil)
}
func (n *AssignExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "assign "+n.Name.Lexeme, nil)
}
func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.Lexeme, nil)
}
func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *GetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "get "+n.Name.Lexeme, nil)
}
func (n *SetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "set "+n.Name.Lexeme, nil)
}
func (n *ThisExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "this", nil)
}
func (n *SuperExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "super "+n.Method.Lexeme, nil)
}
