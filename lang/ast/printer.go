package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders e as a fully-parenthesized Lisp-like string. It only needs
// to handle the Literal|Unary|Binary|Grouping subset of expressions: the
// idempotence property in spec.md §8 ("parsing then pretty-printing is
// stable under re-parse") is only claimed for that subset, since it's the
// only one with an unambiguous prefix-notation round trip — calls, gets,
// assignments and the class/this/super forms don't have a canonical
// re-parseable rendering the way a fully-parenthesized arithmetic
// expression does.
//
// Print is a test utility (spec.md's "AST-printer" collaborator is
// explicitly out of scope for the core); it is not used by the parser,
// resolver or evaluator.
func Print(e Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

func printExpr(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *LiteralExpr:
		sb.WriteString(literalString(e.Value))
	case *UnaryExpr:
		parenthesize(sb, e.Op.Lexeme, e.Right)
	case *BinaryExpr:
		parenthesize(sb, e.Op.Lexeme, e.Left, e.Right)
	case *GroupingExpr:
		parenthesize(sb, "group", e.Inner)
	default:
		fmt.Fprintf(sb, "<%T>", e)
	}
}

func literalString(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		printExpr(sb, e)
	}
	sb.WriteByte(')')
}
