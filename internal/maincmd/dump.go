package maincmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/aspen-lang/aspen/lang/ast"
	"github.com/aspen-lang/aspen/lang/resolver"
)

// dumpStmts prints each top-level statement and its children as an
// indented tree, one node's one-line Format per row. dist is optional; if
// non-nil, a variable/this/super reference node's resolved distance is
// appended in brackets, or "global" if the resolver left it unresolved.
func dumpStmts(w io.Writer, stmts []ast.Stmt, dist resolver.Distances) {
	for _, s := range stmts {
		dumpStmt(w, s, 0, dist)
	}
}

func dumpStmt(w io.Writer, s ast.Stmt, depth int, dist resolver.Distances) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "%s%v\n", indent(depth), s)

	switch s := s.(type) {
	case *ast.BlockStmt:
		for _, c := range s.Stmts {
			dumpStmt(w, c, depth+1, dist)
		}
	case *ast.IfStmt:
		dumpExpr(w, s.Cond, depth+1, dist)
		dumpStmt(w, s.Then, depth+1, dist)
		dumpStmt(w, s.Else, depth+1, dist)
	case *ast.WhileStmt:
		dumpExpr(w, s.Cond, depth+1, dist)
		dumpStmt(w, s.Body, depth+1, dist)
	case *ast.VarStmt:
		dumpExpr(w, s.Init, depth+1, dist)
	case *ast.ExprStmt:
		dumpExpr(w, s.Expr, depth+1, dist)
	case *ast.PrintStmt:
		dumpExpr(w, s.Expr, depth+1, dist)
	case *ast.ReturnStmt:
		dumpExpr(w, s.Value, depth+1, dist)
	case *ast.FunctionStmt:
		for _, c := range s.Body {
			dumpStmt(w, c, depth+1, dist)
		}
	case *ast.ClassStmt:
		for _, m := range s.Methods {
			dumpStmt(w, m, depth+1, dist)
		}
	}
}

func dumpExpr(w io.Writer, e ast.Expr, depth int, dist resolver.Distances) {
	if e == nil {
		return
	}
	suffix := ""
	if dist != nil {
		switch e.(type) {
		case *ast.VariableExpr, *ast.ThisExpr, *ast.SuperExpr:
			if d, ok := dist[e]; ok {
				suffix = fmt.Sprintf(" [distance=%d]", d)
			} else {
				suffix = " [global]"
			}
		}
	}
	fmt.Fprintf(w, "%s%v%s\n", indent(depth), e, suffix)

	switch e := e.(type) {
	case *ast.UnaryExpr:
		dumpExpr(w, e.Right, depth+1, dist)
	case *ast.BinaryExpr:
		dumpExpr(w, e.Left, depth+1, dist)
		dumpExpr(w, e.Right, depth+1, dist)
	case *ast.LogicalExpr:
		dumpExpr(w, e.Left, depth+1, dist)
		dumpExpr(w, e.Right, depth+1, dist)
	case *ast.GroupingExpr:
		dumpExpr(w, e.Inner, depth+1, dist)
	case *ast.AssignExpr:
		dumpExpr(w, e.Value, depth+1, dist)
	case *ast.CallExpr:
		dumpExpr(w, e.Callee, depth+1, dist)
		for _, a := range e.Args {
			dumpExpr(w, a, depth+1, dist)
		}
	case *ast.GetExpr:
		dumpExpr(w, e.Object, depth+1, dist)
	case *ast.SetExpr:
		dumpExpr(w, e.Object, depth+1, dist)
		dumpExpr(w, e.Value, depth+1, dist)
	}
}

func indent(depth int) string { return strings.Repeat("  ", depth) }
