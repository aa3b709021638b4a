package parser_test

import (
	"testing"

	"github.com/aspen-lang/aspen/lang/ast"
	"github.com/aspen-lang/aspen/lang/parser"
	"github.com/aspen-lang/aspen/lang/scanner"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	return stmts
}

func TestParseExprStmt(t *testing.T) {
	stmts := mustParse(t, "1 + 2 * 3;")
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	bin, ok := es.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op.Lexeme)
	// 2 * 3 binds tighter than +, so the right side is the nested binary
	_, ok = bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmts := mustParse(t, "var a; var b; a = b = 1;")
	es := stmts[2].(*ast.ExprStmt)
	outer, ok := es.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	toks, err := scanner.Scan("1 = 2;")
	require.NoError(t, err)
	_, err = parser.Parse(toks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestParseGetAndSet(t *testing.T) {
	stmts := mustParse(t, "a.b.c = 1;")
	es := stmts[0].(*ast.ExprStmt)
	set, ok := es.Expr.(*ast.SetExpr)
	require.True(t, ok)
	require.Equal(t, "c", set.Name.Lexeme)
	get, ok := set.Object.(*ast.GetExpr)
	require.True(t, ok)
	require.Equal(t, "b", get.Name.Lexeme)
}

func TestForDesugarsToWhile(t *testing.T) {
	stmts := mustParse(t, "for (var i = 0; i < 10; i = i + 1) print i;")
	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Stmts, 2)
	_, ok = block.Stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
}

func TestForWithoutClausesDefaultsConditionToTrue(t *testing.T) {
	stmts := mustParse(t, "for (;;) print 1;")
	while, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := while.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	require.Equal(t, true, lit.Value)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := mustParse(t, "class B < A { m() { return 1; } }")
	cls, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	require.Equal(t, "B", cls.Name.Lexeme)
	require.NotNil(t, cls.Superclass)
	require.Equal(t, "A", cls.Superclass.Name.Lexeme)
	require.Len(t, cls.Methods, 1)
	require.Equal(t, "m", cls.Methods[0].Name.Lexeme)
}

func TestParseSynchronizesAfterError(t *testing.T) {
	toks, err := scanner.Scan("var ; var good = 1;")
	require.NoError(t, err)
	_, err = parser.Parse(toks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expect variable name.")
}
