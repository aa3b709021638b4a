package ast_test

import (
	"fmt"
	"testing"

	"github.com/aspen-lang/aspen/lang/ast"
	"github.com/aspen-lang/aspen/lang/token"
	"github.com/stretchr/testify/require"
)

func TestPrintLiteralUnaryBinaryGrouping(t *testing.T) {
	// -123 * (45.67)
	expr := &ast.BinaryExpr{
		Left: &ast.UnaryExpr{
			Op:    token.Token{Kind: token.MINUS, Lexeme: "-", Line: 1},
			Right: &ast.LiteralExpr{Token: token.Token{Kind: token.NUMBER, Line: 1}, Value: float64(123)},
		},
		Op: token.Token{Kind: token.STAR, Lexeme: "*", Line: 1},
		Right: &ast.GroupingExpr{
			Lparen: token.Token{Kind: token.LEFT_PAREN, Lexeme: "(", Line: 1},
			Inner:  &ast.LiteralExpr{Token: token.Token{Kind: token.NUMBER, Line: 1}, Value: float64(45.67)},
		},
	}

	require.Equal(t, "(* (- 123) (group 45.67))", ast.Print(expr))
}

func TestNodeLineAndFormat(t *testing.T) {
	lit := &ast.LiteralExpr{Token: token.Token{Line: 7}, Value: float64(1)}
	require.Equal(t, 7, lit.Line())
	require.Equal(t, "literal 1", fmt.Sprintf("%v", lit))
}
