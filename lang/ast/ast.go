// Package ast defines the abstract syntax tree produced by the parser: a
// closed set of expression and statement node types, each a distinct Go
// struct so the evaluator and resolver can dispatch on them with a single
// type switch rather than reflection-based double dispatch.
//
// Every expression node is always handed around by pointer, so a node's Go
// pointer value is a stable identity the resolver can key its scope-distance
// side table on — two syntactically identical references to the same name
// are distinct nodes with distinct identities.
package ast

import (
	"fmt"
	"sort"
	"strings"
)

// Node is implemented by every AST node. Every Node implements
// fmt.Formatter so it can print a short description of itself; the only
// supported verbs are 'v' and 's', and '#' adds child-count information.
type Node interface {
	fmt.Formatter
	Line() int
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\r\n", "⏎")
	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
