package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

// Parse runs the scanner and parser phases, printing the resulting syntax
// tree as an indented dump of one-line node descriptions.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	var firstErr error
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		_, stmts, err := scanAndParse(string(src))
		dumpStmts(stdio.Stdout, stmts, nil)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
