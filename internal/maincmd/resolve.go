package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

// Resolve runs the scanner, parser and resolver phases, printing the
// syntax tree annotated with each reference's resolved scope distance.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
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
		stmts, dist, err := scanParseResolve(string(src))
		dumpStmts(stdio.Stdout, stmts, dist)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
