package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/aspen-lang/aspen/lang/interp"
)

// Run scans, parses, resolves and evaluates a single source file,
// printing print-statement output to stdout and any diagnostic to stderr
// in the wire format its taxon defines.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	path := args[0]
	c.log.Debugf("reading %s", path)
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	stmts, dist, err := scanParseResolve(string(src))
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	c.log.Debugf("resolved %d top-level statement(s)", len(stmts))

	in := interp.New(stdio.Stdout, false, c.cfg.ClockEpochUnix)
	if err := in.Interpret(stmts, dist); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
