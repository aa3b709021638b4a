package maincmd

import (
	"context"
	"fmt"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mna/mainer"

	"github.com/aspen-lang/aspen/lang/interp"
	"github.com/aspen-lang/aspen/lang/resolver"
)

// Repl starts an interactive read-eval-print loop: one line in, evaluated
// immediately, with the global environment and the resolver's distance
// table both carried forward across lines. A static or runtime error
// aborts only the offending line, not the session.
func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: c.cfg.HistoryFile,
		Stdin:       stdio.Stdin,
		Stdout:      stdio.Stdout,
		Stderr:      stdio.Stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	in := interp.New(stdio.Stdout, true, c.cfg.ClockEpochUnix)
	dist := resolver.Distances{}

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl-D) or readline.ErrInterrupt (Ctrl-C)
			return nil
		}
		if line == "" {
			continue
		}

		stmts, lineDist, err := scanParseResolve(line)
		if err != nil {
			c.replError(stdio, err)
			continue
		}
		for ref, d := range lineDist {
			dist[ref] = d
		}
		if err := in.Interpret(stmts, dist); err != nil {
			c.replError(stdio, err)
		}
	}
}

func (c *Cmd) replError(stdio mainer.Stdio, err error) {
	if c.cfg.NoColor {
		fmt.Fprintln(stdio.Stderr, err)
		return
	}
	fmt.Fprintln(stdio.Stderr, color.RedString("%s", err))
}
