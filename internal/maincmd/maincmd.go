// Package maincmd wires the scanner, parser, resolver and evaluator into
// the aspen command-line tool: running a file, a REPL, and three
// diagnostic commands that each stop the pipeline one phase earlier than
// the last (tokenize, parse, resolve).
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	heredoc "github.com/MakeNowJust/heredoc/v2"
	"github.com/mna/mainer"
	"github.com/sirupsen/logrus"

	"github.com/aspen-lang/aspen/internal/config"
)

const binName = "aspen"

// Exit codes per the language's error taxonomy: static errors (scan,
// parse, resolve) and runtime errors use distinct codes so a caller can
// tell which phase failed without parsing stderr.
const (
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

var (
	shortUsage = fmt.Sprintf("usage: %s [<option>...] <command> [<path>...]\nRun '%[1]s --help' for details.\n", binName)

	longUsage = fmt.Sprintf(heredoc.Doc(`
		usage: %[1]s [<option>...] <command> [<path>...]
		       %[1]s -h|--help
		       %[1]s -v|--version

		Tree-walking interpreter for the aspen scripting language.

		The <command> can be one of:
		       run <file>                Scan, parse, resolve and evaluate a
		                                 source file.
		       repl                      Start an interactive read-eval-print
		                                 loop. The global environment persists
		                                 across lines; an error aborts only the
		                                 line that raised it.
		       tokenize <file>...        Run the scanner phase only and print
		                                 the resulting tokens.
		       parse <file>...           Run the scanner and parser phases and
		                                 print the resulting syntax tree.
		       resolve <file>...         Run the scanner, parser and resolver
		                                 phases and print the resulting syntax
		                                 tree annotated with scope distances.

		Valid flag options are:
		       -h --help                 Show this help and exit.
		       -v --version              Print version and exit.
		       --verbose                 Log debug messages of the run command
		                                 to stderr.
	`), binName)
)

// Cmd is the entry point mainer.Parser populates from os.Args and
// environment variables, then drives via Main.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	Verbose bool `flag:"verbose"`

	args  []string
	log   *logrus.Logger
	cfg   config.Config
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	switch cmdName {
	case "tokenize", "parse", "resolve":
		if len(c.args[1:]) == 0 {
			return fmt.Errorf("%s: at least one file must be provided", cmdName)
		}
	case "run":
		if len(c.args[1:]) != 1 {
			return fmt.Errorf("run: exactly one file must be provided")
		}
	}
	return nil
}

// Main runs the parsed command and maps its outcome to a process exit
// code. mainer.ExitCode is a plain integer type, so the language's own
// 64/65/70 taxonomy passes straight through rather than being squeezed
// into mainer's generic success/failure pair.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: true, EnvPrefix: strings.ToUpper(binName) + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(exitUsage)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	c.log = logrus.New()
	c.log.Out = stdio.Stderr
	c.log.SetLevel(logrus.WarnLevel)
	if c.Verbose {
		c.log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "loading config: %s\n", err)
		return mainer.ExitCode(exitUsage)
	}
	c.cfg = cfg

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		return mainer.ExitCode(exitCodeOf(err))
	}
	return mainer.Success
}

// buildCmds reflects over c's exported methods to find the ones shaped
// like command handlers, keyed by lowercased method name; Validate has
// already resolved the requested command name against this same set.
func buildCmds(v any) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
