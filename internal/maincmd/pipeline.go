package maincmd

import (
	"github.com/hashicorp/go-multierror"

	"github.com/aspen-lang/aspen/lang/ast"
	"github.com/aspen-lang/aspen/lang/diag"
	"github.com/aspen-lang/aspen/lang/parser"
	"github.com/aspen-lang/aspen/lang/resolver"
	"github.com/aspen-lang/aspen/lang/scanner"
	"github.com/aspen-lang/aspen/lang/token"
)

// scanAndParse runs the first two pipeline phases, stopping at whichever
// fails first; both still return every token/statement they managed to
// produce, for the parse diagnostic command.
func scanAndParse(src string) ([]token.Token, []ast.Stmt, error) {
	toks, err := scanner.Scan(src)
	if err != nil {
		return toks, nil, err
	}
	stmts, err := parser.Parse(toks)
	return toks, stmts, err
}

// scanParseResolve runs the first three phases. A nil error here means
// stmts is safe to evaluate.
func scanParseResolve(src string) ([]ast.Stmt, resolver.Distances, error) {
	_, stmts, err := scanAndParse(src)
	if err != nil {
		return stmts, nil, err
	}
	dist, err := resolver.Resolve(stmts)
	return stmts, dist, err
}

// exitCodeOf maps a pipeline error to the process exit code the language's
// error taxonomy assigns it, defaulting to a usage-error code for anything
// that isn't one of the pipeline's own diagnostics (a missing source file,
// for instance).
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if de, ok := err.(*diag.Error); ok {
		return de.ExitCode()
	}
	if me, ok := err.(*multierror.Error); ok && len(me.Errors) > 0 {
		if de, ok := me.Errors[0].(*diag.Error); ok {
			return de.ExitCode()
		}
	}
	return exitUsage
}
