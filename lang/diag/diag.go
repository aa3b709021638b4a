// Package diag defines the diagnostic error taxonomy shared by the scanner,
// parser, resolver and evaluator: the exact wire formats spec.md §7
// mandates, and the exit code each taxon maps to at the process boundary.
package diag

import (
	"fmt"

	"github.com/aspen-lang/aspen/lang/token"
)

// Kind distinguishes the error taxa described in spec.md §7. Each has a
// distinct reporting discipline and exit code.
type Kind int

const (
	// Scan is a lexical error: an unterminated string or an unrecognized
	// character. Exit code 65.
	Scan Kind = iota
	// Parse is a syntax error raised by the parser. Exit code 65.
	Parse
	// Resolve is a static scoping error raised by the resolver. Exit code 65.
	Resolve
	// Runtime is raised by the evaluator while executing a program. Exit code
	// 70.
	Runtime
	// Usage is a command-line invocation error. Exit code 64.
	Usage
)

// ExitCode returns the process exit code associated with a Kind, per
// spec.md §7.
func (k Kind) ExitCode() int {
	switch k {
	case Usage:
		return 64
	case Scan, Parse, Resolve:
		return 65
	case Runtime:
		return 70
	default:
		return 1
	}
}

// Error is a single diagnostic. Static errors (Scan, Parse, Resolve) format
// as "[line N] Error at '<lexeme>': <msg>" (or "Error at end: <msg>" for
// EOF, or a bare "[line N] Error: <msg>" when no token is implicated).
// Runtime errors format as "<msg>\n[line N]".
type Error struct {
	Kind   Kind
	Line   int
	Lexeme string
	AtEnd  bool
	// HasToken is false for scan errors, which are not attributed to a token.
	HasToken bool
	Msg      string
}

// New builds a line-only diagnostic (scanner errors, which key only on the
// offending line, not a token).
func New(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// AtToken builds a diagnostic attributed to a specific token, as parser and
// resolver errors are.
func AtToken(kind Kind, tok token.Token, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Line:     tok.Line,
		Lexeme:   tok.Lexeme,
		AtEnd:    tok.Kind == token.EOF,
		HasToken: true,
		Msg:      fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	switch e.Kind {
	case Runtime:
		return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Line)
	case Scan:
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
	default: // Parse, Resolve
		if !e.HasToken {
			return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Msg)
		}
		if e.AtEnd {
			return fmt.Sprintf("[line %d] Error at end: %s", e.Line, e.Msg)
		}
		return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Lexeme, e.Msg)
	}
}

// ExitCode reports the process exit code for this diagnostic's Kind.
func (e *Error) ExitCode() int { return e.Kind.ExitCode() }
