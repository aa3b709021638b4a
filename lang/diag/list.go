package diag

import (
	"sort"

	"github.com/hashicorp/go-multierror"
)

// List accumulates diagnostics across a pass that keeps going after an
// error (the scanner keeps scanning past a bad character, the parser
// synchronizes and keeps parsing, the resolver keeps resolving). It wraps
// hashicorp/go-multierror rather than a hand-rolled slice so every other
// package that inspects these errors can use the standard errors.Is/As
// and multierror.Errors helpers.
type List struct {
	merr *multierror.Error
}

// Add appends a diagnostic to the list.
func (l *List) Add(e *Error) {
	l.merr = multierror.Append(l.merr, e)
}

// Len reports how many diagnostics have been added.
func (l *List) Len() int {
	if l.merr == nil {
		return 0
	}
	return len(l.merr.Errors)
}

// Sort orders the accumulated diagnostics by line number, for stable
// output across runs.
func (l *List) Sort() {
	if l.merr == nil {
		return
	}
	sort.SliceStable(l.merr.Errors, func(i, j int) bool {
		ei := l.merr.Errors[i].(*Error)
		ej := l.merr.Errors[j].(*Error)
		return ei.Line < ej.Line
	})
}

// Err returns the accumulated error, or nil if none were added.
func (l *List) Err() error {
	if l.merr == nil || len(l.merr.Errors) == 0 {
		return nil
	}
	return l.merr
}

// Errors returns the accumulated diagnostics in order.
func (l *List) Errors() []*Error {
	if l.merr == nil {
		return nil
	}
	out := make([]*Error, len(l.merr.Errors))
	for i, e := range l.merr.Errors {
		out[i] = e.(*Error)
	}
	return out
}

// ExitCode returns the highest-priority exit code among accumulated
// diagnostics (all static-error kinds share 65), or 0 if empty.
func (l *List) ExitCode() int {
	errs := l.Errors()
	if len(errs) == 0 {
		return 0
	}
	return errs[0].ExitCode()
}
