// Package resolver implements the static pass that walks a parsed program
// and, for every variable, `this`, and `super` reference, computes the
// lexical scope distance to the environment that defines it — fixing the
// classic closure-over-a-later-shadow bug a purely dynamic environment
// chain would otherwise exhibit. It also rejects a fixed list of
// scope-sensitive errors: reading a local in its own initializer, `return`
// outside a function, a return value inside an initializer, `this`/`super`
// outside a class, `super` with no superclass, a self-inheriting class,
// and local redeclaration.
package resolver

import (
	"github.com/aspen-lang/aspen/lang/ast"
	"github.com/aspen-lang/aspen/lang/diag"
	"github.com/aspen-lang/aspen/lang/token"
)

// functionKind tracks what kind of function body is currently being
// resolved, to validate `return` statements.
type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

// classKind tracks whether the resolver is inside a class body and
// whether that class has a superclass, to validate `this`/`super`.
type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// bindingState records whether a name has only been declared (its
// initializer, if any, is still being resolved) or fully defined.
type bindingState bool

const (
	declaredOnly bindingState = false
	defined      bindingState = true
)

// Distances maps a variable/this/super reference node to the number of
// environment hops between the reference site and the scope that defines
// it. A reference with no entry is a global lookup. The key is the node's
// pointer identity: two references to the same name can resolve to
// different distances, so resolution cannot be keyed on the name alone.
type Distances map[ast.Expr]int

// Resolve statically resolves every variable reference in stmts, returning
// the scope-distance side table the evaluator uses to look up locals
// without a name-based search. It reports every static error it finds —
// it does not stop at the first one — via the returned error, which wraps
// one or more *diag.Error values sorted by line number (errors on the same
// line keep the order they were found in).
func Resolve(stmts []ast.Stmt) (Distances, error) {
	r := &resolver{distances: make(Distances)}
	r.resolveStmts(stmts)
	r.errs.Sort()
	return r.distances, r.errs.Err()
}

type scope map[string]bindingState

type resolver struct {
	scopes    []scope
	distances Distances
	fnKind    functionKind
	clsKind   classKind
	errs      diag.List
}

func (r *resolver) fail(tok token.Token, format string, args ...any) {
	r.errs.Add(diag.AtToken(diag.Resolve, tok, format, args...))
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present in the innermost scope but not yet ready
// to be read: its own initializer, if any, must not see it. The top-level
// (no open scopes) is not scope-checked for redeclaration; only nested
// blocks are.
func (r *resolver) declare(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, ok := sc[name.Lexeme]; ok {
		r.fail(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = declaredOnly
}

func (r *resolver) define(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = defined
}

// resolveLocal scans the scope stack from innermost outward; on the first
// scope that defines name, it records the hop distance for ref. A name
// found in no scope is a global, left unresolved here and looked up by
// name at runtime instead.
func (r *resolver) resolveLocal(ref ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.distances[ref] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ReturnStmt:
		if r.fnKind == fnNone {
			r.fail(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.fnKind == fnInitializer {
				r.fail(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.clsKind
	r.clsKind = classClass
	defer func() { r.clsKind = enclosingClass }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.fail(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.clsKind = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.peekScope()["super"] = defined
		defer r.endScope()
	}

	r.beginScope()
	r.peekScope()["this"] = defined
	defer r.endScope()

	for _, m := range s.Methods {
		kind := fnMethod
		if m.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(m, kind)
	}
}

// resolveFunction resolves a function's parameters and body in a single
// fresh scope; the body's statements share that scope rather than opening
// a further nested block.
func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn := r.fnKind
	r.fnKind = kind
	defer func() { r.fnKind = enclosingFn }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.VariableExpr:
		if sc := r.peekScope(); sc != nil {
			if state, ok := sc[e.Name.Lexeme]; ok && state == declaredOnly {
				r.fail(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Inner)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.clsKind == classNone {
			r.fail(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.clsKind {
		case classNone:
			r.fail(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.fail(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")

	default:
		panic("resolver: unhandled expression type")
	}
}
