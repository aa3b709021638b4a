package interp

import (
	"github.com/aspen-lang/aspen/lang/diag"
	"github.com/aspen-lang/aspen/lang/token"
	"github.com/dolthub/swiss"
)

// Environment is one lexical scope: a mapping from name to Value, plus an
// optional enclosing Environment. The parent link is fixed at creation,
// so ancestor/get_at/assign_at never search — they walk exactly the
// requested number of hops and then read or write the slot directly.
type Environment struct {
	parent *Environment
	values *swiss.Map[string, Value]
}

// NewEnvironment creates a fresh scope parented to enclosing (nil for the
// top-level globals environment).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: swiss.NewMap[string, Value](8)}
}

// Define unconditionally sets name in this scope. Redefinition at global
// scope is permitted by the language; the resolver is what forbids it in
// local scopes, so Environment itself never rejects a redefinition.
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// Get looks up name in this scope, delegating to the enclosing scope on a
// miss, and fails with a diag.Runtime error on a final miss.
func (e *Environment) Get(name token.Token) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values.Get(name.Lexeme); ok {
			return v, nil
		}
	}
	return nil, diag.AtToken(diag.Runtime, name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign sets name to v in the nearest scope (this one or an ancestor)
// that already defines it. Assignment never creates a new binding; a name
// absent from every scope in the chain is a diag.Runtime error.
func (e *Environment) Assign(name token.Token, v Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values.Get(name.Lexeme); ok {
			env.values.Put(name.Lexeme, v)
			return nil
		}
	}
	return diag.AtToken(diag.Runtime, name, "Undefined variable '%s'.", name.Lexeme)
}

// Ancestor walks the parent chain exactly distance steps (0 = e itself).
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name directly from the environment distance hops out,
// without searching: the resolver having recorded distance guarantees the
// binding is there.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.Ancestor(distance).values.Get(name)
	return v
}

// AssignAt writes name directly at the environment distance hops out.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.Ancestor(distance).values.Put(name, v)
}
