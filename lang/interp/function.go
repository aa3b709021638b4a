package interp

import "github.com/aspen-lang/aspen/lang/ast"

// FunctionValue is a user-defined function or method: the declaration plus
// the environment captured at the point of definition (the closure).
type FunctionValue struct {
	Decl          *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

var _ Callable = (*FunctionValue)(nil)

func (f *FunctionValue) Arity() int { return len(f.Decl.Params) }

// Call invokes f with args already evaluated in call order. A fresh
// environment is created parented to the closure (not to the caller's
// environment — this is what makes capture lexical rather than dynamic),
// each parameter is bound there, and the body runs in it. A return inside
// the body unwinds to here and supplies the result, except in an
// initializer, which always yields `this` regardless of what (if
// anything) was returned.
func (f *FunctionValue) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.execBlockIn(f.Decl.Body, env)
	if ret, ok := err.(callReturn); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a new FunctionValue whose closure is a fresh one-slot
// environment defining `this = instance`, parented to f's original
// closure. The same method bound twice yields two distinct wrappers
// sharing the same underlying declaration.
func (f *FunctionValue) Bind(instance *InstanceValue) *FunctionValue {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return &FunctionValue{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}
