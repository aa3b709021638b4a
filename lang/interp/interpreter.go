package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/aspen-lang/aspen/lang/ast"
	"github.com/aspen-lang/aspen/lang/diag"
	"github.com/aspen-lang/aspen/lang/resolver"
	"github.com/aspen-lang/aspen/lang/token"
)

// Interpreter walks a resolved AST, executing each statement against a
// current Environment. It is single-threaded and synchronous: statement
// execution is straight-line, with well-defined left-to-right
// subexpression order, per the language's concurrency model.
type Interpreter struct {
	globals *Environment
	env     *Environment
	dist    resolver.Distances
	out     io.Writer
	isREPL  bool
}

// New builds an Interpreter writing print output to out. The globals
// environment starts with the single native function clock, which
// reports seconds since epochUnix (ordinarily the Unix epoch; a nonzero
// override lets a golden-file test pin clock() to a small, stable
// number instead of wall-clock time).
func New(out io.Writer, isREPL bool, epochUnix int64) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", &NativeValue{
		name:  "clock",
		arity: 0,
		fn: func(*Interpreter, []Value) (Value, error) {
			return float64(time.Now().Unix()-epochUnix) + float64(time.Now().Nanosecond())/1e9, nil
		},
	})
	return &Interpreter{globals: globals, env: globals, dist: nil, out: out, isREPL: isREPL}
}

// Interpret executes stmts against dist, the scope-distance table the
// resolver computed for them. It stops at the first runtime error: a
// RuntimeError aborts the whole program (or, in REPL mode, the current
// line — the caller is expected to call Interpret once per REPL line and
// keep going regardless of the returned error).
func (in *Interpreter) Interpret(stmts []ast.Stmt, dist resolver.Distances) error {
	in.dist = dist
	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExprStmt:
		_, err := in.eval(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, Stringify(v))
		return nil

	case *ast.VarStmt:
		var v Value
		if s.Init != nil {
			var err error
			v, err = in.eval(s.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return in.execBlockIn(s.Stmts, NewEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return in.exec(s.Then)
		}
		if s.Else != nil {
			return in.exec(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := in.exec(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		in.env.Define(s.Name.Lexeme, &FunctionValue{Decl: s, Closure: in.env})
		return nil

	case *ast.ReturnStmt:
		var v Value
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return callReturn{value: v}

	case *ast.ClassStmt:
		return in.execClass(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

func (in *Interpreter) execClass(s *ast.ClassStmt) error {
	var super *ClassValue
	if s.Superclass != nil {
		superVal, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		super, ok = superVal.(*ClassValue)
		if !ok {
			return diag.AtToken(diag.Runtime, s.Superclass.Name, "Superclass must be a class.")
		}
	}

	in.env.Define(s.Name.Lexeme, nil)

	methodEnv := in.env
	if super != nil {
		methodEnv = NewEnvironment(in.env)
		methodEnv.Define("super", super)
	}

	methods := make(map[string]*FunctionValue, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &FunctionValue{
			Decl:          m,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &ClassValue{Name: s.Name.Lexeme, Superclass: super, Methods: methods}
	return in.env.Assign(s.Name, class)
}

// execBlockIn runs stmts against env, restoring the interpreter's prior
// environment on every exit path, including a callReturn unwind — block
// restoration is guaranteed, not best-effort.
func (in *Interpreter) execBlockIn(stmts []ast.Stmt, env *Environment) error {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()
	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return in.eval(e.Inner)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.VariableExpr:
		return in.lookupVar(e.Name, e)

	case *ast.AssignExpr:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if d, ok := in.dist[e]; ok {
			in.env.AssignAt(d, e.Name.Lexeme, v)
		} else if err := in.globals.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*InstanceValue)
		if !ok {
			return nil, diag.AtToken(diag.Runtime, e.Name, "Only instances have properties.")
		}
		return inst.Get(e.Name)

	case *ast.SetExpr:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*InstanceValue)
		if !ok {
			return nil, diag.AtToken(diag.Runtime, e.Name, "Only instances have fields.")
		}
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name, v)
		return v, nil

	case *ast.ThisExpr:
		return in.lookupVar(e.Keyword, e)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

func (in *Interpreter) lookupVar(name token.Token, ref ast.Expr) (Value, error) {
	if d, ok := in.dist[ref]; ok {
		return in.env.GetAt(d, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, diag.AtToken(diag.Runtime, e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !Truthy(right), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EQUAL_EQUAL:
		return Equal(left, right), nil
	case token.BANG_EQUAL:
		return !Equal(left, right), nil
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, diag.AtToken(diag.Runtime, e.Op, "Operands must be two numbers or two strings.")
	case token.MINUS, token.STAR, token.SLASH, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, diag.AtToken(diag.Runtime, e.Op, "Operands must be numbers.")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		}
	}
	panic("interp: unhandled binary operator")
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.OR:
		if Truthy(left) {
			return left, nil
		}
	case token.AND:
		if !Truthy(left) {
			return left, nil
		}
	default:
		panic("interp: unhandled logical operator")
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, diag.AtToken(diag.Runtime, e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, diag.AtToken(diag.Runtime, e.Paren,
			"Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	d := in.dist[e]
	super := in.env.GetAt(d, "super").(*ClassValue)
	// `this` always lives one scope inward of the `super` binding, since
	// the resolver pushes the `super` scope, then a nested `this` scope,
	// around every method body.
	this := in.env.GetAt(d-1, "this").(*InstanceValue)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, diag.AtToken(diag.Runtime, e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(this), nil
}
