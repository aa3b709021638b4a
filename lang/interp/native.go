package interp

// NativeValue wraps a host-provided function exposed to the language,
// such as clock. It is the interpreter's only extension point for
// built-ins; there is no general FFI.
type NativeValue struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

var _ Callable = (*NativeValue)(nil)

func (n *NativeValue) Arity() int { return n.arity }

func (n *NativeValue) Call(in *Interpreter, args []Value) (Value, error) {
	return n.fn(in, args)
}
