package interp

// ClassValue is a class: its name, its optional superclass and its own
// methods (not including inherited ones, which are reached by walking the
// superclass chain at lookup time).
type ClassValue struct {
	Name       string
	Superclass *ClassValue
	Methods    map[string]*FunctionValue
}

var _ Callable = (*ClassValue)(nil)

// FindMethod looks up name in c's own methods, falling back to the
// superclass chain.
func (c *ClassValue) FindMethod(name string) (*FunctionValue, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is init's arity if the class (or an ancestor) defines one, else 0:
// calling a class with no initializer takes no arguments.
func (c *ClassValue) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh instance and, if an initializer is defined,
// binds and invokes it with args before returning the instance.
func (c *ClassValue) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
