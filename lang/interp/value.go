// Package interp implements the tree-walking evaluator: the Environment
// chain, the runtime value model, and the Interpreter that executes a
// resolved program.
package interp

import (
	"fmt"
	"math"
	"strconv"
)

// Value is any runtime value the evaluator produces or consumes. The
// concrete Go type IS the tag: a Go nil, bool, float64 or string for the
// four primitive kinds, and one of the pointer types below for the three
// object kinds plus the native-function kind.
type Value any

// Callable is implemented by every Value that can appear as the callee of
// a Call expression.
type Callable interface {
	Value
	Call(in *Interpreter, args []Value) (Value, error)
	Arity() int
}

// Truthy reports a value's truthiness: nil and false are falsey, every
// other value (including 0 and "") is truthy.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements the language's `==`: Nil equals only Nil, numbers
// compare as IEEE-754 (so NaN != NaN), and a value of one kind is never
// equal to a value of another kind.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case float64:
		b, ok := b.(float64)
		return ok && a == b
	case string:
		b, ok := b.(string)
		return ok && a == b
	case bool:
		b, ok := b.(bool)
		return ok && a == b
	default:
		return a == b
	}
}

// Stringify renders a value the way `print` and the REPL do. Integral
// numbers print without a trailing ".0".
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(v)
	case string:
		return v
	case *ClassValue:
		return v.Name
	case *InstanceValue:
		return v.Class.Name + " instance"
	case *FunctionValue:
		return "<fn " + v.Decl.Name.Lexeme + ">"
	case *NativeValue:
		return "<native fn>"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func stringifyNumber(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	// -1 precision picks the shortest decimal that round-trips exactly,
	// which for an integral value never carries a trailing ".0".
	return strconv.FormatFloat(f, 'f', -1, 64)
}
