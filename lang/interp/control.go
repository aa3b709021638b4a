package interp

// callReturn unwinds out of a function body's statement execution back to
// the invocation frame that started it. It implements error so it can
// propagate through the same exec/eval return paths as a genuine runtime
// error, but it is caught exclusively by Call and never reaches the
// driver: a return is an ordinary control-flow mechanism, not a fault.
type callReturn struct {
	value Value
}

func (callReturn) Error() string { return "return outside of a function call" }
