package interp_test

import (
	"bytes"
	"testing"

	"github.com/aspen-lang/aspen/lang/interp"
	"github.com/aspen-lang/aspen/lang/parser"
	"github.com/aspen-lang/aspen/lang/resolver"
	"github.com/aspen-lang/aspen/lang/scanner"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	dist, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	in := interp.New(&buf, false, 0)
	err = in.Interpret(stmts, dist)
	return buf.String(), err
}

func TestInterpretArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2;`)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestInterpretClosureShadowBugIsFixed(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "local";
			show();
		}
	`)
	require.NoError(t, err)
	require.Equal(t, "global\nglobal\n", out)
}

func TestInterpretSingleInheritance(t *testing.T) {
	out, err := run(t, `
		class Doughnut {
			cook() { print "Fry until golden."; }
		}
		class BostonCream < Doughnut {}
		BostonCream().cook();
	`)
	require.NoError(t, err)
	require.Equal(t, "Fry until golden.\n", out)
}

func TestInterpretInitializerAlwaysReturnsThis(t *testing.T) {
	out, err := run(t, `
		class Foo {
			init() { return; }
		}
		var f = Foo();
		print f;
	`)
	require.NoError(t, err)
	require.Equal(t, "Foo instance\n", out)
}

func TestInterpretClosureOverMutableCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var c = makeCounter();
		c();
		c();
	`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", out)
}

func TestInterpretSuperDispatch(t *testing.T) {
	out, err := run(t, `
		class A {
			method() { print "A"; }
		}
		class B < A {
			method() { print "B"; }
			test() { super.method(); }
		}
		class C < B {}
		C().test();
	`)
	require.NoError(t, err)
	require.Equal(t, "A\n", out)
}

func TestInterpretIntegralNumberHasNoTrailingDot(t *testing.T) {
	out, err := run(t, `print 6 / 2;`)
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	require.Equal(t, "foobar\n", out)
}

func TestInterpretMixedAdditionIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "foo" + 1;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Operands must be two numbers or two strings.")
}

func TestInterpretUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined variable 'x'.")
}

func TestInterpretCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestInterpretArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestInterpretPropertyAccessOnNonInstanceIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; print x.y;`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Only instances have properties.")
}

func TestInterpretUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		class Foo {}
		print Foo().bar;
	`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Undefined property 'bar'.")
}

func TestInterpretInheritingFromNonClassIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var NotAClass = 1;
		class Oops < NotAClass {}
	`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Superclass must be a class.")
}

func TestInterpretFieldsShadowMethodsOfSameName(t *testing.T) {
	out, err := run(t, `
		class Box {
			value() { return "method"; }
		}
		var b = Box();
		b.value = "field";
		print b.value;
	`)
	require.NoError(t, err)
	require.Equal(t, "field\n", out)
}

func TestInterpretEqualityIsCrossTypeFalse(t *testing.T) {
	out, err := run(t, `print true == 1;`)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestInterpretNaNIsNeverEqualToItself(t *testing.T) {
	out, err := run(t, `print (0/0) == (0/0);`)
	require.NoError(t, err)
	require.Equal(t, "false\n", out)
}

func TestInterpretEmptyProgramProducesNoOutput(t *testing.T) {
	out, err := run(t, ``)
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestInterpretClockIsCallableWithNoArgs(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)
}
