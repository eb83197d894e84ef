package interp_test

import (
	"testing"

	"github.com/pkelchte/scm-core/internal/interp"
	"github.com/pkelchte/scm-core/internal/scmerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, in *interp.Interpreter, line string) string {
	t.Helper()
	out, err := in.Run(line)
	require.NoError(t, err, "line %q", line)
	return out
}

func TestArithmeticSum(t *testing.T) {
	in := interp.New(zerolog.Nop())
	require.Equal(t, "6", run(t, in, "(+ 1 2 3)"))
}

func TestFactorialRecursion(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(define (fact n) (if (<= n 1) 1 (* n (fact (- n 1)))))")
	require.Equal(t, "720", run(t, in, "(fact 6)"))
}

func TestLexicalCaptureAdder(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(define (make-adder k) (lambda (x) (+ x k)))")
	run(t, in, "(define inc (make-adder 1))")
	require.Equal(t, "42", run(t, in, "(inc 41)"))
}

// TestClosureNameShadowingAndMutation verifies that rebinding the
// top-level name foo with (define foo 1543) does not affect the closure
// my-foo already obtained by calling foo, and that bar mutates the x it
// captured from foo's call frame, not any global.
func TestClosureNameShadowingAndMutation(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(define (foo x) (define (bar) (set! x (+ (* x 2) 2)) x) bar)")
	run(t, in, "(define my-foo (foo 20))")
	run(t, in, "(define foo 1543)")
	require.Equal(t, "42", run(t, in, "(my-foo)"))
}

func TestListPredicateShapes(t *testing.T) {
	in := interp.New(zerolog.Nop())
	require.Equal(t, "#f", run(t, in, "(list? '(1 2 . 3))"))
	require.Equal(t, "#t", run(t, in, "(list? '(1 2 3))"))
	require.Equal(t, "#t", run(t, in, "(list? '())"))
}

func TestSetCarSetCdrMutatePair(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(define p (cons 1 2))")
	run(t, in, "(set-car! p 10)")
	run(t, in, "(set-cdr! p '(20))")
	require.Equal(t, "(10 20)", run(t, in, "p"))
}

func TestQuoteEqualsQuoteSugar(t *testing.T) {
	in := interp.New(zerolog.Nop())
	require.Equal(t, run(t, in, "(quote (1 2 3))"), run(t, in, "'(1 2 3)"))
}

func TestAndOrShortCircuit(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(define hit #f)")
	run(t, in, "(define (mark) (set! hit #t) #t)")
	require.Equal(t, "#f", run(t, in, "(and #f (mark))"))
	require.Equal(t, "#f", run(t, in, "hit"))
	run(t, in, "(define hit2 #f)")
	run(t, in, "(define (mark2) (set! hit2 #t) #f)")
	require.Equal(t, "#t", run(t, in, "(or #t (mark2))"))
	require.Equal(t, "#f", run(t, in, "hit2"))
}

func TestCarOfEmptyListIsRuntimeError(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("(car '())")
	require.Error(t, err)
	var rerr *scmerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestDivideRequiresTwoArgs(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("(/ 1)")
	require.Error(t, err)
	var rerr *scmerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestAddWithNonNumberIsRuntimeError(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("(+ 1 'a)")
	require.Error(t, err)
	var rerr *scmerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestUndefinedNameIsNameError(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("undefined-name")
	require.Error(t, err)
	var nerr *scmerr.NameError
	require.ErrorAs(t, err, &nerr)
}

func TestDefineWithNoArgsIsSyntaxError(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("(define)")
	require.Error(t, err)
	var serr *scmerr.SyntaxError
	require.ErrorAs(t, err, &serr)
}

func TestUnbalancedParensIsSyntaxError(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("(+ 1 2")
	require.Error(t, err)
	var serr *scmerr.SyntaxError
	require.ErrorAs(t, err, &serr)
}

func TestEmptyLineIsRuntimeError(t *testing.T) {
	in := interp.New(zerolog.Nop())
	_, err := in.Run("")
	require.Error(t, err)
	var rerr *scmerr.RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestConsCarCdrInvariant(t *testing.T) {
	in := interp.New(zerolog.Nop())
	require.Equal(t, "1", run(t, in, "(car (cons 1 2))"))
	require.Equal(t, "2", run(t, in, "(cdr (cons 1 2))"))
}

func TestListTailIdentities(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(define l (list 1 2 3))")
	require.Equal(t, "(1 2 3)", run(t, in, "(list-tail l 0)"))
	require.Equal(t, "()", run(t, in, "(list-tail l 3)"))
	require.Equal(t, "1", run(t, in, "(car (list-tail l 0))"))
	require.Equal(t, run(t, in, "(car (list-tail l 1))"), run(t, in, "(list-ref l 1)"))
}

func TestGarbageCollectedAfterEachRun(t *testing.T) {
	in := interp.New(zerolog.Nop())
	run(t, in, "(+ 1 2)")
	before := in.Live()
	run(t, in, "(cons 1 2)")
	require.Equal(t, before, in.Live(), "the unreferenced cons cell should be swept")
}
