// Package scmerr defines the three error kinds the interpreter surfaces to
// its caller: SyntaxError, NameError, and RuntimeError. Every other
// package (heap, token, parser, interp) constructs errors through this
// package so callers can tell the kinds apart with errors.As.
package scmerr

import "github.com/pkg/errors"

// WrongArgs is the umbrella message the source uses for arity and type
// failures in non-syntactic primitives.
const WrongArgs = "wrong function arguments"

// SyntaxError reports malformed token streams, unbalanced parens, and bad
// arity in syntactic primitives (if, define, lambda, set!, set-car!, set-cdr!).
type SyntaxError struct {
	msg string
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.msg }

// NewSyntax builds a SyntaxError carrying a stack trace.
func NewSyntax(msg string) error {
	return errors.WithStack(&SyntaxError{msg: msg})
}

// NameError reports an unresolved symbol during resolve or set!.
type NameError struct {
	msg string
}

func (e *NameError) Error() string { return "name error: " + e.msg }

// NewName builds a NameError carrying a stack trace.
func NewName(msg string) error {
	return errors.WithStack(&NameError{msg: msg})
}

// RuntimeError reports type mismatches, arity violations in non-syntactic
// primitives, improper lists where a proper one is required, out-of-range
// indices, applying a non-function, and similar failures.
type RuntimeError struct {
	msg          string
	improperList bool
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.msg }

// NewRuntime builds a RuntimeError carrying a stack trace.
func NewRuntime(msg string) error {
	return errors.WithStack(&RuntimeError{msg: msg})
}

// NewImproperList builds the RuntimeError raised when a proper list was
// required but an improper one was found while walking a Pair chain.
func NewImproperList() error {
	return errors.WithStack(&RuntimeError{msg: WrongArgs, improperList: true})
}

// IsImproperList reports whether err is the RuntimeError raised by
// NewImproperList.
func IsImproperList(err error) bool {
	var rerr *RuntimeError
	return errors.As(err, &rerr) && rerr.improperList
}
