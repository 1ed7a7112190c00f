package core

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind classifies evaluator failures, per the error kinds the
// evaluator and its collaborators can raise.
type ErrorKind string

const (
	// ErrUnknownOperator is raised by Sat when a Formula's dynamic type is
	// not one of the closed set of shapes the evaluator dispatches on.
	ErrUnknownOperator ErrorKind = "UnknownOperator"
	// ErrNonAtomicNegation is raised when Not wraps a non-atomic argument.
	ErrNonAtomicNegation ErrorKind = "NonAtomicNegation"
	// ErrMalformedLTS is raised when an LTS fails Validate: a state id is
	// repeated, a transition references an unknown state, duplicates a
	// (state, action) pair, has
	// an empty outcome set, or uses the reserved τ action as a source label.
	ErrMalformedLTS ErrorKind = "MalformedLTS"
	// ErrInvariant is raised when an internal invariant the evaluator
	// depends on does not hold — chiefly the fixed-point safety bound.
	ErrInvariant ErrorKind = "Invariant"
)

// Error is the evaluator's error type. Callers that need to distinguish
// failure modes should use errors.As against *Error and inspect Kind.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.msg) }

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return pkgerrors.WithStack(&Error{Kind: kind, msg: fmt.Sprintf(format, args...)})
}

func errUnknownOperator(shape string) error {
	return newError(ErrUnknownOperator, "unrecognised formula shape %s", shape)
}

func errNonAtomicNegation(shape string) error {
	return newError(ErrNonAtomicNegation, "not(%s): argument is not atomic", shape)
}

func errMalformedLTS(format string, args ...interface{}) error {
	return newError(ErrMalformedLTS, format, args...)
}

func errInvariant(format string, args ...interface{}) error {
	return newError(ErrInvariant, format, args...)
}

// KindOf reports the ErrorKind carried by err, or the empty string if err
// was not raised by this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
