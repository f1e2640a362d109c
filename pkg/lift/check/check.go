// Package check holds statement-level invariant helpers. They panic instead of
// returning errors and are never compiled out.
package check

import "github.com/pkg/errors"

var ErrAssertion = errors.New("assertion failed")

// AssertThat panics with ErrAssertion, annotated with the caller's stack,
// when condition is false.
func AssertThat(condition bool) {
	if !condition {
		panic(errors.WithStack(ErrAssertion))
	}
}

// Must returns v, or panics with err annotated with a stack trace.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(errors.WithStack(err))
	}
	return v
}
