package lift

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnclassified is returned by Classify for values that are neither
// an error nor of the requested type.
var ErrUnclassified = errors.New("value is neither an error nor of the expected type")

// Failable holds either a value of type T or an error payload of type E.
// The payload is opaque: nothing in this module inspects or rewraps it.
type Failable[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Result is a Failable whose payload is a Go error.
type Result[T any] = Failable[T, error]

func Ok[T, E any](v T) Failable[T, E] {
	return Failable[T, E]{value: v}
}

func Err[T, E any](e E) Failable[T, E] {
	return Failable[T, E]{err: e, failed: true}
}

// Try converts a (value, error) pair into a Result.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Classify sorts a raw value into Ok or Err. An error value becomes the Err
// payload as is.
func Classify[T any](x any) Result[T] {
	switch v := x.(type) {
	case error:
		return Err[T](v)
	case T:
		return Ok[T, error](v)
	default:
		return Err[T](errors.Wrapf(ErrUnclassified, "got %T", x))
	}
}

func (f Failable[T, E]) IsOk() bool {
	return !f.failed
}

func (f Failable[T, E]) IsErr() bool {
	return f.failed
}

func (f Failable[T, E]) Get() (T, bool) {
	return f.value, !f.failed
}

// Value returns the ok value, or the zero T for the error variant.
func (f Failable[T, E]) Value() T {
	return f.value
}

// Err returns the error payload, or the zero E for the ok variant.
func (f Failable[T, E]) Err() E {
	return f.err
}

func (f Failable[T, E]) OrElse(fallback T) T {
	if f.failed {
		return fallback
	}
	return f.value
}

func (f Failable[T, E]) String() string {
	if f.failed {
		return fmt.Sprintf("Err(%v)", f.err)
	}
	return fmt.Sprintf("Ok(%v)", f.value)
}
