package solo

import "github.com/ib-77/lift/pkg/lift"

func Identity[T any](v T) T {
	return v
}

// Compose returns the function that applies f and then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

func MapOptional[In, Out any](onPresent func(In) Out) func(lift.Optional[In]) lift.Optional[Out] {
	return func(input lift.Optional[In]) lift.Optional[Out] {
		if v, ok := input.Get(); ok {
			return lift.Present(onPresent(v))
		}
		return lift.Absent[Out]()
	}
}

// MapFailable passes the error payload of an Err input through untouched.
func MapFailable[In, Out, E any](onOk func(In) Out) func(lift.Failable[In, E]) lift.Failable[Out, E] {
	return func(input lift.Failable[In, E]) lift.Failable[Out, E] {
		if v, ok := input.Get(); ok {
			return lift.Ok[Out, E](onOk(v))
		}
		return lift.Err[Out](input.Err())
	}
}

func TeeOptional[T any](onPresent func(T)) func(lift.Optional[T]) lift.Optional[T] {
	return func(input lift.Optional[T]) lift.Optional[T] {
		if v, ok := input.Get(); ok {
			onPresent(v)
		}
		return input
	}
}

func TeeFailable[T, E any](onOk func(T)) func(lift.Failable[T, E]) lift.Failable[T, E] {
	return func(input lift.Failable[T, E]) lift.Failable[T, E] {
		if v, ok := input.Get(); ok {
			onOk(v)
		}
		return input
	}
}

func FoldOptional[In, Out any](input lift.Optional[In],
	onPresent func(In) Out,
	onAbsent func() Out) Out {

	if v, ok := input.Get(); ok {
		return onPresent(v)
	}
	return onAbsent()
}

func FoldFailable[In, E, Out any](input lift.Failable[In, E],
	onOk func(In) Out,
	onErr func(E) Out) Out {

	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	return onErr(input.Err())
}
