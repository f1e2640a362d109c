package chain

import (
	"github.com/ib-77/lift/pkg/lift"
	"github.com/ib-77/lift/pkg/lift/solo"
	"github.com/ib-77/lift/pkg/lift/trace"
)

// OptionalChain is the lift.Optional counterpart of Chain.
type OptionalChain[T any] struct {
	result lift.Optional[T]
}

func StartOptional[T any](result lift.Optional[T]) *OptionalChain[T] {
	return &OptionalChain[T]{result: result}
}

func FromOptionalValue[T any](value T) *OptionalChain[T] {
	return &OptionalChain[T]{result: lift.Present(value)}
}

func (c *OptionalChain[T]) Result() lift.Optional[T] {
	return c.result
}

func MapOptional[T, U any](c *OptionalChain[T], onPresent func(T) U) *OptionalChain[U] {
	return &OptionalChain[U]{result: solo.MapOptional(onPresent)(c.result)}
}

func MapOptionalTraced[T, U any](c *OptionalChain[T], name string, onPresent func(T) U,
	opts ...trace.Option) *OptionalChain[U] {
	stage := trace.WithLogging(name, solo.MapOptional(onPresent), opts...)
	return &OptionalChain[U]{result: stage(c.result)}
}

func (c *OptionalChain[T]) Ensure(onPresent func(T)) *OptionalChain[T] {
	return &OptionalChain[T]{result: solo.TeeOptional(onPresent)(c.result)}
}

func FinallyOptional[T, U any](c *OptionalChain[T], onPresent func(T) U, onAbsent func() U) U {
	return solo.FoldOptional(c.result, onPresent, onAbsent)
}
