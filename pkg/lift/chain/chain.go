package chain

import (
	"github.com/ib-77/lift/pkg/lift"
	"github.com/ib-77/lift/pkg/lift/solo"
	"github.com/ib-77/lift/pkg/lift/trace"
)

// Chain wraps a lift.Failable to enable fluent chaining
type Chain[T, E any] struct {
	result lift.Failable[T, E]
}

// Start creates a new chain from a lift.Failable
func Start[T, E any](result lift.Failable[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: result}
}

// FromValue creates a new chain from an ok value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{result: lift.Ok[T, E](value)}
}

// Result returns the underlying lift.Failable
func (c *Chain[T, E]) Result() lift.Failable[T, E] {
	return c.result
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(T) U) *Chain[U, E] {
	return &Chain[U, E]{result: solo.MapFailable[T, U, E](onOk)(c.result)}
}

// MapTraced chains a pure transformation and reports the lifted stage,
// including Err inputs passing through it.
func MapTraced[T, U, E any](c *Chain[T, E], name string, onOk func(T) U, opts ...trace.Option) *Chain[U, E] {
	stage := trace.WithLogging(name, solo.MapFailable[T, U, E](onOk), opts...)
	return &Chain[U, E]{result: stage(c.result)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onOk func(T)) *Chain[T, E] {
	return &Chain[T, E]{result: solo.TeeFailable[T, E](onOk)(c.result)}
}

// Finally collapses the chain into a final result using solo.FoldFailable
func Finally[T, E, U any](c *Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return solo.FoldFailable(c.result, onOk, onErr)
}
