package chain

import (
	"github.com/ib-77/appl/pkg/rop"
	"github.com/ib-77/appl/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: rop.Success(value)}
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.Switch(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Ap applies the function carried by cf to the value carried by cx.
// A failed cf wins over a failed cx.
func Ap[T, U any](cf *Chain[func(T) U], cx *Chain[T]) *Chain[U] {
	return &Chain[U]{result: solo.Apply(cf.result, cx.result)}
}

// Action continues with next unless c already failed or was cancelled.
func Action[T, U any](c *Chain[T], next *Chain[U]) *Chain[U] {
	return &Chain[U]{result: solo.Action(c.result, next.result)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U, onCancel func(error) U) U {
	return solo.Finally[T, U](c.result, onSuccess, onFailure, onCancel)
}
