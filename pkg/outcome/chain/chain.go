package chain

import (
	"github.com/akt/konstrukt/pkg/outcome"
	"github.com/akt/konstrukt/pkg/outcome/solo"
)

// Chain wraps an outcome.Outcome to enable fluent chaining
type Chain[T any] struct {
	outcome outcome.Outcome[T]
}

// Start creates a new chain from an outcome.Outcome
func Start[T any](o outcome.Outcome[T]) *Chain[T] {
	return &Chain[T]{outcome: o}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{outcome: outcome.Success(value)}
}

// Outcome returns the underlying outcome.Outcome
func (c *Chain[T]) Outcome() outcome.Outcome[T] {
	return c.outcome
}

// Then chains a function that returns outcome.Outcome[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) outcome.Outcome[U]) *Chain[U] {
	return &Chain[U]{outcome: solo.Switch(c.outcome, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{outcome: solo.Try(c.outcome, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{outcome: solo.Map(c.outcome, onSuccess)}
}

// Ensure performs a side effect on success without changing the outcome
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{
		outcome: solo.Tee(c.outcome, func(o outcome.Outcome[T]) {
			onSuccess(o.Value())
		}),
	}
}

// Recover replaces a failure with the value computed from its error
func (c *Chain[T]) Recover(onError func(error) T) *Chain[T] {
	return &Chain[T]{outcome: solo.Recover(c.outcome, onError)}
}

// OrElse collapses the chain to its value or the fallback's
func (c *Chain[T]) OrElse(fallback func() T) T {
	return c.outcome.ValueOrElse(fallback)
}

// Or returns the first successful chain, or the first failure if none succeeded.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	var firstFailure *Chain[T]
	for _, ch := range append([]*Chain[T]{c}, alternatives...) {
		if ch.outcome.IsSuccess() {
			return ch
		}
		if firstFailure == nil && ch.outcome.IsFailure() {
			firstFailure = ch
		}
	}

	if firstFailure != nil {
		return firstFailure
	}
	return c
}

// And returns the first failed chain, or the last one if all succeeded.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if ch.outcome.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.outcome, onSuccess, onFailure)
}
