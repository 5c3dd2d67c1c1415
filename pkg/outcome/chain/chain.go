package chain

import "github.com/ib-77/outcome/pkg/outcome"

// Chain wraps an outcome.Result to enable fluent chaining.
type Chain[T any] struct {
	res outcome.Result[T]
}

// Start creates a new chain from an outcome.Result.
func Start[T any](r outcome.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start(outcome.Success(v))
}

// Result returns the underlying outcome.Result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes functions that already return outcome.Result[T].
func (c Chain[T]) Then(onSuccess func(t T) outcome.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Value())}
}

// ThenTry composes functions that return (T, error), trapping errors and
// panics into failures labelled with label.
func (c Chain[T]) ThenTry(try func(t T) (T, error), label string) Chain[T] {
	return Chain[T]{res: outcome.TryMap(c.res, try, label)}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: c.res.Map(onSuccess)}
}

// Validate re-checks the successful value, failing with label when pred does
// not hold.
func (c Chain[T]) Validate(pred func(t T) bool, label string) Chain[T] {
	return Chain[T]{res: c.res.OkIf(pred, label)}
}

// Ensure triggers side effects for success or failure without changing the
// result. Nil callbacks are safe.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Or returns the first successful chain; if neither succeeded, the first
// failure is kept.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failing chain, otherwise the required one.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return outcome.Match(c.res, onSuccess, onFailure)
}
