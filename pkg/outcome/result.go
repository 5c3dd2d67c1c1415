package outcome

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result carries either a successful value of T or a composed failure
// message. Instances are immutable; every combinator either passes a failure
// through unchanged or builds a new Result.
//
// The zero value is the invalid-construction sentinel: a failure whose
// message says that no variant was chosen, distinguishing a forgotten
// constructor call from a real failure. IsEmpty detects it.
type Result[T any] struct {
	value     T
	err       error
	success   bool
	id        uuid.UUID
	createdAt time.Time
}

var errNotConstructed = errors.New(FailurePrefix + "invalid construction: Result was created without choosing a variant")

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		success:   true,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// SuccessNotNil keeps the legacy nil-collapse convention: a nil reference
// value produces a "Null value" failure instead of a success. Success itself
// trusts the call site.
func SuccessNotNil[T any](v T) Result[T] {
	if IsNil(v) {
		return Fail[T]("Null value")
	}
	return Success(v)
}

func Fail[T any](message string) Result[T] {
	return FailWith[T](message, "", nil)
}

// FailWith funnels message, context label and native cause through the
// configured composer.
func FailWith[T any](message, context string, cause error) Result[T] {
	return Result[T]{
		err:       errors.New(compose(message, context, cause)),
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// FailErr builds a failure from a bare native error.
func FailErr[T any](cause error) Result[T] {
	return FailWith[T]("", "", cause)
}

// FailFrom re-wraps a failure at a new payload type, preserving the message,
// id and creation time verbatim.
func FailFrom[In, Out any](r Result[In]) Result[Out] {
	return Result[Out]{
		err:       r.err,
		id:        r.id,
		createdAt: r.createdAt,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

func (r Result[T]) IsFailure() bool {
	return !r.success
}

// IsEmpty reports whether r is the zero-value sentinel.
func (r Result[T]) IsEmpty() bool {
	return !r.success && r.err == nil
}

// Value returns the payload; the zero value of T on failures.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	if r.success {
		return nil
	}
	if r.err == nil {
		return errNotConstructed
	}
	return r.err
}

// Message returns the composed failure text, empty on success.
func (r Result[T]) Message() string {
	if r.success {
		return ""
	}
	return r.Err().Error()
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) String() string {
	if r.success {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return r.Message()
}

// Unwrap returns the successful value and panics on a failure, embedding the
// stored failure text.
func (r Result[T]) Unwrap() T {
	if !r.success {
		panic("unwrap of failed Result: " + r.Message())
	}
	return r.value
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if r.success {
		return r.value
	}
	return fallback
}

// UnwrapOrElse evaluates fallback only on a failure.
func (r Result[T]) UnwrapOrElse(fallback func() T) T {
	if r.success {
		return r.value
	}
	return fallback()
}

// OkIf re-validates an already successful value; failures pass through
// untouched. The label must be passed explicitly, Go cannot capture the
// caller's predicate expression.
func (r Result[T]) OkIf(pred func(T) bool, label string) Result[T] {
	if !r.success {
		return r
	}
	if pred(r.value) {
		return r
	}
	return Fail[T](label)
}

// Map transforms the successful value within the same type. The mapper runs
// outside any trap: a panicking mapper propagates to the caller.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if !r.success {
		return r
	}
	return Success(f(r.value))
}

// Do runs action on the successful value and returns r unchanged.
func (r Result[T]) Do(action func(T)) Result[T] {
	if r.success {
		action(r.value)
	}
	return r
}

// DoIfFailure runs action with the failure error and returns r unchanged.
func (r Result[T]) DoIfFailure(action func(error)) Result[T] {
	if !r.success {
		action(r.Err())
	}
	return r
}

// Try runs action on the successful value inside a trap: a returned error or
// a panic becomes a failure labelled with label. Failures pass through.
func (r Result[T]) Try(action func(T) error, label string) Result[T] {
	if !r.success {
		return r
	}
	v := r.value
	return trap(label, func() (T, error) {
		return v, action(v)
	})
}

// Unit drops the payload.
func (r Result[T]) Unit() Unit {
	if r.success {
		return Unit{id: r.id, createdAt: r.createdAt}
	}
	return Unit{err: r.Err(), failed: true, id: r.id, createdAt: r.createdAt}
}

// IntoOption converts a success to Some and a failure to None. The failure
// message is discarded, lossy by design.
func (r Result[T]) IntoOption() Option[T] {
	if r.success {
		return Some(r.value)
	}
	return None[T]()
}

// Map transforms the successful value to a new payload type.
func Map[In, Out any](r Result[In], f func(In) Out) Result[Out] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return Success(f(r.value))
}

// FlatMap substitutes the result of f for a success; failures short-circuit.
func FlatMap[In, Out any](r Result[In], f func(In) Result[Out]) Result[Out] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return f(r.value)
}

// FlatMapUnit gates a payload-less continuation on a successful value.
func FlatMapUnit[T any](r Result[T], f func(T) Unit) Unit {
	if r.IsFailure() {
		return r.Unit()
	}
	return f(r.value)
}

// Match collapses a Result into a plain value; exactly one branch runs.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func(error) U) U {
	if r.IsSuccess() {
		return onSuccess(r.value)
	}
	return onFailure(r.Err())
}

// TryMap maps the successful value inside a trap: a returned error or a
// panic becomes a failure labelled with label.
func TryMap[In, Out any](r Result[In], f func(In) (Out, error), label string) Result[Out] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	v := r.value
	return trap(label, func() (Out, error) {
		return f(v)
	})
}

func trap[T any](label string, f func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				res = FailWith[T]("recovered from panic", label, err)
			} else {
				res = FailWith[T](fmt.Sprintf("recovered from panic: %v", rec), label, nil)
			}
		}
	}()
	v, err := f()
	if err != nil {
		return FailWith[T]("", label, err)
	}
	return Success(v)
}
