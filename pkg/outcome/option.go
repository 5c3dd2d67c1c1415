package outcome

import "fmt"

// Option is a value that is either present (Some) or absent (None).
//
// Option is a plain comparable value struct: for comparable T, two Options
// are == exactly when both are None or both are Some with equal payloads.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// SomeNotNil keeps the legacy nil-collapse convention: a nil reference value
// becomes None. Some itself trusts the call site.
func SomeNotNil[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the present value and panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("unwrap of None value")
	}
	return o.value
}

// Expect is Unwrap with extra context in the panic message.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic("unwrap of None value: " + msg)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrElse evaluates fallback only on None.
func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

// SomeIf filters: a present value failing pred becomes None. pred is never
// invoked on None.
func (o Option[T]) SomeIf(pred func(T) bool) Option[T] {
	if o.some && !pred(o.value) {
		return None[T]()
	}
	return o
}

// Map transforms the present value within the same type. The mapper runs
// outside any trap: a panicking mapper propagates to the caller.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(f(o.value))
}

// Do runs action on the present value and returns o unchanged.
func (o Option[T]) Do(action func(T)) Option[T] {
	if o.some {
		action(o.value)
	}
	return o
}

// DoIfNone runs action on None and returns o unchanged.
func (o Option[T]) DoIfNone(action func()) Option[T] {
	if !o.some {
		action()
	}
	return o
}

// MatchDo invokes exactly one branch for its side effects.
func (o Option[T]) MatchDo(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}

// IntoResult converts Some to Success and None to a "Required value is
// None." failure.
func (o Option[T]) IntoResult() Result[T] {
	if o.some {
		return Success(o.value)
	}
	return Fail[T]("Required value is None.")
}

// IntoResultNamed folds a value name into the failure message.
func (o Option[T]) IntoResultNamed(name string) Result[T] {
	if o.some {
		return Success(o.value)
	}
	return Fail[T](fmt.Sprintf("Required value %q is None.", name))
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MatchOption collapses an Option into a plain value; exactly one branch
// runs.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MatchOptionOr is MatchOption with an eager fallback for None.
func MatchOptionOr[T, U any](o Option[T], onSome func(T) U, fallback U) U {
	if o.some {
		return onSome(o.value)
	}
	return fallback
}

// MapOption transforms the present value to a new payload type; None
// propagates untouched.
func MapOption[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return Some(f(o.value))
}

// FlatMapOption substitutes the Option returned by f for a present value,
// avoiding nested wrapping.
func FlatMapOption[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if !o.some {
		return None[Out]()
	}
	return f(o.value)
}

// TryOption runs action on a present value inside a trap. Unlike Do, calling
// it on None is reported as a failure rather than skipped.
func TryOption[T any](o Option[T], action func(T) error, label string) Result[T] {
	if !o.some {
		return FailWith[T]("Try called on a None value", label, nil)
	}
	v := o.value
	return trap(label, func() (T, error) {
		return v, action(v)
	})
}

// TryMapOption maps a present value inside a trap; None is reported as a
// failure.
func TryMapOption[In, Out any](o Option[In], f func(In) (Out, error), label string) Result[Out] {
	if !o.some {
		return FailWith[Out]("TryMap called on a None value", label, nil)
	}
	v := o.value
	return trap(label, func() (Out, error) {
		return f(v)
	})
}
