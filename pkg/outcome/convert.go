package outcome

// Pair is a two-field tuple built up by the append combinators.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MapAppend pairs the successful value with a derived one, keeping both.
// Failures short-circuit and f is never invoked.
func MapAppend[T, U any](r Result[T], f func(T) U) Result[Pair[T, U]] {
	if r.IsFailure() {
		return FailFrom[T, Pair[T, U]](r)
	}
	return Success(Pair[T, U]{First: r.value, Second: f(r.value)})
}

// FlatMapAppend pairs the successful value with a fallible derived one.
// The first failure wins, message preserved verbatim.
func FlatMapAppend[T, U any](r Result[T], f func(T) Result[U]) Result[Pair[T, U]] {
	if r.IsFailure() {
		return FailFrom[T, Pair[T, U]](r)
	}
	ru := f(r.value)
	if ru.IsFailure() {
		return FailFrom[U, Pair[T, U]](ru)
	}
	return Success(Pair[T, U]{First: r.value, Second: ru.value})
}

// Flatten collapses a nested Result. The outer failure wins over the inner.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.IsFailure() {
		return FailFrom[Result[T], T](r)
	}
	return r.value
}

// FlattenUnit collapses Result[Unit]: outer failure wins, then the inner
// Unit stands on its own.
func FlattenUnit(r Result[Unit]) Unit {
	if r.IsFailure() {
		return r.Unit()
	}
	return r.value
}

// FlattenOption collapses a nested Option: None at either level is None.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}
