package seq

import (
	"iter"

	"github.com/ib-77/outcome/pkg/outcome"
)

func FirstOrNone[T any](s iter.Seq[T]) outcome.Option[T] {
	for v := range s {
		return outcome.Some(v)
	}
	return outcome.None[T]()
}

func FirstMatchOrNone[T any](s iter.Seq[T], pred func(T) bool) outcome.Option[T] {
	for v := range s {
		if pred(v) {
			return outcome.Some(v)
		}
	}
	return outcome.None[T]()
}

// LastOrNone keeps the most recent element while scanning once, so it works
// for sources that can only be enumerated forward a single time.
func LastOrNone[T any](s iter.Seq[T]) outcome.Option[T] {
	last := outcome.None[T]()
	for v := range s {
		last = outcome.Some(v)
	}
	return last
}

func LastMatchOrNone[T any](s iter.Seq[T], pred func(T) bool) outcome.Option[T] {
	last := outcome.None[T]()
	for v := range s {
		if pred(v) {
			last = outcome.Some(v)
		}
	}
	return last
}

// FirstSuccessOrFail returns the first successful element, stopping the scan
// there. When none succeeds the individual failure messages are deliberately
// not aggregated; a fixed message is returned instead.
func FirstSuccessOrFail[T any](s iter.Seq[outcome.Result[T]]) outcome.Result[T] {
	for r := range s {
		if r.IsSuccess() {
			return r
		}
	}
	return outcome.Fail[T]("no element returned Success")
}

// FirstSomeOrNone returns the first present element, stopping the scan there.
func FirstSomeOrNone[T any](s iter.Seq[outcome.Option[T]]) outcome.Option[T] {
	for o := range s {
		if o.IsSome() {
			return o
		}
	}
	return outcome.None[T]()
}

// UnwrapPresent lazily filters out None elements and unwraps the rest.
func UnwrapPresent[T any](s iter.Seq[outcome.Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range s {
			if o.IsSome() && !yield(o.Unwrap()) {
				return
			}
		}
	}
}

// UnwrapSuccesses lazily filters out failures and unwraps the rest.
func UnwrapSuccesses[T any](s iter.Seq[outcome.Result[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range s {
			if r.IsSuccess() && !yield(r.Value()) {
				return
			}
		}
	}
}

// AsPresent lifts every element into Some.
func AsPresent[T any](s iter.Seq[T]) iter.Seq[outcome.Option[T]] {
	return func(yield func(outcome.Option[T]) bool) {
		for v := range s {
			if !yield(outcome.Some(v)) {
				return
			}
		}
	}
}

// AsSuccess lifts every element into Success.
func AsSuccess[T any](s iter.Seq[T]) iter.Seq[outcome.Result[T]] {
	return func(yield func(outcome.Result[T]) bool) {
		for v := range s {
			if !yield(outcome.Success(v)) {
				return
			}
		}
	}
}
