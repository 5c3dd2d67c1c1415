package seq

import (
	"iter"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Map lifts outcome.Map over a sequence of results. Pure projection, no
// aggregation.
func Map[In, Out any](s iter.Seq[outcome.Result[In]], f func(In) Out) iter.Seq[outcome.Result[Out]] {
	return func(yield func(outcome.Result[Out]) bool) {
		for r := range s {
			if !yield(outcome.Map(r, f)) {
				return
			}
		}
	}
}

// FlatMap lifts outcome.FlatMap over a sequence of results.
func FlatMap[In, Out any](s iter.Seq[outcome.Result[In]], f func(In) outcome.Result[Out]) iter.Seq[outcome.Result[Out]] {
	return func(yield func(outcome.Result[Out]) bool) {
		for r := range s {
			if !yield(outcome.FlatMap(r, f)) {
				return
			}
		}
	}
}

// Do lifts Result.Do over a sequence; the action runs once per consumption.
func Do[T any](s iter.Seq[outcome.Result[T]], action func(T)) iter.Seq[outcome.Result[T]] {
	return func(yield func(outcome.Result[T]) bool) {
		for r := range s {
			if !yield(r.Do(action)) {
				return
			}
		}
	}
}

// Try lifts Result.Try over a sequence.
func Try[T any](s iter.Seq[outcome.Result[T]], action func(T) error, label string) iter.Seq[outcome.Result[T]] {
	return func(yield func(outcome.Result[T]) bool) {
		for r := range s {
			if !yield(r.Try(action, label)) {
				return
			}
		}
	}
}

// TryMap lifts outcome.TryMap over a sequence.
func TryMap[In, Out any](s iter.Seq[outcome.Result[In]], f func(In) (Out, error), label string) iter.Seq[outcome.Result[Out]] {
	return func(yield func(outcome.Result[Out]) bool) {
		for r := range s {
			if !yield(outcome.TryMap(r, f, label)) {
				return
			}
		}
	}
}

// Match lifts outcome.Match over a sequence, collapsing each element.
func Match[T, U any](s iter.Seq[outcome.Result[T]], onSuccess func(T) U, onFailure func(error) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for r := range s {
			if !yield(outcome.Match(r, onSuccess, onFailure)) {
				return
			}
		}
	}
}

// MapOptions lifts outcome.MapOption over a sequence of options.
func MapOptions[In, Out any](s iter.Seq[outcome.Option[In]], f func(In) Out) iter.Seq[outcome.Option[Out]] {
	return func(yield func(outcome.Option[Out]) bool) {
		for o := range s {
			if !yield(outcome.MapOption(o, f)) {
				return
			}
		}
	}
}

// FlatMapOptions lifts outcome.FlatMapOption over a sequence of options.
func FlatMapOptions[In, Out any](s iter.Seq[outcome.Option[In]], f func(In) outcome.Option[Out]) iter.Seq[outcome.Option[Out]] {
	return func(yield func(outcome.Option[Out]) bool) {
		for o := range s {
			if !yield(outcome.FlatMapOption(o, f)) {
				return
			}
		}
	}
}

// DoOptions lifts Option.Do over a sequence of options.
func DoOptions[T any](s iter.Seq[outcome.Option[T]], action func(T)) iter.Seq[outcome.Option[T]] {
	return func(yield func(outcome.Option[T]) bool) {
		for o := range s {
			if !yield(o.Do(action)) {
				return
			}
		}
	}
}
