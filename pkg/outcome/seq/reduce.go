package seq

import (
	"iter"
	"slices"
	"strings"

	"github.com/ib-77/outcome/pkg/outcome"
)

// TryUnwrapAll unwraps every element, or returns the first failure found with
// its message preserved verbatim.
func TryUnwrapAll[T any](s iter.Seq[outcome.Result[T]]) outcome.Result[[]T] {
	var vs []T
	for r := range s {
		if r.IsFailure() {
			return outcome.FailFrom[T, []T](r)
		}
		vs = append(vs, r.Value())
	}
	return outcome.Success(vs)
}

// TryUnwrapAllOptions fails when any element is None, otherwise unwraps them
// all. The scan collects in a single pass; a second pass over a one-shot
// source is impossible.
func TryUnwrapAllOptions[T any](s iter.Seq[outcome.Option[T]]) outcome.Result[[]T] {
	var vs []T
	for o := range s {
		if o.IsNone() {
			return outcome.Fail[[]T]("sequence contains a None value")
		}
		vs = append(vs, o.Unwrap())
	}
	return outcome.Success(vs)
}

// Reduce collapses a sequence of Units. With stopAtFirstFailure the first
// failure is returned verbatim and the scan stops there; otherwise every
// failure message is collected, one per line, into a single failure.
func Reduce(s iter.Seq[outcome.Unit], stopAtFirstFailure bool) outcome.Unit {
	if stopAtFirstFailure {
		for u := range s {
			if u.IsFailure() {
				return u
			}
		}
		return outcome.Ok()
	}

	var msgs []string
	for u := range s {
		if u.IsFailure() {
			msgs = append(msgs, u.Message())
		}
	}
	if len(msgs) == 0 {
		return outcome.Ok()
	}
	return outcome.FailUnit(strings.Join(msgs, "\n"))
}

// ReduceAll is the variadic convenience over Reduce, stopping at the first
// failure.
func ReduceAll(results ...outcome.Unit) outcome.Unit {
	return Reduce(slices.Values(results), true)
}

// Fold unwraps every element and folds the values with combine. A failing
// element propagates as in TryUnwrapAll.
func Fold[T any](s iter.Seq[outcome.Result[T]], combine func(T, T) T) outcome.Result[T] {
	all := TryUnwrapAll(s)
	if all.IsFailure() {
		return outcome.FailFrom[[]T, T](all)
	}
	vs := all.Value()
	if len(vs) == 0 {
		return outcome.Fail[T]("cannot reduce an empty sequence")
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = combine(acc, v)
	}
	return outcome.Success(acc)
}

// FoldSeed is Fold with an explicit seed; an empty sequence yields the seed.
func FoldSeed[T, U any](s iter.Seq[outcome.Result[T]], combine func(U, T) U, seed U) outcome.Result[U] {
	all := TryUnwrapAll(s)
	if all.IsFailure() {
		return outcome.FailFrom[[]T, U](all)
	}
	acc := seed
	for _, v := range all.Value() {
		acc = combine(acc, v)
	}
	return outcome.Success(acc)
}
