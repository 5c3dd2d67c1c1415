package seq

import (
	"fmt"

	"github.com/ib-77/outcome/pkg/outcome"
)

// GetOrNone returns the element at index i, or None when i is out of range.
func GetOrNone[T any](s []T, i int) outcome.Option[T] {
	if i < 0 || i >= len(s) {
		return outcome.None[T]()
	}
	return outcome.Some(s[i])
}

// TrySet writes v at index i, failing when i is out of range.
func TrySet[T any](s []T, i int, v T) outcome.Unit {
	if i < 0 || i >= len(s) {
		return outcome.FailUnit(fmt.Sprintf("index %d out of range for length %d", i, len(s)))
	}
	s[i] = v
	return outcome.Ok()
}
