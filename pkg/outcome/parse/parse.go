package parse

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Int(s string) outcome.Option[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return outcome.None[int]()
	}
	return outcome.Some(n)
}

func Int64(s string) outcome.Option[int64] {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return outcome.None[int64]()
	}
	return outcome.Some(n)
}

func Uint64(s string) outcome.Option[uint64] {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return outcome.None[uint64]()
	}
	return outcome.Some(n)
}

func Float64(s string) outcome.Option[float64] {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return outcome.None[float64]()
	}
	return outcome.Some(f)
}

func Bool(s string) outcome.Option[bool] {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return outcome.None[bool]()
	}
	return outcome.Some(b)
}

func Duration(s string) outcome.Option[time.Duration] {
	d, err := time.ParseDuration(s)
	if err != nil {
		return outcome.None[time.Duration]()
	}
	return outcome.Some(d)
}

func Time(layout, s string) outcome.Option[time.Time] {
	t, err := time.Parse(layout, s)
	if err != nil {
		return outcome.None[time.Time]()
	}
	return outcome.Some(t)
}

func UUID(s string) outcome.Option[uuid.UUID] {
	id, err := uuid.Parse(s)
	if err != nil {
		return outcome.None[uuid.UUID]()
	}
	return outcome.Some(id)
}

// IntResult keeps the native parse error in the failure message.
func IntResult(s string) outcome.Result[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return outcome.FailErr[int](err)
	}
	return outcome.Success(n)
}

// Float64Result keeps the native parse error in the failure message.
func Float64Result(s string) outcome.Result[float64] {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return outcome.FailErr[float64](err)
	}
	return outcome.Success(f)
}
