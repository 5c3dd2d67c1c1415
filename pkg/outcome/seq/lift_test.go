package seq

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestMapLift(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[int]{outcome.Success(1), outcome.Fail[int]("x"), outcome.Success(3)}
	got := slices.Collect(Map(slices.Values(rs), strconv.Itoa))

	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Value())
	assert.True(t, got[1].IsFailure())
	assert.Equal(t, rs[1].Message(), got[1].Message())
	assert.Equal(t, "3", got[2].Value())
}

func TestMapLift_Lazy(t *testing.T) {
	t.Parallel()
	calls := 0
	s := Map(slices.Values([]outcome.Result[int]{outcome.Success(1), outcome.Success(2)}),
		func(n int) int { calls++; return n })
	assert.Equal(t, 0, calls)
	FirstOrNone(s)
	assert.Equal(t, 1, calls)
}

func TestFlatMapLift(t *testing.T) {
	t.Parallel()
	nonEmpty := func(s string) outcome.Result[string] {
		if s == "" {
			return outcome.Fail[string]("empty")
		}
		return outcome.Success(s)
	}
	rs := []outcome.Result[string]{outcome.Success("a"), outcome.Success("")}
	got := slices.Collect(FlatMap(slices.Values(rs), nonEmpty))

	require.Len(t, got, 2)
	assert.True(t, got[0].IsSuccess())
	assert.True(t, got[1].IsFailure())
}

func TestDoLift(t *testing.T) {
	t.Parallel()
	var seen []int
	rs := []outcome.Result[int]{outcome.Success(1), outcome.Fail[int]("x"), outcome.Success(3)}
	got := slices.Collect(Do(slices.Values(rs), func(n int) { seen = append(seen, n) }))

	assert.Equal(t, []int{1, 3}, seen)
	require.Len(t, got, 3)
	assert.Equal(t, rs[1].Message(), got[1].Message())
}

func TestTryLift(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[int]{outcome.Success(1), outcome.Success(2)}
	got := slices.Collect(Try(slices.Values(rs), func(n int) error {
		if n == 2 {
			return errors.New("rejected")
		}
		return nil
	}, "check"))

	require.Len(t, got, 2)
	assert.True(t, got[0].IsSuccess())
	require.True(t, got[1].IsFailure())
	assert.Contains(t, got[1].Message(), "rejected")
	assert.Contains(t, got[1].Message(), "check")
}

func TestTryMapLift(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[string]{outcome.Success("4"), outcome.Success("!")}
	got := slices.Collect(TryMap(slices.Values(rs), strconv.Atoi, "atoi"))

	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Value())
	require.True(t, got[1].IsFailure())
	assert.Contains(t, got[1].Message(), `"!"`)
}

func TestMatchLift(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[int]{outcome.Success(1), outcome.Fail[int]("x")}
	got := slices.Collect(Match(slices.Values(rs),
		func(n int) string { return "ok" },
		func(err error) string { return "bad" }))
	assert.Equal(t, []string{"ok", "bad"}, got)
}

func TestMapOptionsLift(t *testing.T) {
	t.Parallel()
	os := []outcome.Option[int]{outcome.Some(2), outcome.None[int]()}
	got := slices.Collect(MapOptions(slices.Values(os), strconv.Itoa))
	assert.Equal(t, []outcome.Option[string]{outcome.Some("2"), outcome.None[string]()}, got)
}

func TestFlatMapOptionsLift(t *testing.T) {
	t.Parallel()
	half := func(n int) outcome.Option[int] {
		if n%2 != 0 {
			return outcome.None[int]()
		}
		return outcome.Some(n / 2)
	}
	os := []outcome.Option[int]{outcome.Some(4), outcome.Some(3), outcome.None[int]()}
	got := slices.Collect(FlatMapOptions(slices.Values(os), half))
	assert.Equal(t, []outcome.Option[int]{outcome.Some(2), outcome.None[int](), outcome.None[int]()}, got)
}

func TestDoOptionsLift_OncePerConsumption(t *testing.T) {
	t.Parallel()
	calls := 0
	os := []outcome.Option[int]{outcome.Some(1), outcome.Some(2)}
	s := DoOptions(slices.Values(os), func(int) { calls++ })

	_ = slices.Collect(s)
	assert.Equal(t, 2, calls)
	// a restartable source re-runs the side effect on the next consumption
	_ = slices.Collect(s)
	assert.Equal(t, 4, calls)
}
