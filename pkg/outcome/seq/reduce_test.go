package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestTryUnwrapAll_AllOk(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[int]{outcome.Success(1), outcome.Success(2), outcome.Success(3)}
	got := TryUnwrapAll(slices.Values(rs))
	require.True(t, got.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, got.Value())
}

func TestTryUnwrapAll_FirstFailureVerbatim(t *testing.T) {
	t.Parallel()
	failed := outcome.Fail[int]("e")
	rs := []outcome.Result[int]{outcome.Success(1), failed, outcome.Fail[int]("later")}
	got := TryUnwrapAll(slices.Values(rs))
	require.True(t, got.IsFailure())
	assert.Equal(t, failed.Message(), got.Message())
	assert.NotContains(t, got.Message(), "later")
}

func TestTryUnwrapAllOptions(t *testing.T) {
	t.Parallel()
	ok := []outcome.Option[int]{outcome.Some(1), outcome.Some(2)}
	got := TryUnwrapAllOptions(slices.Values(ok))
	require.True(t, got.IsSuccess())
	assert.Equal(t, []int{1, 2}, got.Value())

	withNone := []outcome.Option[int]{outcome.Some(1), outcome.None[int]()}
	bad := TryUnwrapAllOptions(slices.Values(withNone))
	require.True(t, bad.IsFailure())
	assert.Contains(t, bad.Message(), "None")
}

func TestReduce_AllOk(t *testing.T) {
	t.Parallel()
	us := []outcome.Unit{outcome.Ok(), outcome.Ok(), outcome.Ok()}
	assert.True(t, Reduce(slices.Values(us), true).IsSuccess())
	assert.True(t, Reduce(slices.Values(us), false).IsSuccess())
}

func TestReduce_StopAtFirstFailure(t *testing.T) {
	t.Parallel()
	a := outcome.FailUnit("a")
	us := []outcome.Unit{outcome.Ok(), a, outcome.FailUnit("b")}
	got := Reduce(slices.Values(us), true)
	require.True(t, got.IsFailure())
	assert.Equal(t, a.Message(), got.Message())
	assert.NotContains(t, got.Message(), "b")
}

func TestReduce_CollectAllFailures(t *testing.T) {
	t.Parallel()
	us := []outcome.Unit{outcome.Ok(), outcome.FailUnit("a"), outcome.FailUnit("b")}
	got := Reduce(slices.Values(us), false)
	require.True(t, got.IsFailure())
	assert.Contains(t, got.Message(), "a")
	assert.Contains(t, got.Message(), "b")
}

func TestReduce_ShortCircuitStopsScan(t *testing.T) {
	t.Parallel()
	pulled := 0
	us := []outcome.Unit{outcome.FailUnit("a"), outcome.Ok()}
	got := Reduce(oneShot(us, &pulled), true)
	require.True(t, got.IsFailure())
	assert.Equal(t, 1, pulled)
}

func TestReduceAll(t *testing.T) {
	t.Parallel()
	assert.True(t, ReduceAll(outcome.Ok(), outcome.Ok()).IsSuccess())

	first := outcome.FailUnit("first")
	got := ReduceAll(outcome.Ok(), first, outcome.FailUnit("second"))
	require.True(t, got.IsFailure())
	assert.Equal(t, first.Message(), got.Message())
}

func TestFold_Sum(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[int]{
		outcome.Success(1), outcome.Success(2), outcome.Success(3), outcome.Success(4),
	}
	got := Fold(slices.Values(rs), func(a, b int) int { return a + b })
	require.True(t, got.IsSuccess())
	assert.Equal(t, 10, got.Value())
}

func TestFold_PropagatesFirstFailure(t *testing.T) {
	t.Parallel()
	failed := outcome.Fail[int]("broken element")
	rs := []outcome.Result[int]{outcome.Success(1), failed}
	got := Fold(slices.Values(rs), func(a, b int) int { return a + b })
	require.True(t, got.IsFailure())
	assert.Equal(t, failed.Message(), got.Message())
}

func TestFold_Empty(t *testing.T) {
	t.Parallel()
	got := Fold(slices.Values([]outcome.Result[int]{}), func(a, b int) int { return a + b })
	require.True(t, got.IsFailure())
	assert.Contains(t, got.Message(), "empty sequence")
}

func TestFoldSeed(t *testing.T) {
	t.Parallel()
	rs := []outcome.Result[int]{outcome.Success(2), outcome.Success(3)}
	got := FoldSeed(slices.Values(rs), func(acc string, n int) string {
		return acc + string(rune('0'+n))
	}, "n=")
	require.True(t, got.IsSuccess())
	assert.Equal(t, "n=23", got.Value())

	empty := FoldSeed(slices.Values([]outcome.Result[int]{}), func(acc string, n int) string { return acc }, "seed")
	require.True(t, empty.IsSuccess())
	assert.Equal(t, "seed", empty.Value())
}
