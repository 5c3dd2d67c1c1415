// Package seq lifts the scalar outcome combinators over lazy sequences and
// provides the sequence-level reduction operators. Sequences are iter.Seq
// values: projections stay lazy and are restartable exactly when the source
// is. Side effects of lifted actions run once per consumption; enumerating a
// one-shot source twice is the caller's responsibility.
//
// Highlights:
// - FirstOrNone/LastOrNone and the predicate variants: linear scans
// - FirstSuccessOrFail/FirstSomeOrNone: short-circuit at the first hit
// - UnwrapPresent/UnwrapSuccesses: lazy filters over wrapped elements
// - TryUnwrapAll: all values, or the first failure verbatim
// - Reduce/ReduceAll: collapse Units, stopping early or collecting every
//   failure message
// - Fold/FoldSeed: unwrap everything, then fold with a combine function
// - Map/FlatMap/Do/Try/TryMap/Match: elementwise lifts, pure projections
// - GetOrNone/TrySet: bounds-checked slice access
package seq
