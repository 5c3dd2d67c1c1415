// Package outcome provides algebraic wrappers for values that may be absent
// (Option[T]) or computations that may fail (Result[T], Unit), together with
// the combinators to chain them without branching at every step.
//
// Core pieces:
// - Option[T]: Some/None with unwrap, filter, map and match operations
// - Result[T]: Success or a composed failure message, with payload threading
// - Unit: payload-less result for validations and effects
// - Map/FlatMap/Match/TryMap: package-level combinators that change the
//   payload type (Go methods cannot introduce type parameters)
// - Try/TryMap: run callbacks inside a trap that converts returned errors
//   and panics into failures; Map/Do/Match install no trap
// - SetComposer/IncludeStackTrace: process-wide failure rendering knobs,
//   configured once during startup
//
// Sequence-level counterparts live in the seq subpackage, fluent chaining in
// chain, and parse-or-None helpers in parse.
package outcome
