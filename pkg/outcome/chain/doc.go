// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of outcome.Result[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Validate: transform or re-validate the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick the first success or the first failure among chains
// - Finally: collapse to a concrete value via handlers
//
// Chain is ideal where lightweight synchronous chaining improves readability
// over branching on every intermediate result.
package chain
