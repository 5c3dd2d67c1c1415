// Package parse wraps the native try-parse calls for primitive types into
// the outcome wrappers: a parse failure becomes None (or, for the Result
// variants, a failure whose message carries the native parse error and thus
// the offending input).
package parse
