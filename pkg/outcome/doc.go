// Package outcome defines Outcome[T], the result of a computation that
// either succeeded with a value or failed with an error.
//
// An Outcome is built once, by Success or Failure, and never changes.
// Callers read it in one of three ways:
// - Value/Err: unchecked accessors that panic with *InvalidStateError on
//   the wrong variant
// - ValueOrElse: the value, or a lazily computed fallback for a failure
// - Consume/Match: exactly one handler per variant
//
// Get bridges back to the (value, error) pair for ordinary Go code.
package outcome
