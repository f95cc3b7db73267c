// Package chain provides a fluent wrapper around Outcome[T]
// for building synchronous railway chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome[T] or value
// - Then: switch to a new Outcome[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/Recover: side effects on success, fallback values on failure
// - Or/And: pick the first success or the first failure among chains
// - OrElse/Finally: collapse the chain into a final value
package chain
