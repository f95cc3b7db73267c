// Package solo contains single-value railway primitives that operate
// on Outcome[T]. A failure passes through every step untouched; only
// successes reach the step's function.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T]
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: move from Outcome[In] to Outcome[Out]
// - Map/DoubleMap: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Recover: replace a failure with a value
// - Finally: reduce to a concrete value via success/error handlers
package solo
