package outcome

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is matched by every *InvalidStateError.
	ErrInvalidState = errors.New("outcome: invalid state")

	// ErrNilFailure is reported by Get for a failure built from a nil error.
	ErrNilFailure = errors.New("outcome: failure without error")
)

// InvalidStateError signals an accessor used on the wrong variant.
// It is raised with panic and marks a bug at the call site, not a
// recoverable condition.
type InvalidStateError struct {
	Op      string
	Variant string
	Msg     string
}

func newInvalidState(op string, v variant) *InvalidStateError {
	e := &InvalidStateError{Op: op}
	switch v {
	case success:
		e.Variant = "success"
		e.Msg = "no error present; computation succeeded"
	case failure:
		e.Variant = "failure"
		e.Msg = "no value present; computation failed"
	default:
		e.Variant = "zero"
		e.Msg = "outcome was not built by Success or Failure"
	}
	return e
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("outcome: %s on %s: %s", e.Op, e.Variant, e.Msg)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
