package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type variant uint8

const (
	invalid variant = iota
	success
	failure
)

// Outcome is either a successful value of type T or a failure error.
// It is immutable once built by Success or Failure.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	variant   variant
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		variant:   success,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure does not inspect err; a nil error still yields a failed outcome.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		variant:   failure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of lifts the usual (value, error) return pair.
func Of[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Value returns the held value.
// It panics with *InvalidStateError if o is a failure.
func (o Outcome[T]) Value() T {
	o.mustBeValid("Value")
	if o.variant != success {
		panic(newInvalidState("Value", o.variant))
	}
	return o.value
}

// Err returns the held error.
// It panics with *InvalidStateError if o is a success.
func (o Outcome[T]) Err() error {
	o.mustBeValid("Err")
	if o.variant != failure {
		panic(newInvalidState("Err", o.variant))
	}
	return o.err
}

// ValueOrElse returns the held value, or the result of fallback for a failure.
// fallback is called at most once and only for a failure.
func (o Outcome[T]) ValueOrElse(fallback func() T) T {
	o.mustBeValid("ValueOrElse")
	if o.variant == success {
		return o.value
	}
	return fallback()
}

// Consume calls exactly one of onValue or onError, once.
func (o Outcome[T]) Consume(onValue func(T), onError func(error)) {
	o.mustBeValid("Consume")
	if o.variant == success {
		onValue(o.value)
		return
	}
	onError(o.err)
}

// Get returns the outcome as a (value, error) pair without panicking.
// A failure built from a nil error reports ErrNilFailure.
func (o Outcome[T]) Get() (T, error) {
	o.mustBeValid("Get")
	if o.variant == success {
		return o.value, nil
	}
	var zero T
	if o.err == nil {
		return zero, ErrNilFailure
	}
	return zero, o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.variant == success
}

func (o Outcome[T]) IsFailure() bool {
	return o.variant == failure
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) String() string {
	switch o.variant {
	case success:
		return fmt.Sprintf("Success(%v)", o.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", o.err)
	default:
		return "Outcome(invalid)"
	}
}

// Match folds o into R with exactly one of the two handlers.
func Match[T, R any](o Outcome[T], onValue func(T) R, onError func(error) R) R {
	o.mustBeValid("Match")
	if o.variant == success {
		return onValue(o.value)
	}
	return onError(o.err)
}

func (o Outcome[T]) mustBeValid(op string) {
	if o.variant == invalid {
		panic(newInvalidState(op, invalid))
	}
}
