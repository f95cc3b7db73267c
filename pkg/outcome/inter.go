package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that hold a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

// Consumer is the branching read side of an outcome.
type Consumer[T any] interface {
	ValueOrElse(fallback func() T) T
	Consume(onValue func(T), onError func(error))
}

var (
	_ WithError[any] = Outcome[any]{}
	_ Consumer[any]  = Outcome[any]{}
)
