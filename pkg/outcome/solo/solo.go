package solo

import (
	"errors"

	"github.com/akt/konstrukt/pkg/outcome"
)

func Succeed[T any](input T) outcome.Outcome[T] {
	return outcome.Success(input)
}

func Fail[T any](err error) outcome.Outcome[T] {
	return outcome.Failure[T](err)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) outcome.Outcome[T] {
	return AndValidate(Succeed(input), validate)
}

func AndValidate[T any](input outcome.Outcome[T],
	validate func(in T) (valid bool, errMsg string)) outcome.Outcome[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Value()); !isValid {
			return outcome.Failure[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against input and joins their errors.
// A failed input is returned as is.
func ValidateAll[T any](
	input outcome.Outcome[T],
	breakOnError bool, // exit on first error
	validators ...func(in outcome.Outcome[T]) outcome.Outcome[T]) outcome.Outcome[T] {

	if !input.IsSuccess() {
		return input
	}

	var err error
	for _, validate := range validators {
		current := validate(input)
		if current.IsSuccess() {
			continue
		}

		e := outcome.GetErrors(err)
		e = append(e, current.Err())
		err = errors.Join(e...)

		if breakOnError {
			break
		}
	}

	if outcome.IsNil(err) {
		return input
	}
	return outcome.Failure[T](err)
}

func Switch[In any, Out any](input outcome.Outcome[In],
	onSuccess func(r In) outcome.Outcome[Out]) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return outcome.Failure[Out](input.Err())
}

func Map[In any, Out any](input outcome.Outcome[In],
	onSuccess func(r In) Out) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(input.Value()))
	}
	return outcome.Failure[Out](input.Err())
}

func Tee[T any](input outcome.Outcome[T],
	onSuccess func(r outcome.Outcome[T])) outcome.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func TeeIf[T any](input outcome.Outcome[T],
	condition func(r outcome.Outcome[T]) bool,
	onSuccessAndCondition func(r outcome.Outcome[T])) outcome.Outcome[T] {

	if input.IsSuccess() && condition(input) {
		onSuccessAndCondition(input)
	}

	return input
}

// DoubleTee is Consume that hands the outcome back.
func DoubleTee[T any](input outcome.Outcome[T],
	onSuccess func(r T),
	onError func(err error)) outcome.Outcome[T] {

	input.Consume(onSuccess, onError)
	return input
}

func DoubleMap[In any, Out any](input outcome.Outcome[In],
	onSuccess func(r In) Out,
	onError func(err error)) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return outcome.Success(onSuccess(input.Value()))
	}

	onError(input.Err())
	return outcome.Failure[Out](input.Err())
}

func Try[In any, Out any](input outcome.Outcome[In],
	onTryExecute func(r In) (Out, error)) outcome.Outcome[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Value())
		return outcome.Of(out, err)
	}
	return outcome.Failure[Out](input.Err())
}

func FailOnError[T any](input outcome.Outcome[T],
	maybeErr func(in T) error) outcome.Outcome[T] {

	if input.IsSuccess() {
		if err := maybeErr(input.Value()); err != nil {
			return outcome.Failure[T](err)
		}
	}
	return input
}

// Recover turns a failure into a success; successes pass through.
func Recover[T any](input outcome.Outcome[T],
	onError func(err error) T) outcome.Outcome[T] {

	if input.IsFailure() {
		return outcome.Success(onError(input.Err()))
	}
	return input
}

func Finally[In, Out any](input outcome.Outcome[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {
	return outcome.Match(input, onSuccess, onError)
}

// Join feeds input through steps, passing each step's result through concat.
func Join[T any](
	input outcome.Outcome[T],
	breakOnError bool, // exit on first error
	concat func(current outcome.Outcome[T]) outcome.Outcome[T],
	steps ...func(in outcome.Outcome[T]) outcome.Outcome[T]) outcome.Outcome[T] {

	if len(steps) == 0 || concat == nil {
		return input
	}

	finalResult := concat(steps[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, step := range steps[1:] {
			nextRes := concat(step(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
