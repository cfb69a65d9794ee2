package solo

import (
	"github.com/ib-77/appl/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// Switch moves a successful result onto the next track; failures and
// cancels are forwarded untouched.
func Switch[In, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.Forward[In, Out](input)
}

func Map[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.Forward[In, Out](input)
}

// Try calls a function returning (Out, error). A returned context
// cancellation or deadline error becomes a cancel, any other error a
// failure.
func Try[In, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return rop.Forward[In, Out](input)
	}

	out, err := onTryExecute(input.Result())
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.Cancel[Out](err)
		}
		return rop.Fail[Out](err)
	}
	return rop.Success(out)
}

func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func Finally[In, Out any](input rop.WithCancel[In],
	onSuccess func(r In) Out,
	onError func(err error) Out,
	onCancel func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsCancel() {
		return onCancel(input.Err())
	} else {
		return onError(input.Err())
	}
}
