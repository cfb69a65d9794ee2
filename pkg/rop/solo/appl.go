package solo

import (
	"github.com/ib-77/appl/pkg/applicative"
	"github.com/ib-77/appl/pkg/either"
	"github.com/ib-77/appl/pkg/rop"
)

// Apply applies the function held by ff to the value held by fx. A failed
// or cancelled ff is forwarded without looking at fx, then a failed or
// cancelled fx is forwarded. A nil function fails with rop.ErrNilFunc.
func Apply[A, B any](ff rop.Result[func(A) B], fx rop.Result[A]) rop.Result[B] {
	if ff.IsFailure() {
		return rop.Forward[func(A) B, B](ff)
	}
	if fx.IsFailure() {
		return rop.Forward[A, B](fx)
	}

	f := ff.Result()
	if f == nil {
		return rop.Fail[B](rop.ErrNilFunc)
	}
	return rop.Success(f(fx.Result()))
}

func ApplyFunc[A, B any](f func(A) B, fx rop.Result[A]) rop.Result[B] {
	return Apply(rop.Success(f), fx)
}

// Action returns fb unless fa failed or was cancelled.
func Action[A, B any](fa rop.Result[A], fb rop.Result[B]) rop.Result[B] {
	if fa.IsFailure() {
		return rop.Forward[A, B](fa)
	}
	return fb
}

// Appl is the Result applicative for functions from A to B.
type Appl[A, B any] struct{}

var (
	_ applicative.Applicative[int, string, rop.Result[func(int) string], rop.Result[int], rop.Result[string]] = Appl[int, string]{}
	_ applicative.Functor[int, string, rop.Result[int], rop.Result[string]]                                  = Appl[int, string]{}
)

func (Appl[A, B]) Pure(f func(A) B) rop.Result[func(A) B] {
	return rop.Success(f)
}

func (Appl[A, B]) Map(fa rop.Result[A], f func(A) B) rop.Result[B] {
	return Map(fa, f)
}

func (Appl[A, B]) Apply(ff rop.Result[func(A) B], fx rop.Result[A]) rop.Result[B] {
	return Apply(ff, fx)
}

func (Appl[A, B]) Action(fa rop.Result[A], fb rop.Result[B]) rop.Result[B] {
	return Action(fa, fb)
}

// ToEither drops the failure/cancel distinction: both become a Left
// holding the error.
func ToEither[T any](input rop.WithError[T]) either.Either[error, T] {
	if input.IsSuccess() {
		return either.Right[error](input.Result())
	}
	return either.Left[error, T](input.Err())
}

// FromEither turns a Right into a success and a Left into a failure, or a
// cancel when the error is a context cancellation.
func FromEither[T any](e either.Either[error, T]) rop.Result[T] {
	return either.Match(e,
		func(err error) rop.Result[T] {
			if rop.IsCancellationError(err) {
				return rop.Cancel[T](err)
			}
			return rop.Fail[T](err)
		},
		rop.Success[T])
}
