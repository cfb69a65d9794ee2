package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the error-specialised either: a success holding T, a failure
// holding an error, or a cancel holding an error. Each constructed result
// has its own id and UTC creation time.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Forward carries a failed or cancelled result over to another value type,
// keeping its id, creation time and error. Forwarding a success yields a
// failure with ErrForwardedSuccess.
func Forward[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		return Fail[Out](ErrForwardedSuccess)
	}
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// IsFailure is true for failed and cancelled results alike.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	switch {
	case r.isSuccess:
		return fmt.Sprintf("Success(%v)", r.result)
	case r.isCancel:
		return fmt.Sprintf("Cancel(%v)", r.err)
	default:
		return fmt.Sprintf("Fail(%v)", r.err)
	}
}
