package rop

import (
	"context"
	"errors"
)

var (
	// ErrNilFunc is the failure produced when a successful result holds a nil function.
	ErrNilFunc = errors.New("rop: nil function")
	// ErrForwardedSuccess is the failure produced when Forward is given a success.
	ErrForwardedSuccess = errors.New("rop: forwarded a successful result")
)

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
