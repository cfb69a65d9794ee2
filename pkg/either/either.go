package either

import "fmt"

// Either holds exactly one of an alternative (Left) or a success (Right)
// value. The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the alternative value and true when e is a Left.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the success value and true when e is a Right.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Match reduces e to a single value.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func Map[L, A, B any](e Either[L, A], f func(A) B) Either[L, B] {
	if !e.isRight {
		return Either[L, B]{left: e.left}
	}
	return Right[L](f(e.right))
}

func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

func Bind[L, A, B any](e Either[L, A], f func(A) Either[L, B]) Either[L, B] {
	if !e.isRight {
		return Either[L, B]{left: e.left}
	}
	return f(e.right)
}
