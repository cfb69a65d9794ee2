package either

import "github.com/ib-77/appl/pkg/applicative"

// Apply applies the function in ff to the value in fx. It is fail-fast:
// a Left ff is returned without looking at fx, otherwise a Left fx is
// returned. A nil function yields the zero Either.
func Apply[L, A, B any](ff Either[L, func(A) B], fx Either[L, A]) Either[L, B] {
	if !ff.isRight {
		return Either[L, B]{left: ff.left}
	}
	if !fx.isRight {
		return Either[L, B]{left: fx.left}
	}
	if ff.right == nil {
		return Either[L, B]{}
	}
	return Right[L](ff.right(fx.right))
}

func ApplyFunc[L, A, B any](f func(A) B, fx Either[L, A]) Either[L, B] {
	return Apply(Right[L](f), fx)
}

// Action returns fb unless fa is a Left, in which case fa's alternative
// is propagated.
func Action[L, A, B any](fa Either[L, A], fb Either[L, B]) Either[L, B] {
	if !fa.isRight {
		return Either[L, B]{left: fa.left}
	}
	return fb
}

// Appl is the Either applicative for functions from A to B with the
// alternative type L held fixed.
type Appl[L, A, B any] struct{}

var (
	_ applicative.Applicative[int, string, Either[error, func(int) string], Either[error, int], Either[error, string]] = Appl[error, int, string]{}
	_ applicative.Functor[int, string, Either[error, int], Either[error, string]]                                     = Appl[error, int, string]{}
)

func (Appl[L, A, B]) Pure(f func(A) B) Either[L, func(A) B] {
	return Right[L](f)
}

func (Appl[L, A, B]) Map(fa Either[L, A], f func(A) B) Either[L, B] {
	return Map(fa, f)
}

func (Appl[L, A, B]) Apply(ff Either[L, func(A) B], fx Either[L, A]) Either[L, B] {
	return Apply(ff, fx)
}

func (Appl[L, A, B]) Action(fa Either[L, A], fb Either[L, B]) Either[L, B] {
	return Action(fa, fb)
}
