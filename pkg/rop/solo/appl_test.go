package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/appl/pkg/applicative/applicativetest"
	"github.com/ib-77/appl/pkg/either"
	"github.com/ib-77/appl/pkg/rop"
)

// sameOutcome compares results by state and payload, ignoring identity.
func sameOutcome[T comparable](x, y rop.Result[T]) bool {
	return x.IsSuccess() == y.IsSuccess() &&
		x.IsCancel() == y.IsCancel() &&
		x.Result() == y.Result() &&
		errors.Is(x.Err(), y.Err())
}

func TestApply_FailedFunctionShortCircuits(t *testing.T) {
	t.Parallel()

	ff := rop.Fail[func(int) int](errors.New("no function"))
	got := Apply(ff, rop.Cancel[int](errors.New("no argument")))

	require.True(t, got.IsFailure())
	assert.False(t, got.IsCancel())
	assert.EqualError(t, got.Err(), "no function")
	assert.Equal(t, ff.Id(), got.Id())
}

func TestApply_FailedArgument(t *testing.T) {
	t.Parallel()

	called := false
	fx := rop.Cancel[int](context.Canceled)
	got := Apply(rop.Success(func(v int) int {
		called = true
		return v
	}), fx)

	require.True(t, got.IsCancel())
	assert.ErrorIs(t, got.Err(), context.Canceled)
	assert.Equal(t, fx.Id(), got.Id())
	assert.False(t, called)
}

func TestApply_BothSuccess(t *testing.T) {
	t.Parallel()

	got := Apply(rop.Success(strconv.Itoa), rop.Success(7))
	require.True(t, got.IsSuccess())
	assert.Equal(t, "7", got.Result())

	assert.Equal(t, "8", ApplyFunc(strconv.Itoa, rop.Success(8)).Result())
}

func TestApply_NilFunction(t *testing.T) {
	t.Parallel()

	var f func(int) int
	got := Apply(rop.Success(f), rop.Success(1))
	require.True(t, got.IsFailure())
	assert.ErrorIs(t, got.Err(), rop.ErrNilFunc)
}

func TestAction(t *testing.T) {
	t.Parallel()

	fb := rop.Success("b")
	assert.Equal(t, fb.Id(), Action(rop.Success(1), fb).Id())

	fa := rop.Fail[int](errors.New("fa"))
	got := Action(fa, fb)
	assert.True(t, got.IsFailure())
	assert.Equal(t, fa.Id(), got.Id())

	failedB := rop.Fail[string](errors.New("fb"))
	assert.Equal(t, failedB.Id(), Action(rop.Success(1), failedB).Id())
}

func TestApplyN(t *testing.T) {
	t.Parallel()

	area := func(w, h int, unit string) string { return strconv.Itoa(w*h) + unit }

	got := Apply3Func(area, rop.Success(3), rop.Success(4), rop.Success("m2"))
	require.True(t, got.IsSuccess())
	assert.Equal(t, "12m2", got.Result())

	bad := rop.Fail[int](errors.New("no height"))
	failed := Apply3(rop.Success(area), rop.Success(3), bad, rop.Cancel[string](errors.New("later")))
	require.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())
	assert.Equal(t, bad.Id(), failed.Id())

	partial := Partial3Func(area, rop.Success(2))
	require.True(t, partial.IsSuccess())
	assert.Equal(t, "10cm", partial.Result()(5)("cm"))
	assert.Equal(t, "10cm", Apply(Apply(Partial3(rop.Success(area), rop.Success(2)), rop.Success(5)), rop.Success("cm")).Result())
}

func TestApply9(t *testing.T) {
	t.Parallel()

	sum := func(a, b, c, d, e, f, g, h, i int) int { return a + b + c + d + e + f + g + h + i }
	one := rop.Success(1)

	assert.Equal(t, 9, Apply9(rop.Success(sum), one, one, one, one, one, one, one, one, one).Result())
	assert.Equal(t, 9, Apply9Func(sum, one, one, one, one, one, one, one, one, one).Result())
}

func TestApplicativeLaws(t *testing.T) {
	t.Parallel()

	values := []rop.Result[int]{rop.Success(1), rop.Fail[int](errors.New("x")), rop.Cancel[int](errors.New("y"))}
	applicativetest.Identity(t, Appl[int, int]{}, sameOutcome[int], values...)

	applicativetest.Homomorphism(t, Appl[int, string]{}, rop.Success[int], rop.Success[string],
		sameOutcome[string], strconv.Itoa, 4, 5)

	applicativetest.ActionIsConstApply(t,
		Appl[bool, int]{}, Appl[bool, func(int) int]{}, Appl[int, int]{},
		sameOutcome[int], rop.Success(true), rop.Success(3))

	add := func(a, b int) int { return a + b }
	applicativetest.CurriedConsistency(t,
		Appl[func(int, int) int, func(int) func(int) int]{},
		Appl[int, func(int) int]{}, Appl[int, int]{},
		sameOutcome[int], rop.Success(add), rop.Success(1), rop.Success(2), rop.Success(3))
}

func TestEitherConversions(t *testing.T) {
	t.Parallel()

	right := ToEither[int](rop.Success(3))
	v, ok := right.RightValue()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	err := errors.New("bad")
	left := ToEither[int](rop.Cancel[int](err))
	lv, ok := left.LeftValue()
	require.True(t, ok)
	assert.ErrorIs(t, lv, err)

	assert.True(t, FromEither(either.Right[error](1)).IsSuccess())

	failed := FromEither(either.Left[error, int](err))
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())

	cancelled := FromEither(either.Left[error, int](context.DeadlineExceeded))
	assert.True(t, cancelled.IsCancel())
}
