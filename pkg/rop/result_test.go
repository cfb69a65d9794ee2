package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	r := Success(5)

	if !r.IsSuccess() || r.IsFailure() || r.IsCancel() || r.Result() != 5 || r.Err() != nil {
		t.Fatalf("expected success with 5, got success=%v cancel=%v val=%v err=%v", r.IsSuccess(), r.IsCancel(), r.Result(), r.Err())
	}
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().Before(before))
	assert.Equal(t, time.UTC, r.CreatedAt().Location())
}

func TestFailAndCancel(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	f := Fail[int](err)
	if f.IsSuccess() || !f.IsFailure() || f.IsCancel() || !errors.Is(f.Err(), err) {
		t.Fatalf("expected failure 'boom', got success=%v cancel=%v err=%v", f.IsSuccess(), f.IsCancel(), f.Err())
	}

	c := Cancel[int](err)
	if c.IsSuccess() || !c.IsFailure() || !c.IsCancel() || !errors.Is(c.Err(), err) {
		t.Fatalf("expected cancel 'boom', got success=%v cancel=%v err=%v", c.IsSuccess(), c.IsCancel(), c.Err())
	}
}

func TestIdsAreUnique(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Success(1).Id(), Success(1).Id())
}

func TestForward_KeepsIdentity(t *testing.T) {
	t.Parallel()

	err := errors.New("bad")
	for _, from := range []Result[int]{Fail[int](err), Cancel[int](err)} {
		to := Forward[int, string](from)

		assert.Equal(t, from.Id(), to.Id())
		assert.Equal(t, from.CreatedAt(), to.CreatedAt())
		assert.Equal(t, from.IsCancel(), to.IsCancel())
		assert.False(t, to.IsSuccess())
		assert.ErrorIs(t, to.Err(), err)
	}
}

func TestForward_Success(t *testing.T) {
	t.Parallel()

	to := Forward[int, string](Success(1))
	assert.True(t, to.IsFailure())
	assert.ErrorIs(t, to.Err(), ErrForwardedSuccess)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(3)", Success(3).String())
	assert.Equal(t, "Fail(x)", Fail[int](errors.New("x")).String())
	assert.Equal(t, "Cancel(y)", Cancel[int](errors.New("y")).String())
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, IsCancellationError(errors.New("other")))
	assert.False(t, IsCancellationError(nil))
}
