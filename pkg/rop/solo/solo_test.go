package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/appl/pkg/rop"
)

func TestSwitch_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	in := rop.Fail[int](errors.New("boom"))
	called := false
	out := Switch(in, func(v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	})

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if out.Id() != in.Id() {
		t.Fatalf("expected forwarded failure to keep id %v, got %v", in.Id(), out.Id())
	}
	if called {
		t.Fatalf("Switch onSuccess must not be called on failure input")
	}
}

func TestSwitch_PropagateCancel(t *testing.T) {
	t.Parallel()

	out := Switch(Cancel[int](errors.New("cancel")), func(v int) rop.Result[string] {
		return rop.Success("x")
	})
	if !out.IsCancel() || out.Err() == nil || out.Err().Error() != "cancel" {
		t.Fatalf("expected cancel 'cancel', got cancel=%v err=%v", out.IsCancel(), out.Err())
	}
}

func TestSwitch_Success(t *testing.T) {
	t.Parallel()

	out := Switch(Succeed(4), func(v int) rop.Result[string] { return rop.Success(strconv.Itoa(v * 2)) })
	if !out.IsSuccess() || out.Result() != "8" {
		t.Fatalf("expected success '8', got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()

	out := Map(Succeed(5), func(v int) int { return v + 3 })
	if !out.IsSuccess() || out.Result() != 8 {
		t.Fatalf("expected success with 8, got success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	failed := Map(Fail[int](errors.New("oops")), func(v int) int { return v + 100 })
	if failed.IsSuccess() || failed.Err() == nil || failed.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got success=%v err=%v", failed.IsSuccess(), failed.Err())
	}
}

func TestTry_SuccessErrorAndCancel(t *testing.T) {
	t.Parallel()

	ok := Try(Succeed("12"), strconv.Atoi)
	if !ok.IsSuccess() || ok.Result() != 12 {
		t.Fatalf("expected success 12, got success=%v val=%v err=%v", ok.IsSuccess(), ok.Result(), ok.Err())
	}

	bad := Try(Succeed("x"), strconv.Atoi)
	if bad.IsSuccess() || bad.IsCancel() || bad.Err() == nil {
		t.Fatalf("expected parse failure, got success=%v cancel=%v err=%v", bad.IsSuccess(), bad.IsCancel(), bad.Err())
	}

	timedOut := Try(Succeed(1), func(int) (int, error) { return 0, context.DeadlineExceeded })
	if !timedOut.IsCancel() || !errors.Is(timedOut.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected cancel on deadline, got cancel=%v err=%v", timedOut.IsCancel(), timedOut.Err())
	}

	called := false
	skipped := Try(Fail[string](errors.New("bad")), func(s string) (int, error) {
		called = true
		return 0, nil
	})
	if skipped.IsSuccess() || called {
		t.Fatalf("expected Try to skip failed input, got success=%v called=%v", skipped.IsSuccess(), called)
	}
}

func TestTee_SideEffectOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	in := Succeed(11)
	out := Tee(in, func(int) { calls++ })
	if out.Id() != in.Id() || calls != 1 {
		t.Fatalf("expected unchanged result and one call, got id match=%v calls=%d", out.Id() == in.Id(), calls)
	}

	Tee(Fail[int](errors.New("x")), func(int) { calls++ })
	if calls != 1 {
		t.Fatalf("Tee must not call onSuccess for failure result, calls=%d", calls)
	}
}

func TestFinally_SuccessFailureCancel(t *testing.T) {
	t.Parallel()

	onSuccess := func(v int) string { return "ok" }
	onError := func(err error) string { return "fail" }
	onCancel := func(err error) string { return "cancel" }

	if s := Finally(Succeed(2), onSuccess, onError, onCancel); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if f := Finally(Fail[int](errors.New("e")), onSuccess, onError, onCancel); f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
	if c := Finally(Cancel[int](errors.New("c")), onSuccess, onError, onCancel); c != "cancel" {
		t.Fatalf("expected 'cancel', got %q", c)
	}
}
