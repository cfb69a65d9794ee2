// Package applicativetest checks the applicative laws for a container
// kind. Container packages call these helpers from their own tests.
package applicativetest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/appl/pkg/applicative"
)

// Equal reports whether two containers hold the same logical values.
type Equal[F any] func(x, y F) bool

// Identity asserts Apply(Pure(id), v) == v for every v.
func Identity[A, FF, FA any](t testing.TB,
	ap applicative.Applicative[A, A, FF, FA, FA],
	eq Equal[FA], values ...FA) bool {
	t.Helper()

	ok := true
	for i, v := range values {
		got := ap.Apply(ap.Pure(func(a A) A { return a }), v)
		ok = assert.Truef(t, eq(got, v), "identity law broken for value #%d: got %v, want %v", i, got, v) && ok
	}
	return ok
}

// Homomorphism asserts Apply(Pure(f), pure(x)) == pureB(f(x)).
func Homomorphism[A, B, FF, FA, FB any](t testing.TB,
	ap applicative.Applicative[A, B, FF, FA, FB],
	pure func(A) FA, pureB func(B) FB,
	eq Equal[FB], f func(A) B, xs ...A) bool {
	t.Helper()

	ok := true
	for _, x := range xs {
		got := ap.Apply(ap.Pure(f), pure(x))
		want := pureB(f(x))
		ok = assert.Truef(t, eq(got, want), "homomorphism law broken for %v: got %v, want %v", x, got, want) && ok
	}
	return ok
}

// ActionIsConstApply asserts Action(fa, fb) == Apply(Map(fa, const id), fb):
// action keeps fa's shape and short-circuit state but none of its values.
func ActionIsConstApply[A, B, FF, FA, FB, FBB any](t testing.TB,
	ap applicative.Applicative[A, B, FF, FA, FB],
	fm applicative.Functor[A, func(B) B, FA, FBB],
	apb applicative.Applicative[B, B, FBB, FB, FB],
	eq Equal[FB], fa FA, fb FB) bool {
	t.Helper()

	got := ap.Action(fa, fb)
	want := apb.Apply(fm.Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
	return assert.Truef(t, eq(got, want), "action is not a constant apply: got %v, want %v", got, want)
}

// CurriedConsistency asserts that mapping Curry2 over ff and folding Apply
// across fx and fy gives want, the direct two-argument application.
func CurriedConsistency[A, B, C, FAB, FF, FA, FBC, FB, FC any](t testing.TB,
	fm applicative.Functor[func(A, B) C, func(A) func(B) C, FAB, FF],
	ap1 applicative.Applicative[A, func(B) C, FF, FA, FBC],
	ap2 applicative.Applicative[B, C, FBC, FB, FC],
	eq Equal[FC], ff FAB, fx FA, fy FB, want FC) bool {
	t.Helper()

	got := applicative.Apply2(ap1, ap2, applicative.MapCurried2(fm, ff), fx, fy)
	return assert.Truef(t, eq(got, want), "curried apply differs from direct application: got %v, want %v", got, want)
}
