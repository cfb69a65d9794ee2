package seq

import "github.com/ib-77/appl/pkg/applicative"

// Apply applies every function in ff to every argument in fx. The result
// is ordered function-major, argument-minor:
//
//	Apply([f1, f2], [x1, x2]) == [f1(x1), f1(x2), f2(x1), f2(x2)]
//
// Nil functions contribute no results.
func Apply[A, B any](ff Seq[func(A) B], fx Seq[A]) Seq[B] {
	if ff.IsEmpty() || fx.IsEmpty() {
		return Seq[B]{}
	}

	items := make([]B, 0, len(ff.items)*len(fx.items))
	for _, f := range ff.items {
		if f == nil {
			continue
		}
		for _, x := range fx.items {
			items = append(items, f(x))
		}
	}
	if len(items) == 0 {
		return Seq[B]{}
	}
	return Seq[B]{items: items}
}

// ApplyFunc applies a plain function to every element of fx.
func ApplyFunc[A, B any](f func(A) B, fx Seq[A]) Seq[B] {
	return Apply(Pure(f), fx)
}

// Action discards the values of fa but keeps its cardinality: every
// element of fb appears once per element of fa, len(fa)*len(fb) in total.
func Action[A, B any](fa Seq[A], fb Seq[B]) Seq[B] {
	if fa.IsEmpty() || fb.IsEmpty() {
		return Seq[B]{}
	}

	items := make([]B, 0, len(fa.items)*len(fb.items))
	for range fa.items {
		items = append(items, fb.items...)
	}
	return Seq[B]{items: items}
}

// Appl is the sequence applicative for functions from A to B.
type Appl[A, B any] struct{}

var (
	_ applicative.Applicative[int, string, Seq[func(int) string], Seq[int], Seq[string]] = Appl[int, string]{}
	_ applicative.Functor[int, string, Seq[int], Seq[string]]                            = Appl[int, string]{}
)

func (Appl[A, B]) Pure(f func(A) B) Seq[func(A) B] {
	return Pure(f)
}

func (Appl[A, B]) Map(fa Seq[A], f func(A) B) Seq[B] {
	return Map(fa, f)
}

func (Appl[A, B]) Apply(ff Seq[func(A) B], fx Seq[A]) Seq[B] {
	return Apply(ff, fx)
}

func (Appl[A, B]) Action(fa Seq[A], fb Seq[B]) Seq[B] {
	return Action(fa, fb)
}
