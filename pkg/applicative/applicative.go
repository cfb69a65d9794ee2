package applicative

import "github.com/ib-77/appl/pkg/curry"

// Functor maps a pure function over every value held by a container.
// FA is the container of A, FB the same container kind holding B.
type Functor[A, B, FA, FB any] interface {
	Map(fa FA, f func(A) B) FB
}

// Applicative combines a container of functions with a container of
// arguments of the same kind. FF holds func(A) B values.
//
// Implementations are stateless strategy values, one per container kind,
// and must be total: failure is expressed as a container value, never as
// a panic.
type Applicative[A, B, FF, FA, FB any] interface {
	// Pure wraps a plain function in a singleton/success container
	Pure(f func(A) B) FF
	// Apply applies every function found in ff to every argument found in fx
	Apply(ff FF, fx FA) FB
	// Action runs fa for its effect, discards its values and yields fb's
	Action(fa FA, fb FB) FB
}

// Apply2 applies a container of curried binary functions to two argument
// containers, one Apply step per argument.
func Apply2[A, B, C, FF, FA, FBC, FB, FC any](
	ap1 Applicative[A, func(B) C, FF, FA, FBC],
	ap2 Applicative[B, C, FBC, FB, FC],
	ff FF, fx FA, fy FB) FC {
	return ap2.Apply(ap1.Apply(ff, fx), fy)
}

// Apply3 is Apply2 extended by one more argument container.
func Apply3[A, B, C, D, FF, FA, FBCD, FB, FCD, FC, FD any](
	ap1 Applicative[A, func(B) func(C) D, FF, FA, FBCD],
	ap2 Applicative[B, func(C) D, FBCD, FB, FCD],
	ap3 Applicative[C, D, FCD, FC, FD],
	ff FF, fx FA, fy FB, fz FC) FD {
	return ap3.Apply(ap2.Apply(ap1.Apply(ff, fx), fy), fz)
}

// Apply4 is Apply3 extended by one more argument container.
func Apply4[A, B, C, D, E, FF, FA, FBCDE, FB, FCDE, FC, FDE, FD, FE any](
	ap1 Applicative[A, func(B) func(C) func(D) E, FF, FA, FBCDE],
	ap2 Applicative[B, func(C) func(D) E, FBCDE, FB, FCDE],
	ap3 Applicative[C, func(D) E, FCDE, FC, FDE],
	ap4 Applicative[D, E, FDE, FD, FE],
	ff FF, fx FA, fy FB, fz FC, fw FD) FE {
	return ap4.Apply(ap3.Apply(ap2.Apply(ap1.Apply(ff, fx), fy), fz), fw)
}

// Lift2 lifts a plain binary function over two containers: the curried
// function is wrapped with Pure and the arguments are folded in with
// Apply2. Every container kind's Apply2Func is an instance of this shape.
func Lift2[A, B, C, FF, FA, FBC, FB, FC any](
	ap1 Applicative[A, func(B) C, FF, FA, FBC],
	ap2 Applicative[B, C, FBC, FB, FC],
	fn func(A, B) C, fx FA, fy FB) FC {
	return Apply2(ap1, ap2, ap1.Pure(curry.Curry2(fn)), fx, fy)
}

// MapCurried2 turns a container of binary functions into a container of
// curried ones, the first step of every N-ary apply.
func MapCurried2[A, B, C, FAB, FF any](
	fm Functor[func(A, B) C, func(A) func(B) C, FAB, FF],
	ff FAB) FF {
	return fm.Map(ff, curry.Curry2[A, B, C])
}
