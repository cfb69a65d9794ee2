// Package curry converts N-ary functions into chains of unary functions
// and back.
//
// CurryK(fn) returns a function that takes the first argument and yields a
// function over the remaining ones; fn itself runs once, only after the
// last argument is supplied. Supplying fewer arguments never invokes fn.
//
// The applicative packages (seq, either, rop/solo) use CurryK to lift an
// N-ary function into a container and then peel one parameter off per
// Apply step.
//
// A nil function curries (and uncurries) to nil, so a nil entry in a
// container of functions is still recognisable after mapping.
package curry
