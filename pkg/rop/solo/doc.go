// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T], including the Result applicative.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure or cancel
// - Tee: side-effect on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Apply/ApplyFunc/Action and Apply2..Apply9: fail-fast applicative
// - ToEither/FromEither: convert to and from either.Either[error, T]
package solo

//go:generate go run ../../../cmd/applgen --kind result --out apply_gen.go
