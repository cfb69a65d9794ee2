// Package seq implements an immutable ordered sequence and its applicative
// instance.
//
// Apply combines a sequence of functions with a sequence of arguments as a
// Cartesian product in function-major, argument-minor order. Action keeps
// the cardinality of both operands: M elements on the left and N on the
// right give M*N results.
//
// Key operations:
// - New/FromSlice/Pure/Empty: construct a Seq
// - Map/Bind/Filter/Fold/Sort: transform a Seq
// - Apply/ApplyFunc/Action: applicative combination
// - Apply2..Apply9 (and Func/Partial variants): N-ary application via curry
//
// A nil function inside a function sequence is skipped.
package seq

//go:generate go run ../../cmd/applgen --kind seq --out apply_gen.go
