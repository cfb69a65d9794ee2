// Package either provides Either[L, R], a value holding exactly one of an
// alternative (Left) or a success (Right), and its applicative instance.
//
// Combination is fail-fast and biased to the left operand: Apply returns
// the function side's alternative untouched without inspecting the
// argument, then the argument's alternative, and only combines when both
// sides are Right. Alternatives are never accumulated.
package either

//go:generate go run ../../cmd/applgen --kind either --out apply_gen.go
