// Package rop defines Result[T], the error-specialised either kind: a
// value is a success holding T, a failure holding an error, or a cancel
// holding an error.
//
// Results are immutable values. Every constructor stamps a fresh id and a
// UTC creation time; Forward carries a failed or cancelled result across
// value types without changing its identity, which is how the solo
// operations propagate short-circuits.
package rop
