// Package applicative defines the capability interfaces shared by every
// container kind in this module and the generic folds derived from them.
//
// Go cannot abstract over "kind of container" directly, so each capability
// is parameterised by the concrete container types it works on (FF, FA,
// FB). A container kind provides a stateless strategy value (seq.Appl,
// either.Appl, solo.Appl) that satisfies the interfaces for a given pair of
// value types; the strategy is selected by type, never stored.
//
// Highlights:
// - Functor: Map over a container
// - Applicative: Pure, Apply and Action
// - Apply2/Apply3/Apply4: fold Apply across argument containers
// - Lift2: lift a plain binary function via Pure, Curry2 and Apply2
//
// Law checks reusable by container implementations live in
// applicativetest.
package applicative
