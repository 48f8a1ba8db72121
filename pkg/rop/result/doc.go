// Package result contains the success/failure containers.
//
// Result[T] fails with an untyped error and Of[T, E] fails with a typed
// error E. Both carry a Data side channel for cross-cutting metadata, a
// unique id and a creation time. None of these take part in equality,
// hashing or ordering.
//
// Data is never copied implicitly. Every constructor and combinator starts
// the new instance with an empty map; AdoptData copies entries from another
// container and WithTypedError adopts the source's entries while retyping
// the error. After adoption the two maps are independent.
//
// Key operations:
// - Ok/Err, OkOf/ErrOf, From/Try/FromOption: construct results
// - WithError/WithErrorFunc/WithoutError/WithTypedError: attach, drop or retype errors
// - ValueOr/ValueOrElse/ValueOrElseErr/Or/Else/ElseFunc: fallbacks
// - Match/MatchWithErr/MatchOf: run exactly one branch
// - Map/MapError/FlatMap/Filter/FilterIf: transformations on Of only
package result
