// Package option provides Option[T], a value that is either present (Some)
// or absent (None). An absent Option may carry an error explaining why.
//
// Highlights:
// - Some/None/NoneWith: construct Option[T] (Some(nil) is a present value)
// - WithError/WithErrorFunc/WithoutError: attach or drop the error payload
// - ValueOr/ValueOrElse/ValueOrElseErr/Or/Else/ElseFunc: fallbacks
// - Match/MatchWithErr: run exactly one branch
// - Map/MapError/FlatMap/Filter/FilterIf: transformations returning new Options
// - All: iterate over zero or one value
// - Equal/Hash/Compare: absent sorts before present, payloads never take part in ordering
package option
