// Package rop holds the plumbing shared by the option and result containers:
// the capability interfaces, the Data side channel, argument validation and
// the payload equality, hashing and ordering contracts.
//
// Highlights:
// - Outcome/Verdict/Carrier: read-only surface implemented by all containers
// - Data: per-instance side channel, copied on adoption and never aliased
// - ArgumentError: panic value for nil handlers, factories and predicates
// - Equal/Hash/Compare: payload equality and discriminant-only ordering
package rop
