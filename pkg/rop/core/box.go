package core

import (
	"fmt"
	"iter"

	"github.com/ib-77/fallible/pkg/rop"
)

// Box is either a present value of type T or an absent state that may carry
// an error payload of type E.
type Box[T, E any] struct {
	value    T
	err      E
	hasValue bool
	hasErr   bool
}

// Present returns a Box holding v.
func Present[T, E any](v T) Box[T, E] {
	return Box[T, E]{value: v, hasValue: true}
}

// Absent returns an empty Box without an error payload.
func Absent[T, E any]() Box[T, E] {
	return Box[T, E]{}
}

// AbsentWith returns an empty Box carrying err.
func AbsentWith[T, E any](err E) Box[T, E] {
	return Box[T, E]{err: err, hasErr: true}
}

// AbsentWithError is AbsentWith for error payloads: a nil error attaches nothing.
func AbsentWithError[T any](err error) Box[T, error] {
	if rop.IsNil(err) {
		return Absent[T, error]()
	}
	return AbsentWith[T](err)
}

func (b Box[T, E]) HasValue() bool {
	return b.hasValue
}

func (b Box[T, E]) HasError() bool {
	return !b.hasValue && b.hasErr
}

// Value returns the payload, or T's zero value when absent.
func (b Box[T, E]) Value() T {
	return b.value
}

// Err returns the attached error payload, or E's zero value.
func (b Box[T, E]) Err() E {
	if !b.HasError() {
		var zero E
		return zero
	}
	return b.err
}

func (b Box[T, E]) Get() (T, bool) {
	return b.value, b.hasValue
}

// WithoutError drops the error payload, presence and value are kept.
func (b Box[T, E]) WithoutError() Box[T, E] {
	if b.hasValue {
		return b
	}
	return Absent[T, E]()
}

func (b Box[T, E]) Exists(predicate func(T) bool) bool {
	rop.MustFunc(predicate, "predicate")

	return b.hasValue && predicate(b.value)
}

func (b Box[T, E]) Contains(x T) bool {
	return b.hasValue && rop.Equal(b.value, x)
}

// All yields the value when present and nothing otherwise. The sequence can
// be ranged over any number of times.
func (b Box[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if b.hasValue {
			yield(b.value)
		}
	}
}

func (b Box[T, E]) Filter(predicate func(T) bool) Box[T, E] {
	rop.MustFunc(predicate, "predicate")

	return b.FilterIf(!b.hasValue || predicate(b.value))
}

// FilterIf turns a present Box into an error-free absent one when condition
// is false. Absent boxes are returned unchanged.
func (b Box[T, E]) FilterIf(condition bool) Box[T, E] {
	if b.hasValue && !condition {
		return Absent[T, E]()
	}
	return b
}

func (b Box[T, E]) ValueOr(alternative T) T {
	if b.hasValue {
		return b.value
	}
	return alternative
}

func (b Box[T, E]) ValueOrElse(factory func() T) T {
	rop.MustFactory(factory, "factory")

	if b.hasValue {
		return b.value
	}
	return factory()
}

func (b Box[T, E]) ValueOrElseErr(factory func(E) T) T {
	rop.MustFactory(factory, "factory")

	if b.hasValue {
		return b.value
	}
	return factory(b.Err())
}

// Or recovers an absent Box by turning its error into a value.
func (b Box[T, E]) Or(factory func(E) T) Box[T, E] {
	rop.MustFactory(factory, "factory")

	if b.hasValue {
		return b
	}
	return Present[T, E](factory(b.Err()))
}

// Equal compares discriminant, value and error payload.
func (b Box[T, E]) Equal(other Box[T, E]) bool {
	if b.hasValue != other.hasValue {
		return false
	}
	if b.hasValue {
		return rop.Equal(b.value, other.value)
	}
	if b.hasErr != other.hasErr {
		return false
	}
	return !b.hasErr || rop.Equal(b.err, other.err)
}

func (b Box[T, E]) Hash() uint64 {
	if b.hasValue {
		return rop.Combine(1, rop.Hash(b.value))
	}
	if b.hasErr {
		return rop.Combine(0, 1, rop.Hash(b.err))
	}
	return rop.Combine(0, 0)
}

// Compare orders by discriminant only: absent < present, equal discriminants
// compare as 0 whatever their payloads are.
func (b Box[T, E]) Compare(other Box[T, E]) int {
	return rop.Compare(b.hasValue, other.hasValue)
}

// Render formats the Box as some(value), none or "none with error".
func (b Box[T, E]) Render(some, none string) string {
	switch {
	case b.hasValue && rop.IsNil(b.value):
		return some + "(nil)"
	case b.hasValue:
		return fmt.Sprintf("%s(%v)", some, b.value)
	case b.hasErr:
		return none + " with error"
	default:
		return none
	}
}
