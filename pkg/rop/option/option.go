package option

import (
	"iter"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/core"
)

type Option[T any] struct {
	box core.Box[T, error]
}

func Some[T any](v T) Option[T] {
	return Option[T]{box: core.Present[T, error](v)}
}

func None[T any]() Option[T] {
	return Option[T]{box: core.Absent[T, error]()}
}

// NoneWith returns an absent Option carrying err. A nil err attaches nothing.
func NoneWith[T any](err error) Option[T] {
	return Option[T]{box: core.AbsentWithError[T](err)}
}

// FromOk mirrors the comma-ok idiom.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) HasValue() bool {
	return o.box.HasValue()
}

func (o Option[T]) IsSome() bool {
	return o.box.HasValue()
}

func (o Option[T]) IsNone() bool {
	return !o.box.HasValue()
}

func (o Option[T]) HasError() bool {
	return o.box.HasError()
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.box.Get()
}

// Err returns the error attached to an absent Option, or nil.
func (o Option[T]) Err() error {
	return o.box.Err()
}

// WithError attaches err to an absent Option. A present Option is returned
// as is, since it never carries an error.
func (o Option[T]) WithError(err error) Option[T] {
	if o.box.HasValue() {
		return o
	}
	return NoneWith[T](err)
}

// WithErrorFunc is WithError with a lazily computed error. factory runs at
// most once and only when the Option is absent.
func (o Option[T]) WithErrorFunc(factory func() error) Option[T] {
	rop.MustFunc(factory, "factory")

	if o.box.HasValue() {
		return o
	}
	return NoneWith[T](factory())
}

func (o Option[T]) WithoutError() Option[T] {
	return Option[T]{box: o.box.WithoutError()}
}

// Exists reports whether the Option is present and predicate holds for its value.
func (o Option[T]) Exists(predicate func(T) bool) bool {
	return o.box.Exists(predicate)
}

// Contains reports whether the Option is present and its value equals x.
func (o Option[T]) Contains(x T) bool {
	return o.box.Contains(x)
}

func (o Option[T]) All() iter.Seq[T] {
	return o.box.All()
}

func (o Option[T]) ValueOr(alternative T) T {
	return o.box.ValueOr(alternative)
}

func (o Option[T]) ValueOrElse(factory func() T) T {
	return o.box.ValueOrElse(factory)
}

// ValueOrElseErr passes the attached error (possibly nil) to factory.
func (o Option[T]) ValueOrElseErr(factory func(error) T) T {
	return o.box.ValueOrElseErr(factory)
}

// Or turns an absent Option into a present one using factory(err).
func (o Option[T]) Or(factory func(error) T) Option[T] {
	return Option[T]{box: o.box.Or(factory)}
}

func (o Option[T]) Else(alternative Option[T]) Option[T] {
	if o.box.HasValue() {
		return o
	}
	return alternative
}

func (o Option[T]) ElseFunc(factory func() Option[T]) Option[T] {
	rop.MustFactory(factory, "factory")

	if o.box.HasValue() {
		return o
	}
	return factory()
}

func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	return Option[T]{box: o.box.Filter(predicate)}
}

// FilterIf empties a present Option when condition is false.
func (o Option[T]) FilterIf(condition bool) Option[T] {
	return Option[T]{box: o.box.FilterIf(condition)}
}

// MapError replaces the error of an absent Option with f(err). Present
// Options and absent ones without an error are returned unchanged and f is
// not called, so f never receives a nil error.
func (o Option[T]) MapError(f func(error) error) Option[T] {
	rop.MustFunc(f, "f")

	if !o.box.HasError() {
		return o
	}
	return NoneWith[T](f(o.box.Err()))
}

// Equal reports whether both Options have the same discriminant, value and error.
func (o Option[T]) Equal(other Option[T]) bool {
	return o.box.Equal(other.box)
}

func (o Option[T]) Hash() uint64 {
	return o.box.Hash()
}

// Compare returns -1 when o is None and other is Some, 1 for the reverse and
// 0 when both share a discriminant. Values are not compared.
func (o Option[T]) Compare(other Option[T]) int {
	return o.box.Compare(other.box)
}

// String renders "Some(v)", "Some(nil)" for a nil payload, "None" or
// "None with error" when an error is attached.
func (o Option[T]) String() string {
	return o.box.Render("Some", "None")
}
