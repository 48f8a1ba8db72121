package result

import (
	"iter"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/core"
	"github.com/ib-77/fallible/pkg/rop/option"
)

// Result is either Ok with a value or Err with an optional error. Build
// results with Ok, Err or the other constructors. The zero value is an Err
// without error whose Data is nil until AdoptData is called.
type Result[T any] struct {
	meta
	box core.Box[T, error]
}

func Ok[T any](v T) Result[T] {
	return Result[T]{meta: newMeta(), box: core.Present[T, error](v)}
}

// Err returns a failed Result. A nil err leaves it without an error.
func Err[T any](err error) Result[T] {
	return Result[T]{meta: newMeta(), box: core.AbsentWithError[T](err)}
}

// From converts the usual (value, error) pair: a non-nil err fails the result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Try calls f and converts its return values with From.
func Try[T any](f func() (T, error)) Result[T] {
	rop.MustFunc(f, "f")

	return From[T](f())
}

// FromOption converts o, keeping the error of an absent Option.
func FromOption[T any](o option.Option[T]) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	return Err[T](o.Err())
}

func fromBox[T any](box core.Box[T, error]) Result[T] {
	return Result[T]{meta: newMeta(), box: box}
}

func (r Result[T]) HasValue() bool {
	return r.box.HasValue()
}

func (r Result[T]) IsOk() bool {
	return r.box.HasValue()
}

func (r Result[T]) IsErr() bool {
	return !r.box.HasValue()
}

func (r Result[T]) HasError() bool {
	return r.box.HasError()
}

// Value returns the successful value, or T's zero value.
func (r Result[T]) Value() T {
	return r.box.Value()
}

func (r Result[T]) Get() (T, bool) {
	return r.box.Get()
}

// Err returns the error of a failed result, or nil.
func (r Result[T]) Err() error {
	return r.box.Err()
}

// ToOption drops the side channel and keeps presence, value and error.
func (r Result[T]) ToOption() option.Option[T] {
	if v, ok := r.Get(); ok {
		return option.Some(v)
	}
	return option.NoneWith[T](r.Err())
}

// AdoptData copies every entry of src's side channel into r's own and
// returns r. The maps stay independent. A zero-value r gets a fresh side
// channel first.
func (r Result[T]) AdoptData(src rop.Carrier) Result[T] {
	r.meta = r.meta.adopt(src)
	return r
}

// WithError returns a new result carrying err when r failed. The new result
// starts with an empty side channel.
func (r Result[T]) WithError(err error) Result[T] {
	if r.box.HasValue() {
		return fromBox(r.box)
	}
	return Err[T](err)
}

// WithErrorFunc is WithError with a lazily computed error: factory runs
// only when r failed.
func (r Result[T]) WithErrorFunc(factory func() error) Result[T] {
	rop.MustFunc(factory, "factory")

	if r.box.HasValue() {
		return fromBox(r.box)
	}
	return Err[T](factory())
}

func (r Result[T]) WithoutError() Result[T] {
	return fromBox(r.box.WithoutError())
}

func (r Result[T]) Exists(predicate func(T) bool) bool {
	return r.box.Exists(predicate)
}

func (r Result[T]) Contains(x T) bool {
	return r.box.Contains(x)
}

func (r Result[T]) All() iter.Seq[T] {
	return r.box.All()
}

func (r Result[T]) ValueOr(alternative T) T {
	return r.box.ValueOr(alternative)
}

func (r Result[T]) ValueOrElse(factory func() T) T {
	return r.box.ValueOrElse(factory)
}

func (r Result[T]) ValueOrElseErr(factory func(error) T) T {
	return r.box.ValueOrElseErr(factory)
}

// Or returns r when it succeeded, otherwise Ok(factory(err)).
func (r Result[T]) Or(factory func(error) T) Result[T] {
	rop.MustFactory(factory, "factory")

	if r.box.HasValue() {
		return r
	}
	return fromBox(r.box.Or(factory))
}

func (r Result[T]) Else(alternative Result[T]) Result[T] {
	if r.box.HasValue() {
		return r
	}
	return alternative
}

func (r Result[T]) ElseFunc(factory func(error) Result[T]) Result[T] {
	rop.MustFactory(factory, "factory")

	if r.box.HasValue() {
		return r
	}
	return factory(r.Err())
}

// Equal compares discriminant, value and error. Data, id and creation time
// are ignored.
func (r Result[T]) Equal(other Result[T]) bool {
	return r.box.Equal(other.box)
}

func (r Result[T]) Hash() uint64 {
	return r.box.Hash()
}

// Compare orders Err before Ok. Two results with the same discriminant
// compare as 0 regardless of value.
func (r Result[T]) Compare(other Result[T]) int {
	return r.box.Compare(other.box)
}

// String renders "Ok(v)", "Ok(nil)" for a nil payload, "Err" or
// "Err with error" when an error is attached.
func (r Result[T]) String() string {
	return r.box.Render("Ok", "Err")
}
