package result

import (
	"iter"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/core"
)

// Of is either Ok with a value of type T or Err with an error of type E.
// Like Result, the zero value is an Err with a nil Data until AdoptData.
type Of[T, E any] struct {
	meta
	box core.Box[T, E]
}

func OkOf[T, E any](v T) Of[T, E] {
	return Of[T, E]{meta: newMeta(), box: core.Present[T, E](v)}
}

// ErrOf returns a failed Of carrying err, whatever its value.
func ErrOf[T, E any](err E) Of[T, E] {
	return Of[T, E]{meta: newMeta(), box: core.AbsentWith[T](err)}
}

func ofBox[T, E any](box core.Box[T, E]) Of[T, E] {
	return Of[T, E]{meta: newMeta(), box: box}
}

// WithTypedError retypes the error slot of r. A failed r becomes ErrOf(err),
// a successful one OkOf(value). The new result adopts r's side channel.
func WithTypedError[T, E any](r Result[T], err E) Of[T, E] {
	m := adoptedMeta(r)
	if v, ok := r.Get(); ok {
		return Of[T, E]{meta: m, box: core.Present[T, E](v)}
	}
	return Of[T, E]{meta: m, box: core.AbsentWith[T](err)}
}

// WithTypedErrorFunc is WithTypedError with a lazily computed error.
func WithTypedErrorFunc[T, E any](r Result[T], factory func() E) Of[T, E] {
	rop.MustFunc(factory, "factory")

	if v, ok := r.Get(); ok {
		return Of[T, E]{meta: adoptedMeta(r), box: core.Present[T, E](v)}
	}
	return WithTypedError(r, factory())
}

func (r Of[T, E]) HasValue() bool {
	return r.box.HasValue()
}

func (r Of[T, E]) IsOk() bool {
	return r.box.HasValue()
}

func (r Of[T, E]) IsErr() bool {
	return !r.box.HasValue()
}

func (r Of[T, E]) HasError() bool {
	return r.box.HasError()
}

func (r Of[T, E]) Value() T {
	return r.box.Value()
}

func (r Of[T, E]) Get() (T, bool) {
	return r.box.Get()
}

// Err returns the typed error of a failed result, or E's zero value.
func (r Of[T, E]) Err() E {
	return r.box.Err()
}

// AdoptData copies every entry of src's side channel into r's own and returns r.
func (r Of[T, E]) AdoptData(src rop.Carrier) Of[T, E] {
	r.meta = r.meta.adopt(src)
	return r
}

func (r Of[T, E]) WithError(err E) Of[T, E] {
	if r.box.HasValue() {
		return ofBox(r.box)
	}
	return ErrOf[T](err)
}

func (r Of[T, E]) WithErrorFunc(factory func() E) Of[T, E] {
	rop.MustFunc(factory, "factory")

	if r.box.HasValue() {
		return ofBox(r.box)
	}
	return ErrOf[T](factory())
}

// WithoutError downgrades r to a Result. The error survives only when E
// holds a non-nil error value.
func (r Of[T, E]) WithoutError() Result[T] {
	if v, ok := r.Get(); ok {
		return Ok(v)
	}
	if err, ok := any(r.Err()).(error); ok && r.HasError() {
		return Err[T](err)
	}
	return Err[T](nil)
}

func (r Of[T, E]) Exists(predicate func(T) bool) bool {
	return r.box.Exists(predicate)
}

func (r Of[T, E]) Contains(x T) bool {
	return r.box.Contains(x)
}

func (r Of[T, E]) All() iter.Seq[T] {
	return r.box.All()
}

func (r Of[T, E]) ValueOr(alternative T) T {
	return r.box.ValueOr(alternative)
}

func (r Of[T, E]) ValueOrElse(factory func() T) T {
	return r.box.ValueOrElse(factory)
}

// ValueOrElseErr passes the typed error to factory.
func (r Of[T, E]) ValueOrElseErr(factory func(E) T) T {
	return r.box.ValueOrElseErr(factory)
}

func (r Of[T, E]) Or(factory func(E) T) Of[T, E] {
	rop.MustFactory(factory, "factory")

	if r.box.HasValue() {
		return r
	}
	return ofBox(r.box.Or(factory))
}

func (r Of[T, E]) Else(alternative Of[T, E]) Of[T, E] {
	if r.box.HasValue() {
		return r
	}
	return alternative
}

// ElseFunc recovers from a failure using the typed error.
func (r Of[T, E]) ElseFunc(factory func(E) Of[T, E]) Of[T, E] {
	rop.MustFactory(factory, "factory")

	if r.box.HasValue() {
		return r
	}
	return factory(r.Err())
}

func (r Of[T, E]) Filter(predicate func(T) bool) Of[T, E] {
	return ofBox(r.box.Filter(predicate))
}

func (r Of[T, E]) FilterIf(condition bool) Of[T, E] {
	return ofBox(r.box.FilterIf(condition))
}

func (r Of[T, E]) Equal(other Of[T, E]) bool {
	return r.box.Equal(other.box)
}

func (r Of[T, E]) Hash() uint64 {
	return r.box.Hash()
}

func (r Of[T, E]) Compare(other Of[T, E]) int {
	return r.box.Compare(other.box)
}

// String renders like Result.String: "Ok(v)", "Ok(nil)", "Err" or
// "Err with error".
func (r Of[T, E]) String() string {
	return r.box.Render("Ok", "Err")
}
