package result

import (
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/core"
)

// Map transforms the value of a successful Of. A failure keeps its error.
// Result[T] deliberately has no Map; convert with WithTypedError first.
func Map[T, E, U any](r Of[T, E], f func(T) U) Of[U, E] {
	rop.MustFunc(f, "f")

	if v, ok := r.Get(); ok {
		return OkOf[U, E](f(v))
	}
	return failedAs[U](r)
}

// MapError replaces the error of a failed Of with f(err). f only runs when an
// error is attached, so it never sees a zero E; a failed Of without error
// stays failed without error.
func MapError[T, E, F any](r Of[T, E], f func(E) F) Of[T, F] {
	rop.MustFunc(f, "f")

	if v, ok := r.Get(); ok {
		return OkOf[T, F](v)
	}
	if !r.HasError() {
		return ofBox(core.Absent[T, F]())
	}
	return ErrOf[T](f(r.Err()))
}

// FlatMap returns f(value) for a successful Of.
func FlatMap[T, E, U any](r Of[T, E], f func(T) Of[U, E]) Of[U, E] {
	rop.MustFunc(f, "f")

	if v, ok := r.Get(); ok {
		return f(v)
	}
	return failedAs[U](r)
}

func failedAs[U, T, E any](r Of[T, E]) Of[U, E] {
	if r.HasError() {
		return ErrOf[U](r.Err())
	}
	return ofBox(core.Absent[U, E]())
}
