package result

import "github.com/ib-77/fallible/pkg/rop"

// Match runs onOk with the value or onErr, never both.
func (r Result[T]) Match(onOk func(T), onErr func()) {
	rop.MustFunc(onOk, "onOk")
	rop.MustFunc(onErr, "onErr")

	if v, ok := r.Get(); ok {
		onOk(v)
	} else {
		onErr()
	}
}

// MatchWithErr is Match with the error (possibly nil) passed to onErr.
func (r Result[T]) MatchWithErr(onOk func(T), onErr func(error)) {
	rop.MustFunc(onOk, "onOk")
	rop.MustFunc(onErr, "onErr")

	if v, ok := r.Get(); ok {
		onOk(v)
	} else {
		onErr(r.Err())
	}
}

func (r Result[T]) MatchOk(onOk func(T)) {
	rop.MustFunc(onOk, "onOk")

	if v, ok := r.Get(); ok {
		onOk(v)
	}
}

func (r Result[T]) MatchFail(onErr func()) {
	rop.MustFunc(onErr, "onErr")

	if r.IsErr() {
		onErr()
	}
}

func (r Result[T]) MatchFailWithErr(onErr func(error)) {
	rop.MustFunc(onErr, "onErr")

	if r.IsErr() {
		onErr(r.Err())
	}
}

// Match collapses r into a U.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func() U) U {
	rop.MustFunc(onOk, "onOk")
	rop.MustFunc(onErr, "onErr")

	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	return onErr()
}

func MatchWithErr[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	rop.MustFunc(onOk, "onOk")
	rop.MustFunc(onErr, "onErr")

	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	return onErr(r.Err())
}

// Match runs onOk or onErr, never both. onOk also receives the error slot,
// which holds E's zero value on success and carries no meaning there.
func (r Of[T, E]) Match(onOk func(T, E), onErr func(E)) {
	rop.MustFunc(onOk, "onOk")
	rop.MustFunc(onErr, "onErr")

	if v, ok := r.Get(); ok {
		onOk(v, r.Err())
	} else {
		onErr(r.Err())
	}
}

func (r Of[T, E]) MatchOk(onOk func(T)) {
	rop.MustFunc(onOk, "onOk")

	if v, ok := r.Get(); ok {
		onOk(v)
	}
}

func (r Of[T, E]) MatchErr(onErr func(E)) {
	rop.MustFunc(onErr, "onErr")

	if r.IsErr() {
		onErr(r.Err())
	}
}

// MatchOf collapses r into a U. See Of.Match for the error slot given to onOk.
func MatchOf[T, E, U any](r Of[T, E], onOk func(T, E) U, onErr func(E) U) U {
	rop.MustFunc(onOk, "onOk")
	rop.MustFunc(onErr, "onErr")

	if v, ok := r.Get(); ok {
		return onOk(v, r.Err())
	}
	return onErr(r.Err())
}
