package option

import "github.com/ib-77/fallible/pkg/rop"

// Match runs onSome with the value or onNone, never both.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	rop.MustFunc(onSome, "onSome")
	rop.MustFunc(onNone, "onNone")

	if v, ok := o.Get(); ok {
		onSome(v)
	} else {
		onNone()
	}
}

// MatchWithErr is Match with the attached error passed to onNone.
func (o Option[T]) MatchWithErr(onSome func(T), onNone func(error)) {
	rop.MustFunc(onSome, "onSome")
	rop.MustFunc(onNone, "onNone")

	if v, ok := o.Get(); ok {
		onSome(v)
	} else {
		onNone(o.Err())
	}
}

func (o Option[T]) MatchSome(onSome func(T)) {
	rop.MustFunc(onSome, "onSome")

	if v, ok := o.Get(); ok {
		onSome(v)
	}
}

func (o Option[T]) MatchNone(onNone func()) {
	rop.MustFunc(onNone, "onNone")

	if o.IsNone() {
		onNone()
	}
}

func (o Option[T]) MatchNoneWithErr(onNone func(error)) {
	rop.MustFunc(onNone, "onNone")

	if o.IsNone() {
		onNone(o.Err())
	}
}

// Match collapses o into a U via onSome or onNone.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	rop.MustFunc(onSome, "onSome")
	rop.MustFunc(onNone, "onNone")

	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

func MatchWithErr[T, U any](o Option[T], onSome func(T) U, onNone func(error) U) U {
	rop.MustFunc(onSome, "onSome")
	rop.MustFunc(onNone, "onNone")

	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone(o.Err())
}

// Map transforms the value of a present Option. An absent Option becomes
// None[U] and its error is dropped.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	rop.MustFunc(f, "f")

	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// FlatMap returns f(value) for a present Option. An absent Option becomes
// an absent Option[U] that keeps its error, so FlatMap(o, Some) equals o.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	rop.MustFunc(f, "f")

	if v, ok := o.Get(); ok {
		return f(v)
	}
	return NoneWith[U](o.Err())
}
