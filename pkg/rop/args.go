package rop

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument           = errors.New("invalid argument")
	ErrInvalidAlternativeFactory = errors.New("invalid alternative factory")
)

// ArgumentError is the panic value raised when a required handler, factory or
// predicate is nil. It is raised before the container state is looked at.
type ArgumentError struct {
	Arg  string
	Kind error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s", e.kind(), e.Arg)
}

func (e *ArgumentError) Unwrap() error {
	return e.kind()
}

// Is lets an alternative factory error match ErrInvalidArgument as well.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument || target == e.kind()
}

func (e *ArgumentError) kind() error {
	if e.Kind == nil {
		return ErrInvalidArgument
	}
	return e.Kind
}

// MustFunc panics with an ArgumentError when f is nil.
func MustFunc(f any, arg string) {
	if IsNil(f) {
		panic(&ArgumentError{Arg: arg, Kind: ErrInvalidArgument})
	}
}

// MustFactory is MustFunc for alternative factories.
func MustFactory(f any, arg string) {
	if IsNil(f) {
		panic(&ArgumentError{Arg: arg, Kind: ErrInvalidAlternativeFactory})
	}
}

// Catch runs f and returns the ArgumentError it panicked with, if any.
// Any other panic is re-raised.
func Catch(f func()) (err *ArgumentError) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*ArgumentError)
			if !ok {
				panic(r)
			}
			err = ae
		}
	}()

	f()
	return nil
}
