package ropzap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/fallible/pkg/rop"
	"github.com/ib-77/fallible/pkg/rop/option"
	"github.com/ib-77/fallible/pkg/rop/result"
)

func Option[T any](key string, o option.Option[T]) zap.Field {
	return zap.Object(key, optionMarshaler[T]{o})
}

func Result[T any](key string, r result.Result[T]) zap.Field {
	return zap.Object(key, resultMarshaler[T]{r})
}

func Of[T, E any](key string, r result.Of[T, E]) zap.Field {
	return zap.Object(key, ofMarshaler[T, E]{r})
}

// Data logs a side channel on its own. Keys are rendered with fmt.
func Data(key string, d rop.Data) zap.Field {
	return zap.Object(key, dataMarshaler(d))
}

type optionMarshaler[T any] struct {
	o option.Option[T]
}

func (m optionMarshaler[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("ok", m.o.IsSome())
	if v, ok := m.o.Get(); ok {
		return enc.AddReflected("value", v)
	}
	if m.o.HasError() {
		enc.AddString("error", m.o.Err().Error())
	}
	return nil
}

type resultMarshaler[T any] struct {
	r result.Result[T]
}

func (m resultMarshaler[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("ok", m.r.IsOk())
	enc.AddString("id", m.r.Id().String())
	if v, ok := m.r.Get(); ok {
		if err := enc.AddReflected("value", v); err != nil {
			return err
		}
	} else if m.r.HasError() {
		enc.AddString("error", m.r.Err().Error())
	}
	return addData(enc, m.r.Data())
}

type ofMarshaler[T, E any] struct {
	r result.Of[T, E]
}

func (m ofMarshaler[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("ok", m.r.IsOk())
	enc.AddString("id", m.r.Id().String())
	if v, ok := m.r.Get(); ok {
		if err := enc.AddReflected("value", v); err != nil {
			return err
		}
	} else if m.r.HasError() {
		if err := addError(enc, m.r.Err()); err != nil {
			return err
		}
	}
	return addData(enc, m.r.Data())
}

type dataMarshaler rop.Data

func (d dataMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for k, v := range d {
		if err := enc.AddReflected(fmt.Sprint(k), v); err != nil {
			return err
		}
	}
	return nil
}

func addData(enc zapcore.ObjectEncoder, d rop.Data) error {
	if len(d) == 0 {
		return nil
	}
	return enc.AddObject("data", dataMarshaler(d))
}

func addError(enc zapcore.ObjectEncoder, e any) error {
	if err, ok := e.(error); ok && !rop.IsNil(err) {
		enc.AddString("error", err.Error())
		return nil
	}
	return enc.AddReflected("error", e)
}
