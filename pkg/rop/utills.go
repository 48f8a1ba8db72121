package rop

import (
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, chan, func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
