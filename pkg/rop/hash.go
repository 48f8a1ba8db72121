package rop

import (
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
)

const maxHashDepth = 32

var timeType = reflect.TypeOf(time.Time{})

// Hash returns a hash code for a payload that agrees with Equal. nil hashes
// to 0 and Hashers hash themselves. A payload with its own Equal method is
// hashed by type only, except time.Time which hashes its instant. Anything
// else is walked the way reflect.DeepEqual walks it: pointers are followed,
// struct fields (unexported included) and elements are hashed by value and
// map entries are combined regardless of order.
func Hash(v any) uint64 {
	if IsNil(v) {
		return 0
	}

	if h, ok := v.(Hasher); ok {
		return h.Hash()
	}

	rv := reflect.ValueOf(v)
	typ := xxhash.Sum64String(rv.Type().String())
	if hasEqualMethod(rv) {
		if rv.Type() == timeType {
			return Combine(typ, uint64(rv.Interface().(time.Time).UnixNano()))
		}
		return typ
	}
	return Combine(typ, deepHash(rv, 0))
}

// hasEqualMethod reports whether v has an Equal(T) bool method that accepts v.
func hasEqualMethod(v reflect.Value) bool {
	m := v.MethodByName("Equal")
	if !m.IsValid() {
		return false
	}

	mt := m.Type()
	return mt.NumIn() == 1 && mt.NumOut() == 1 &&
		mt.Out(0).Kind() == reflect.Bool &&
		v.Type().AssignableTo(mt.In(0))
}

func deepHash(v reflect.Value, depth int) uint64 {
	if !v.IsValid() {
		return 0
	}

	kind := uint64(v.Kind())
	if depth > maxHashDepth {
		return kind
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return Combine(kind, 1)
		}
		return Combine(kind, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Combine(kind, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Combine(kind, v.Uint())
	case reflect.Float32, reflect.Float64:
		return Combine(kind, floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return Combine(kind, floatBits(real(c)), floatBits(imag(c)))
	case reflect.String:
		return Combine(kind, xxhash.Sum64String(v.String()))
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return Combine(kind, 0)
		}
		return Combine(kind, 1, deepHash(v.Elem(), depth+1))
	case reflect.Slice:
		if v.IsNil() {
			return Combine(kind, 0)
		}
		return Combine(kind, 1, elemsHash(v, depth))
	case reflect.Array:
		return Combine(kind, elemsHash(v, depth))
	case reflect.Map:
		if v.IsNil() {
			return Combine(kind, 0)
		}
		// entries are summed so iteration order does not matter
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			sum += Combine(deepHash(iter.Key(), depth+1), deepHash(iter.Value(), depth+1))
		}
		return Combine(kind, 1, uint64(v.Len()), sum)
	case reflect.Struct:
		hashes := make([]uint64, 0, v.NumField()+1)
		hashes = append(hashes, kind)
		for i := 0; i < v.NumField(); i++ {
			hashes = append(hashes, deepHash(v.Field(i), depth+1))
		}
		return Combine(hashes...)
	default:
		// func, chan and unsafe pointers only DeepEqual when both are nil or
		// identical, so their nil-ness is all that is hashed
		if v.IsNil() {
			return Combine(kind, 0)
		}
		return Combine(kind, 1)
	}
}

func elemsHash(v reflect.Value, depth int) uint64 {
	hashes := make([]uint64, 0, v.Len()+1)
	hashes = append(hashes, uint64(v.Len()))
	for i := 0; i < v.Len(); i++ {
		hashes = append(hashes, deepHash(v.Index(i), depth+1))
	}
	return Combine(hashes...)
}

// floatBits maps -0 onto 0, the two compare equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}
