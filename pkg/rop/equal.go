package rop

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equaler is implemented by payloads that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Hasher is implemented by payloads that define their own hash code.
// Hash must agree with Equal.
type Hasher interface {
	Hash() uint64
}

// Equal compares two payloads. A payload implementing Equaler decides for
// itself, anything else is compared with reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}

	if eq, ok := any(a).(Equaler[T]); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(any(a), any(b))
}

// Combine folds hash codes into one.
func Combine(hashes ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, h := range hashes {
		for i := range buf {
			buf[i] = byte(h >> (8 * i))
		}
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Compare orders two discriminants: absent (false) sorts before present (true).
// Payloads never take part in ordering.
func Compare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
