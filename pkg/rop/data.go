package rop

import "maps"

// Data is the auxiliary side channel carried by result containers. Keys must
// be comparable. Data is never part of equality, hashing or ordering.
type Data map[any]any

// NewData returns an empty side channel.
func NewData() Data {
	return make(Data)
}

// Get returns the value stored under key.
func (d Data) Get(key any) (any, bool) {
	v, ok := d[key]
	return v, ok
}

// Set stores value under key.
func (d Data) Set(key, value any) {
	d[key] = value
}

// Adopt copies every entry of src into d. Entries are copied, the two maps
// stay independent afterwards.
func (d Data) Adopt(src Data) {
	maps.Copy(d, src)
}

// Clone returns an independent copy of d.
func (d Data) Clone() Data {
	c := make(Data, len(d))
	c.Adopt(d)
	return c
}
