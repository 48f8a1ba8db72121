// Package core contains Box, the one generic fallible container every public
// type is built on. Box implements the algebra shared by Option, Result and
// Of: discriminant, value and error slots, membership tests, single element
// iteration, equality, hashing, ordering and rendering.
package core
