// Package gm (stands for geometry math) provides immutable 2d geometry
// primitives for canvas style application code.
//
// It includes a 2d vector type called Vec, a 2x3 affine transform matrix
// named Affine and a Components view that splits an Affine into translation,
// rotation and scale. There is also a type named Rad to represent angle
// values in radian and an axis aligned Rect.
//
// All types are plain immutable values: every operation returns a new value
// and no instance is ever mutated after construction, so values can be
// shared freely between goroutines.
package gm
