// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorcore/internal/tensor"

// Apply combines lhs and rhs elementwise with broadcasting into a new tensor.
func Apply[T any](lhs, rhs Viewer[T], op BinaryOp[T]) (*Tensor[T], error) {
	return tensor.Apply(lhs, rhs, op)
}

// ApplyInPlace is Apply writing into lhs when lhs has the broadcast shape.
func ApplyInPlace[T any](lhs *Tensor[T], rhs Viewer[T], op BinaryOp[T]) (*Tensor[T], error) {
	return tensor.ApplyInPlace(lhs, rhs, op)
}

// Map applies f to every element of x.
func Map[T, U any](x Viewer[T], f func(T) U) *Tensor[U] { return tensor.Map(x, f) }

// MapInPlace applies f to every element of t, in place.
func MapInPlace[T any](t *Tensor[T], f func(T) T) *Tensor[T] { return tensor.MapInPlace(t, f) }

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b Viewer[T]) bool { return tensor.Equal(a, b) }

// Add returns a + b with broadcasting.
func Add[T Number](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Sub(a, b) }

// Mul returns a * b with broadcasting.
func Mul[T Number](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Mul(a, b) }

// Div returns a / b with broadcasting.
func Div[T Number](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Div(a, b) }

// Rem returns a % b with broadcasting.
func Rem[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Rem(a, b) }

// And returns a & b with broadcasting.
func And[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return tensor.And(a, b) }

// Or returns a | b with broadcasting.
func Or[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Or(a, b) }

// Xor returns a ^ b with broadcasting.
func Xor[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Xor(a, b) }

// Shl returns a << b with broadcasting.
func Shl[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Shl(a, b) }

// Shr returns a >> b with broadcasting.
func Shr[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Shr(a, b) }

// Mod is the floating-point remainder, with the sign of the dividend.
func Mod[T Float](a, b Viewer[T]) (*Tensor[T], error) { return tensor.Mod(a, b) }

// AddInPlace is Add writing into a when a has the broadcast shape.
func AddInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.AddInPlace(a, b)
}

// SubInPlace is Sub writing into a when a has the broadcast shape.
func SubInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.SubInPlace(a, b)
}

// MulInPlace is Mul writing into a when a has the broadcast shape.
func MulInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.MulInPlace(a, b)
}

// DivInPlace is Div writing into a when a has the broadcast shape.
func DivInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.DivInPlace(a, b)
}

// RemInPlace is Rem writing into a when a has the broadcast shape.
func RemInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.RemInPlace(a, b)
}

// ModInPlace is Mod writing into a when a has the broadcast shape.
func ModInPlace[T Float](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.ModInPlace(a, b)
}

// AndInPlace is And writing into a when a has the broadcast shape.
func AndInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.AndInPlace(a, b)
}

// OrInPlace is Or writing into a when a has the broadcast shape.
func OrInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.OrInPlace(a, b)
}

// XorInPlace is Xor writing into a when a has the broadcast shape.
func XorInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.XorInPlace(a, b)
}

// ShlInPlace is Shl writing into a when a has the broadcast shape.
func ShlInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.ShlInPlace(a, b)
}

// ShrInPlace is Shr writing into a when a has the broadcast shape.
func ShrInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return tensor.ShrInPlace(a, b)
}

// AddScalar returns x + s.
func AddScalar[T Number](x Viewer[T], s T) *Tensor[T] { return tensor.AddScalar(x, s) }

// SubScalar returns x - s.
func SubScalar[T Number](x Viewer[T], s T) *Tensor[T] { return tensor.SubScalar(x, s) }

// MulScalar returns x * s.
func MulScalar[T Number](x Viewer[T], s T) *Tensor[T] { return tensor.MulScalar(x, s) }

// DivScalar returns x / s.
func DivScalar[T Number](x Viewer[T], s T) *Tensor[T] { return tensor.DivScalar(x, s) }

// Unary applies op to every element of x.
func Unary[T Float](x Viewer[T], op UnaryOp) *Tensor[T] { return tensor.Unary(x, op) }

// UnaryInPlace applies op to every element of t, in place.
func UnaryInPlace[T Float](t *Tensor[T], op UnaryOp) *Tensor[T] { return tensor.UnaryInPlace(t, op) }
