package cpu

import (
	"github.com/x448/float16"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/floats"
)

// Element is the set of element types with CPU storage.
type Element interface {
	float16.Float16 | float32 | float64
}

// Scalar is the arithmetic a kernel needs from its element type. The zero
// value of T is the additive identity.
type Scalar[T any] interface {
	Add(a, b T) T
	// Dot returns the dot product of two equal-length contiguous runs.
	Dot(x, y []T) T
}

// F16 is the Scalar set for float16. Dot accumulates in float32.
type F16 struct{}

// Add returns a + b rounded to float16.
func (F16) Add(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() + b.Float32())
}

// Dot returns the float16-rounded dot product of x and y[:len(x)].
func (F16) Dot(x, y []float16.Float16) float16.Float16 {
	y = y[:len(x)]
	var acc float32
	for i, v := range x {
		acc += v.Float32() * y[i].Float32()
	}
	return float16.Fromfloat32(acc)
}

// F32 is the Scalar set for float32, backed by BLAS sdot.
type F32 struct{}

// Add returns a + b.
func (F32) Add(a, b float32) float32 { return a + b }

// Dot returns the dot product of x and y[:len(x)].
func (F32) Dot(x, y []float32) float32 {
	n := len(x)
	return blas32.Dot(
		blas32.Vector{N: n, Data: x, Inc: 1},
		blas32.Vector{N: n, Data: y[:n], Inc: 1},
	)
}

// F64 is the Scalar set for float64.
type F64 struct{}

// Add returns a + b.
func (F64) Add(a, b float64) float64 { return a + b }

// Dot returns the dot product of x and y[:len(x)].
func (F64) Dot(x, y []float64) float64 {
	return floats.Dot(x, y[:len(x)])
}
