package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Dim pairs a Shape with a stride Layout and an active rank.
// Only the first Rank() entries of either layout are meaningful.
//
// Dim is a small value type: narrowing, transposing and broadcasting return new
// Dims and never modify the receiver.
type Dim struct {
	nDims  int
	shape  Shape
	stride Layout
}

// NewDim returns a Dim with canonical row-major strides for the first nDims axes.
// Panics if nDims is outside [0, MaxDims].
func NewDim(shape Shape, nDims int) Dim {
	if nDims < 0 || nDims > MaxDims {
		panic(fmt.Sprintf("rank %d outside [0, %d]", nDims, MaxDims))
	}
	return Dim{
		nDims:  nDims,
		shape:  shape,
		stride: shape.Strides(nDims),
	}
}

// DimOf builds a row-major Dim from axis sizes.
func DimOf(dims ...int) (Dim, error) {
	s, err := NewShape(dims...)
	if err != nil {
		return Dim{}, err
	}
	return NewDim(s, len(dims)), nil
}

// MustDim is like DimOf but panics on error.
func MustDim(dims ...int) Dim {
	d, err := DimOf(dims...)
	if err != nil {
		panic(err)
	}
	return d
}

// Rank returns the number of active axes.
func (d Dim) Rank() int {
	return d.nDims
}

// Shape returns the active axis sizes.
func (d Dim) Shape() []int {
	return d.shape.Dims(d.nDims)
}

// Stride returns the active strides.
func (d Dim) Stride() []int {
	out := make([]int, d.nDims)
	copy(out, d.stride[:d.nDims])
	return out
}

// ShapeLayout returns the full padded shape.
func (d Dim) ShapeLayout() Shape {
	return d.shape
}

// StrideLayout returns the full stride layout.
func (d Dim) StrideLayout() Layout {
	return d.stride
}

// WithStride returns a copy of d using the given strides.
func (d Dim) WithStride(stride Layout) Dim {
	d.stride = stride
	return d
}

// Canonical returns d with row-major strides for its shape.
func (d Dim) Canonical() Dim {
	return NewDim(d.shape, d.nDims)
}

// Dims4 returns all four padded sizes.
func (d Dim) Dims4() (int, int, int, int) {
	return d.shape.Dims4()
}

// Strides4 returns all four stride slots.
func (d Dim) Strides4() (int, int, int, int) {
	return d.stride[0], d.stride[1], d.stride[2], d.stride[3]
}

// NumElements returns the number of logical elements.
func (d Dim) NumElements() int {
	return d.shape.NumElements()
}

// NRows returns the product of every axis but the first.
func (d Dim) NRows() int {
	_, d1, d2, d3 := d.Dims4()
	return d1 * d2 * d3
}

// IsVector reports whether every axis but the first has size 1.
func (d Dim) IsVector() bool {
	return d.NRows() == 1
}

// IsScalar reports whether every axis has size 1.
func (d Dim) IsScalar() bool {
	d0, d1, d2, d3 := d.Dims4()
	return d0 == 1 && d1 == 1 && d2 == 1 && d3 == 1
}

// SameShape reports whether both Dims have the same rank and sizes.
// Strides are not compared.
func (d Dim) SameShape(other Dim) bool {
	return d.nDims == other.nDims && d.shape.Equal(other.shape)
}

// Narrow restricts axis to [start, start+length). The stride is unchanged; the
// caller accounts for start*stride when addressing the buffer.
func (d Dim) Narrow(axis, start, length int) (Dim, error) {
	if axis < 0 || axis >= d.nDims {
		return Dim{}, errors.Wrapf(ErrDimOutOfRange, "narrow: axis %d for shape %v", axis, d.Shape())
	}
	if start < 0 || length < 0 || start+length > d.shape[axis] {
		return Dim{}, errors.Wrapf(ErrNarrowInvalidArgs,
			"narrow: start %d + len %d exceeds size %d of axis %d in shape %v",
			start, length, d.shape[axis], axis, d.Shape())
	}
	d.shape[axis] = length
	return d, nil
}

// Transpose swaps the size and stride entries of two axes.
func (d Dim) Transpose(a, b int) (Dim, error) {
	if a < 0 || b < 0 || a >= d.nDims || b >= d.nDims {
		return Dim{}, errors.Wrapf(ErrUnexpectedNumberOfDims,
			"transpose: axes (%d, %d) for rank %d shape %v", a, b, d.nDims, d.Shape())
	}
	d.shape[a], d.shape[b] = d.shape[b], d.shape[a]
	d.stride[a], d.stride[b] = d.stride[b], d.stride[a]
	return d, nil
}

// IsContiguous reports whether, scanning from the innermost axis outward, every
// stride equals the product of the sizes already scanned.
func (d Dim) IsContiguous() bool {
	acc := 1
	for i := d.nDims - 1; i >= 0; i-- {
		if d.stride[i] != acc {
			return false
		}
		acc *= d.shape[i]
	}
	return true
}

// IsPermuted reports whether some axis steps further in memory than the axis
// outside it, which is what a transpose of a row-major layout produces.
// Size-1 axes and stride-0 (broadcast) axes do not take part.
func (d Dim) IsPermuted() bool {
	prev := -1
	for i := 0; i < d.nDims; i++ {
		if d.shape[i] == 1 || d.stride[i] == 0 {
			continue
		}
		if prev >= 0 && d.stride[i] > prev {
			return true
		}
		prev = d.stride[i]
	}
	return false
}

// String formats the active shape and strides.
func (d Dim) String() string {
	return fmt.Sprintf("%v/%v", d.Shape(), d.Stride())
}
