package tensor

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// MaxDims is the fixed capacity of shapes and stride layouts.
const MaxDims = 4

// Layout is a fixed-capacity vector of per-axis values (sizes or strides).
type Layout [MaxDims]int

// Axis names one axis of a shape.
type Axis int

// Shape holds up to MaxDims axis sizes. Slots past the active rank are always 1,
// so NumElements can multiply all slots without knowing the rank.
type Shape Layout

// NewShape builds a shape from axis sizes.
// Returns ErrRankTooLarge for more than MaxDims sizes and ErrInvalidShape for
// negative sizes.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) > MaxDims {
		return Shape{}, errors.Wrapf(ErrRankTooLarge, "shape %v has rank %d, max %d", dims, len(dims), MaxDims)
	}
	s := Shape{1, 1, 1, 1}
	for i, d := range dims {
		if d < 0 {
			return Shape{}, errors.Wrapf(ErrInvalidShape, "negative size %d at axis %d", d, i)
		}
		s[i] = d
	}
	return s, nil
}

// MustShape is like NewShape but panics on error.
func MustShape(dims ...int) Shape {
	s, err := NewShape(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// NumElements returns the product of all stored sizes.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether both shapes have the same element count and sizes.
func (s Shape) Equal(other Shape) bool {
	return s.NumElements() == other.NumElements() && s == other
}

// Dims returns the first n sizes.
func (s Shape) Dims(n int) []int {
	out := make([]int, n)
	copy(out, s[:n])
	return out
}

// Dims1 returns the first size.
func (s Shape) Dims1() int { return s[0] }

// Dims2 returns the first two sizes.
func (s Shape) Dims2() (int, int) { return s[0], s[1] }

// Dims3 returns the first three sizes.
func (s Shape) Dims3() (int, int, int) { return s[0], s[1], s[2] }

// Dims4 returns all four sizes.
func (s Shape) Dims4() (int, int, int, int) { return s[0], s[1], s[2], s[3] }

// ContiguousStrides computes row-major strides over all MaxDims slots.
func (s Shape) ContiguousStrides() Layout {
	var stride Layout
	prod := 1
	for i := MaxDims - 1; i >= 0; i-- {
		stride[i] = prod
		prod *= s[i]
	}
	return stride
}

// Strides computes row-major strides for the first nDims axes.
// The rightmost active axis has stride 1; slots past nDims are 0.
func (s Shape) Strides(nDims int) Layout {
	var stride Layout
	prod := 1
	for i := nDims - 1; i >= 0; i-- {
		stride[i] = prod
		prod *= s[i]
	}
	return stride
}

// QuantizedStrides computes strides for a block-quantized buffer.
//
// The layout is innermost-first: slot 0 is the element axis and slot 1 steps over
// rows of shape[0]/BlockSize blocks. Strides are expressed in blocks.
func (s Shape) QuantizedStrides(dtype DataType) Layout {
	var stride Layout
	stride[0] = 1
	stride[1] = s[0] / dtype.BlockSize()
	for i := 2; i < MaxDims; i++ {
		stride[i] = stride[i-1] * s[i-1]
	}
	return stride
}

// SelectAxis removes one axis and compacts the remaining sizes, padding with 1.
func (s Shape) SelectAxis(a Axis) Shape {
	if a < 0 || int(a) >= MaxDims {
		panic(fmt.Sprintf("select axis %d out of range", a))
	}
	out := Shape{1, 1, 1, 1}
	copy(out[:a], s[:a])
	copy(out[a:], s[a+1:])
	return out
}

// String formats the shape with all MaxDims slots.
func (s Shape) String() string {
	return fmt.Sprint([MaxDims]int(s))
}

// Iter returns an odometer over every multi-index of the first nDims axes.
func (s Shape) Iter(nDims int) *ShapeIter {
	it := &ShapeIter{shape: s, nDims: nDims, first: true}
	for _, d := range s[:nDims] {
		if d == 0 {
			it.done = true
		}
	}
	return it
}

// Indices yields every multi-index of the first nDims axes in row-major order.
// The yielded Shape is reused between iterations.
func (s Shape) Indices(nDims int) iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		it := s.Iter(nDims)
		for idx, ok := it.Next(); ok; idx, ok = it.Next() {
			if !yield(idx) {
				return
			}
		}
	}
}

// ShapeIter walks multi-indices, incrementing the rightmost axis first and
// carrying left on overflow.
type ShapeIter struct {
	shape Shape
	index Shape
	nDims int
	first bool
	done  bool
}

// Next returns the next multi-index. Slots past the active rank are 0.
func (it *ShapeIter) Next() (Shape, bool) {
	if it.done {
		return Shape{}, false
	}
	if it.first {
		it.first = false
		return it.index, true
	}
	for i := it.nDims - 1; i >= 0; i-- {
		it.index[i]++
		if it.index[i] < it.shape[i] {
			return it.index, true
		}
		it.index[i] = 0
	}
	it.done = true
	return Shape{}, false
}

// StrideOffset returns the flat offset of a multi-index under the given strides.
func StrideOffset(index, strides []int) int {
	offset := 0
	for i := range index {
		offset += index[i] * strides[i]
	}
	return offset
}
