package tensor

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Tensor is a contiguous element buffer plus a row-major Dim describing it.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
//	col := t.At(1, 2) // 6
type Tensor[T any] struct {
	data []T
	dim  Dim
}

// Viewer is implemented by anything that can be read as a View.
type Viewer[T any] interface {
	View() View[T]
}

// New wraps data without copying. Panics if len(data) does not match dim.
func New[T any](data []T, dim Dim) *Tensor[T] {
	if len(data) != dim.NumElements() {
		panic(fmt.Sprintf("tensor: buffer of %d elements for shape %v (%d elements)",
			len(data), dim.Shape(), dim.NumElements()))
	}
	return &Tensor[T]{data: data, dim: dim.Canonical()}
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T any](data []T, dims ...int) (*Tensor[T], error) {
	dim, err := DimOf(dims...)
	if err != nil {
		return nil, err
	}
	if dim.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrInvalidShape, "shape %v requires %d elements, got %d",
			dims, dim.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return &Tensor[T]{data: buf, dim: dim}, nil
}

// Zeros allocates a tensor filled with the zero value of T.
func Zeros[T any](dims ...int) (*Tensor[T], error) {
	dim, err := DimOf(dims...)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: make([]T, dim.NumElements()), dim: dim}, nil
}

// Full allocates a tensor filled with value.
func Full[T any](value T, dims ...int) (*Tensor[T], error) {
	t, err := Zeros[T](dims...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Collect gathers the values of seq into a new tensor shaped like dim.
// Panics if seq does not yield exactly dim.NumElements() values.
func Collect[T any](seq iter.Seq[T], dim Dim) *Tensor[T] {
	n := dim.NumElements()
	data := make([]T, 0, n)
	for v := range seq {
		data = append(data, v)
	}
	if len(data) != n {
		panic(fmt.Sprintf("tensor: collected %d elements for shape %v (%d elements)",
			len(data), dim.Shape(), n))
	}
	return &Tensor[T]{data: data, dim: dim.Canonical()}
}

// Dim returns the tensor's layout.
func (t *Tensor[T]) Dim() Dim {
	return t.dim
}

// Shape returns the active axis sizes.
func (t *Tensor[T]) Shape() []int {
	return t.dim.Shape()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return t.dim.Rank()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the underlying buffer.
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// View returns a read-only view of the whole tensor.
func (t *Tensor[T]) View() View[T] {
	return View[T]{data: t.data, dim: t.dim}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.dim.flatIndex(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.dim.flatIndex(indices)] = value
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{data: data, dim: t.dim}
}

// Narrow returns a view restricted to [start, start+length) along axis.
func (t *Tensor[T]) Narrow(axis, start, length int) (View[T], error) {
	return t.View().Narrow(axis, start, length)
}

// Transpose returns a view with two axes swapped.
func (t *Tensor[T]) Transpose(a, b int) (View[T], error) {
	return t.View().Transpose(a, b)
}

// BroadcastAs returns a view of t expanded to target.
func (t *Tensor[T]) BroadcastAs(target Dim) (View[T], error) {
	return t.View().BroadcastAs(target)
}

// String returns a short description of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%T]%v", *new(T), t.dim.Shape())
}

// View is a non-owning, read-only window over a buffer owned by a Tensor.
// Stride-0 axes of a broadcast view alias one stored element, so views never
// offer mutation.
type View[T any] struct {
	data   []T
	dim    Dim
	offset int
}

// View returns v itself, so a View satisfies Viewer.
func (v View[T]) View() View[T] {
	return v
}

// Dim returns the view's layout.
func (v View[T]) Dim() Dim {
	return v.dim
}

// Offset returns the buffer offset of the view's first element.
func (v View[T]) Offset() int {
	return v.offset
}

// Buffer returns the shared buffer the view reads from.
func (v View[T]) Buffer() []T {
	return v.data
}

// At returns the element at the given indices.
func (v View[T]) At(indices ...int) T {
	return v.data[v.offset+v.dim.flatIndex(indices)]
}

// Iter returns an iterator over the buffer offsets of the view.
func (v View[T]) Iter() StridedIter {
	return v.dim.Iter(v.offset)
}

// All yields the view's elements in row-major order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.Iter()
		for off, ok := it.Next(); ok; off, ok = it.Next() {
			if !yield(v.data[off]) {
				return
			}
		}
	}
}

// Materialize copies the view into a new contiguous tensor, one copy per
// contiguous block.
func (v View[T]) Materialize() *Tensor[T] {
	out := make([]T, 0, v.dim.NumElements())
	v.dim.forEachBlock(v.offset, func(start, length int) {
		out = append(out, v.data[start:start+length]...)
	})
	return &Tensor[T]{data: out, dim: v.dim.Canonical()}
}

// Narrow restricts one axis. The view's offset advances by start*stride.
func (v View[T]) Narrow(axis, start, length int) (View[T], error) {
	dim, err := v.dim.Narrow(axis, start, length)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, dim: dim, offset: v.offset + start*v.dim.stride[axis]}, nil
}

// Transpose swaps two axes.
func (v View[T]) Transpose(a, b int) (View[T], error) {
	dim, err := v.dim.Transpose(a, b)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, dim: dim, offset: v.offset}, nil
}

// BroadcastAs expands the view to target using stride-0 axes.
func (v View[T]) BroadcastAs(target Dim) (View[T], error) {
	dim, err := v.dim.BroadcastAs(target)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, dim: dim, offset: v.offset}, nil
}

// flatIndex computes the stride offset of a multi-index, panicking on
// out-of-range indices.
func (d Dim) flatIndex(indices []int) int {
	if len(indices) != d.nDims {
		panic(fmt.Sprintf("expected %d indices, got %d", d.nDims, len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, d.shape[i]))
		}
		offset += idx * d.stride[i]
	}
	return offset
}
