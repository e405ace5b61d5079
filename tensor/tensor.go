// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/tensorcore/internal/tensor"
)

// MaxDims is the highest supported rank.
const MaxDims = tensor.MaxDims

// Shape is a fixed-capacity list of axis sizes, padded with 1.
type Shape = tensor.Shape

// Layout is a fixed-capacity per-axis array, used for strides.
type Layout = tensor.Layout

// Axis indexes an axis of a Shape.
type Axis = tensor.Axis

// Dim is a shape with its rank and strides.
type Dim = tensor.Dim

// StridedBlocks describes how a Dim maps onto contiguous runs of memory.
type StridedBlocks = tensor.StridedBlocks

// Broadcast is the outcome of resolving two Dims against each other.
type Broadcast = tensor.Broadcast

// DataType is the runtime tag of an element type.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Q4_0    DataType = tensor.Q4_0
	Q4_1    DataType = tensor.Q4_1
	Q5_0    DataType = tensor.Q5_0
	Q5_1    DataType = tensor.Q5_1
	Q8_0    DataType = tensor.Q8_0
	Q8_1    DataType = tensor.Q8_1
)

// Element type constraints.
type (
	Number  = tensor.Number
	Integer = tensor.Integer
	Float   = tensor.Float
)

// Tensor is an owned buffer with a Dim.
type Tensor[T any] = tensor.Tensor[T]

// View is a read-only window onto a tensor's buffer.
type View[T any] = tensor.View[T]

// Viewer is implemented by *Tensor and View.
type Viewer[T any] = tensor.Viewer[T]

// BinaryOp combines two elements.
type BinaryOp[T any] = tensor.BinaryOp[T]

// UnaryOp selects an elementwise math function.
type UnaryOp = tensor.UnaryOp

// Unary ops.
const (
	Exp   UnaryOp = tensor.Exp
	Log   UnaryOp = tensor.Log
	Sin   UnaryOp = tensor.Sin
	Cos   UnaryOp = tensor.Cos
	Tanh  UnaryOp = tensor.Tanh
	Neg   UnaryOp = tensor.Neg
	Recip UnaryOp = tensor.Recip
	Sqr   UnaryOp = tensor.Sqr
	Sqrt  UnaryOp = tensor.Sqrt
)

// Errors.
var (
	ErrIncompatibleShape      = tensor.ErrIncompatibleShape
	ErrDimOutOfRange          = tensor.ErrDimOutOfRange
	ErrNarrowInvalidArgs      = tensor.ErrNarrowInvalidArgs
	ErrUnexpectedNumberOfDims = tensor.ErrUnexpectedNumberOfDims
	ErrRankTooLarge           = tensor.ErrRankTooLarge
	ErrInvalidShape           = tensor.ErrInvalidShape
)

// NewShape builds a Shape from axis sizes.
func NewShape(dims ...int) (Shape, error) { return tensor.NewShape(dims...) }

// DimOf builds a contiguous Dim from axis sizes.
func DimOf(dims ...int) (Dim, error) { return tensor.DimOf(dims...) }

// MustDim is like DimOf but panics on error.
func MustDim(dims ...int) Dim { return tensor.MustDim(dims...) }

// ResolveBroadcast computes the broadcast Dim of lhs and rhs.
func ResolveBroadcast(lhs, rhs Dim) (Broadcast, error) { return tensor.ResolveBroadcast(lhs, rhs) }

// BroadcastShape returns only the broadcast Dim of lhs and rhs.
func BroadcastShape(lhs, rhs Dim) (Dim, error) { return tensor.BroadcastShape(lhs, rhs) }

// New wraps data as a tensor. It panics if len(data) does not match dim.
func New[T any](data []T, dim Dim) *Tensor[T] { return tensor.New(data, dim) }

// FromSlice copies data into a new contiguous tensor of the given shape.
func FromSlice[T any](data []T, dims ...int) (*Tensor[T], error) {
	return tensor.FromSlice(data, dims...)
}

// Zeros returns a zero-filled tensor.
func Zeros[T any](dims ...int) (*Tensor[T], error) { return tensor.Zeros[T](dims...) }

// Full returns a tensor filled with value.
func Full[T any](value T, dims ...int) (*Tensor[T], error) { return tensor.Full(value, dims...) }

// Collect drains seq into a tensor of shape dim.
func Collect[T any](seq iter.Seq[T], dim Dim) *Tensor[T] { return tensor.Collect(seq, dim) }

// DataTypeOf returns the DataType tag of T.
func DataTypeOf[T any]() DataType { return tensor.DataTypeOf[T]() }
