// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/tensorcore/internal/backend/cpu"
	"github.com/born-ml/tensorcore/internal/parallel"
	"github.com/born-ml/tensorcore/tensor"
)

// Storage is a flat CPU buffer of one element type.
type Storage = internalcpu.Storage

// Concrete storages.
type (
	F16Storage = internalcpu.F16Storage
	F32Storage = internalcpu.F32Storage
	F64Storage = internalcpu.F64Storage
)

// Element is the set of element types with CPU storage.
type Element = internalcpu.Element

// Scalar is the per-type arithmetic used by the kernels.
type Scalar[T any] = internalcpu.Scalar[T]

// Scalar sets.
type (
	F16 = internalcpu.F16
	F32 = internalcpu.F32
	F64 = internalcpu.F64
)

// Conv1DParams describes a 1-D convolution.
type Conv1DParams = internalcpu.Conv1DParams

// Errors.
var (
	ErrDTypeMismatch     = internalcpu.ErrDTypeMismatch
	ErrInvalidConvParams = internalcpu.ErrInvalidConvParams
	ErrUnsupportedDType  = internalcpu.ErrUnsupportedDType
)

// NewStorage allocates a zeroed buffer of n elements of dtype.
func NewStorage(dtype tensor.DataType, n int) (Storage, error) {
	return internalcpu.NewStorage(dtype, n)
}

// NewConv1DParams derives convolution parameters from input and kernel dims.
func NewConv1DParams(inpDim, kDim tensor.Dim, padding, stride, dilation int) (Conv1DParams, error) {
	return internalcpu.NewConv1DParams(inpDim, kDim, padding, stride, dilation)
}

// Conv1D convolves two storages with the default worker pool.
func Conv1D(inp Storage, inpDim tensor.Dim, k Storage, kDim tensor.Dim, p Conv1DParams) (Storage, error) {
	return internalcpu.Conv1D(inp, inpDim, k, kDim, p, parallel.KernelConfig())
}

// Conv1DTensor convolves two tensors with the default worker pool.
func Conv1DTensor[T Element](inp, k tensor.Viewer[T], p Conv1DParams, ops Scalar[T]) (*tensor.Tensor[T], error) {
	return internalcpu.Conv1DTensor(inp, k, p, ops, parallel.KernelConfig())
}

// Unary applies op to every element of s.
func Unary(s Storage, op tensor.UnaryOp) Storage {
	return internalcpu.Unary(s, op)
}
