// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided, broadcastable tensors of rank up to four.
//
// # Overview
//
// A Tensor owns a flat buffer and a Dim (shape plus strides). Views produced
// by Narrow, Transpose and BroadcastAs share that buffer and only change the
// Dim and starting offset, so they are free to create.
//
// # Basic Usage
//
//	x, _ := tensor.FromSlice([]float32{0, 0, 0, 1, 1, 1}, 2, 3)
//	v, _ := tensor.FromSlice([]float32{1, 2, 3}, 3)
//	y, err := tensor.Add[float32](x, v) // [[1 2 3] [2 3 4]]
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules: shapes are aligned from
// the right and each axis pair must be equal or contain a 1. Incompatible
// shapes return ErrIncompatibleShape; nothing is mutated.
//
//	a, _ := tensor.Zeros[float64](3, 1)
//	b, _ := tensor.Zeros[float64](1, 4)
//	c, _ := tensor.Mul[float64](a, b) // (3, 4)
//
// # In-place Operations
//
// AddInPlace and friends write into the left operand when it already has the
// broadcast shape, and otherwise return a new tensor.
//
// # Supported Data Types
//
// Arithmetic works for any Number (integers and floats); bitwise ops and Rem
// need an Integer, and unary math needs a Float.
package tensor
