// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU kernels for tensorcore tensors.
//
// # Overview
//
// This package implements:
//   - 1-D convolution over [batch, channels, length] inputs
//   - Storage-level unary math for float16, float32 and float64
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorcore/backend/cpu"
//	    "github.com/born-ml/tensorcore/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5}, 1, 1, 5)
//	    k, _ := tensor.FromSlice([]float32{1, 1, 1}, 1, 1, 3)
//	    p, _ := cpu.NewConv1DParams(x.Dim(), k.Dim(), 1, 1, 1)
//	    y, _ := cpu.Conv1DTensor[float32](x, k, p, cpu.F32{}) // [3 6 9 12 9]
//	}
//
// # Thread Safety
//
// Kernels allocate their outputs and never write to their inputs, so they
// are safe for concurrent use. Conv1D itself runs output channels in
// parallel.
package cpu
