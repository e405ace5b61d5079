// Package cpu implements the CPU kernels of tensorcore: a 1-D convolution
// parallelized over output channels and storage-level unary ops.
//
// Kernels operate on flat per-type buffers (Storage) described by a
// tensor.Dim, so strided and transposed inputs are accepted without a copy
// by the caller.
package cpu
