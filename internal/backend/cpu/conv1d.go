package cpu

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/born-ml/tensorcore/internal/parallel"
	"github.com/born-ml/tensorcore/internal/tensor"
)

// Conv1DParams describes a 1-D convolution.
//
// Input shape: [Batch, CIn, LIn]
// Kernel shape: [COut, CIn, KSize]
// Output shape: [Batch, COut, LOut()]
type Conv1DParams struct {
	Batch    int
	LIn      int
	COut     int
	CIn      int
	KSize    int
	Padding  int
	Stride   int
	Dilation int
}

// NewConv1DParams derives the parameters from rank-3 input and kernel dims.
func NewConv1DParams(inpDim, kDim tensor.Dim, padding, stride, dilation int) (Conv1DParams, error) {
	if inpDim.Rank() != 3 || kDim.Rank() != 3 {
		return Conv1DParams{}, errors.Wrapf(tensor.ErrUnexpectedNumberOfDims,
			"conv1d: input %s and kernel %s must both be rank 3", inpDim, kDim)
	}
	b, cIn, lIn, _ := inpDim.Dims4()
	cOut, kcIn, k, _ := kDim.Dims4()
	if cIn != kcIn {
		return Conv1DParams{}, errors.Wrapf(ErrInvalidConvParams,
			"conv1d: input channels %d != kernel channels %d", cIn, kcIn)
	}
	p := Conv1DParams{
		Batch:    b,
		LIn:      lIn,
		COut:     cOut,
		CIn:      cIn,
		KSize:    k,
		Padding:  padding,
		Stride:   stride,
		Dilation: dilation,
	}
	return p, p.Validate()
}

// LOut returns the output length, floor((LIn + 2*Padding - Dilation*(KSize-1) - 1) / Stride) + 1.
// It returns 0 when the kernel does not fit the padded input.
func (p Conv1DParams) LOut() int {
	num := p.LIn + 2*p.Padding - p.Dilation*(p.KSize-1) - 1
	if num < 0 || p.Stride <= 0 {
		return 0
	}
	return num/p.Stride + 1
}

// OutDims returns [Batch, COut, LOut].
func (p Conv1DParams) OutDims() []int {
	return []int{p.Batch, p.COut, p.LOut()}
}

// Validate checks that the parameters describe a non-empty convolution.
func (p Conv1DParams) Validate() error {
	switch {
	case p.Batch <= 0 || p.LIn <= 0 || p.COut <= 0 || p.CIn <= 0 || p.KSize <= 0:
		return errors.Wrapf(ErrInvalidConvParams, "conv1d: non-positive size in %+v", p)
	case p.Stride <= 0 || p.Dilation <= 0:
		return errors.Wrapf(ErrInvalidConvParams, "conv1d: stride %d and dilation %d must be positive", p.Stride, p.Dilation)
	case p.Padding < 0:
		return errors.Wrapf(ErrInvalidConvParams, "conv1d: negative padding %d", p.Padding)
	case p.LOut() <= 0:
		return errors.Wrapf(ErrInvalidConvParams,
			"conv1d: kernel %d with dilation %d does not fit input length %d padded by %d",
			p.KSize, p.Dilation, p.LIn, p.Padding)
	}
	return nil
}

// check verifies that the operand dims agree with p.
func (p Conv1DParams) check(inpDim, kDim tensor.Dim) error {
	if err := p.Validate(); err != nil {
		return err
	}
	want, err := tensor.DimOf(p.Batch, p.CIn, p.LIn)
	if err != nil {
		return err
	}
	if !inpDim.SameShape(want) {
		return errors.Wrapf(ErrInvalidConvParams, "conv1d: input %s, params expect %s", inpDim, want)
	}
	if want, err = tensor.DimOf(p.COut, p.CIn, p.KSize); err != nil {
		return err
	}
	if !kDim.SameShape(want) {
		return errors.Wrapf(ErrInvalidConvParams, "conv1d: kernel %s, params expect %s", kDim, want)
	}
	return nil
}

// Conv1D convolves inp with kernel k. Both dims may be strided; the result
// is a contiguous storage of the same type with shape p.OutDims().
func Conv1D(inp Storage, inpDim tensor.Dim, k Storage, kDim tensor.Dim, p Conv1DParams, cfg parallel.Config) (Storage, error) {
	if err := p.check(inpDim, kDim); err != nil {
		return nil, err
	}
	if inp.DType() != k.DType() {
		return nil, mismatch(inp, k)
	}
	requireSpan(inp.Len(), inpDim, "input")
	requireSpan(k.Len(), kDim, "kernel")

	log.Debug().
		Stringer("dtype", inp.DType()).
		Stringer("input", inpDim).
		Stringer("kernel", kDim).
		Int("l_out", p.LOut()).
		Msg("conv1d")

	timer := prometheus.NewTimer(kernelDuration.WithLabelValues("conv1d", inp.DType().String()))
	defer timer.ObserveDuration()

	return inp.conv1d(inpDim, k, kDim, p, cfg)
}

// Conv1DTensor convolves two tensor views of the same element type.
func Conv1DTensor[T Element](inp, k tensor.Viewer[T], p Conv1DParams, ops Scalar[T], cfg parallel.Config) (*tensor.Tensor[T], error) {
	iv, kv := inp.View(), k.View()
	if err := p.check(iv.Dim(), kv.Dim()); err != nil {
		return nil, err
	}
	ib, kb := iv.Buffer()[iv.Offset():], kv.Buffer()[kv.Offset():]
	requireSpan(len(ib), iv.Dim(), "input")
	requireSpan(len(kb), kv.Dim(), "kernel")

	timer := prometheus.NewTimer(kernelDuration.WithLabelValues("conv1d", tensor.DataTypeOf[T]().String()))
	defer timer.ObserveDuration()

	dst := conv1d(ib, iv.Dim(), kb, kv.Dim(), p, ops, cfg)
	return tensor.New(dst, tensor.MustDim(p.OutDims()...)), nil
}

// requireSpan panics if a buffer of length n cannot hold every element dim addresses.
func requireSpan(n int, dim tensor.Dim, what string) {
	last := 0
	shape, stride := dim.Shape(), dim.Stride()
	for i, s := range shape {
		last += (s - 1) * stride[i]
	}
	if last >= n {
		panic(fmt.Sprintf("conv1d: %s buffer of %d elements is too short for %s", what, n, dim))
	}
}

// ChannelPartition is the region of a conv1d output owned by one output
// channel. Rows[b] is the channel's output run for batch b, and Weights is
// scratch for the channel's kernel taps.
type ChannelPartition[T any] struct {
	Channel int
	Rows    [][]T
	Weights []T
}

// partitionByChannel splits dst, laid out as [batch][cOut][lOut], into one
// partition per output channel. Each row is capped at its own length so no
// partition can append into another's region.
func partitionByChannel[T any](dst []T, batch, cOut, lOut, cIn int) []ChannelPartition[T] {
	if len(dst) != batch*cOut*lOut {
		panic(fmt.Sprintf("conv1d: output has %d elements, want %d", len(dst), batch*cOut*lOut))
	}
	weights := make([]T, cOut*cIn)
	parts := make([]ChannelPartition[T], cOut)
	for c := range parts {
		rows := make([][]T, batch)
		for b := range rows {
			lo := (b*cOut + c) * lOut
			hi := lo + lOut
			rows[b] = dst[lo:hi:hi]
		}
		wlo, whi := c*cIn, (c+1)*cIn
		parts[c] = ChannelPartition[T]{Channel: c, Rows: rows, Weights: weights[wlo:whi:whi]}
	}
	return parts
}

// conv1d is the generic kernel. The input is repacked to [batch][lIn][cIn]
// so that each output element is a sum of dot products over contiguous
// channel runs. Taps run in sequence; within a tap, output channels run in
// parallel and each writes only to its own partition.
func conv1d[T any](inp []T, inpDim tensor.Dim, k []T, kDim tensor.Dim, p Conv1DParams, ops Scalar[T], cfg parallel.Config) []T {
	is0, is1, is2, _ := inpDim.Strides4()
	ks0, ks1, ks2, _ := kDim.Strides4()
	lOut := p.LOut()

	cont := make([]T, p.Batch*p.LIn*p.CIn)
	parallel.ForBatch(p.Batch, p.LIn, func(b, l int) {
		lo := (b*p.LIn + l) * p.CIn
		row := cont[lo : lo+p.CIn]
		for c := range row {
			row[c] = inp[b*is0+c*is1+l*is2]
		}
	}, cfg)

	dst := make([]T, p.Batch*p.COut*lOut)
	parts := partitionByChannel(dst, p.Batch, p.COut, lOut, p.CIn)

	for offset := 0; offset < p.KSize; offset++ {
		parallel.ForPartitions(parts, func(_ int, part ChannelPartition[T]) {
			w := part.Weights
			for c := range w {
				w[c] = k[part.Channel*ks0+c*ks1+offset*ks2]
			}
			for b, row := range part.Rows {
				for l := range row {
					srcL := p.Stride*l + offset*p.Dilation
					if srcL < p.Padding || srcL >= p.Padding+p.LIn {
						continue
					}
					lo := (b*p.LIn + srcL - p.Padding) * p.CIn
					row[l] = ops.Add(row[l], ops.Dot(cont[lo:lo+p.CIn], w))
				}
			}
		}, cfg)
	}
	return dst
}
