package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/tensorcore/internal/parallel"
	"github.com/born-ml/tensorcore/internal/tensor"
)

// refConv1D is a direct-summation reference over contiguous
// [b][cIn][lIn] input and [cOut][cIn][k] kernel.
func refConv1D(inp, k []float64, p Conv1DParams) []float64 {
	lOut := p.LOut()
	out := make([]float64, p.Batch*p.COut*lOut)
	for b := 0; b < p.Batch; b++ {
		for co := 0; co < p.COut; co++ {
			for l := 0; l < lOut; l++ {
				var sum float64
				for ci := 0; ci < p.CIn; ci++ {
					for t := 0; t < p.KSize; t++ {
						src := l*p.Stride + t*p.Dilation - p.Padding
						if src < 0 || src >= p.LIn {
							continue
						}
						sum += inp[(b*p.CIn+ci)*p.LIn+src] * k[(co*p.CIn+ci)*p.KSize+t]
					}
				}
				out[(b*p.COut+co)*lOut+l] = sum
			}
		}
	}
	return out
}

func seq(n, mod int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64((i*7)%mod) - float64(mod/2)
	}
	return out
}

func TestConv1DParamsLOut(t *testing.T) {
	p := Conv1DParams{Batch: 1, LIn: 5, COut: 1, CIn: 1, KSize: 3, Padding: 1, Stride: 1, Dilation: 1}
	assert.Equal(t, 5, p.LOut())
	assert.Equal(t, []int{1, 1, 5}, p.OutDims())

	p.Padding = 0
	assert.Equal(t, 3, p.LOut())

	p.Stride = 2
	assert.Equal(t, 2, p.LOut())

	p.Stride, p.Dilation = 1, 3
	assert.Equal(t, 0, p.LOut(), "dilated kernel spans 7 > 5")
}

func TestConv1DKnownValues(t *testing.T) {
	inpDim := tensor.MustDim(1, 1, 5)
	kDim := tensor.MustDim(1, 1, 3)
	inp := F32Storage{1, 2, 3, 4, 5}
	k := F32Storage{1, 1, 1}

	p, err := NewConv1DParams(inpDim, kDim, 1, 1, 1)
	require.NoError(t, err)
	out, err := Conv1D(inp, inpDim, k, kDim, p, parallel.KernelConfig())
	require.NoError(t, err)
	assert.Equal(t, F32Storage{3, 6, 9, 12, 9}, out)

	p, err = NewConv1DParams(inpDim, kDim, 0, 1, 1)
	require.NoError(t, err)
	out, err = Conv1D(inp, inpDim, k, kDim, p, parallel.KernelConfig())
	require.NoError(t, err)
	assert.Equal(t, F32Storage{6, 9, 12}, out)
}

func TestConv1DMatchesReference(t *testing.T) {
	cases := []struct{ padding, stride, dilation int }{
		{0, 1, 1},
		{1, 1, 1},
		{2, 2, 1},
		{1, 1, 2},
		{3, 3, 2},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("p%d_s%d_d%d", c.padding, c.stride, c.dilation), func(t *testing.T) {
			inpDim := tensor.MustDim(2, 3, 9)
			kDim := tensor.MustDim(4, 3, 3)
			inp, k := seq(2*3*9, 11), seq(4*3*3, 5)

			p, err := NewConv1DParams(inpDim, kDim, c.padding, c.stride, c.dilation)
			require.NoError(t, err)
			want := refConv1D(inp, k, p)

			got, err := Conv1D(F64Storage(inp), inpDim, F64Storage(k), kDim, p, parallel.KernelConfig())
			require.NoError(t, err)
			require.Equal(t, len(want), got.Len())
			assert.InDeltaSlice(t, want, []float64(got.(F64Storage)), 1e-9)

			inp32, k32 := make(F32Storage, len(inp)), make(F32Storage, len(k))
			for i, v := range inp {
				inp32[i] = float32(v)
			}
			for i, v := range k {
				k32[i] = float32(v)
			}
			got32, err := Conv1D(inp32, inpDim, k32, kDim, p, parallel.KernelConfig())
			require.NoError(t, err)
			for i, v := range got32.(F32Storage) {
				assert.InDelta(t, want[i], float64(v), 1e-4)
			}
		})
	}
}

func TestConv1DSequentialMatchesParallel(t *testing.T) {
	inpDim := tensor.MustDim(3, 2, 16)
	kDim := tensor.MustDim(8, 2, 4)
	inp, k := F64Storage(seq(3*2*16, 13)), F64Storage(seq(8*2*4, 7))
	p, err := NewConv1DParams(inpDim, kDim, 2, 1, 1)
	require.NoError(t, err)

	par, err := Conv1D(inp, inpDim, k, kDim, p, parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})
	require.NoError(t, err)
	serial, err := Conv1D(inp, inpDim, k, kDim, p, parallel.Config{Enabled: false})
	require.NoError(t, err)
	assert.Equal(t, serial, par)
}

func TestConv1DStridedInput(t *testing.T) {
	// Stored as [b][l][c] and viewed as [b][c][l].
	const b, c, l = 2, 3, 6
	blc := seq(b*l*c, 9)
	bcl := make([]float64, len(blc))
	for bi := 0; bi < b; bi++ {
		for li := 0; li < l; li++ {
			for ci := 0; ci < c; ci++ {
				bcl[(bi*c+ci)*l+li] = blc[(bi*l+li)*c+ci]
			}
		}
	}

	stored := tensor.MustDim(b, l, c)
	view, err := stored.Transpose(1, 2)
	require.NoError(t, err)
	require.False(t, view.IsContiguous())

	kDim := tensor.MustDim(2, c, 3)
	k := seq(2*c*3, 5)
	p, err := NewConv1DParams(view, kDim, 1, 1, 1)
	require.NoError(t, err)

	got, err := Conv1D(F64Storage(blc), view, F64Storage(k), kDim, p, parallel.KernelConfig())
	require.NoError(t, err)
	assert.InDeltaSlice(t, refConv1D(bcl, k, p), []float64(got.(F64Storage)), 1e-9)
}

func TestConv1DTensor(t *testing.T) {
	// A narrowed input starts at a non-zero buffer offset.
	full, err := tensor.FromSlice([]float32{
		9, 9, 9, 9, 9,
		1, 2, 3, 4, 5,
	}, 2, 1, 5)
	require.NoError(t, err)
	inp, err := full.Narrow(0, 1, 1)
	require.NoError(t, err)

	k, err := tensor.FromSlice([]float32{1, 0, -1, 2, 2, 2}, 2, 1, 3)
	require.NoError(t, err)
	kt, err := k.Narrow(0, 0, 2)
	require.NoError(t, err)

	p, err := NewConv1DParams(inp.Dim(), kt.Dim(), 0, 1, 1)
	require.NoError(t, err)
	out, err := Conv1DTensor[float32](inp, kt, p, F32{}, parallel.KernelConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out.Shape())
	assert.Equal(t, []float32{-2, -2, -2, 12, 18, 24}, out.Data())
}

func TestConv1DFloat16(t *testing.T) {
	h := func(vs ...float32) F16Storage {
		out := make(F16Storage, len(vs))
		for i, v := range vs {
			out[i] = float16.Fromfloat32(v)
		}
		return out
	}
	inpDim := tensor.MustDim(1, 1, 5)
	kDim := tensor.MustDim(1, 1, 3)
	p, err := NewConv1DParams(inpDim, kDim, 1, 1, 1)
	require.NoError(t, err)

	out, err := Conv1D(h(1, 2, 3, 4, 5), inpDim, h(1, 1, 1), kDim, p, parallel.KernelConfig())
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, out.DType())
	assert.Equal(t, h(3, 6, 9, 12, 9), out)
}

func TestConv1DErrors(t *testing.T) {
	inpDim := tensor.MustDim(1, 2, 5)
	kDim := tensor.MustDim(1, 2, 3)

	_, err := NewConv1DParams(tensor.MustDim(2, 5), kDim, 0, 1, 1)
	require.ErrorIs(t, err, tensor.ErrUnexpectedNumberOfDims)

	_, err = NewConv1DParams(inpDim, tensor.MustDim(1, 3, 3), 0, 1, 1)
	require.ErrorIs(t, err, ErrInvalidConvParams)

	_, err = NewConv1DParams(inpDim, kDim, 0, 0, 1)
	require.ErrorIs(t, err, ErrInvalidConvParams)

	_, err = NewConv1DParams(inpDim, kDim, 0, 1, 3)
	require.ErrorIs(t, err, ErrInvalidConvParams, "dilated kernel longer than input")

	_, err = NewConv1DParams(inpDim, kDim, -1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidConvParams)

	p, err := NewConv1DParams(inpDim, kDim, 0, 1, 1)
	require.NoError(t, err)

	_, err = Conv1D(make(F32Storage, 10), inpDim, make(F64Storage, 6), kDim, p, parallel.KernelConfig())
	require.ErrorIs(t, err, ErrDTypeMismatch)

	_, err = Conv1D(make(F32Storage, 10), tensor.MustDim(1, 2, 6), make(F32Storage, 6), kDim, p, parallel.KernelConfig())
	require.ErrorIs(t, err, ErrInvalidConvParams, "dims disagree with params")

	assert.Panics(t, func() {
		_, _ = Conv1D(make(F32Storage, 9), inpDim, make(F32Storage, 6), kDim, p, parallel.KernelConfig())
	})
}

func TestPartitionByChannelDisjoint(t *testing.T) {
	const batch, cOut, lOut, cIn = 3, 4, 5, 2
	dst := make([]int, batch*cOut*lOut)
	parts := partitionByChannel(dst, batch, cOut, lOut, cIn)
	require.Len(t, parts, cOut)

	for _, part := range parts {
		require.Len(t, part.Rows, batch)
		assert.Len(t, part.Weights, cIn)
		assert.Equal(t, cIn, cap(part.Weights))
		for b, row := range part.Rows {
			assert.Len(t, row, lOut)
			assert.Equal(t, lOut, cap(row), "rows must not reach into neighbours")
			for l := range row {
				row[l]++
				assert.Equal(t, (b*cOut+part.Channel)*lOut+l, indexIn(dst, &row[l]))
			}
		}
	}
	for i, v := range dst {
		assert.Equal(t, 1, v, "element %d owned by %d partitions", i, v)
	}

	assert.Panics(t, func() { partitionByChannel(make([]int, 7), batch, cOut, lOut, cIn) })
}

func indexIn(s []int, p *int) int {
	for i := range s {
		if &s[i] == p {
			return i
		}
	}
	return -1
}
