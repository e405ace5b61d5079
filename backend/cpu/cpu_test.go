// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorcore/backend/cpu"
	"github.com/born-ml/tensorcore/tensor"
)

func TestConv1DTensor(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5}, 1, 1, 5)
	require.NoError(t, err)
	k, err := tensor.FromSlice([]float64{1, 1, 1}, 1, 1, 3)
	require.NoError(t, err)

	p, err := cpu.NewConv1DParams(x.Dim(), k.Dim(), 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, p.LOut())

	y, err := cpu.Conv1DTensor[float64](x, k, p, cpu.F64{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 5}, y.Shape())
	assert.Equal(t, []float64{3, 6, 9, 12, 9}, y.Data())
}

func TestConv1DStorage(t *testing.T) {
	inpDim, kDim := tensor.MustDim(1, 1, 5), tensor.MustDim(1, 1, 3)
	p, err := cpu.NewConv1DParams(inpDim, kDim, 0, 1, 1)
	require.NoError(t, err)

	out, err := cpu.Conv1D(cpu.F32Storage{1, 2, 3, 4, 5}, inpDim, cpu.F32Storage{1, 1, 1}, kDim, p)
	require.NoError(t, err)
	assert.Equal(t, cpu.F32Storage{6, 9, 12}, out)

	_, err = cpu.Conv1D(cpu.F32Storage{1, 2, 3, 4, 5}, inpDim, cpu.F64Storage{1, 1, 1}, kDim, p)
	require.ErrorIs(t, err, cpu.ErrDTypeMismatch)
}

func TestUnary(t *testing.T) {
	s, err := cpu.NewStorage(tensor.Float64, 2)
	require.NoError(t, err)
	out := cpu.Unary(s, tensor.Exp)
	assert.Equal(t, cpu.F64Storage{1, 1}, out)
}
