package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryFloat64(t *testing.T) {
	x := mustFromSlice(t, []float64{0.5, 1, 2, 4}, 2, 2)

	tests := []struct {
		op   UnaryOp
		want func(float64) float64
	}{
		{Exp, math.Exp},
		{Log, math.Log},
		{Sin, math.Sin},
		{Cos, math.Cos},
		{Tanh, math.Tanh},
		{Neg, func(v float64) float64 { return -v }},
		{Recip, func(v float64) float64 { return 1 / v }},
		{Sqr, func(v float64) float64 { return v * v }},
		{Sqrt, math.Sqrt},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := Unary[float64](x, tt.op)
			assert.Equal(t, x.Shape(), got.Shape())
			for i, v := range x.Data() {
				assert.InDelta(t, tt.want(v), got.Data()[i], 1e-12)
			}
		})
	}
}

func TestUnaryFloat32Strided(t *testing.T) {
	x := mustFromSlice(t, []float32{1, 4, 9, 16}, 2, 2)
	xt, err := x.Transpose(0, 1)
	require.NoError(t, err)

	got := Unary[float32](xt, Sqrt)
	assert.Equal(t, []float32{1, 3, 2, 4}, got.Data())
}

func TestUnaryInPlace(t *testing.T) {
	x := mustFromSlice(t, []float32{1, -2}, 2)
	out := UnaryInPlace(x, Neg)
	assert.Same(t, x, out)
	assert.Equal(t, []float32{-1, 2}, x.Data())
}

func TestUnaryOpString(t *testing.T) {
	assert.Equal(t, "tanh", Tanh.String())
	assert.Equal(t, "unary(42)", UnaryOp(42).String())
	assert.Panics(t, func() { UnaryFunc[float32](UnaryOp(42)) })
}
