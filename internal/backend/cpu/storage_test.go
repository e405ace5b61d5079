package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/tensorcore/internal/tensor"
)

func TestNewStorage(t *testing.T) {
	tests := []struct {
		dtype tensor.DataType
		want  Storage
	}{
		{tensor.Float16, make(F16Storage, 3)},
		{tensor.Float32, make(F32Storage, 3)},
		{tensor.Float64, make(F64Storage, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.dtype.String(), func(t *testing.T) {
			s, err := NewStorage(tt.dtype, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.dtype, s.DType())
			assert.Equal(t, 3, s.Len())
		})
	}

	_, err := NewStorage(tensor.Int32, 3)
	require.ErrorIs(t, err, ErrUnsupportedDType)
	_, err = NewStorage(tensor.Q8_0, 3)
	require.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestUnaryStorage(t *testing.T) {
	s64 := Unary(F64Storage{1, 4, 9}, tensor.Sqrt)
	assert.Equal(t, F64Storage{1, 2, 3}, s64)

	src := F32Storage{0, 1}
	s32 := Unary(src, tensor.Exp).(F32Storage)
	assert.InDelta(t, 1, s32[0], 1e-6)
	assert.InDelta(t, math.E, s32[1], 1e-6)
	assert.Equal(t, F32Storage{0, 1}, src, "unary leaves its input intact")

	h := F16Storage{float16.Fromfloat32(2), float16.Fromfloat32(-0.5)}
	got := Unary(h, tensor.Recip).(F16Storage)
	assert.Equal(t, float32(0.5), got[0].Float32())
	assert.Equal(t, float32(-2), got[1].Float32())
	assert.Equal(t, tensor.Float16, got.DType())
}

func TestScalarDot(t *testing.T) {
	assert.Equal(t, float32(32), F32{}.Dot([]float32{1, 2, 3}, []float32{4, 5, 6}))
	assert.Equal(t, float64(32), F64{}.Dot([]float64{1, 2, 3}, []float64{4, 5, 6, 7}))

	x := []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2)}
	y := []float16.Float16{float16.Fromfloat32(3), float16.Fromfloat32(4)}
	assert.Equal(t, float32(11), F16{}.Dot(x, y).Float32())
	assert.Equal(t, float32(3), F16{}.Add(x[0], x[1]).Float32())
}
