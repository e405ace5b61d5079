package cpu

import (
	"github.com/x448/float16"

	"github.com/born-ml/tensorcore/internal/tensor"
)

// Unary applies op to every element of s and returns a new storage of the
// same type and length.
func Unary(s Storage, op tensor.UnaryOp) Storage {
	unaryOps.WithLabelValues(op.String(), s.DType().String()).Inc()
	return s.unary(op)
}

// float16 has no native arithmetic, so each element round-trips through float32.
func (s F16Storage) unary(op tensor.UnaryOp) Storage {
	f := tensor.UnaryFunc[float32](op)
	out := make(F16Storage, len(s))
	for i, v := range s {
		out[i] = float16.Fromfloat32(f(v.Float32()))
	}
	return out
}

func (s F32Storage) unary(op tensor.UnaryOp) Storage {
	return F32Storage(mapSlice([]float32(s), tensor.UnaryFunc[float32](op)))
}

func (s F64Storage) unary(op tensor.UnaryOp) Storage {
	return F64Storage(mapSlice([]float64(s), tensor.UnaryFunc[float64](op)))
}

func mapSlice[T any](src []T, f func(T) T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = f(v)
	}
	return out
}
