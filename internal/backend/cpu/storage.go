package cpu

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/born-ml/tensorcore/internal/parallel"
	"github.com/born-ml/tensorcore/internal/tensor"
)

// Storage is a flat CPU buffer of one element type. The set of
// implementations is closed: every storage type must provide each kernel,
// so adding one fails to compile until all kernels handle it.
type Storage interface {
	DType() tensor.DataType
	Len() int

	conv1d(inpDim tensor.Dim, k Storage, kDim tensor.Dim, p Conv1DParams, cfg parallel.Config) (Storage, error)
	unary(op tensor.UnaryOp) Storage
}

// F16Storage holds float16 elements.
type F16Storage []float16.Float16

// F32Storage holds float32 elements.
type F32Storage []float32

// F64Storage holds float64 elements.
type F64Storage []float64

// NewStorage allocates a zeroed buffer of n elements of dtype.
func NewStorage(dtype tensor.DataType, n int) (Storage, error) {
	switch dtype {
	case tensor.Float16:
		return make(F16Storage, n), nil
	case tensor.Float32:
		return make(F32Storage, n), nil
	case tensor.Float64:
		return make(F64Storage, n), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDType, "no cpu storage for %s", dtype)
	}
}

// DType returns tensor.Float16.
func (F16Storage) DType() tensor.DataType { return tensor.Float16 }

// DType returns tensor.Float32.
func (F32Storage) DType() tensor.DataType { return tensor.Float32 }

// DType returns tensor.Float64.
func (F64Storage) DType() tensor.DataType { return tensor.Float64 }

// Len returns the number of elements.
func (s F16Storage) Len() int { return len(s) }

// Len returns the number of elements.
func (s F32Storage) Len() int { return len(s) }

// Len returns the number of elements.
func (s F64Storage) Len() int { return len(s) }

func (s F16Storage) conv1d(inpDim tensor.Dim, k Storage, kDim tensor.Dim, p Conv1DParams, cfg parallel.Config) (Storage, error) {
	kk, ok := k.(F16Storage)
	if !ok {
		return nil, mismatch(s, k)
	}
	return F16Storage(conv1d[float16.Float16](s, inpDim, kk, kDim, p, F16{}, cfg)), nil
}

func (s F32Storage) conv1d(inpDim tensor.Dim, k Storage, kDim tensor.Dim, p Conv1DParams, cfg parallel.Config) (Storage, error) {
	kk, ok := k.(F32Storage)
	if !ok {
		return nil, mismatch(s, k)
	}
	return F32Storage(conv1d[float32](s, inpDim, kk, kDim, p, F32{}, cfg)), nil
}

func (s F64Storage) conv1d(inpDim tensor.Dim, k Storage, kDim tensor.Dim, p Conv1DParams, cfg parallel.Config) (Storage, error) {
	kk, ok := k.(F64Storage)
	if !ok {
		return nil, mismatch(s, k)
	}
	return F64Storage(conv1d[float64](s, inpDim, kk, kDim, p, F64{}, cfg)), nil
}

func mismatch(a, b Storage) error {
	return errors.Wrapf(ErrDTypeMismatch, "%s vs %s", a.DType(), b.DType())
}
