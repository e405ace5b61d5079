// Package tensor implements the shape, stride and broadcasting model of tensorcore
// together with strided iteration and the elementwise operation engine.
package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Number is the constraint for element types with arithmetic operators.
type Number interface {
	Integer | Float
}

// Integer is the constraint for element types that support bitwise operators.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is the constraint for native floating-point element types.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for buffers.
type DataType int

// Supported data types. The quantized types are storage formats only; they are
// consulted for block-quantized stride computation.
const (
	Float16 DataType = iota
	Float32
	Float64
	Int32
	Int64
	Uint8
	Q4_0
	Q4_1
	Q5_0
	Q5_1
	Q8_0
	Q8_1
)

// Size returns the byte size of one element, or of one block for quantized types.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	case Q4_0:
		return 2 + 16
	case Q4_1:
		return 2*2 + 16
	case Q5_0:
		return 2 + 4 + 16
	case Q5_1:
		return 2*2 + 4 + 16
	case Q8_0:
		return 2 + 32
	case Q8_1:
		return 2*2 + 32
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// BlockSize returns how many logical elements share one storage block.
// Non-quantized types have a block size of 1.
func (dt DataType) BlockSize() int {
	switch dt {
	case Float16, Float32, Float64, Int32, Int64, Uint8:
		return 1
	case Q4_0, Q4_1, Q5_0, Q5_1, Q8_0, Q8_1:
		return 32
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// IsQuantized reports whether the type is a block-quantized format.
func (dt DataType) IsQuantized() bool {
	return dt.BlockSize() > 1
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Q4_0:
		return "q4_0"
	case Q4_1:
		return "q4_1"
	case Q5_0:
		return "q5_0"
	case Q5_1:
		return "q5_1"
	case Q8_0:
		return "q8_0"
	case Q8_1:
		return "q8_1"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of a Go element type.
// Panics for element types without a runtime tag.
func DataTypeOf[T any]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	default:
		panic(fmt.Sprintf("unsupported element type %T", dummy))
	}
}
