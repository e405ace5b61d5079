package cpu

import "github.com/pkg/errors"

var (
	// ErrDTypeMismatch is returned when kernel operands have different element types.
	ErrDTypeMismatch = errors.New("dtype mismatch")

	// ErrInvalidConvParams is returned when convolution parameters or operand
	// shapes cannot produce an output.
	ErrInvalidConvParams = errors.New("invalid convolution parameters")

	// ErrUnsupportedDType is returned when no CPU storage exists for a data type.
	ErrUnsupportedDType = errors.New("unsupported dtype")
)
