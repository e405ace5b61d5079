package tensor

import "github.com/pkg/errors"

// Shape and layout errors. Call sites wrap these with the offending shapes and
// axes, so callers should match with errors.Is rather than by message.
var (
	// ErrIncompatibleShape is returned when broadcasting cannot unify two shapes.
	ErrIncompatibleShape = errors.New("incompatible shapes")

	// ErrDimOutOfRange is returned when an axis index is not below the rank.
	ErrDimOutOfRange = errors.New("dimension out of range")

	// ErrNarrowInvalidArgs is returned when start+len exceeds the narrowed axis.
	ErrNarrowInvalidArgs = errors.New("invalid narrow arguments")

	// ErrUnexpectedNumberOfDims is returned when transpose axes exceed the rank.
	ErrUnexpectedNumberOfDims = errors.New("unexpected number of dimensions")

	// ErrRankTooLarge is returned when a shape has more than MaxDims axes.
	ErrRankTooLarge = errors.New("rank exceeds maximum")

	// ErrInvalidShape is returned for negative axis sizes or a data/shape length mismatch.
	ErrInvalidShape = errors.New("invalid shape")
)
