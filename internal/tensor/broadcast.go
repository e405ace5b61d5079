package tensor

import "github.com/pkg/errors"

// Broadcast is the result of resolving two shapes against each other.
type Broadcast struct {
	// Dim is the unified shape with row-major strides.
	Dim Dim

	// LhsMatches and RhsMatches report whether each operand already has the
	// unified shape and so needs no broadcast view.
	LhsMatches bool
	RhsMatches bool
}

// ResolveBroadcast unifies two shapes with array-language broadcasting rules.
//
// Shapes are aligned at the rightmost axis. Each aligned pair must be equal or
// contain a 1; an axis missing from the lower-rank operand counts as 1.
//
// Examples:
//
//	[4, 3] with [3]    -> [4, 3]
//	[3, 1] with [1, 5] -> [3, 5]
//	[3, 4] with [3, 5] -> ErrIncompatibleShape
func ResolveBroadcast(lhs, rhs Dim) (Broadcast, error) {
	rank := max(lhs.nDims, rhs.nDims)
	out := Shape{1, 1, 1, 1}

	for i := 0; i < rank; i++ {
		l := sizeFromRight(lhs, i)
		r := sizeFromRight(rhs, i)
		switch {
		case l == r:
			out[rank-1-i] = l
		case l == 1:
			out[rank-1-i] = r
		case r == 1:
			out[rank-1-i] = l
		default:
			return Broadcast{}, errors.Wrapf(ErrIncompatibleShape,
				"cannot broadcast %v with %v (axis %d: %d vs %d)",
				lhs.Shape(), rhs.Shape(), rank-1-i, l, r)
		}
	}

	dim := NewDim(out, rank)
	return Broadcast{
		Dim:        dim,
		LhsMatches: lhs.SameShape(dim),
		RhsMatches: rhs.SameShape(dim),
	}, nil
}

// BroadcastShape returns only the unified shape of two Dims.
func BroadcastShape(lhs, rhs Dim) (Dim, error) {
	b, err := ResolveBroadcast(lhs, rhs)
	if err != nil {
		return Dim{}, err
	}
	return b.Dim, nil
}

// sizeFromRight returns the size of the i-th axis counted from the right, or 1
// when d has fewer axes.
func sizeFromRight(d Dim, i int) int {
	j := d.nDims - 1 - i
	if j < 0 {
		return 1
	}
	return d.shape[j]
}

// BroadcastAs returns a Dim with the target's shape that reads d's elements.
// Every axis expanded from size 1 (or absent in d) gets stride 0, so all of its
// positions alias the same stored element.
func (d Dim) BroadcastAs(target Dim) (Dim, error) {
	if d.nDims > target.nDims {
		return Dim{}, errors.Wrapf(ErrIncompatibleShape,
			"cannot broadcast rank %d shape %v to rank %d shape %v",
			d.nDims, d.Shape(), target.nDims, target.Shape())
	}
	out := Dim{nDims: target.nDims, shape: target.shape}
	pad := target.nDims - d.nDims
	for i := 0; i < target.nDims; i++ {
		j := i - pad
		switch {
		case j < 0:
			out.stride[i] = 0
		case d.shape[j] == target.shape[i]:
			out.stride[i] = d.stride[j]
		case d.shape[j] == 1:
			out.stride[i] = 0
		default:
			return Dim{}, errors.Wrapf(ErrIncompatibleShape,
				"cannot broadcast %v to %v (axis %d: %d vs %d)",
				d.Shape(), target.Shape(), i, d.shape[j], target.shape[i])
		}
	}
	return out, nil
}
