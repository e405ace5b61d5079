package tensor

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// BinaryOp combines two elements into one.
type BinaryOp[T any] func(a, b T) T

// Apply computes op elementwise over lhs and rhs with broadcasting and returns a
// new tensor. Neither operand is modified.
func Apply[T any](lhs, rhs Viewer[T], op BinaryOp[T]) (*Tensor[T], error) {
	l, r := lhs.View(), rhs.View()
	if l.dim.SameShape(r.dim) {
		dispatchSame.Inc()
		return zipCollect(l, r, l.dim, op), nil
	}

	b, err := ResolveBroadcast(l.dim, r.dim)
	if err != nil {
		dispatchIncompat.Inc()
		return nil, errors.WithMessage(err, "binary op")
	}
	lv, rv, err := broadcastPair(l, r, b)
	if err != nil {
		return nil, err
	}
	return zipCollect(lv, rv, b.Dim, op), nil
}

// ApplyInPlace computes op elementwise and takes ownership of lhs.
//
// When lhs already has the broadcast shape the result is written into lhs and
// lhs is returned. Otherwise a new tensor of the broadcast shape is returned
// and lhs is left unmodified. On error nothing is modified. rhs may be a view
// of lhs itself, including a broadcast one.
func ApplyInPlace[T any](lhs *Tensor[T], rhs Viewer[T], op BinaryOp[T]) (*Tensor[T], error) {
	r := rhs.View()
	if lhs.dim.SameShape(r.dim) {
		dispatchSame.Inc()
		writeInto(lhs, r, op)
		return lhs, nil
	}

	b, err := ResolveBroadcast(lhs.dim, r.dim)
	if err != nil {
		dispatchIncompat.Inc()
		return nil, errors.WithMessage(err, "binary op")
	}
	if b.LhsMatches {
		dispatchRhs.Inc()
		rv, err := r.BroadcastAs(b.Dim)
		if err != nil {
			return nil, err
		}
		writeInto(lhs, rv, op)
		return lhs, nil
	}

	lv, rv, err := broadcastPair(lhs.View(), r, b)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Stringer("lhs", lhs.dim).
		Stringer("rhs", r.dim).
		Stringer("out", b.Dim).
		Msg("binary op materializes broadcast result")
	return zipCollect(lv, rv, b.Dim, op), nil
}

// broadcastPair builds broadcast views for whichever operands need them and
// records the dispatch case.
func broadcastPair[T any](l, r View[T], b Broadcast) (View[T], View[T], error) {
	var err error
	switch {
	case b.LhsMatches && b.RhsMatches:
		dispatchSame.Inc()
	case b.LhsMatches:
		dispatchRhs.Inc()
		r, err = r.BroadcastAs(b.Dim)
	case b.RhsMatches:
		dispatchLhs.Inc()
		l, err = l.BroadcastAs(b.Dim)
	default:
		dispatchBoth.Inc()
		if l, err = l.BroadcastAs(b.Dim); err == nil {
			r, err = r.BroadcastAs(b.Dim)
		}
	}
	return l, r, err
}

// writeInto stores op(lhs, src) into lhs. When src reads from lhs's own
// buffer the result is built in a scratch buffer first, otherwise a write
// would be seen by a later read of the same element.
func writeInto[T any](lhs *Tensor[T], src View[T], op BinaryOp[T]) {
	if !overlaps(lhs.data, src.data) {
		zipInto(lhs.data, src, op)
		return
	}
	log.Debug().
		Stringer("lhs", lhs.dim).
		Stringer("rhs", src.dim).
		Msg("in-place op reads its own buffer, using scratch")
	out := zipCollect(lhs.View(), src, lhs.dim, op)
	copy(lhs.data, out.data)
}

// overlaps reports whether the backing arrays of a and b share any element.
func overlaps[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[:1][0])
	aLo := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bLo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aHi := aLo + uintptr(cap(a))*size
	bHi := bLo + uintptr(cap(b))*size
	return aLo < bHi && bLo < aHi
}

// zipInto applies dst[i] = op(dst[i], src[i]) over a contiguous dst.
func zipInto[T any](dst []T, src View[T], op BinaryOp[T]) {
	if len(dst) != src.dim.NumElements() {
		panic("tensor: zip of mismatched element counts")
	}
	if b := src.dim.StridedBlocks(); b.Single {
		s := src.data[src.offset+b.StartOffset : src.offset+b.StartOffset+b.BlockLen]
		for i := range dst {
			dst[i] = op(dst[i], s[i])
		}
		return
	}
	it := src.Iter()
	for i := range dst {
		off, _ := it.Next()
		dst[i] = op(dst[i], src.data[off])
	}
}

// zipCollect applies op over paired elements of l and r into a new tensor.
func zipCollect[T any](l, r View[T], dim Dim, op BinaryOp[T]) *Tensor[T] {
	n := dim.NumElements()
	if l.dim.NumElements() != n || r.dim.NumElements() != n {
		panic("tensor: zip of mismatched element counts")
	}
	out := make([]T, n)
	li, ri := l.Iter(), r.Iter()
	for i := range out {
		lo, _ := li.Next()
		ro, _ := ri.Next()
		out[i] = op(l.data[lo], r.data[ro])
	}
	materializedElems.Add(float64(n))
	return &Tensor[T]{data: out, dim: dim.Canonical()}
}

// Map applies f to every element of x and returns a new tensor.
func Map[T, U any](x Viewer[T], f func(T) U) *Tensor[U] {
	v := x.View()
	out := make([]U, 0, v.dim.NumElements())
	v.dim.forEachBlock(v.offset, func(start, length int) {
		for _, e := range v.data[start : start+length] {
			out = append(out, f(e))
		}
	})
	return &Tensor[U]{data: out, dim: v.dim.Canonical()}
}

// MapInPlace applies f to every element of t and returns t.
func MapInPlace[T any](t *Tensor[T], f func(T) T) *Tensor[T] {
	for i, e := range t.data {
		t.data[i] = f(e)
	}
	return t
}

// Equal reports whether a and b have the same shape and elements.
// Differing shapes compare unequal without reading any element.
func Equal[T comparable](a, b Viewer[T]) bool {
	l, r := a.View(), b.View()
	if !l.dim.SameShape(r.dim) {
		return false
	}
	li, ri := l.Iter(), r.Iter()
	for lo, ok := li.Next(); ok; lo, ok = li.Next() {
		ro, _ := ri.Next()
		if l.data[lo] != r.data[ro] {
			return false
		}
	}
	return true
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func div[T Number](a, b T) T { return a / b }

func rem[T Integer](a, b T) T { return a % b }
func and[T Integer](a, b T) T { return a & b }
func or[T Integer](a, b T) T  { return a | b }
func xor[T Integer](a, b T) T { return a ^ b }
func shl[T Integer](a, b T) T { return a << b }
func shr[T Integer](a, b T) T { return a >> b }

func fmod[T Float](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

// Add returns a + b with broadcasting.
func Add[T Number](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, add[T]) }

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, sub[T]) }

// Mul returns a * b with broadcasting.
func Mul[T Number](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, mul[T]) }

// Div returns a / b with broadcasting.
func Div[T Number](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, div[T]) }

// Rem returns a % b with broadcasting.
func Rem[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, rem[T]) }

// Mod returns the floating-point remainder of a / b with broadcasting.
func Mod[T Float](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, fmod[T]) }

// And returns a & b with broadcasting.
func And[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, and[T]) }

// Or returns a | b with broadcasting.
func Or[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, or[T]) }

// Xor returns a ^ b with broadcasting.
func Xor[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, xor[T]) }

// Shl returns a << b with broadcasting.
func Shl[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, shl[T]) }

// Shr returns a >> b with broadcasting.
func Shr[T Integer](a, b Viewer[T]) (*Tensor[T], error) { return Apply(a, b, shr[T]) }

// AddInPlace is Add taking ownership of a. See ApplyInPlace.
func AddInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, add[T])
}

// SubInPlace is Sub taking ownership of a.
func SubInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, sub[T])
}

// MulInPlace is Mul taking ownership of a.
func MulInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, mul[T])
}

// DivInPlace is Div taking ownership of a.
func DivInPlace[T Number](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, div[T])
}

// RemInPlace is Rem taking ownership of a.
func RemInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, rem[T])
}

// ModInPlace is Mod taking ownership of a.
func ModInPlace[T Float](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, fmod[T])
}

// AndInPlace is And taking ownership of a.
func AndInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, and[T])
}

// OrInPlace is Or taking ownership of a.
func OrInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, or[T])
}

// XorInPlace is Xor taking ownership of a.
func XorInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, xor[T])
}

// ShlInPlace is Shl taking ownership of a.
func ShlInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, shl[T])
}

// ShrInPlace is Shr taking ownership of a.
func ShrInPlace[T Integer](a *Tensor[T], b Viewer[T]) (*Tensor[T], error) {
	return ApplyInPlace(a, b, shr[T])
}

// AddScalar returns x + s.
func AddScalar[T Number](x Viewer[T], s T) *Tensor[T] {
	return Map(x, func(e T) T { return e + s })
}

// SubScalar returns x - s.
func SubScalar[T Number](x Viewer[T], s T) *Tensor[T] {
	return Map(x, func(e T) T { return e - s })
}

// MulScalar returns x * s.
func MulScalar[T Number](x Viewer[T], s T) *Tensor[T] {
	return Map(x, func(e T) T { return e * s })
}

// DivScalar returns x / s.
func DivScalar[T Number](x Viewer[T], s T) *Tensor[T] {
	return Map(x, func(e T) T { return e / s })
}
