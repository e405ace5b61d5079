package tensor

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectOffsets(d Dim, base int) []int {
	return slices.Collect(d.Offsets(base))
}

func TestOffsetsContiguous(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collectOffsets(MustDim(2, 3), 0))
	assert.Equal(t, []int{7, 8, 9}, collectOffsets(MustDim(3), 7))
	assert.Equal(t, []int{0}, collectOffsets(MustDim(), 0), "scalar has one element")
	assert.Empty(t, collectOffsets(MustDim(2, 0), 0))
}

func TestOffsetsTransposed(t *testing.T) {
	d, err := MustDim(2, 3).Transpose(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, collectOffsets(d, 0))
}

func TestOffsetsBroadcast(t *testing.T) {
	rows, err := MustDim(3).BroadcastAs(MustDim(4, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2}, collectOffsets(rows, 0))

	cols, err := MustDim(3, 1).BroadcastAs(MustDim(3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}, collectOffsets(cols, 0))
}

func TestOffsetsMatchShapeIter(t *testing.T) {
	// Every layout must agree with the naive index-by-index stride computation.
	base := MustDim(2, 3, 4)
	layouts := []Dim{base}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			tr, err := base.Transpose(i, j)
			require.NoError(t, err)
			layouts = append(layouts, tr)
		}
	}
	n, err := base.Narrow(2, 1, 2)
	require.NoError(t, err)
	layouts = append(layouts, n)

	for _, d := range layouts {
		var want []int
		strides := d.Stride()
		for idx := range d.ShapeLayout().Indices(d.Rank()) {
			want = append(want, StrideOffset(idx[:d.Rank()], strides))
		}
		assert.Equal(t, want, collectOffsets(d, 0), "layout %v", d)
	}
}

func TestStridedIndexEmpty(t *testing.T) {
	idx := NewStridedIndex([]int{3, 0}, []int{1, 1}, 0)
	_, ok := idx.Next()
	assert.False(t, ok)

	idx = NewStridedIndex(nil, nil, 5)
	off, ok := idx.Next()
	require.True(t, ok)
	assert.Equal(t, 5, off)
	_, ok = idx.Next()
	assert.False(t, ok)
}

func TestOffsetsEarlyStop(t *testing.T) {
	var got []int
	for off := range MustDim(10).Offsets(0) {
		if off == 3 {
			break
		}
		got = append(got, off)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}
