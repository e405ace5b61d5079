package tensor

import "iter"

// StridedBlocks classifies the memory layout of a Dim as one contiguous run or a
// sequence of equally sized contiguous runs.
type StridedBlocks struct {
	// Single is true when the whole Dim is one run of BlockLen elements starting
	// at StartOffset.
	Single      bool
	StartOffset int

	// BlockStartIndex yields the start offset of each run when Single is false.
	BlockStartIndex StridedIndex
	BlockLen        int
}

// StridedBlocks greedily absorbs trailing axes whose stride equals the block
// length accumulated so far. The remaining leading axes form the index space
// that addresses individual blocks.
func (d Dim) StridedBlocks() StridedBlocks {
	blockLen := 1
	contiguousDims := 0 // counted from the right
	for i := d.nDims - 1; i >= 0; i-- {
		if d.stride[i] != blockLen {
			break
		}
		blockLen *= d.shape[i]
		contiguousDims++
	}
	indexDims := d.nDims - contiguousDims
	if indexDims == 0 {
		return StridedBlocks{Single: true, StartOffset: 0, BlockLen: blockLen}
	}
	return StridedBlocks{
		BlockStartIndex: NewStridedIndex(d.shape[:indexDims], d.stride[:indexDims], 0),
		BlockLen:        blockLen,
	}
}

// StridedIndex walks a multi-axis index space and yields the flat offset of
// each position, rightmost axis fastest.
type StridedIndex struct {
	dims       Layout
	strides    Layout
	multiIndex Layout
	n          int
	next       int
	done       bool
}

// NewStridedIndex returns an index over dims with the given strides, starting
// at offset start. Empty index spaces yield nothing.
func NewStridedIndex(dims, strides []int, start int) StridedIndex {
	idx := StridedIndex{n: len(dims), next: start}
	copy(idx.dims[:], dims)
	copy(idx.strides[:], strides)
	for _, d := range dims {
		if d == 0 {
			idx.done = true
		}
	}
	return idx
}

// Next returns the next offset.
func (s *StridedIndex) Next() (int, bool) {
	if s.done {
		return 0, false
	}
	current := s.next
	advanced := false
	for i := s.n - 1; i >= 0; i-- {
		if s.multiIndex[i]+1 < s.dims[i] {
			s.multiIndex[i]++
			s.next += s.strides[i]
			advanced = true
			break
		}
		s.next -= s.multiIndex[i] * s.strides[i]
		s.multiIndex[i] = 0
	}
	if !advanced {
		s.done = true
	}
	return current, true
}

// StridedIter yields the buffer offset of every logical element of a Dim in
// row-major order.
type StridedIter struct {
	blocks   StridedIndex
	blockLen int
	start    int
	pos      int
}

// Iter returns an iterator over the offsets of d relative to base.
func (d Dim) Iter(base int) StridedIter {
	b := d.StridedBlocks()
	if b.Single {
		return StridedIter{
			blocks:   NewStridedIndex(nil, nil, base+b.StartOffset),
			blockLen: b.BlockLen,
			pos:      b.BlockLen,
		}
	}
	b.BlockStartIndex.next += base
	return StridedIter{blocks: b.BlockStartIndex, blockLen: b.BlockLen, pos: b.BlockLen}
}

// Next returns the next element offset.
func (it *StridedIter) Next() (int, bool) {
	for it.pos >= it.blockLen {
		start, ok := it.blocks.Next()
		if !ok {
			return 0, false
		}
		it.start, it.pos = start, 0
	}
	off := it.start + it.pos
	it.pos++
	return off, true
}

// Offsets yields the buffer offset of every logical element relative to base.
func (d Dim) Offsets(base int) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := d.Iter(base)
		for off, ok := it.Next(); ok; off, ok = it.Next() {
			if !yield(off) {
				return
			}
		}
	}
}

// forEachBlock calls f with the start offset (relative to base) of each
// contiguous run and the run length.
func (d Dim) forEachBlock(base int, f func(start, length int)) {
	b := d.StridedBlocks()
	if b.Single {
		f(base+b.StartOffset, b.BlockLen)
		return
	}
	idx := b.BlockStartIndex
	for start, ok := idx.Next(); ok; start, ok = idx.Next() {
		f(base+start, b.BlockLen)
	}
}
