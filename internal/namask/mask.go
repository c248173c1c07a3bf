package namask

import (
	"errors"
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/statvec/internal/conv"
)

// ErrTooLong is returned by Scan when positions do not fit into 32 bits.
var ErrTooLong = errors.New("namask: vector too long for a 32-bit mask")

// Mask is a set of element positions holding the missing value.
type Mask struct {
	rb *roaring.Bitmap
}

// maskPool reuses masks across completeness re-scans.
var maskPool = sync.Pool{
	New: func() any {
		return &Mask{
			rb: roaring.New(),
		}
	},
}

// New creates a new empty mask.
func New() *Mask {
	return &Mask{
		rb: roaring.New(),
	}
}

// Get gets a cleared mask from the pool. Call Put when done.
func Get() *Mask {
	m := maskPool.Get().(*Mask)
	m.rb.Clear()
	return m
}

// Put returns a mask to the pool.
func Put(m *Mask) {
	if m == nil {
		return
	}
	// Clear before returning to pool to release container memory
	m.rb.Clear()
	maskPool.Put(m)
}

// Scan adds every position i in [0, n) for which isNA(i) is true.
func Scan(m *Mask, n int, isNA func(i int) bool) error {
	if _, err := conv.IntToUint32(n); err != nil {
		return ErrTooLong
	}
	for i := 0; i < n; i++ {
		if isNA(i) {
			m.rb.Add(uint32(i))
		}
	}
	return nil
}

// IsEmpty returns true if no position is marked.
func (m *Mask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Cardinality returns the number of marked positions.
func (m *Mask) Cardinality() uint64 {
	return m.rb.GetCardinality()
}

// Positions returns an iterator over the marked positions.
func (m *Mask) Positions() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
