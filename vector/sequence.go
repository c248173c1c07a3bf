package vector

import (
	"fmt"
	"math"

	"github.com/hupe1980/statvec/internal/conv"
	"github.com/hupe1980/statvec/model"
)

// Sequence is a lazy arithmetic progression: element i is start + i*stride.
// Only Integer and Double sequences exist. Sequences never hold NA, carry no
// attributes and are immutable.
type Sequence struct {
	kind   model.Kind
	length int

	istart, istride int32
	dstart, dstride float64
}

// NewSequence returns a sequence of kind k. Integer sequences require integral
// start and stride, and every element must be a valid non-NA integer.
func NewSequence(k model.Kind, start, stride float64, length int) (*Sequence, error) {
	switch k {
	case model.KindInteger:
		s, err := conv.Float64ToInt32(start)
		if err != nil || float64(s) != start {
			return nil, fmt.Errorf("%w: integer start %v", ErrInvalidSequence, start)
		}
		st, err := conv.Float64ToInt32(stride)
		if err != nil || float64(st) != stride {
			return nil, fmt.Errorf("%w: integer stride %v", ErrInvalidSequence, stride)
		}
		return NewIntSequence(s, st, length)
	case model.KindDouble:
		return NewDoubleSequence(start, stride, length)
	default:
		return nil, fmt.Errorf("%w: %s sequence", ErrUnsupportedKind, k)
	}
}

// NewIntSequence returns an integer sequence.
func NewIntSequence(start, stride int32, length int) (*Sequence, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if start == model.NAInteger || stride == model.NAInteger {
		return nil, fmt.Errorf("%w: NA start or stride", ErrInvalidSequence)
	}
	if length > 0 {
		last := int64(start) + int64(length-1)*int64(stride)
		if length-1 > math.MaxInt32 {
			return nil, fmt.Errorf("%w: length %d", ErrInvalidSequence, length)
		}
		if _, err := conv.Int64ToInt32(last); err != nil {
			return nil, fmt.Errorf("%w: last element %d out of range", ErrInvalidSequence, last)
		}
	}
	return &Sequence{kind: model.KindInteger, length: length, istart: start, istride: stride}, nil
}

// NewDoubleSequence returns a double sequence. start and stride must be finite.
func NewDoubleSequence(start, stride float64, length int) (*Sequence, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(stride) || math.IsInf(stride, 0) {
		return nil, fmt.Errorf("%w: non-finite start or stride", ErrInvalidSequence)
	}
	return &Sequence{kind: model.KindDouble, length: length, dstart: start, dstride: stride}, nil
}

// Kind returns Integer or Double.
func (s *Sequence) Kind() model.Kind { return s.kind }

// Len returns the number of elements.
func (s *Sequence) Len() int { return s.length }

// Representation returns RepSequence.
func (s *Sequence) Representation() Representation { return RepSequence }

// IsComplete is always true.
func (s *Sequence) IsComplete() bool { return true }

// Attributes is always nil.
func (s *Sequence) Attributes() Attributes { return nil }

// IntStart returns the start of an integer sequence.
func (s *Sequence) IntStart() int32 { return s.istart }

// IntStride returns the stride of an integer sequence.
func (s *Sequence) IntStride() int32 { return s.istride }

// Start returns the start as a double, for either kind.
func (s *Sequence) Start() float64 {
	if s.kind == model.KindInteger {
		return float64(s.istart)
	}
	return s.dstart
}

// Stride returns the stride as a double, for either kind.
func (s *Sequence) Stride() float64 {
	if s.kind == model.KindInteger {
		return float64(s.istride)
	}
	return s.dstride
}

// Int returns element i of an integer sequence.
func (s *Sequence) Int(i int) int32 {
	checkIndex(i, s.length)
	return s.istart + int32(i)*s.istride //nolint:gosec // bounded at construction
}

// Double returns element i as a double, for either kind.
func (s *Sequence) Double(i int) float64 {
	checkIndex(i, s.length)
	if s.kind == model.KindInteger {
		return float64(s.istart) + float64(i)*float64(s.istride)
	}
	return s.dstart + float64(i)*s.dstride
}

// Elt returns element i boxed.
func (s *Sequence) Elt(i int) model.Elem {
	if s.kind == model.KindInteger {
		return model.Int(s.Int(i))
	}
	return model.Float(s.Double(i))
}

// String formats the sequence for display.
func (s *Sequence) String() string { return Format(s) }
