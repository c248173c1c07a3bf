package vector

import "github.com/hupe1980/statvec/model"

// Scalar is a single boxed element. Scalars carry no attributes and are immutable.
type Scalar struct {
	e model.Elem
}

// NewScalar boxes e. List elements are not accepted.
func NewScalar(e model.Elem) (*Scalar, error) {
	if !e.Kind().InLattice() && e.Kind() != model.KindRaw {
		return nil, ErrUnsupportedKind
	}
	return &Scalar{e: e}, nil
}

// Kind returns the element kind.
func (s *Scalar) Kind() model.Kind { return s.e.Kind() }

// Len is always 1.
func (s *Scalar) Len() int { return 1 }

// Representation returns RepScalar.
func (s *Scalar) Representation() Representation { return RepScalar }

// IsComplete reports whether the element is not NA.
func (s *Scalar) IsComplete() bool { return !s.e.IsNA() }

// Attributes is always nil.
func (s *Scalar) Attributes() Attributes { return nil }

// Value returns the boxed element.
func (s *Scalar) Value() model.Elem { return s.e }

// Elt returns the element. i must be 0.
func (s *Scalar) Elt(i int) model.Elem {
	checkIndex(i, 1)
	return s.e
}

// String formats the scalar for display.
func (s *Scalar) String() string { return Format(s) }
