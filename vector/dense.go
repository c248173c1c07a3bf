package vector

import (
	"fmt"
	"slices"

	"github.com/hupe1980/statvec/internal/namask"
	"github.com/hupe1980/statvec/model"
)

// Dense is an atomic vector backed by a Go slice.
//
// Logical and Integer vectors share int32 storage; Double uses float64,
// Complex complex128, Character string and Raw byte.
type Dense[T Atomic] struct {
	ownership
	attrHolder

	kind     model.Kind
	data     []T
	complete bool
}

// NewDense wraps data as a Temporary dense vector of kind k. Completeness is
// computed by a scan. Logical values are normalized in place to TRUE, FALSE
// or NA.
//
// The slice is not copied. A Temporary vector may be overwritten as the
// result of an operation it is an operand of, so overlapping slices of one
// array must not be passed as operands of the same call.
func NewDense[T Atomic](k model.Kind, data []T) (*Dense[T], error) {
	if err := CheckStorage[T](k); err != nil {
		return nil, err
	}
	if k == model.KindLogical {
		for i, x := range data {
			data[i] = normalize(k, x)
		}
	}
	d := &Dense[T]{kind: k, data: data}
	d.Rescan()
	return d, nil
}

// MakeDense allocates a zero-filled dense vector of kind k and length n.
func MakeDense[T Atomic](k model.Kind, n int) (*Dense[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if err := CheckStorage[T](k); err != nil {
		return nil, err
	}
	return &Dense[T]{kind: k, data: make([]T, n), complete: true}, nil
}

func mustDense[T Atomic](k model.Kind, data []T) *Dense[T] {
	d, err := NewDense(k, data)
	if err != nil {
		panic(err)
	}
	return d
}

// Logicals returns a logical vector. Non-zero values other than NA are stored as TRUE.
func Logicals(xs ...int32) *Dense[int32] {
	data := make([]int32, len(xs))
	for i, x := range xs {
		data[i] = model.IntegerToLogical(x)
	}
	return mustDense(model.KindLogical, data)
}

// Bools returns a logical vector without missing values.
func Bools(bs ...bool) *Dense[int32] {
	data := make([]int32, len(bs))
	for i, b := range bs {
		data[i] = model.FromBool(b)
	}
	return mustDense(model.KindLogical, data)
}

// Ints returns an integer vector over a copy of xs.
func Ints(xs ...int32) *Dense[int32] {
	return mustDense(model.KindInteger, slices.Clone(xs))
}

// Doubles returns a double vector over a copy of xs.
func Doubles(xs ...float64) *Dense[float64] {
	return mustDense(model.KindDouble, slices.Clone(xs))
}

// Complexes returns a complex vector.
func Complexes(xs ...complex128) *Dense[complex128] {
	return mustDense(model.KindComplex, slices.Clone(xs))
}

// Strings returns a character vector.
func Strings(xs ...string) *Dense[string] {
	return mustDense(model.KindCharacter, slices.Clone(xs))
}

// Raws returns a raw vector.
func Raws(xs ...byte) *Dense[byte] {
	return mustDense(model.KindRaw, slices.Clone(xs))
}

// Kind returns the element kind.
func (d *Dense[T]) Kind() model.Kind { return d.kind }

// Len returns the number of elements.
func (d *Dense[T]) Len() int { return len(d.data) }

// Representation returns RepDense.
func (d *Dense[T]) Representation() Representation { return RepDense }

// IsComplete reports whether the vector is known to hold no NA.
func (d *Dense[T]) IsComplete() bool { return d.complete }

// Data returns the backing slice. Writers must hold the only reference and
// call MarkIncomplete after storing an NA.
func (d *Dense[T]) Data() []T { return d.data }

// At returns element i.
func (d *Dense[T]) At(i int) T { return d.data[i] }

// Set stores x at position i.
func (d *Dense[T]) Set(i int, x T) error {
	if d.IsShared() {
		return ErrShared
	}
	checkIndex(i, len(d.data))
	x = normalize(d.kind, x)
	d.data[i] = x
	if IsNA(x) {
		d.complete = false
	}
	return nil
}

// Elt returns element i boxed.
func (d *Dense[T]) Elt(i int) model.Elem {
	return Box(d.kind, d.data[i])
}

// SetElt stores e, coerced to the vector's kind, at position i.
func (d *Dense[T]) SetElt(i int, e model.Elem) error {
	x, _ := Unbox[T](d.kind, e)
	return d.Set(i, x)
}

// SetAttribute sets or, with a nil value, removes an attribute.
func (d *Dense[T]) SetAttribute(name string, v model.Value) error {
	return d.setAttribute(&d.ownership, name, v)
}

// SetAttributes replaces all attributes.
func (d *Dense[T]) SetAttributes(a Attributes) error {
	return d.setAttributes(&d.ownership, a)
}

// MarkIncomplete clears the completeness flag.
func (d *Dense[T]) MarkIncomplete() { d.complete = false }

// Rescan recomputes the completeness flag.
func (d *Dense[T]) Rescan() bool {
	d.complete = scanComplete(len(d.data), func(i int) bool { return IsNA(d.data[i]) })
	return d.complete
}

// String formats the vector for display.
func (d *Dense[T]) String() string { return Format(d) }

// scanComplete reports whether no position in [0, n) is NA.
func scanComplete(n int, isNA func(i int) bool) bool {
	m := namask.Get()
	defer namask.Put(m)
	if err := namask.Scan(m, n, isNA); err != nil {
		for i := 0; i < n; i++ {
			if isNA(i) {
				return false
			}
		}
		return true
	}
	return m.IsEmpty()
}

// List is a generic vector whose elements are arbitrary values.
type List struct {
	ownership
	attrHolder

	items []model.Value
}

// NewList returns a Temporary list holding items. nil items are stored as Null.
func NewList(items ...model.Value) *List {
	out := make([]model.Value, len(items))
	for i, v := range items {
		if v == nil {
			v = Null
		}
		out[i] = v
	}
	return &List{items: out}
}

// Kind returns model.KindList.
func (l *List) Kind() model.Kind { return model.KindList }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Representation returns RepDense.
func (l *List) Representation() Representation { return RepDense }

// IsComplete is always true; lists have no missing value.
func (l *List) IsComplete() bool { return true }

// Item returns item i.
func (l *List) Item(i int) model.Value { return l.items[i] }

// Elt returns item i boxed.
func (l *List) Elt(i int) model.Elem { return model.Item(l.items[i]) }

// SetElt stores the item wrapped by e at position i.
func (l *List) SetElt(i int, e model.Elem) error {
	if l.IsShared() {
		return ErrShared
	}
	checkIndex(i, len(l.items))
	v := e.AsItem()
	if v == nil {
		v = Null
	}
	l.items[i] = v
	return nil
}

// SetAttribute sets or, with a nil value, removes an attribute.
func (l *List) SetAttribute(name string, v model.Value) error {
	return l.setAttribute(&l.ownership, name, v)
}

// SetAttributes replaces all attributes.
func (l *List) SetAttributes(a Attributes) error {
	return l.setAttributes(&l.ownership, a)
}

// MarkIncomplete is a no-op.
func (l *List) MarkIncomplete() {}

// Rescan returns true.
func (l *List) Rescan() bool { return true }

// String formats the list for display.
func (l *List) String() string { return Format(l) }
