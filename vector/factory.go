package vector

import (
	"fmt"
	"slices"

	"github.com/hupe1980/statvec/model"
)

// allocators maps each kind to the constructor of a zero-filled dense buffer.
var allocators = [model.NumKinds]func(n int) Buffer{
	model.KindLogical:   func(n int) Buffer { return &Dense[int32]{kind: model.KindLogical, data: make([]int32, n), complete: true} },
	model.KindInteger:   func(n int) Buffer { return &Dense[int32]{kind: model.KindInteger, data: make([]int32, n), complete: true} },
	model.KindDouble:    func(n int) Buffer { return &Dense[float64]{kind: model.KindDouble, data: make([]float64, n), complete: true} },
	model.KindComplex:   func(n int) Buffer { return &Dense[complex128]{kind: model.KindComplex, data: make([]complex128, n), complete: true} },
	model.KindCharacter: func(n int) Buffer { return &Dense[string]{kind: model.KindCharacter, data: make([]string, n), complete: true} },
	model.KindRaw:       func(n int) Buffer { return &Dense[byte]{kind: model.KindRaw, data: make([]byte, n), complete: true} },
	model.KindList: func(n int) Buffer {
		items := make([]model.Value, n)
		for i := range items {
			items[i] = Null
		}
		return &List{items: items}
	},
}

// Alloc returns a Temporary dense buffer of kind k and length n filled with
// the zero element of k (FALSE, 0, "", 00 or NULL).
func Alloc(k model.Kind, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if int(k) >= len(allocators) || allocators[k] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
	return allocators[k](n), nil
}

// New returns a Temporary dense vector of kind k and length n whose element i
// is init(i) coerced to k. A nil init leaves zero elements. The returned
// condition collects coercion warnings.
func New(k model.Kind, n int, init func(i int) model.Elem) (Buffer, model.Cond, error) {
	b, err := Alloc(k, n)
	if err != nil {
		return nil, 0, err
	}
	if init == nil {
		return b, 0, nil
	}
	var cond model.Cond
	for i := 0; i < n; i++ {
		e, c := init(i).Convert(k)
		cond |= c
		if err := b.SetElt(i, e); err != nil {
			return nil, cond, err
		}
	}
	return b, cond, nil
}

// Materialize returns v if it is already a buffer, or a new Temporary dense
// copy of v otherwise.
func Materialize(v Vector) (Buffer, error) {
	if b, ok := v.(Buffer); ok {
		return b, nil
	}
	return Copy(v)
}

// Copy returns a new Temporary dense vector holding the elements of v and a
// shallow copy of its attributes.
func Copy(v Vector) (Buffer, error) {
	var out Buffer
	switch src := v.(type) {
	case *Dense[int32]:
		out = &Dense[int32]{kind: src.kind, data: slices.Clone(src.data), complete: src.complete}
	case *Dense[float64]:
		out = &Dense[float64]{kind: src.kind, data: slices.Clone(src.data), complete: src.complete}
	case *Dense[complex128]:
		out = &Dense[complex128]{kind: src.kind, data: slices.Clone(src.data), complete: src.complete}
	case *Dense[string]:
		out = &Dense[string]{kind: src.kind, data: slices.Clone(src.data), complete: src.complete}
	case *Dense[byte]:
		out = &Dense[byte]{kind: src.kind, data: slices.Clone(src.data), complete: src.complete}
	case *List:
		out = &List{items: slices.Clone(src.items)}
	case *Sequence:
		out = materializeSequence(src)
	default:
		b, err := Alloc(v.Kind(), v.Len())
		if err != nil {
			return nil, err
		}
		for i := 0; i < v.Len(); i++ {
			if err := b.SetElt(i, v.Elt(i)); err != nil {
				return nil, err
			}
		}
		if !v.IsComplete() {
			b.MarkIncomplete()
		}
		out = b
	}
	if a := v.Attributes(); len(a) > 0 {
		if err := out.SetAttributes(a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func materializeSequence(s *Sequence) Buffer {
	if s.kind == model.KindInteger {
		data := make([]int32, s.length)
		for i := range data {
			data[i] = s.Int(i)
		}
		return &Dense[int32]{kind: model.KindInteger, data: data, complete: true}
	}
	data := make([]float64, s.length)
	for i := range data {
		data[i] = s.Double(i)
	}
	return &Dense[float64]{kind: model.KindDouble, data: data, complete: true}
}

// CopyOnWrite returns v when it is a buffer that may be mutated, or a
// Temporary copy otherwise.
func CopyOnWrite(v Vector) (Buffer, error) {
	if b, ok := v.(Buffer); ok && !b.IsShared() {
		if f, ok := b.(*Foreign); !ok || f.CheckWritable() == nil {
			return b, nil
		}
	}
	return Copy(v)
}

// RemoveAttribute deletes the named attribute from b.
func RemoveAttribute(b Buffer, name string) error {
	return b.SetAttribute(name, nil)
}
