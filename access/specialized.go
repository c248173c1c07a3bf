package access

import (
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// strategies holds the specialized strategy of every known pair.
var strategies = map[Key]Strategy{}

func register(s Strategy) { strategies[s.Key()] = s }

func init() {
	register(denseStrategy[int32]{kind: model.KindLogical})
	register(denseStrategy[int32]{kind: model.KindInteger})
	register(denseStrategy[float64]{kind: model.KindDouble})
	register(denseStrategy[complex128]{kind: model.KindComplex})
	register(denseStrategy[string]{kind: model.KindCharacter})
	register(denseStrategy[byte]{kind: model.KindRaw})

	register(sequenceStrategy[int32]{kind: model.KindInteger})
	register(sequenceStrategy[float64]{kind: model.KindDouble})

	register(scalarStrategy[int32]{kind: model.KindLogical})
	register(scalarStrategy[int32]{kind: model.KindInteger})
	register(scalarStrategy[float64]{kind: model.KindDouble})
	register(scalarStrategy[complex128]{kind: model.KindComplex})
	register(scalarStrategy[string]{kind: model.KindCharacter})
	register(scalarStrategy[byte]{kind: model.KindRaw})

	register(foreignStrategy[int32]{kind: model.KindLogical})
	register(foreignStrategy[int32]{kind: model.KindInteger})
	register(foreignStrategy[float64]{kind: model.KindDouble})
	register(foreignStrategy[complex128]{kind: model.KindComplex})
	register(foreignStrategy[byte]{kind: model.KindRaw})
}

// Specialize returns the specialized strategy for k, if one exists.
func Specialize(k Key) (Strategy, bool) {
	s, ok := strategies[k]
	return s, ok
}

// NumSpecialized returns the number of specialized strategies.
func NumSpecialized() int { return len(strategies) }

func mismatch(want Key, v vector.Vector) error {
	return &MismatchError{Want: want, Got: KeyOf(v)}
}

type denseStrategy[T vector.Atomic] struct {
	kind model.Kind
}

func (s denseStrategy[T]) Key() Key        { return Key{Rep: vector.RepDense, Kind: s.kind} }
func (denseStrategy[T]) Specialized() bool { return true }

func (s denseStrategy[T]) Supports(v vector.Vector) bool {
	d, ok := v.(*vector.Dense[T])
	return ok && d.Kind() == s.kind
}

func (s denseStrategy[T]) open(v vector.Vector) (*typed[T], *vector.Dense[T], error) {
	d, ok := v.(*vector.Dense[T])
	if !ok || d.Kind() != s.kind {
		return nil, nil, mismatch(s.Key(), v)
	}
	return &typed[T]{key: s.Key(), vec: d, kind: s.kind, data: d.Data(), direct: true}, d, nil
}

func (s denseStrategy[T]) Open(v vector.Vector) (Access, error) {
	a, _, err := s.open(v)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s denseStrategy[T]) OpenWrite(v vector.Writable) (Access, error) {
	a, d, err := s.open(v)
	if err != nil {
		return nil, err
	}
	if d.IsShared() {
		return nil, vector.ErrShared
	}
	a.buf = d
	return a, nil
}

type foreignStrategy[T int32 | float64 | complex128 | byte] struct {
	kind model.Kind
}

func (s foreignStrategy[T]) Key() Key        { return Key{Rep: vector.RepForeign, Kind: s.kind} }
func (foreignStrategy[T]) Specialized() bool { return true }

func (s foreignStrategy[T]) Supports(v vector.Vector) bool {
	f, ok := v.(*vector.Foreign)
	return ok && f.Kind() == s.kind
}

func (s foreignStrategy[T]) open(v vector.Vector) (*typed[T], *vector.Foreign, error) {
	f, ok := v.(*vector.Foreign)
	if !ok || f.Kind() != s.kind {
		return nil, nil, mismatch(s.Key(), v)
	}
	view, err := vector.ForeignView[T](f)
	if err != nil {
		return nil, nil, err
	}
	return &typed[T]{key: s.Key(), vec: f, kind: s.kind, data: view, direct: true}, f, nil
}

func (s foreignStrategy[T]) Open(v vector.Vector) (Access, error) {
	a, _, err := s.open(v)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s foreignStrategy[T]) OpenWrite(v vector.Writable) (Access, error) {
	a, f, err := s.open(v)
	if err != nil {
		return nil, err
	}
	if err := f.CheckWritable(); err != nil {
		return nil, err
	}
	a.buf = f
	return a, nil
}

type sequenceStrategy[T int32 | float64] struct {
	kind model.Kind
}

func (s sequenceStrategy[T]) Key() Key        { return Key{Rep: vector.RepSequence, Kind: s.kind} }
func (sequenceStrategy[T]) Specialized() bool { return true }

func (s sequenceStrategy[T]) Supports(v vector.Vector) bool {
	seq, ok := v.(*vector.Sequence)
	return ok && seq.Kind() == s.kind
}

func (s sequenceStrategy[T]) Open(v vector.Vector) (Access, error) {
	seq, ok := v.(*vector.Sequence)
	if !ok || seq.Kind() != s.kind {
		return nil, mismatch(s.Key(), v)
	}
	var get any = seq.Double
	if s.kind == model.KindInteger {
		get = seq.Int
	}
	return &typed[T]{key: s.Key(), vec: seq, kind: s.kind, get: get.(func(int) T)}, nil
}

func (s sequenceStrategy[T]) OpenWrite(v vector.Writable) (Access, error) {
	return nil, vector.ErrReadOnly
}

type scalarStrategy[T vector.Atomic] struct {
	kind model.Kind
}

func (s scalarStrategy[T]) Key() Key        { return Key{Rep: vector.RepScalar, Kind: s.kind} }
func (scalarStrategy[T]) Specialized() bool { return true }

func (s scalarStrategy[T]) Supports(v vector.Vector) bool {
	sc, ok := v.(*vector.Scalar)
	return ok && sc.Kind() == s.kind
}

func (s scalarStrategy[T]) Open(v vector.Vector) (Access, error) {
	sc, ok := v.(*vector.Scalar)
	if !ok || sc.Kind() != s.kind {
		return nil, mismatch(s.Key(), v)
	}
	x, _ := vector.Unbox[T](s.kind, sc.Value())
	return &typed[T]{key: s.Key(), vec: sc, kind: s.kind, data: []T{x}, direct: true}, nil
}

func (s scalarStrategy[T]) OpenWrite(v vector.Writable) (Access, error) {
	return nil, vector.ErrReadOnly
}
