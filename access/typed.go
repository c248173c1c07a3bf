package access

import (
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// typed is the access behind every specialized strategy. Dense, foreign and
// scalar vectors expose their storage as a slice; sequences compute elements.
type typed[T vector.Atomic] struct {
	key    Key
	vec    vector.Vector
	kind   model.Kind
	data   []T
	direct bool
	get    func(i int) T
	buf    vector.Buffer
	cond   model.Cond
}

func (a *typed[T]) at(i int) T {
	if a.direct {
		return a.data[i]
	}
	return a.get(i)
}

func (a *typed[T]) store(i int, x T) {
	if a.buf == nil {
		panic(vector.ErrReadOnly)
	}
	a.data[i] = x
	if vector.IsNA(x) {
		a.buf.MarkIncomplete()
	}
}

func (a *typed[T]) Key() Key              { return a.key }
func (a *typed[T]) Specialized() bool     { return true }
func (a *typed[T]) Vector() vector.Vector { return a.vec }
func (a *typed[T]) Len() int              { return a.vec.Len() }
func (a *typed[T]) Kind() model.Kind      { return a.kind }
func (a *typed[T]) Writable() bool        { return a.buf != nil }
func (a *typed[T]) Cond() model.Cond      { return a.cond }
func (a *typed[T]) Err() error            { return nil }
func (a *typed[T]) Cursor() Cursor        { return NewCursor(a.vec.Len()) }
func (a *typed[T]) IsNA(i int) bool       { return vector.IsNA(a.at(i)) }
func (a *typed[T]) Elem(i int) model.Elem { return vector.Box(a.kind, a.at(i)) }

func (a *typed[T]) Logical(i int) int32 {
	x := a.at(i)
	if v, ok := any(x).(int32); ok && a.kind == model.KindLogical {
		return model.IntegerToLogical(v)
	}
	r, c := vector.Box(a.kind, x).AsLogical()
	a.cond |= c
	return r
}

func (a *typed[T]) Integer(i int) int32 {
	x := a.at(i)
	if v, ok := any(x).(int32); ok {
		if a.kind == model.KindLogical {
			return model.IntegerToLogical(v)
		}
		return v
	}
	r, c := vector.Box(a.kind, x).AsInteger()
	a.cond |= c
	return r
}

func (a *typed[T]) Double(i int) float64 {
	x := a.at(i)
	if v, ok := any(x).(float64); ok {
		return v
	}
	r, c := vector.Box(a.kind, x).AsDouble()
	a.cond |= c
	return r
}

func (a *typed[T]) Complex(i int) complex128 {
	x := a.at(i)
	if v, ok := any(x).(complex128); ok {
		return v
	}
	r, c := vector.Box(a.kind, x).AsComplex()
	a.cond |= c
	return r
}

func (a *typed[T]) Character(i int) string {
	x := a.at(i)
	if v, ok := any(x).(string); ok {
		return v
	}
	return vector.Box(a.kind, x).AsCharacter()
}

func (a *typed[T]) Raw(i int) byte {
	x := a.at(i)
	if v, ok := any(x).(byte); ok {
		return v
	}
	r, c := vector.Box(a.kind, x).AsRaw()
	a.cond |= c
	return r
}

func (a *typed[T]) SetLogical(i int, x int32) {
	if a.kind == model.KindLogical {
		if v, ok := any(model.IntegerToLogical(x)).(T); ok {
			a.store(i, v)
			return
		}
	}
	a.SetElem(i, model.Logical(x))
}

func (a *typed[T]) SetInteger(i int, x int32) {
	if a.kind == model.KindInteger {
		if v, ok := any(x).(T); ok {
			a.store(i, v)
			return
		}
	}
	a.SetElem(i, model.Int(x))
}

func (a *typed[T]) SetDouble(i int, x float64) {
	if v, ok := any(x).(T); ok {
		a.store(i, v)
		return
	}
	a.SetElem(i, model.Float(x))
}

func (a *typed[T]) SetComplex(i int, x complex128) {
	if v, ok := any(x).(T); ok {
		a.store(i, v)
		return
	}
	a.SetElem(i, model.Complex128(x))
}

func (a *typed[T]) SetCharacter(i int, x string) {
	if v, ok := any(x).(T); ok {
		a.store(i, v)
		return
	}
	a.SetElem(i, model.String(x))
}

func (a *typed[T]) SetRaw(i int, x byte) {
	if v, ok := any(x).(T); ok {
		a.store(i, v)
		return
	}
	a.SetElem(i, model.Byte(x))
}

func (a *typed[T]) SetElem(i int, e model.Elem) {
	x, c := vector.Unbox[T](a.kind, e)
	a.cond |= c
	a.store(i, x)
}
