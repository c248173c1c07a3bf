package access

import (
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// Generic is the strategy that accepts every vector through boxed element calls.
var Generic Strategy = genericStrategy{}

type genericStrategy struct{}

func (genericStrategy) Key() Key                    { return GenericKey }
func (genericStrategy) Specialized() bool           { return false }
func (genericStrategy) Supports(vector.Vector) bool { return true }

func (genericStrategy) Open(v vector.Vector) (Access, error) {
	if f, ok := v.(*vector.Foreign); ok && f.Closed() {
		return nil, vector.ErrClosed
	}
	return &boxed{vec: v}, nil
}

func (genericStrategy) OpenWrite(v vector.Writable) (Access, error) {
	if err := checkWritable(v); err != nil {
		return nil, err
	}
	return &boxed{vec: v, w: v}, nil
}

// boxed reads and writes through Elt and SetElt.
type boxed struct {
	vec  vector.Vector
	w    vector.Writable
	cond model.Cond
	err  error
}

func (a *boxed) Key() Key              { return KeyOf(a.vec) }
func (a *boxed) Specialized() bool     { return false }
func (a *boxed) Vector() vector.Vector { return a.vec }
func (a *boxed) Len() int              { return a.vec.Len() }
func (a *boxed) Kind() model.Kind      { return a.vec.Kind() }
func (a *boxed) Writable() bool        { return a.w != nil }
func (a *boxed) Cond() model.Cond      { return a.cond }
func (a *boxed) Err() error            { return a.err }
func (a *boxed) Cursor() Cursor        { return NewCursor(a.vec.Len()) }
func (a *boxed) IsNA(i int) bool       { return a.vec.Elt(i).IsNA() }
func (a *boxed) Elem(i int) model.Elem { return a.vec.Elt(i) }

func (a *boxed) Logical(i int) int32 {
	x, c := a.vec.Elt(i).AsLogical()
	a.cond |= c
	return x
}

func (a *boxed) Integer(i int) int32 {
	x, c := a.vec.Elt(i).AsInteger()
	a.cond |= c
	return x
}

func (a *boxed) Double(i int) float64 {
	x, c := a.vec.Elt(i).AsDouble()
	a.cond |= c
	return x
}

func (a *boxed) Complex(i int) complex128 {
	x, c := a.vec.Elt(i).AsComplex()
	a.cond |= c
	return x
}

func (a *boxed) Character(i int) string {
	return a.vec.Elt(i).AsCharacter()
}

func (a *boxed) Raw(i int) byte {
	x, c := a.vec.Elt(i).AsRaw()
	a.cond |= c
	return x
}

func (a *boxed) SetLogical(i int, x int32)      { a.SetElem(i, model.Logical(x)) }
func (a *boxed) SetInteger(i int, x int32)      { a.SetElem(i, model.Int(x)) }
func (a *boxed) SetDouble(i int, x float64)     { a.SetElem(i, model.Float(x)) }
func (a *boxed) SetComplex(i int, x complex128) { a.SetElem(i, model.Complex128(x)) }
func (a *boxed) SetCharacter(i int, x string)   { a.SetElem(i, model.String(x)) }
func (a *boxed) SetRaw(i int, x byte)           { a.SetElem(i, model.Byte(x)) }

func (a *boxed) SetElem(i int, e model.Elem) {
	if a.w == nil {
		panic(vector.ErrReadOnly)
	}
	e, c := e.Convert(a.vec.Kind())
	a.cond |= c
	if err := a.w.SetElt(i, e); err != nil && a.err == nil {
		a.err = err
	}
}

// checkWritable rejects Shared buffers and read-only or closed foreign vectors.
func checkWritable(v vector.Writable) error {
	if f, ok := v.(*vector.Foreign); ok {
		return f.CheckWritable()
	}
	if b, ok := v.(vector.Buffer); ok && b.IsShared() {
		return vector.ErrShared
	}
	return nil
}
