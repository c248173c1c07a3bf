package access

import (
	"errors"
	"fmt"

	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// ErrUnsupported is returned when a strategy cannot open a vector.
var ErrUnsupported = errors.New("access: unsupported vector")

// Key identifies a (representation, kind) pair.
type Key struct {
	Rep  vector.Representation
	Kind model.Kind
}

// String returns "rep/kind".
func (k Key) String() string {
	return k.Rep.String() + "/" + k.Kind.String()
}

// KeyOf returns the key of v.
func KeyOf(v vector.Vector) Key {
	return Key{Rep: v.Representation(), Kind: v.Kind()}
}

// MismatchError is returned when a specialized strategy is asked to open a
// vector of another representation or kind.
type MismatchError struct {
	Want Key
	Got  Key
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("access: %s strategy cannot open %s vector", e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrUnsupported
}

// Strategy opens vectors of one (representation, kind) pair.
type Strategy interface {
	// Key returns the pair served. The Generic strategy returns GenericKey.
	Key() Key

	// Specialized reports whether the strategy reads storage directly.
	Specialized() bool

	// Supports reports whether Open would accept v.
	Supports(v vector.Vector) bool

	// Open returns a read-only access bound to v.
	Open(v vector.Vector) (Access, error)

	// OpenWrite returns a read-write access bound to v. Shared buffers are
	// rejected with vector.ErrShared.
	OpenWrite(v vector.Writable) (Access, error)
}

// GenericKey is the key reported by the Generic strategy.
var GenericKey = Key{Rep: vector.RepOther, Kind: model.KindNull}

// Access is a capability bound to one vector.
//
// Getters convert to the requested kind through package model; conversion
// warnings accumulate in Cond. Setters convert from the given kind to the
// vector's kind and clear its completeness flag when they store an NA.
// Calling a setter on a read-only access panics.
type Access interface {
	Key() Key
	Specialized() bool
	Vector() vector.Vector
	Len() int
	Kind() model.Kind
	Writable() bool

	IsNA(i int) bool
	Logical(i int) int32
	Integer(i int) int32
	Double(i int) float64
	Complex(i int) complex128
	Character(i int) string
	Raw(i int) byte
	Elem(i int) model.Elem

	SetLogical(i int, x int32)
	SetInteger(i int, x int32)
	SetDouble(i int, x float64)
	SetComplex(i int, x complex128)
	SetCharacter(i int, x string)
	SetRaw(i int, x byte)
	SetElem(i int, e model.Elem)

	// Cond returns the accumulated conversion warnings.
	Cond() model.Cond

	// Err returns the first error reported by a boxed write.
	Err() error

	// Cursor returns a cursor over [0, Len()).
	Cursor() Cursor
}

// Cursor walks the positions of a vector. It starts before the first position.
type Cursor struct {
	pos int
	n   int
}

// NewCursor returns a cursor over [0, n).
func NewCursor(n int) Cursor {
	return Cursor{pos: -1, n: n}
}

// Next advances to the next position and reports whether it is valid.
func (c *Cursor) Next() bool {
	c.pos++
	return c.pos < c.n
}

// NextWrap advances to the next position, wrapping to 0 after the last one,
// and returns it. It is used to recycle a shorter operand.
func (c *Cursor) NextWrap() int {
	c.pos++
	if c.pos >= c.n {
		c.pos = 0
	}
	return c.pos
}

// Index returns the current position.
func (c *Cursor) Index() int { return c.pos }

// Len returns the number of positions.
func (c *Cursor) Len() int { return c.n }

// Reset moves the cursor before the first position.
func (c *Cursor) Reset() { c.pos = -1 }
