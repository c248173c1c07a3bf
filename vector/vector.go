package vector

import (
	"errors"
	"fmt"

	"github.com/hupe1980/statvec/model"
)

var (
	// ErrInvalidLength is returned for negative lengths or out-of-range indices.
	ErrInvalidLength = errors.New("vector: invalid length")
	// ErrUnsupportedKind is returned when a representation cannot hold a kind.
	ErrUnsupportedKind = errors.New("vector: unsupported kind")
	// ErrInvalidSequence is returned when a sequence cannot be represented.
	ErrInvalidSequence = errors.New("vector: invalid sequence")
	// ErrShared is returned when mutating a Shared vector.
	ErrShared = errors.New("vector: vector is shared")
	// ErrReadOnly is returned when writing to a read-only vector.
	ErrReadOnly = errors.New("vector: vector is read-only")
	// ErrClosed is returned when using a foreign vector after Close.
	ErrClosed = errors.New("vector: foreign buffer is closed")
)

// Representation identifies the concrete backing of a vector.
type Representation uint8

const (
	// RepDense is an owned, contiguous Go slice.
	RepDense Representation = iota
	// RepSequence is a lazy arithmetic progression.
	RepSequence
	// RepScalar is a single boxed element.
	RepScalar
	// RepForeign is a buffer outside the Go heap.
	RepForeign
	// RepOther is any Vector implemented outside this package.
	RepOther
)

// NumRepresentations is the number of defined representations.
const NumRepresentations = int(RepOther) + 1

// String returns the representation name.
func (r Representation) String() string {
	switch r {
	case RepDense:
		return "dense"
	case RepSequence:
		return "sequence"
	case RepScalar:
		return "scalar"
	case RepForeign:
		return "foreign"
	case RepOther:
		return "other"
	default:
		return "unknown"
	}
}

// Vector is a one-dimensional typed collection.
type Vector interface {
	model.Value

	// Representation reports the concrete backing.
	Representation() Representation

	// IsComplete reports, in O(1), whether the vector is known to hold no NA.
	IsComplete() bool

	// Attributes returns the attribute map, or nil. The map must not be modified.
	Attributes() Attributes

	// Elt returns element i boxed.
	Elt(i int) model.Elem
}

// Writable is a vector whose elements can be replaced.
type Writable interface {
	Vector

	// SetElt stores e at position i. e is coerced to the vector's kind;
	// use model.Elem.Convert beforehand to observe coercion warnings.
	SetElt(i int, e model.Elem) error
}

// Buffer is a materialized, writable vector with ownership state and attributes.
// Dense, List and Foreign vectors are buffers.
type Buffer interface {
	Writable
	Ownership

	// SetAttribute sets (or, with a nil value, removes) one attribute.
	SetAttribute(name string, v model.Value) error

	// SetAttributes replaces all attributes with a shallow copy of a.
	SetAttributes(a Attributes) error

	// MarkIncomplete clears the completeness flag.
	MarkIncomplete()

	// Rescan recomputes the completeness flag from the elements and returns it.
	Rescan() bool
}

// Atomic lists the Go storage types of atomic vectors.
type Atomic interface {
	int32 | float64 | complex128 | string | byte
}

type nullValue struct{}

func (nullValue) Kind() model.Kind { return model.KindNull }
func (nullValue) Len() int         { return 0 }
func (nullValue) String() string   { return "NULL" }

// Null is the absent value.
var Null model.Value = nullValue{}

// IsNull reports whether v is the absent value (or a nil interface).
func IsNull(v model.Value) bool {
	return v == nil || v.Kind() == model.KindNull
}

// IsNA reports whether x is the missing value of its storage type.
// Raw bytes are never missing.
func IsNA[T Atomic](x T) bool {
	switch v := any(x).(type) {
	case int32:
		return v == model.NAInteger
	case float64:
		return model.IsNADouble(v)
	case complex128:
		return model.IsNAComplex(v)
	case string:
		return v == model.NACharacter
	default:
		return false
	}
}

// Box wraps a native element of kind k.
func Box[T Atomic](k model.Kind, x T) model.Elem {
	switch v := any(x).(type) {
	case int32:
		if k == model.KindLogical {
			return model.Logical(v)
		}
		return model.Int(v)
	case float64:
		return model.Float(v)
	case complex128:
		return model.Complex128(v)
	case string:
		return model.String(v)
	case byte:
		return model.Byte(v)
	default:
		panic(fmt.Sprintf("vector: unexpected storage type %T", x))
	}
}

// normalize maps logical storage to FALSE, TRUE or NA. Other kinds pass through.
func normalize[T Atomic](k model.Kind, x T) T {
	if k != model.KindLogical {
		return x
	}
	if v, ok := any(x).(int32); ok {
		return any(model.IntegerToLogical(v)).(T)
	}
	return x
}

// Unbox coerces e to kind k and returns it in native storage.
func Unbox[T Atomic](k model.Kind, e model.Elem) (T, model.Cond) {
	var zero T
	var out any
	var c model.Cond
	switch any(zero).(type) {
	case int32:
		if k == model.KindLogical {
			out, c = e.AsLogical()
		} else {
			out, c = e.AsInteger()
		}
	case float64:
		out, c = e.AsDouble()
	case complex128:
		out, c = e.AsComplex()
	case string:
		out = e.AsCharacter()
	case byte:
		out, c = e.AsRaw()
	}
	return out.(T), c
}

// CheckStorage verifies that Go storage type T can hold kind k.
func CheckStorage[T Atomic](k model.Kind) error {
	var zero T
	ok := false
	switch any(zero).(type) {
	case int32:
		ok = k == model.KindLogical || k == model.KindInteger
	case float64:
		ok = k == model.KindDouble
	case complex128:
		ok = k == model.KindComplex
	case string:
		ok = k == model.KindCharacter
	case byte:
		ok = k == model.KindRaw
	}
	if !ok {
		return fmt.Errorf("%w: %s cannot be stored as %T", ErrUnsupportedKind, k, zero)
	}
	return nil
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d]", i, n))
	}
}

var (
	_ Buffer = (*Dense[int32])(nil)
	_ Buffer = (*Dense[float64])(nil)
	_ Buffer = (*Dense[complex128])(nil)
	_ Buffer = (*Dense[string])(nil)
	_ Buffer = (*Dense[byte])(nil)
	_ Buffer = (*List)(nil)
	_ Buffer = (*Foreign)(nil)
	_ Vector = (*Sequence)(nil)
	_ Vector = (*Scalar)(nil)
)
