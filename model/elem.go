package model

// Value is anything the operation engine accepts or returns: a vector, an
// unwrapped element, or the absent value.
type Value interface {
	Kind() Kind
	Len() int
}

// Elem is a single unwrapped element of any kind.
//
// Elem doubles as the boxing currency of the generic access strategy and as
// the unwrapped scalar result of length-1 operations. It never carries
// attributes and is never aliased.
type Elem struct {
	kind Kind
	i    int32
	d    float64
	c    complex128
	s    string
	r    byte
	v    Value
}

// Logical returns a logical element. Any non-zero, non-NA value is TRUE.
func Logical(x int32) Elem {
	if x != NALogical && x != False {
		x = True
	}
	return Elem{kind: KindLogical, i: x}
}

// Bool returns a logical element.
func Bool(b bool) Elem { return Elem{kind: KindLogical, i: FromBool(b)} }

// Int returns an integer element.
func Int(x int32) Elem { return Elem{kind: KindInteger, i: x} }

// Float returns a double element.
func Float(x float64) Elem { return Elem{kind: KindDouble, d: x} }

// Complex128 returns a complex element.
func Complex128(x complex128) Elem { return Elem{kind: KindComplex, c: x} }

// String returns a character element.
func String(s string) Elem { return Elem{kind: KindCharacter, s: s} }

// Byte returns a raw element.
func Byte(b byte) Elem { return Elem{kind: KindRaw, r: b} }

// Item returns a list element wrapping v.
func Item(v Value) Elem { return Elem{kind: KindList, v: v} }

// NA returns the missing element of kind k. Raw has no NA and yields 0.
func NA(k Kind) Elem {
	switch k {
	case KindLogical:
		return Elem{kind: k, i: NALogical}
	case KindInteger:
		return Elem{kind: k, i: NAInteger}
	case KindDouble:
		return Elem{kind: k, d: NADouble}
	case KindComplex:
		return Elem{kind: k, c: NAComplex}
	case KindCharacter:
		return Elem{kind: k, s: NACharacter}
	default:
		return Elem{kind: k}
	}
}

// Kind returns the element kind.
func (e Elem) Kind() Kind { return e.kind }

// Len is always 1.
func (e Elem) Len() int { return 1 }

// IsNA reports whether e is the missing value of its kind.
func (e Elem) IsNA() bool {
	switch e.kind {
	case KindLogical, KindInteger:
		return e.i == NAInteger
	case KindDouble:
		return IsNADouble(e.d)
	case KindComplex:
		return IsNAComplex(e.c)
	case KindCharacter:
		return e.s == NACharacter
	default:
		return false
	}
}

// AsLogical converts e to a logical.
func (e Elem) AsLogical() (int32, Cond) {
	switch e.kind {
	case KindLogical:
		return e.i, 0
	case KindInteger:
		return IntegerToLogical(e.i), 0
	case KindDouble:
		return DoubleToLogical(e.d), 0
	case KindComplex:
		return ComplexToLogical(e.c), 0
	case KindCharacter:
		return CharacterToLogical(e.s), 0
	case KindRaw:
		return FromBool(e.r != 0), 0
	default:
		return NALogical, CondNAIntroduced
	}
}

// AsInteger converts e to an integer.
func (e Elem) AsInteger() (int32, Cond) {
	switch e.kind {
	case KindLogical, KindInteger:
		return e.i, 0
	case KindDouble:
		return DoubleToInteger(e.d)
	case KindComplex:
		return ComplexToInteger(e.c)
	case KindCharacter:
		return CharacterToInteger(e.s)
	case KindRaw:
		return int32(e.r), 0
	default:
		return NAInteger, CondNAIntroduced
	}
}

// AsDouble converts e to a double.
func (e Elem) AsDouble() (float64, Cond) {
	switch e.kind {
	case KindLogical, KindInteger:
		return IntegerToDouble(e.i), 0
	case KindDouble:
		return e.d, 0
	case KindComplex:
		return ComplexToDouble(e.c)
	case KindCharacter:
		return CharacterToDouble(e.s)
	case KindRaw:
		return float64(e.r), 0
	default:
		return NADouble, CondNAIntroduced
	}
}

// AsComplex converts e to a complex.
func (e Elem) AsComplex() (complex128, Cond) {
	switch e.kind {
	case KindLogical, KindInteger:
		return IntegerToComplex(e.i), 0
	case KindDouble:
		return DoubleToComplex(e.d), 0
	case KindComplex:
		return e.c, 0
	case KindCharacter:
		return CharacterToComplex(e.s)
	case KindRaw:
		return complex(float64(e.r), 0), 0
	default:
		return NAComplex, CondNAIntroduced
	}
}

// AsCharacter converts e to a string.
func (e Elem) AsCharacter() string {
	switch e.kind {
	case KindLogical:
		return LogicalToCharacter(e.i)
	case KindInteger:
		return IntegerToCharacter(e.i)
	case KindDouble:
		return DoubleToCharacter(e.d)
	case KindComplex:
		return ComplexToCharacter(e.c)
	case KindCharacter:
		return e.s
	case KindRaw:
		return RawToCharacter(e.r)
	default:
		return NACharacter
	}
}

// AsRaw converts e to a raw byte.
func (e Elem) AsRaw() (byte, Cond) {
	switch e.kind {
	case KindLogical, KindInteger:
		return IntegerToRaw(e.i)
	case KindDouble:
		return DoubleToRaw(e.d)
	case KindComplex:
		return ComplexToRaw(e.c)
	case KindCharacter:
		return CharacterToRaw(e.s)
	case KindRaw:
		return e.r, 0
	default:
		return 0, CondOutOfRange
	}
}

// AsItem returns the wrapped list value, or e itself for atomic kinds.
func (e Elem) AsItem() Value {
	if e.kind == KindList {
		return e.v
	}
	return e
}

// Convert returns e coerced to kind k.
func (e Elem) Convert(k Kind) (Elem, Cond) {
	if e.kind == k {
		return e, 0
	}
	switch k {
	case KindLogical:
		x, c := e.AsLogical()
		return Elem{kind: k, i: x}, c
	case KindInteger:
		x, c := e.AsInteger()
		return Elem{kind: k, i: x}, c
	case KindDouble:
		x, c := e.AsDouble()
		return Elem{kind: k, d: x}, c
	case KindComplex:
		x, c := e.AsComplex()
		return Elem{kind: k, c: x}, c
	case KindCharacter:
		return Elem{kind: k, s: e.AsCharacter()}, 0
	case KindRaw:
		x, c := e.AsRaw()
		return Elem{kind: k, r: x}, c
	case KindList:
		return Item(e.AsItem()), 0
	default:
		return Elem{kind: KindNull}, 0
	}
}

// Equal reports whether e and o hold the same kind and value. NA equals NA.
func (e Elem) Equal(o Elem) bool {
	if e.kind != o.kind {
		return false
	}
	if e.IsNA() || o.IsNA() {
		return e.IsNA() && o.IsNA()
	}
	switch e.kind {
	case KindLogical, KindInteger:
		return e.i == o.i
	case KindDouble:
		return e.d == o.d || (e.d != e.d && o.d != o.d)
	case KindComplex:
		return e.c == o.c
	case KindCharacter:
		return e.s == o.s
	case KindRaw:
		return e.r == o.r
	case KindList:
		return e.v == o.v
	default:
		return true
	}
}

// String formats e for display. NA prints as NA.
func (e Elem) String() string {
	if e.IsNA() {
		return "NA"
	}
	switch e.kind {
	case KindCharacter:
		return `"` + e.s + `"`
	case KindNull:
		return "NULL"
	case KindList:
		return "<list element>"
	default:
		return e.AsCharacter()
	}
}
