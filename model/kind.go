package model

import (
	"errors"
	"strings"
)

// ErrIncompatibleKind is returned when two element kinds cannot be combined.
var ErrIncompatibleKind = errors.New("incompatible element kinds")

// Kind identifies the element kind stored in a vector.
type Kind uint8

const (
	// KindNull is the kind of the absent value. It is not part of the lattice.
	KindNull Kind = iota
	// KindLogical represents TRUE/FALSE/NA values stored as int32.
	KindLogical
	// KindInteger represents 32-bit integers.
	KindInteger
	// KindDouble represents 64-bit floating point values.
	KindDouble
	// KindComplex represents complex128 values.
	KindComplex
	// KindCharacter represents strings.
	KindCharacter
	// KindRaw represents bytes. Raw has no missing value.
	KindRaw
	// KindList represents generic lists of values.
	KindList
)

// NumKinds is the number of defined kinds.
const NumKinds = int(KindList) + 1

var kindNames = [...]string{"NULL", "logical", "integer", "double", "complex", "character", "raw", "list"}

// String returns the language-level name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "numeric" {
		return KindDouble, true
	}
	for i, n := range kindNames {
		if strings.ToLower(n) == name {
			return Kind(i), true
		}
	}
	return KindNull, false
}

// InLattice reports whether k takes part in the promotion ladder
// Logical < Integer < Double < Complex < Character.
func (k Kind) InLattice() bool {
	return k >= KindLogical && k <= KindCharacter
}

// IsArithmetic reports whether elements of kind k can take part in arithmetic.
func (k Kind) IsArithmetic() bool {
	return k >= KindLogical && k <= KindComplex
}

// Promote returns the higher-precedence kind of a and b.
//
// The absent kind is the identity. Raw and List only promote with themselves.
func Promote(a, b Kind) (Kind, error) {
	switch {
	case a == b:
		return a, nil
	case a == KindNull:
		return b, nil
	case b == KindNull:
		return a, nil
	case !a.InLattice() || !b.InLattice():
		return KindNull, ErrIncompatibleKind
	case a > b:
		return a, nil
	default:
		return b, nil
	}
}

// PromoteForArithmetic is Promote with the result floored at Integer:
// arithmetic on logicals never yields a logical.
func PromoteForArithmetic(a, b Kind) (Kind, error) {
	k, err := Promote(a, b)
	if err != nil {
		return KindNull, err
	}
	if k == KindNull || k == KindLogical {
		return KindInteger, nil
	}
	return k, nil
}
