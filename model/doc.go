// Package model defines the element-level types shared by every statvec package.
//
// # Kinds
//
// Elements belong to one of a closed set of kinds. The atomic kinds form a
// promotion ladder:
//
//	Logical < Integer < Double < Complex < Character
//
// Raw and List sit outside the ladder and only combine with themselves.
// KindNull is the kind of the absent value.
//
// # Missing Values
//
// Each kind has its own NA sentinel:
//
//   - Logical, Integer: math.MinInt32
//   - Double: a NaN with low word 1954 (plain NaN is not NA)
//   - Complex: Double NA in either part
//   - Character: the reserved string NACharacter
//   - Raw: none
//
// # Coercion
//
// All cross-kind conversions live in this package and report warning
// conditions as a Cond bitmask instead of logging or failing:
//
//	x, cond := model.DoubleToInteger(3e10) // NAInteger, CondNAIntroduced
package model
