package model

import "math"

// Logical values.
const (
	False int32 = 0
	True  int32 = 1
)

const naDoubleBits = 0x7FF00000000007A2

// Missing-value sentinels per kind.
const (
	// NALogical is the missing logical value.
	NALogical int32 = math.MinInt32
	// NAInteger is the missing integer value.
	NAInteger int32 = math.MinInt32
	// NACharacter is the reserved string standing for a missing character value.
	NACharacter = "\x00NA_character_\x00"
)

// NADouble is the missing double value: a NaN whose low word is 1954.
var NADouble = math.Float64frombits(naDoubleBits)

// NAComplex is the missing complex value.
var NAComplex = complex(NADouble, NADouble)

// IsNAInteger reports whether x is the integer (or logical) sentinel.
func IsNAInteger(x int32) bool { return x == NAInteger }

// IsNADouble reports whether x is the double sentinel. Plain NaN is not NA.
func IsNADouble(x float64) bool {
	return math.IsNaN(x) && uint32(math.Float64bits(x)) == 1954
}

// IsNAComplex reports whether either part of x is the double sentinel.
func IsNAComplex(x complex128) bool {
	return IsNADouble(real(x)) || IsNADouble(imag(x))
}

// IsNACharacter reports whether s is the character sentinel.
func IsNACharacter(s string) bool { return s == NACharacter }

// FromBool converts a Go bool into a logical.
func FromBool(b bool) int32 {
	if b {
		return True
	}
	return False
}
