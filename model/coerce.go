package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/statvec/internal/conv"
)

// The coercions below are the single place where element kinds are converted
// into each other. Every access strategy goes through them, so NA handling and
// warning conditions cannot diverge between strategies.

// IntegerToLogical converts an integer to a logical.
func IntegerToLogical(x int32) int32 {
	if x == NAInteger {
		return NALogical
	}
	return FromBool(x != 0)
}

// IntegerToDouble converts an integer (or logical) to a double.
func IntegerToDouble(x int32) float64 {
	if x == NAInteger {
		return NADouble
	}
	return float64(x)
}

// IntegerToComplex converts an integer (or logical) to a complex.
func IntegerToComplex(x int32) complex128 {
	if x == NAInteger {
		return NAComplex
	}
	return complex(float64(x), 0)
}

// IntegerToCharacter formats an integer.
func IntegerToCharacter(x int32) string {
	if x == NAInteger {
		return NACharacter
	}
	return strconv.FormatInt(int64(x), 10)
}

// LogicalToCharacter formats a logical as TRUE/FALSE.
func LogicalToCharacter(x int32) string {
	switch x {
	case NALogical:
		return NACharacter
	case False:
		return "FALSE"
	default:
		return "TRUE"
	}
}

// IntegerToRaw converts an integer (or logical) to a raw byte.
func IntegerToRaw(x int32) (byte, Cond) {
	if x == NAInteger {
		return 0, CondOutOfRange
	}
	b, err := conv.Int32ToByte(x)
	if err != nil {
		return 0, CondOutOfRange
	}
	return b, 0
}

// DoubleToLogical converts a double to a logical. NaN becomes NA.
func DoubleToLogical(x float64) int32 {
	if math.IsNaN(x) {
		return NALogical
	}
	return FromBool(x != 0)
}

// DoubleToInteger truncates a double to an integer. NA and NaN map to NA
// silently; infinite or out-of-range values map to NA with a warning.
func DoubleToInteger(x float64) (int32, Cond) {
	if math.IsNaN(x) {
		return NAInteger, 0
	}
	v, err := conv.Float64ToInt32(x)
	if err != nil {
		return NAInteger, CondNAIntroduced
	}
	return v, 0
}

// DoubleToComplex converts a double to a complex.
func DoubleToComplex(x float64) complex128 {
	if IsNADouble(x) {
		return NAComplex
	}
	return complex(x, 0)
}

// DoubleToCharacter formats a double with 15 significant digits.
func DoubleToCharacter(x float64) string {
	if IsNADouble(x) {
		return NACharacter
	}
	return FormatDouble(x)
}

// DoubleToRaw converts a double to a raw byte.
func DoubleToRaw(x float64) (byte, Cond) {
	b, err := conv.Float64ToByte(x)
	if err != nil {
		return 0, CondOutOfRange
	}
	return b, 0
}

// ComplexToLogical converts a complex to a logical.
func ComplexToLogical(x complex128) int32 {
	if math.IsNaN(real(x)) || math.IsNaN(imag(x)) {
		return NALogical
	}
	return FromBool(x != 0)
}

// ComplexToDouble keeps the real part, warning when the imaginary part is lost.
func ComplexToDouble(x complex128) (float64, Cond) {
	if IsNAComplex(x) {
		return NADouble, 0
	}
	if imag(x) != 0 {
		return real(x), CondImaginaryDiscarded
	}
	return real(x), 0
}

// ComplexToInteger converts a complex to an integer through its real part.
func ComplexToInteger(x complex128) (int32, Cond) {
	d, c1 := ComplexToDouble(x)
	v, c2 := DoubleToInteger(d)
	return v, c1 | c2
}

// ComplexToCharacter formats a complex as re+imi.
func ComplexToCharacter(x complex128) string {
	if IsNAComplex(x) {
		return NACharacter
	}
	return FormatComplex(x)
}

// ComplexToRaw converts a complex to a raw byte through its real part.
func ComplexToRaw(x complex128) (byte, Cond) {
	d, c1 := ComplexToDouble(x)
	b, c2 := DoubleToRaw(d)
	return b, c1 | c2
}

// CharacterToLogical parses the accepted spellings of TRUE and FALSE.
// Anything else is NA without a warning.
func CharacterToLogical(s string) int32 {
	switch strings.TrimSpace(s) {
	case "TRUE", "true", "True", "T":
		return True
	case "FALSE", "false", "False", "F":
		return False
	default:
		return NALogical
	}
}

// CharacterToDouble parses s as a double.
func CharacterToDouble(s string) (float64, Cond) {
	if s == NACharacter {
		return NADouble, 0
	}
	t := strings.TrimSpace(s)
	switch t {
	case "NA":
		return NADouble, 0
	case "Inf", "inf":
		return math.Inf(1), 0
	case "-Inf", "-inf":
		return math.Inf(-1), 0
	case "NaN":
		return math.NaN(), 0
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return NADouble, CondNAIntroduced
	}
	return f, 0
}

// CharacterToInteger parses s as a number and truncates it to an integer.
func CharacterToInteger(s string) (int32, Cond) {
	d, c1 := CharacterToDouble(s)
	if c1 != 0 {
		return NAInteger, c1
	}
	v, c2 := DoubleToInteger(d)
	return v, c2
}

// CharacterToComplex parses s as a complex number.
func CharacterToComplex(s string) (complex128, Cond) {
	if s == NACharacter || strings.TrimSpace(s) == "NA" {
		return NAComplex, 0
	}
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return NAComplex, CondNAIntroduced
	}
	return c, 0
}

// CharacterToRaw parses s as an integer and narrows it to a raw byte.
func CharacterToRaw(s string) (byte, Cond) {
	v, c1 := CharacterToInteger(s)
	b, c2 := IntegerToRaw(v)
	return b, c1 | c2
}

// RawToCharacter formats a raw byte as two hex digits.
func RawToCharacter(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}

// FormatDouble formats x the way printed vectors show doubles.
func FormatDouble(x float64) string {
	switch {
	case IsNADouble(x):
		return "NA"
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(x, 'g', 15, 64)
}

// FormatComplex formats x as re+imi.
func FormatComplex(x complex128) string {
	re, im := real(x), imag(x)
	sign := "+"
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}
	return FormatDouble(re) + sign + FormatDouble(im) + "i"
}
