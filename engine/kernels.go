package engine

import (
	"cmp"
	"math"
	"math/cmplx"
	"strings"

	"github.com/hupe1980/statvec/internal/conv"
	"github.com/hupe1980/statvec/model"
)

// intArith applies an arithmetic operator to two integers. Results outside
// the integer range become NA with an overflow warning.
func intArith(op Op, x, y int32) (int32, model.Cond) {
	if x == model.NAInteger || y == model.NAInteger {
		return model.NAInteger, 0
	}
	a, b := int64(x), int64(y)
	var r int64
	switch op {
	case OpAdd:
		r = a + b
	case OpSubtract:
		r = a - b
	case OpMultiply:
		r = a * b
	case OpMod:
		if b == 0 {
			return model.NAInteger, 0
		}
		r = a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
	case OpIntDiv:
		if b == 0 {
			return model.NAInteger, 0
		}
		r = floorDiv(a, b)
	default:
		return model.NAInteger, 0
	}
	v, err := conv.Int64ToInt32(r)
	if err != nil {
		return model.NAInteger, model.CondIntegerOverflow
	}
	return v, 0
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// doubleArith applies an arithmetic operator to two doubles.
func doubleArith(op Op, x, y float64) float64 {
	if op == OpPower && (x == 1 || y == 0) {
		return 1
	}
	if model.IsNADouble(x) || model.IsNADouble(y) {
		return model.NADouble
	}
	switch op {
	case OpAdd:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	case OpPower:
		return math.Pow(x, y)
	case OpMod:
		return floorMod(x, y)
	case OpIntDiv:
		return math.Floor(x / y)
	default:
		return model.NADouble
	}
}

// floorMod returns x modulo y with the sign of y. A zero divisor yields NaN.
func floorMod(x, y float64) float64 {
	if y == 0 {
		return math.NaN()
	}
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

// complexArith applies an arithmetic operator to two complex numbers.
func complexArith(op Op, x, y complex128) complex128 {
	if op == OpPower && (x == 1 || y == 0) {
		return 1
	}
	if model.IsNAComplex(x) || model.IsNAComplex(y) {
		return model.NAComplex
	}
	switch op {
	case OpAdd:
		return x + y
	case OpSubtract:
		return x - y
	case OpMultiply:
		return x * y
	case OpDivide:
		return x / y
	case OpPower:
		return cmplx.Pow(x, y)
	default:
		return model.NAComplex
	}
}

func compared(op Op, c int) int32 {
	switch op {
	case OpEqual:
		return model.FromBool(c == 0)
	case OpNotEqual:
		return model.FromBool(c != 0)
	case OpLess:
		return model.FromBool(c < 0)
	case OpLessEqual:
		return model.FromBool(c <= 0)
	case OpGreater:
		return model.FromBool(c > 0)
	case OpGreaterEqual:
		return model.FromBool(c >= 0)
	default:
		return model.NALogical
	}
}

func compareInt(op Op, x, y int32) int32 {
	if x == model.NAInteger || y == model.NAInteger {
		return model.NALogical
	}
	return compared(op, cmp.Compare(x, y))
}

// compareDouble yields NA when either side is NA or NaN.
func compareDouble(op Op, x, y float64) int32 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return model.NALogical
	}
	return compared(op, cmp.Compare(x, y))
}

func compareString(op Op, x, y string) int32 {
	if x == model.NACharacter || y == model.NACharacter {
		return model.NALogical
	}
	return compared(op, strings.Compare(x, y))
}

// logic applies & or | in three-valued logic: FALSE & NA is FALSE and
// TRUE | NA is TRUE.
func logic(op Op, x, y int32) int32 {
	if op == OpAnd {
		switch {
		case x == model.False || y == model.False:
			return model.False
		case x == model.NALogical || y == model.NALogical:
			return model.NALogical
		default:
			return model.True
		}
	}
	switch {
	case x == model.True || y == model.True:
		return model.True
	case x == model.NALogical || y == model.NALogical:
		return model.NALogical
	default:
		return model.False
	}
}

func rawLogic(op Op, x, y byte) byte {
	if op == OpAnd {
		return x & y
	}
	return x | y
}

func negateInt(x int32) int32 {
	if x == model.NAInteger {
		return x
	}
	return -x
}

func negateDouble(x float64) float64 {
	if model.IsNADouble(x) {
		return x
	}
	return -x
}

func negateComplex(x complex128) complex128 {
	if model.IsNAComplex(x) {
		return x
	}
	return -x
}

func notLogical(x int32) int32 {
	switch x {
	case model.NALogical:
		return x
	case model.False:
		return model.True
	default:
		return model.False
	}
}

// roundDouble applies a rounding operator. Round uses half-to-even.
func roundDouble(op Op, x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	switch op {
	case OpFloor:
		return math.Floor(x)
	case OpCeiling:
		return math.Ceil(x)
	case OpRound:
		return math.RoundToEven(x)
	case OpTrunc:
		return math.Trunc(x)
	default:
		return x
	}
}

func roundComplex(x complex128) complex128 {
	if model.IsNAComplex(x) {
		return x
	}
	return complex(math.RoundToEven(real(x)), math.RoundToEven(imag(x)))
}
