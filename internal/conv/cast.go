package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every range error returned from this package.
var ErrOverflow = errors.New("integer overflow")

// ErrNotFinite is returned when a NaN or infinite float is narrowed to an integer.
var ErrNotFinite = errors.New("value is not finite")

// MinInt32 is the smallest representable vector integer. math.MinInt32 is reserved.
const MinInt32 = math.MinInt32 + 1

// Int64ToInt32 narrows v to the vector integer range.
func Int64ToInt32(v int64) (int32, error) {
	if v < MinInt32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to int32 (too small)", ErrOverflow, v)
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to int32 (too large)", ErrOverflow, v)
	}
	return int32(v), nil
}

// IntToInt32 narrows a Go int to the vector integer range.
func IntToInt32(v int) (int32, error) {
	return Int64ToInt32(int64(v))
}

// Float64ToInt32 truncates x toward zero and narrows it to the vector integer range.
func Float64ToInt32(x float64) (int32, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, x)
	}
	t := math.Trunc(x)
	if t < MinInt32 || t > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v cannot be converted to int32", ErrOverflow, x)
	}
	return int32(t), nil
}

// Int32ToByte narrows v to a raw byte.
func Int32ToByte(v int32) (byte, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %d cannot be converted to byte", ErrOverflow, v)
	}
	return byte(v), nil
}

// Float64ToByte truncates x toward zero and narrows it to a raw byte.
func Float64ToByte(x float64) (byte, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotFinite, x)
	}
	t := math.Trunc(x)
	if t < 0 || t > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %v cannot be converted to byte", ErrOverflow, x)
	}
	return byte(t), nil
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint64 (negative)", ErrOverflow, v)
	}
	return uint64(v), nil
}

// ByteSize returns n*width as an int, failing if n is negative or the product overflows.
func ByteSize(n, width int) (int, error) {
	if n < 0 || width <= 0 {
		return 0, fmt.Errorf("%w: invalid size %d x %d", ErrOverflow, n, width)
	}
	if n > math.MaxInt/width {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrOverflow, n, width)
	}
	return n * width, nil
}
