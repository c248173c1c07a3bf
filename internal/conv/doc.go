// Package conv provides checked numeric narrowing utilities.
//
// These functions perform bounds checking to prevent overflow/underflow when
// converting between Go's native widths and the fixed-width storage used by
// vectors (int32 integers, bytes for raw data, uint64 byte sizes for off-heap
// buffers).
//
// Use cases:
//   - Coercing doubles to integers and raws without silent wrap-around
//   - Detecting integer arithmetic overflow (computed in int64, narrowed here)
//   - Sizing off-heap allocations
//
// The integer range used by vectors excludes math.MinInt32, which is reserved
// as the missing-value sentinel. Callers map a returned error to NA.
package conv
