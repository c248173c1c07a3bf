// Package resource implements the off-heap memory budget.
//
// Foreign-backed vectors allocate memory the garbage collector cannot see.
// A Controller tracks those bytes and optionally enforces a hard limit with a
// weighted semaphore. Acquisition is non-blocking: when the limit would be
// exceeded, AcquireMemory fails immediately with ErrMemoryLimitExceeded and
// the caller decides what to do.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(n); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(n)
//
// # Thread Safety
//
// A single Controller may be shared by several independent runtimes, so all
// methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
