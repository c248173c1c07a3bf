// Package mmap provides off-heap memory through anonymous mappings.
//
// # Overview
//
// Foreign-backed vectors keep their elements outside the Go heap. The memory
// is obtained from the operating system with an anonymous, private,
// read-write mapping and is invisible to the garbage collector. It must be
// released explicitly with Close.
//
// # Usage
//
//	m, err := mmap.MapAnon(n * 8)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes() // zero-filled, len == n*8
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close returns.
package mmap
