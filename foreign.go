package statvec

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// NewForeign allocates a zero-filled foreign vector of kind k and length n
// through the runtime allocator. The bytes count against the memory limit
// until the vector (or the runtime) is closed.
func (rt *Runtime) NewForeign(k model.Kind, n int) (*vector.Foreign, error) {
	if rt.isClosed() {
		return nil, ErrClosed
	}
	var bytes int64
	if width, ok := vector.ForeignWidth(k); ok && n > 0 {
		bytes = int64(width) * int64(n)
	}
	var bh *budgetHandle
	f, err := vector.NewForeign(k, n, vector.AllocatorFunc(func(size int) (vector.Handle, error) {
		h, err := rt.allocate(size)
		if err != nil {
			return nil, err
		}
		bh = h
		return h, nil
	}))
	if err != nil {
		err = fmt.Errorf("foreign %s[%d]: %w", k, n, err)
	} else {
		bh.vec = f
	}
	rt.opts.metricsCollector.RecordForeign(k, bytes, err)
	rt.opts.logger.LogForeign(context.Background(), k, n, bytes, err)
	return f, err
}

// MemoryUsage returns the off-heap bytes held by open foreign vectors.
func (rt *Runtime) MemoryUsage() int64 { return rt.ctrl.MemoryUsage() }

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (rt *Runtime) PeakMemoryUsage() int64 { return rt.ctrl.PeakMemoryUsage() }

// MemoryLimit returns the configured limit in bytes (0 if unlimited).
func (rt *Runtime) MemoryLimit() int64 { return rt.ctrl.MemoryLimit() }

func (rt *Runtime) allocate(size int) (*budgetHandle, error) {
	bytes := int64(size)
	if err := rt.ctrl.AcquireMemory(bytes); err != nil {
		return nil, err
	}
	h, err := rt.opts.allocator.Allocate(size)
	if err != nil {
		rt.ctrl.ReleaseMemory(bytes)
		return nil, err
	}
	bh := &budgetHandle{Handle: h, rt: rt, size: bytes}
	rt.mu.Lock()
	rt.handles[bh] = struct{}{}
	rt.mu.Unlock()
	return bh, nil
}

// budgetHandle returns its bytes to the runtime budget on Close.
type budgetHandle struct {
	vector.Handle
	rt       *Runtime
	vec      *vector.Foreign
	size     int64
	released atomic.Bool
}

func (h *budgetHandle) Close() error {
	if h.released.Swap(true) {
		return nil
	}
	err := h.Handle.Close()
	h.rt.ctrl.ReleaseMemory(h.size)
	h.rt.mu.Lock()
	delete(h.rt.handles, h)
	h.rt.mu.Unlock()
	return err
}
