package vector

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/statvec/internal/conv"
	"github.com/hupe1980/statvec/internal/mmap"
	"github.com/hupe1980/statvec/model"
)

// ErrUnaligned is returned when a foreign buffer is not aligned for its element type.
var ErrUnaligned = errors.New("vector: unaligned foreign buffer")

// Handle is an opaque reference to memory outside the vector's control.
// Handles that also implement ReadOnly() bool reporting true reject writes.
type Handle interface {
	Bytes() []byte
	Close() error
}

type readOnlyHandle interface {
	ReadOnly() bool
}

// Allocator obtains handles for new foreign vectors.
type Allocator interface {
	Allocate(size int) (Handle, error)
}

// AllocatorFunc adapts a function to Allocator.
type AllocatorFunc func(size int) (Handle, error)

// Allocate calls f.
func (f AllocatorFunc) Allocate(size int) (Handle, error) { return f(size) }

// MapAllocator allocates zero-filled anonymous memory mappings. The
// mappings are advised for sequential access.
type MapAllocator struct{}

// Allocate maps size bytes.
func (MapAllocator) Allocate(size int) (Handle, error) {
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	if err := m.Advise(mmap.AccessSequential); err != nil {
		_ = m.Close()
		return nil, err
	}
	return m, nil
}

// HeapAllocator returns an allocator backed by word-aligned Go memory.
func HeapAllocator() Allocator {
	return AllocatorFunc(func(size int) (Handle, error) {
		if size <= 0 {
			return NewSliceHandle(nil, false), nil
		}
		words := make([]uint64, (size+7)/8)
		b := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size) //nolint:gosec // words covers size bytes
		return NewSliceHandle(b, false), nil
	})
}

// SliceHandle is a Handle over caller-owned bytes.
type SliceHandle struct {
	b        []byte
	readOnly bool
}

// NewSliceHandle wraps b. Close does not release anything.
func NewSliceHandle(b []byte, readOnly bool) *SliceHandle {
	return &SliceHandle{b: b, readOnly: readOnly}
}

// Bytes returns the wrapped bytes.
func (h *SliceHandle) Bytes() []byte { return h.b }

// Close drops the reference to the bytes.
func (h *SliceHandle) Close() error {
	h.b = nil
	return nil
}

// ReadOnly reports whether writes are rejected.
func (h *SliceHandle) ReadOnly() bool { return h.readOnly }

// ForeignWidth returns the element width in bytes of kind k in foreign
// storage. Character and List cannot be stored foreign.
func ForeignWidth(k model.Kind) (int, bool) {
	switch k {
	case model.KindLogical, model.KindInteger:
		return 4, true
	case model.KindDouble:
		return 8, true
	case model.KindComplex:
		return 16, true
	case model.KindRaw:
		return 1, true
	default:
		return 0, false
	}
}

// Foreign is a fixed-width atomic vector whose elements live behind a Handle.
type Foreign struct {
	ownership
	attrHolder

	kind     model.Kind
	h        Handle
	length   int
	readOnly bool
	complete bool
	closed   bool
}

// NewForeign allocates a zero-filled foreign vector of kind k and length n.
// A nil allocator uses MapAllocator.
func NewForeign(k model.Kind, n int, alloc Allocator) (*Foreign, error) {
	width, ok := ForeignWidth(k)
	if !ok {
		return nil, fmt.Errorf("%w: foreign %s", ErrUnsupportedKind, k)
	}
	size, err := conv.ByteSize(n, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrInvalidLength, n, err)
	}
	if alloc == nil {
		alloc = MapAllocator{}
	}
	h, err := alloc.Allocate(size)
	if err != nil {
		return nil, err
	}
	if len(h.Bytes()) < size {
		_ = h.Close()
		return nil, fmt.Errorf("%w: allocator returned %d bytes, want %d", ErrInvalidLength, len(h.Bytes()), size)
	}
	f := &Foreign{kind: k, h: h, length: n, complete: true}
	if ro, ok := h.(readOnlyHandle); ok {
		f.readOnly = ro.ReadOnly()
	}
	return f, nil
}

// WrapForeign adopts an existing handle as a vector of kind k. The length is
// the handle size divided by the element width. Completeness is computed by a scan.
func WrapForeign(k model.Kind, h Handle) (*Foreign, error) {
	width, ok := ForeignWidth(k)
	if !ok {
		return nil, fmt.Errorf("%w: foreign %s", ErrUnsupportedKind, k)
	}
	b := h.Bytes()
	if len(b)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidLength, len(b), width)
	}
	if len(b) > 0 {
		align := uintptr(min(width, 8))
		if ptr := uintptr(unsafe.Pointer(&b[0])); ptr%align != 0 {
			return nil, fmt.Errorf("%w: %s buffer at 0x%x", ErrUnaligned, k, ptr)
		}
	}
	f := &Foreign{kind: k, h: h, length: len(b) / width}
	if ro, ok := h.(readOnlyHandle); ok {
		f.readOnly = ro.ReadOnly()
	}
	f.Rescan()
	return f, nil
}

// ForeignView returns a typed view over the foreign elements. The view is
// invalid after Close.
func ForeignView[T Atomic](f *Foreign) ([]T, error) {
	if err := CheckStorage[T](f.kind); err != nil {
		return nil, err
	}
	if f.closed {
		return nil, ErrClosed
	}
	if f.length == 0 {
		return []T{}, nil
	}
	b := f.h.Bytes()
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), f.length), nil //nolint:gosec // bounded by construction
}

// Kind returns the element kind.
func (f *Foreign) Kind() model.Kind { return f.kind }

// Len returns the number of elements.
func (f *Foreign) Len() int { return f.length }

// Representation returns RepForeign.
func (f *Foreign) Representation() Representation { return RepForeign }

// IsComplete reports whether the vector is known to hold no NA.
func (f *Foreign) IsComplete() bool { return f.complete }

// ReadOnly reports whether writes are rejected.
func (f *Foreign) ReadOnly() bool { return f.readOnly }

// Closed reports whether Close was called.
func (f *Foreign) Closed() bool { return f.closed }

// Handle returns the underlying handle.
func (f *Foreign) Handle() Handle { return f.h }

// Close releases the handle. It is idempotent.
func (f *Foreign) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.h.Close()
}

// Elt returns element i boxed. It panics with ErrClosed after Close.
func (f *Foreign) Elt(i int) model.Elem {
	if f.closed {
		panic(ErrClosed)
	}
	checkIndex(i, f.length)
	switch f.kind {
	case model.KindLogical, model.KindInteger:
		return Box(f.kind, loadForeign[int32](f, i))
	case model.KindDouble:
		return model.Float(loadForeign[float64](f, i))
	case model.KindComplex:
		return model.Complex128(loadForeign[complex128](f, i))
	default:
		return model.Byte(loadForeign[byte](f, i))
	}
}

// SetElt stores e, coerced to the vector's kind, at position i.
func (f *Foreign) SetElt(i int, e model.Elem) error {
	if err := f.checkWritable(); err != nil {
		return err
	}
	checkIndex(i, f.length)
	switch f.kind {
	case model.KindLogical, model.KindInteger:
		x, _ := Unbox[int32](f.kind, e)
		storeForeign(f, i, x)
	case model.KindDouble:
		x, _ := e.AsDouble()
		storeForeign(f, i, x)
	case model.KindComplex:
		x, _ := e.AsComplex()
		storeForeign(f, i, x)
	default:
		x, _ := e.AsRaw()
		storeForeign(f, i, x)
	}
	return nil
}

// CheckWritable reports why the vector cannot be written, if it cannot.
func (f *Foreign) CheckWritable() error { return f.checkWritable() }

func (f *Foreign) checkWritable() error {
	switch {
	case f.closed:
		return ErrClosed
	case f.readOnly:
		return ErrReadOnly
	case f.IsShared():
		return ErrShared
	}
	return nil
}

// SetAttribute sets or, with a nil value, removes an attribute.
func (f *Foreign) SetAttribute(name string, v model.Value) error {
	return f.setAttribute(&f.ownership, name, v)
}

// SetAttributes replaces all attributes.
func (f *Foreign) SetAttributes(a Attributes) error {
	return f.setAttributes(&f.ownership, a)
}

// MarkIncomplete clears the completeness flag.
func (f *Foreign) MarkIncomplete() { f.complete = false }

// Rescan recomputes the completeness flag. A closed vector keeps its flag.
func (f *Foreign) Rescan() bool {
	if f.closed {
		return f.complete
	}
	switch f.kind {
	case model.KindLogical, model.KindInteger:
		f.complete = scanComplete(f.length, func(i int) bool { return loadForeign[int32](f, i) == model.NAInteger })
	case model.KindDouble:
		f.complete = scanComplete(f.length, func(i int) bool { return model.IsNADouble(loadForeign[float64](f, i)) })
	case model.KindComplex:
		f.complete = scanComplete(f.length, func(i int) bool { return model.IsNAComplex(loadForeign[complex128](f, i)) })
	default:
		f.complete = true
	}
	return f.complete
}

// String formats the vector for display.
func (f *Foreign) String() string {
	if f.closed {
		return fmt.Sprintf("<closed foreign %s>", f.kind)
	}
	return Format(f)
}

func loadForeign[T int32 | float64 | complex128 | byte](f *Foreign, i int) T {
	b := f.h.Bytes()
	var zero T
	return *(*T)(unsafe.Pointer(&b[uintptr(i)*unsafe.Sizeof(zero)])) //nolint:gosec // index checked by caller
}

func storeForeign[T int32 | float64 | complex128 | byte](f *Foreign, i int, x T) {
	b := f.h.Bytes()
	*(*T)(unsafe.Pointer(&b[uintptr(i)*unsafe.Sizeof(x)])) = x //nolint:gosec // index checked by caller
	if IsNA(x) {
		f.complete = false
	}
}
