package vector

import "github.com/hupe1980/statvec/model"

// SharingState classifies how many holders a buffer has.
type SharingState uint8

const (
	// Temporary buffers have no holders and may be reused in place.
	Temporary SharingState = iota
	// Owned buffers have exactly one holder.
	Owned
	// Shared buffers have two or more holders and must be copied before mutation.
	Shared
	// SharedPermanent buffers are never counted and stay Shared for life.
	SharedPermanent
)

// String returns the state name.
func (s SharingState) String() string {
	switch s {
	case Temporary:
		return "temporary"
	case Owned:
		return "owned"
	case Shared:
		return "shared"
	case SharedPermanent:
		return "shared-permanent"
	default:
		return "unknown"
	}
}

// Ownership is the reference-count protocol of buffer vectors.
type Ownership interface {
	IsTemporary() bool
	IsShared() bool
	IsSharedPermanent() bool
	IncRefCount()
	DecRefCount()
	MarkShared()
	RefCount() int
	State() SharingState
}

// ownership is embedded by the buffer variants.
type ownership struct {
	refs      int
	permanent bool
}

// IsTemporary reports whether the buffer has no holders.
func (o *ownership) IsTemporary() bool { return !o.permanent && o.refs == 0 }

// IsShared reports whether the buffer has two or more holders, or is permanent.
func (o *ownership) IsShared() bool { return o.permanent || o.refs > 1 }

// IsSharedPermanent reports whether MarkShared was called.
func (o *ownership) IsSharedPermanent() bool { return o.permanent }

// IncRefCount adds a holder. It is a no-op on permanent buffers.
func (o *ownership) IncRefCount() {
	if o.permanent {
		return
	}
	o.refs++
}

// DecRefCount removes a holder. It is a no-op on permanent buffers and
// panics when the count would go negative.
func (o *ownership) DecRefCount() {
	if o.permanent {
		return
	}
	if o.refs == 0 {
		panic("vector: reference count underflow")
	}
	o.refs--
}

// MarkShared moves the buffer to SharedPermanent.
func (o *ownership) MarkShared() { o.permanent = true }

// RefCount returns the current count. Permanent buffers report their count at
// the time MarkShared was called.
func (o *ownership) RefCount() int { return o.refs }

// State returns the sharing classification.
func (o *ownership) State() SharingState {
	switch {
	case o.permanent:
		return SharedPermanent
	case o.refs == 0:
		return Temporary
	case o.refs == 1:
		return Owned
	default:
		return Shared
	}
}

// IsShareableAs reports whether v may be reused in place as a result of kind k:
// it must be a Temporary buffer of exactly kind k.
func IsShareableAs(v model.Value, k model.Kind) bool {
	b, ok := v.(Buffer)
	if !ok {
		return false
	}
	return b.Kind() == k && b.IsTemporary()
}
