package vector

import (
	"maps"
	"slices"

	"github.com/hupe1980/statvec/model"
)

// Attributes maps attribute names to values. Values are held by reference.
type Attributes map[string]model.Value

// Clone returns a shallow copy, or nil for an empty map.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	return maps.Clone(a)
}

// Get returns the named attribute.
func (a Attributes) Get(name string) (model.Value, bool) {
	v, ok := a[name]
	return v, ok
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// MergeAttributes returns a shallow union of a and b. On a key collision the
// value from b wins. The result is nil when both are empty.
func MergeAttributes(a, b Attributes) Attributes {
	if len(a) == 0 {
		return b.Clone()
	}
	if len(b) == 0 {
		return a.Clone()
	}
	out := make(Attributes, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// attrHolder is embedded by the buffer variants.
type attrHolder struct {
	attrs Attributes
}

// Attributes returns the attribute map, or nil.
func (h *attrHolder) Attributes() Attributes { return h.attrs }

func (h *attrHolder) setAttribute(o *ownership, name string, v model.Value) error {
	if o.IsShared() {
		return ErrShared
	}
	if v == nil {
		delete(h.attrs, name)
		if len(h.attrs) == 0 {
			h.attrs = nil
		}
		return nil
	}
	if h.attrs == nil {
		h.attrs = make(Attributes, 1)
	}
	h.attrs[name] = v
	return nil
}

func (h *attrHolder) setAttributes(o *ownership, a Attributes) error {
	if o.IsShared() {
		return ErrShared
	}
	h.attrs = a.Clone()
	return nil
}
