package engine

import (
	"maps"
	"slices"
)

// Registry maps operator symbols to operators.
type Registry struct {
	binary map[string]Op
	unary  map[string]Op
}

// NewRegistry returns a registry holding every defined operator.
func NewRegistry() *Registry {
	r := &Registry{
		binary: make(map[string]Op),
		unary:  make(map[string]Op),
	}
	for o := opInvalid + 1; o < numOps; o++ {
		if o.IsUnary() {
			r.unary[o.Symbol()] = o
		} else {
			r.binary[o.Symbol()] = o
		}
	}
	return r
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared registry of built-in operators.
func DefaultRegistry() *Registry { return defaultRegistry }

// Binary returns the binary operator with the given symbol.
func (r *Registry) Binary(symbol string) (Op, bool) {
	o, ok := r.binary[symbol]
	return o, ok
}

// Unary returns the unary operator with the given symbol.
func (r *Registry) Unary(symbol string) (Op, bool) {
	o, ok := r.unary[symbol]
	return o, ok
}

// BinarySymbols returns the binary symbols in sorted order.
func (r *Registry) BinarySymbols() []string {
	return slices.Sorted(maps.Keys(r.binary))
}

// UnarySymbols returns the unary symbols in sorted order.
func (r *Registry) UnarySymbols() []string {
	return slices.Sorted(maps.Keys(r.unary))
}
