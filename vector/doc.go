// Package vector implements the vector value model.
//
// A vector is a fixed-length, 0-indexed sequence of elements of one kind
// (see package model). Four interchangeable representations exist:
//
//   - Dense: an owned Go slice (Dense[T], or List for generic lists)
//   - Sequence: a lazy arithmetic progression (start, stride, length),
//     Integer or Double only; no buffer exists
//   - Scalar: one boxed element, length 1
//   - Foreign: elements stored outside the Go heap behind a Handle
//
// # Ownership
//
// The buffer variants (Dense, List and Foreign) carry a reference count that
// decides whether a buffer may be reused in place:
//
//	Temporary        refcount 0, just produced, free to mutate or alias
//	Owned            refcount 1
//	Shared           refcount >= 2, copy before mutating
//	SharedPermanent  never counted, always Shared
//
// Counts are plain integers. A vector is owned by one evaluation at a time;
// nothing in this package synchronizes.
//
// # Completeness
//
// Every vector caches whether it is free of missing values. Writing an NA
// clears the flag; only Rescan can set it again.
//
// # Attributes
//
// Buffer variants carry a name → value map. Copies are shallow. Attributes
// can only change while the vector is not Shared.
package vector
