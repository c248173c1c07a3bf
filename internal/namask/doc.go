// Package namask records the positions of missing values in a vector.
//
// A Mask is a 32-bit Roaring bitmap of element indices. Completeness re-scans
// build one to decide whether a vector is complete, and the same mask answers
// "which elements are NA" without a second pass. Masks are pooled; the
// typical re-scan borrows one with Get and returns it with Put.
//
// Masks address positions below 2^32. Scan reports ErrTooLong for longer
// vectors and callers fall back to a plain linear scan.
package namask
