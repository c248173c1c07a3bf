// Package access provides element-access capabilities over vectors.
//
// A Strategy knows how to read and write one (representation, kind) pair,
// identified by a Key. Opening a vector through a strategy yields an Access
// bound to that vector: typed positional getters and setters, on-demand
// conversion getters, NA detection and a Cursor for sequential scans.
//
// Two kinds of strategy exist:
//
//   - specialized strategies, one per representation and storage type, that
//     read the backing storage directly and only accept their exact
//     representation and kind
//   - the Generic strategy, which accepts any vector.Vector through boxed
//     Elt/SetElt calls
//
// All conversions go through package model, so both strategies produce the
// same values and the same warning conditions.
//
// A Cache sits at a call site and installs specialized strategies the first
// time a (representation, kind) pair is seen, up to a small bound. Beyond the
// bound, and for representations it does not know, it falls back to Generic.
//
// # Environment
//
// Setting STATVEC_ACCESS=generic makes every Cache created afterwards use the
// Generic strategy. This is meant for differential testing.
package access
