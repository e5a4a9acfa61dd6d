// Package rtti implements an explicit runtime type-identity mechanism.
//
// The package models a class hierarchy as a graph of immutable descriptors.
// Each Descriptor is one node: a name plus an ordered list of references to
// already-constructed parent descriptors. DerivesFrom answers "is this type a
// descendant of that type" by walking parent edges, which handles single
// inheritance, multiple inheritance, and diamond (shared-ancestor) shapes
// without any help from the language's own reflection.
//
// IDENTITY:
//
// Two descriptors are the same type iff they are the same *Descriptor value.
// Name equality is NOT type equality - two distinct descriptors may share a
// name, and the package never deduplicates by name. The per-instance ID tag
// exists so that same-named descriptors stay distinguishable in diagnostics.
//
// CONSTRUCTION ORDER:
//
// The parent graph is acyclic by construction: a descriptor can only reference
// parents that already exist as values, so a back-edge is unrepresentable.
// For statically bound types, package-level descriptor vars get the required
// parents-before-children ordering from Go's dependency-ordered package
// initialization. For graphs assembled across packages, Lazy provides
// initialize-on-first-use construction with the same structural guarantee.
//
// CONCURRENCY:
//
// Descriptors are immutable after construction. The intended model is a
// single-threaded construction phase followed by an unbounded read-only query
// phase; concurrent DerivesFrom/ClassName calls are safe without locks once
// construction has completed with a happens-before edge to the readers
// (package init and Lazy both provide one). Registry mutation belongs to the
// construction phase only.
package rtti
