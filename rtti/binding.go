package rtti

import "sync"

// Typed is the polymorphic accessor implemented by types that bind themselves
// to a descriptor. Calling TypeInfo through an interface value holding a
// derived type returns the derived type's descriptor, not the base's - that
// is what makes DerivesFrom checks meaningful over mixed collections.
//
// The association between an instance and its descriptor is fixed at
// construction and never changes. A base type implements TypeInfo returning
// its own package-level descriptor; a subtype that embeds the base shadows
// the method to return its own. A subtype that adds no new descriptor simply
// inherits the embedded implementation.
type Typed interface {
	TypeInfo() *Descriptor
}

// Implements reports whether v's most-derived descriptor derives from marker.
//
// This is the capability-marker form of dispatch: instead of attempting a
// type assertion and checking success, a consumer asks the instance for its
// descriptor and tests it against a well-known marker descriptor. Same
// semantics, no dependence on the language's type introspection.
func Implements(v Typed, marker *Descriptor) bool {
	if v == nil || marker == nil {
		return false
	}
	return v.TypeInfo().DerivesFrom(marker)
}

// Lazy builds a descriptor on first access.
//
// Package-level descriptor vars already initialize parents before children
// inside one package (Go orders them by dependency). Lazy covers the cases
// that ordering cannot: graphs assembled across packages or registered during
// an explicit init phase. The build function runs exactly once; because it
// can only obtain parents that are themselves constructible, the structural
// acyclicity guarantee carries over and no cycle detection is needed.
//
// The sync.Once also gives the first concurrent reader a happens-before edge
// on the finished descriptor, so Descriptor may be called from multiple
// goroutines.
type Lazy struct {
	once  sync.Once
	build func() *Descriptor
	d     *Descriptor
}

// NewLazy returns a Lazy that will construct its descriptor with build on
// first use. build must not be nil.
func NewLazy(build func() *Descriptor) *Lazy {
	if build == nil {
		panic("rtti: NewLazy requires a build function")
	}
	return &Lazy{build: build}
}

// Descriptor returns the lazily built descriptor, constructing it on the
// first call. Every call returns the same *Descriptor.
func (l *Lazy) Descriptor() *Descriptor {
	l.once.Do(func() {
		l.d = l.build()
		l.build = nil
	})
	return l.d
}
