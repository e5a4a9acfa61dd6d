package rtti

import (
	"github.com/google/uuid"
)

// Descriptor is an immutable node in the type-identity graph: a name plus an
// ordered list of references to the direct parent types.
//
// A descriptor with zero parents is a root type. The parent list always names
// the immediate parents exactly as declared - it is never deduplicated or
// flattened, even when parents share a common ancestor (a diamond). The
// shared ancestor stays a single node referenced through both paths.
//
// Identity is pointer identity. Descriptors are created once and never
// mutated; callers are expected to keep a descriptor alive for as long as any
// query might touch it.
type Descriptor struct {
	name    string
	parents []*Descriptor
	id      string
}

// NewDescriptor constructs a descriptor with the given name and direct
// parents, in declaration order. Parents must already be constructed, which
// is what makes cycles unrepresentable.
//
// Construction never fails. An empty name is a caller contract violation and
// is not detected here.
func NewDescriptor(name string, parents ...*Descriptor) *Descriptor {
	d := &Descriptor{
		name: name,
		id:   uuid.Must(uuid.NewV7()).String(),
	}
	if len(parents) > 0 {
		d.parents = make([]*Descriptor, len(parents))
		copy(d.parents, parents)
	}
	return d
}

// ClassName returns the stored identifier verbatim.
func (d *Descriptor) ClassName() string {
	return d.name
}

// Parents returns the direct parents in declaration order.
// The returned slice is a copy; mutating it does not affect the descriptor.
func (d *Descriptor) Parents() []*Descriptor {
	if len(d.parents) == 0 {
		return nil
	}
	out := make([]*Descriptor, len(d.parents))
	copy(out, d.parents)
	return out
}

// ID returns the per-instance tag assigned at construction.
//
// The tag is a UUIDv7 and exists purely for diagnostics: names are not
// unique, so logs and dumps need a way to tell two same-named descriptors
// apart. It plays no role in ancestry queries.
func (d *Descriptor) ID() string {
	return d.id
}

// String returns the class name.
func (d *Descriptor) String() string {
	return d.name
}

// DerivesFrom reports whether d is other or a descendant of other.
//
// The check is reflexive: a descriptor derives from itself. Otherwise the
// parents are tried depth-first in declaration order, short-circuiting on the
// first match. Siblings under a common parent do not derive from one another,
// and a nil other never matches.
//
// The traversal is deliberately unmemoized, matching the reference behavior:
// under repeated diamond inheritance a shared ancestor is visited once per
// distinct path, so cost grows with path multiplicity. The boolean result is
// unaffected; callers with pathological graphs can use Ancestors to build a
// membership set instead.
func (d *Descriptor) DerivesFrom(other *Descriptor) bool {
	if d == other {
		return true
	}
	for _, p := range d.parents {
		if p.DerivesFrom(other) {
			return true
		}
	}
	return false
}

// Ancestors returns every descriptor d derives from, deduplicated: d itself
// first, then the remaining ancestors in depth-first preorder over the parent
// lists. A shared diamond ancestor appears exactly once.
//
// For any descriptor a, d.DerivesFrom(a) is true iff a is in the returned
// slice. This is the memoized counterpart to DerivesFrom and backs Snapshot.
func (d *Descriptor) Ancestors() []*Descriptor {
	seen := make(map[*Descriptor]bool)
	var out []*Descriptor
	var walk func(*Descriptor)
	walk = func(n *Descriptor) {
		if seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
		for _, p := range n.parents {
			walk(p)
		}
	}
	walk(d)
	return out
}
