package rtti

// Registry collects the descriptors of one taxonomy in registration order.
//
// It exists for enumeration and snapshotting - handing a whole taxonomy to
// diagnostics or golden tests at once. It is deliberately not a name-lookup
// table: every descriptor a caller holds is by definition constructed and
// queryable, so there is no "not found" concept, and names are not unique to
// begin with.
//
// A registry is append-only and, like descriptor construction generally,
// belongs to the single-threaded construction phase. After construction
// completes it is safe to read from any number of goroutines.
type Registry struct {
	types []*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewType constructs a descriptor through the registry and records it.
// Parents must already be constructed; they need not have been built through
// this registry, but Snapshot requires every parent to be a member.
func (r *Registry) NewType(name string, parents ...*Descriptor) *Descriptor {
	d := NewDescriptor(name, parents...)
	r.types = append(r.types, d)
	return d
}

// Types returns the registered descriptors in registration order.
// The returned slice is a copy.
func (r *Registry) Types() []*Descriptor {
	if len(r.types) == 0 {
		return nil
	}
	out := make([]*Descriptor, len(r.types))
	copy(out, r.types)
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.types)
}

// Snapshot renders the registered taxonomy as canonical bytes.
// See Snapshot for the format.
func (r *Registry) Snapshot() ([]byte, error) {
	return Snapshot(r.types)
}
