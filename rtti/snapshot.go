package rtti

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// snapshotNode is one descriptor in a snapshot. Parents are indices into the
// snapshotted list, so identity is expressed by node position rather than by
// name - two same-named descriptors stay distinct.
type snapshotNode struct {
	Name    string `json:"name"`
	Parents []int  `json:"parents"`
}

// Snapshot renders a descriptor list as deterministic canonical JSON for
// golden tests and diagnostics.
//
// Names are NFC normalized at this boundary so that byte comparison is stable
// across differently composed but equal Unicode input. List order is
// preserved, parent references become indices into the list, and the output
// is compact with no trailing newline.
//
// This is not a serialization of type identity: nothing can be reconstructed
// into live descriptors from the bytes, and the non-diagnostic API never
// consumes them.
//
// Snapshot returns an error if the list contains the same descriptor twice or
// if any parent is not itself a member of the list.
func Snapshot(types []*Descriptor) ([]byte, error) {
	index := make(map[*Descriptor]int, len(types))
	for i, d := range types {
		if _, dup := index[d]; dup {
			return nil, fmt.Errorf("snapshot: descriptor %q (%s) listed twice", d.name, d.id)
		}
		index[d] = i
	}

	nodes := make([]snapshotNode, len(types))
	for i, d := range types {
		node := snapshotNode{
			Name:    norm.NFC.String(d.name),
			Parents: []int{},
		}
		for _, p := range d.parents {
			j, ok := index[p]
			if !ok {
				return nil, fmt.Errorf("snapshot: parent %q of %q is not in the snapshotted list", p.name, d.name)
			}
			node.Parents = append(node.Parents, j)
		}
		nodes[i] = node
	}

	return json.Marshal(nodes)
}
