// Package testutil provides deterministic descriptor graphs shared by tests
// and benchmarks.
package testutil

import (
	"fmt"

	"github.com/kindredlabs/kindred/rtti"
)

// Chain builds a linear hierarchy of n descriptors, root first. Each
// descriptor after the first has the previous one as its only parent.
func Chain(n int) []*rtti.Descriptor {
	out := make([]*rtti.Descriptor, n)
	for i := range out {
		if i == 0 {
			out[i] = rtti.NewDescriptor(fmt.Sprintf("Gen%d", i))
		} else {
			out[i] = rtti.NewDescriptor(fmt.Sprintf("Gen%d", i), out[i-1])
		}
	}
	return out
}

// DiamondStack builds depth diamonds stacked on top of each other between a
// single root and the returned leaf:
//
//	Root <- L0,R0 <- Join0 <- L1,R1 <- Join1 <- ...
//
// The number of distinct leaf-to-root paths doubles with every diamond, which
// makes this the pathological shape for unmemoized traversal.
func DiamondStack(depth int) (leaf, root *rtti.Descriptor) {
	root = rtti.NewDescriptor("Root")
	cur := root
	for i := 0; i < depth; i++ {
		left := rtti.NewDescriptor(fmt.Sprintf("L%d", i), cur)
		right := rtti.NewDescriptor(fmt.Sprintf("R%d", i), cur)
		cur = rtti.NewDescriptor(fmt.Sprintf("Join%d", i), left, right)
	}
	return cur, root
}

// StaffTaxonomy is the classful reference hierarchy.
type StaffTaxonomy struct {
	StaffMember       *rtti.Descriptor
	Librarian         *rtti.Descriptor
	Teacher           *rtti.Descriptor
	TeachingLibrarian *rtti.Descriptor
	Sailboat          *rtti.Descriptor
}

// Staff builds a fresh staff-room taxonomy: Librarian and Teacher derive from
// StaffMember, TeachingLibrarian derives from both, Sailboat is unrelated.
func Staff() StaffTaxonomy {
	staffMember := rtti.NewDescriptor("StaffMember")
	librarian := rtti.NewDescriptor("Librarian", staffMember)
	teacher := rtti.NewDescriptor("Teacher", staffMember)
	return StaffTaxonomy{
		StaffMember:       staffMember,
		Librarian:         librarian,
		Teacher:           teacher,
		TeachingLibrarian: rtti.NewDescriptor("TeachingLibrarian", teacher, librarian),
		Sailboat:          rtti.NewDescriptor("Sailboat"),
	}
}

// VehicleTaxonomy is the classless reference hierarchy.
type VehicleTaxonomy struct {
	Vehicle           *rtti.Descriptor
	LandVehicle       *rtti.Descriptor
	WaterVehicle      *rtti.Descriptor
	AmphibiousVehicle *rtti.Descriptor
	Fruit             *rtti.Descriptor
}

// Vehicles builds a fresh vehicle taxonomy: LandVehicle and WaterVehicle
// derive from Vehicle, AmphibiousVehicle derives from both, Fruit is
// unrelated.
func Vehicles() VehicleTaxonomy {
	vehicle := rtti.NewDescriptor("Vehicle")
	land := rtti.NewDescriptor("LandVehicle", vehicle)
	water := rtti.NewDescriptor("WaterVehicle", vehicle)
	return VehicleTaxonomy{
		Vehicle:           vehicle,
		LandVehicle:       land,
		WaterVehicle:      water,
		AmphibiousVehicle: rtti.NewDescriptor("AmphibiousVehicle", land, water),
		Fruit:             rtti.NewDescriptor("Fruit"),
	}
}
