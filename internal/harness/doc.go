// Package harness provides conformance testing for taxonomy definitions.
//
// The harness loads a taxonomy scenario from YAML, builds the corresponding
// descriptor graph through an rtti.Registry, runs the declared ancestry
// queries, and compares the outcome against expectations or a golden
// snapshot.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: vehicles
//	description: "What this scenario validates"
//	types:
//	  - name: Vehicle
//	  - name: LandVehicle
//	    parents: [Vehicle]
//	queries:
//	  - type: LandVehicle
//	    derives_from: Vehicle
//	    expect: true
//
// Types are declared in construction order: a parent must appear earlier in
// the list than any type that references it. A forward or undefined parent
// reference is a load error - the file-level rendition of the in-memory rule
// that a descriptor can only reference already-constructed parents. Type
// names must be unique within a scenario so that parent references are
// unambiguous; that is a constraint of the file format, not of the descriptor
// graph itself.
//
// # Deterministic Testing
//
// A scenario run is fully deterministic: types are built in declaration
// order, queries run in declaration order, and the golden snapshot renders
// identity as list indices. Golden files live in testdata/golden and are
// refreshed with:
//
//	go test ./internal/harness -update
package harness
