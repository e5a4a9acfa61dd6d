package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a taxonomy conformance scenario: an ordered list of type
// declarations and the ancestry queries to run against the resulting graph.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Types declares the taxonomy in construction order, parents first.
	Types []TypeDecl `yaml:"types"`

	// Queries lists the ancestry checks to run, in order.
	Queries []Query `yaml:"queries"`
}

// TypeDecl declares one descriptor.
type TypeDecl struct {
	// Name is the descriptor's class name. Unique within a scenario.
	Name string `yaml:"name"`

	// Parents names the direct parents in declaration order. Each must be
	// declared earlier in the types list. Empty for root types.
	Parents []string `yaml:"parents,omitempty"`
}

// Query is a single derives-from check with its expected outcome.
type Query struct {
	// Type names the descriptor the query starts from.
	Type string `yaml:"type"`

	// DerivesFrom names the candidate ancestor.
	DerivesFrom string `yaml:"derives_from"`

	// Expect is the expected boolean result.
	Expect bool `yaml:"expect"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields (typos), or violates the construction-order rules.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "querys:" vs "queries:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks required fields and the parents-before-children
// ordering. Everything here is representable in a file but not through the
// rtti API, which is exactly why the harness validates and the core does not.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Types) == 0 {
		return fmt.Errorf("types list is required and must be non-empty")
	}

	if len(s.Queries) == 0 {
		return fmt.Errorf("queries list is required and must be non-empty")
	}

	declared := make(map[string]bool, len(s.Types))
	for i, decl := range s.Types {
		if decl.Name == "" {
			return fmt.Errorf("types[%d]: name is required", i)
		}
		if declared[decl.Name] {
			return fmt.Errorf("types[%d]: duplicate type name %q", i, decl.Name)
		}
		for _, parent := range decl.Parents {
			if !declared[parent] {
				return fmt.Errorf("types[%d]: parent %q of %q is not declared earlier (parents must precede children)", i, parent, decl.Name)
			}
		}
		declared[decl.Name] = true
	}

	for i, q := range s.Queries {
		if q.Type == "" {
			return fmt.Errorf("queries[%d]: type is required", i)
		}
		if q.DerivesFrom == "" {
			return fmt.Errorf("queries[%d]: derives_from is required", i)
		}
		if !declared[q.Type] {
			return fmt.Errorf("queries[%d]: type %q is not declared", i, q.Type)
		}
		if !declared[q.DerivesFrom] {
			return fmt.Errorf("queries[%d]: derives_from %q is not declared", i, q.DerivesFrom)
		}
	}

	return nil
}
