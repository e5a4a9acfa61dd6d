package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// runSnapshot is the canonical rendering of one scenario run. The taxonomy
// comes from rtti.Snapshot, so identity is expressed as list indices and
// names are NFC normalized; query outcomes follow in declaration order.
type runSnapshot struct {
	Scenario string          `json:"scenario"`
	Types    json.RawMessage `json:"types"`
	Queries  []querySnapshot `json:"queries"`
}

type querySnapshot struct {
	Type        string `json:"type"`
	DerivesFrom string `json:"derives_from"`
	Want        bool   `json:"want"`
	Got         bool   `json:"got"`
}

// RunWithGolden executes a scenario and compares its canonical snapshot
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can make further assertions. Test failure
// (via goldie) occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := NewRunner().Run(scenario)
	if err != nil {
		return nil, err
	}

	types, err := result.Registry.Snapshot()
	if err != nil {
		return nil, err
	}

	snapshot := runSnapshot{
		Scenario: scenario.Name,
		Types:    types,
		Queries:  make([]querySnapshot, len(result.Queries)),
	}
	for i, q := range result.Queries {
		snapshot.Queries[i] = querySnapshot{
			Type:        q.Type,
			DerivesFrom: q.DerivesFrom,
			Want:        q.Want,
			Got:         q.Got,
		}
	}

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
