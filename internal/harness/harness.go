package harness

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kindredlabs/kindred/rtti"
)

// Runner executes taxonomy scenarios.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner with default settings.
func NewRunner() *Runner {
	return &Runner{}
}

// WithLogger sets a custom logger for the runner.
// If not set, slog.Default() will be used.
func (r *Runner) WithLogger(logger *slog.Logger) *Runner {
	r.logger = logger
	return r
}

func (r *Runner) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Result captures one scenario run.
type Result struct {
	// Scenario is the scenario that was run.
	Scenario *Scenario

	// RunToken tags this run in logs.
	RunToken string

	// Registry holds the descriptors built for the scenario, in declaration
	// order.
	Registry *rtti.Registry

	// Queries holds the outcome of every query, in declaration order.
	Queries []QueryResult
}

// QueryResult is the outcome of a single ancestry query.
type QueryResult struct {
	Type        string
	DerivesFrom string
	Want        bool
	Got         bool
}

// OK reports whether the query produced the expected result.
func (q QueryResult) OK() bool {
	return q.Want == q.Got
}

// Run builds the scenario's descriptor graph in declaration order and
// executes its queries.
//
// Run trusts nothing about the scenario's origin: a hand-built scenario that
// skipped LoadScenario is re-checked for undefined names.
func (r *Runner) Run(scenario *Scenario) (*Result, error) {
	token := uuid.Must(uuid.NewV7()).String()
	logger := r.log()
	logger.Debug("running taxonomy scenario",
		slog.String("scenario", scenario.Name),
		slog.String("run_token", token))

	registry := rtti.NewRegistry()
	byName := make(map[string]*rtti.Descriptor, len(scenario.Types))
	for i, decl := range scenario.Types {
		if _, exists := byName[decl.Name]; exists {
			return nil, fmt.Errorf("types[%d]: duplicate type name %q", i, decl.Name)
		}
		parents := make([]*rtti.Descriptor, 0, len(decl.Parents))
		for _, name := range decl.Parents {
			parent, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("types[%d]: parent %q of %q is not declared earlier", i, name, decl.Name)
			}
			parents = append(parents, parent)
		}
		byName[decl.Name] = registry.NewType(decl.Name, parents...)
	}

	results := make([]QueryResult, 0, len(scenario.Queries))
	for i, q := range scenario.Queries {
		from, ok := byName[q.Type]
		if !ok {
			return nil, fmt.Errorf("queries[%d]: type %q is not declared", i, q.Type)
		}
		target, ok := byName[q.DerivesFrom]
		if !ok {
			return nil, fmt.Errorf("queries[%d]: derives_from %q is not declared", i, q.DerivesFrom)
		}

		got := from.DerivesFrom(target)
		logger.Debug("ancestry query",
			slog.String("run_token", token),
			slog.String("type", q.Type),
			slog.String("derives_from", q.DerivesFrom),
			slog.Bool("want", q.Expect),
			slog.Bool("got", got))

		results = append(results, QueryResult{
			Type:        q.Type,
			DerivesFrom: q.DerivesFrom,
			Want:        q.Expect,
			Got:         got,
		})
	}

	return &Result{
		Scenario: scenario,
		RunToken: token,
		Registry: registry,
		Queries:  results,
	}, nil
}

// QueryError reports the first query whose outcome differs from the
// scenario's expectation.
type QueryError struct {
	// Scenario names the failing scenario.
	Scenario string

	// Index is the query's position in the scenario.
	Index int

	// Type and DerivesFrom identify the query.
	Type        string
	DerivesFrom string

	// Want and Got are the expected and actual results.
	Want bool
	Got  bool
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("scenario %s: queries[%d]: %s.DerivesFrom(%s) = %t, want %t",
		e.Scenario, e.Index, e.Type, e.DerivesFrom, e.Got, e.Want)
}

// Verify returns a *QueryError for the first query whose result does not
// match its expectation, or nil if every query agreed.
func Verify(result *Result) error {
	for i, q := range result.Queries {
		if !q.OK() {
			return &QueryError{
				Scenario:    result.Scenario.Name,
				Index:       i,
				Type:        q.Type,
				DerivesFrom: q.DerivesFrom,
				Want:        q.Want,
				Got:         q.Got,
			}
		}
	}
	return nil
}
