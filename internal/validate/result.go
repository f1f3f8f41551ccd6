// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks the derived documents and the DOF figure against
// the authoritative design files. Checkers are configured at construction,
// never mutate their inputs, and collect every violation before reporting.
package validate

import "errors"

// Check names, also used as SARIF rule IDs and history keys.
const (
	CheckGeometry = "geometry"
	CheckLiterals = "literals"
	CheckDOF      = "dof"
)

// Result is the outcome of one check.
type Result struct {
	// Check names the check that produced the result.
	Check string `json:"check" yaml:"check"`

	// Passed is true only when Violations is empty.
	Passed bool `json:"passed" yaml:"passed"`

	// Summary holds human-readable report lines.
	Summary []string `json:"summary" yaml:"summary"`

	// Violations holds every *SchemaError or *ConsistencyError found.
	Violations []error `json:"-" yaml:"-"`
}

// Err joins all violations, or returns nil when the check passed.
func (r Result) Err() error {
	return errors.Join(r.Violations...)
}

// Messages returns the violation texts in order.
func (r Result) Messages() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Error()
	}
	return out
}

func newResult(check string, violations []error, summary ...string) Result {
	return Result{
		Check:      check,
		Passed:     len(violations) == 0,
		Summary:    summary,
		Violations: violations,
	}
}
