// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"

	"github.com/pdiddy/megadroid/internal/dof"
	"github.com/pdiddy/megadroid/pkg/types"
)

// DOFChecker compares the aggregated DOF of one variant against an
// expected constant. There is no soft mode: any difference fails.
type DOFChecker struct {
	variant    string
	expected   int
	classifier dof.Classifier
}

// NewDOFChecker builds a checker from cfg. An empty bilateral list selects
// dof.DefaultBilateral.
func NewDOFChecker(cfg types.DOFConfig) *DOFChecker {
	return &DOFChecker{
		variant:    cfg.Variant,
		expected:   cfg.Expected,
		classifier: dof.NewClassifier(cfg.BilateralLocations),
	}
}

// Report aggregates joints for the configured variant.
func (c *DOFChecker) Report(joints []types.Joint) dof.Report {
	return c.classifier.Aggregate(joints, c.variant)
}

// Check aggregates joints and compares the total with the expected value.
func (c *DOFChecker) Check(joints []types.Joint) Result {
	r := c.Report(joints)

	summary := []string{
		fmt.Sprintf("%s actuated bilateral joints per side: %d", c.variant, len(r.Bilateral)),
		fmt.Sprintf("%s actuated torso joints: %d", c.variant, len(r.Singular)),
		fmt.Sprintf("%s total actuated DOF: %d", c.variant, r.Total),
	}
	if len(r.Ignored) > 0 {
		summary = append(summary, fmt.Sprintf("%s joints without DOF weight: %v", c.variant, dof.Names(r.Ignored)))
	}

	if r.Total != c.expected {
		return newResult(CheckDOF, []error{NewDOFMismatch(c.variant, c.expected, r.Total)}, summary...)
	}
	summary = append(summary, fmt.Sprintf("OK: %s DOF count matches expected %d.", c.variant, c.expected))
	return newResult(CheckDOF, nil, summary...)
}
