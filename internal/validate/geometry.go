// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"github.com/pdiddy/megadroid/pkg/types"
)

// GeometryChecker verifies that a fixed, ordered list of key paths resolves
// in a geometry tree.
type GeometryChecker struct {
	required []types.KeyPath
}

// NewGeometryChecker builds a checker from dotted paths. An empty list
// selects types.DefaultRequiredPaths.
func NewGeometryChecker(paths []string) *GeometryChecker {
	if len(paths) == 0 {
		paths = types.DefaultRequiredPaths
	}
	required := make([]types.KeyPath, 0, len(paths))
	for _, p := range paths {
		if kp := types.ParseKeyPath(p); len(kp) > 0 {
			required = append(required, kp)
		}
	}
	return &GeometryChecker{required: required}
}

// Required returns the configured key paths.
func (c *GeometryChecker) Required() []types.KeyPath {
	return c.required
}

// Check records every required path that does not resolve. Resolution stops
// at the first missing key of a path and moves on to the next path.
func (c *GeometryChecker) Check(tree types.GeometryTree) Result {
	var violations []error
	for _, path := range c.required {
		if _, ok := tree.Lookup(path); !ok {
			violations = append(violations, NewSchemaError(path))
		}
	}

	if len(violations) > 0 {
		return newResult(CheckGeometry, violations, "Geometry validation FAILED:")
	}
	return newResult(CheckGeometry, nil, "Geometry validation PASSED.")
}
