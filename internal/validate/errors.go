// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"

	"github.com/pdiddy/megadroid/pkg/types"
)

// SchemaError reports a required geometry key path that does not resolve.
type SchemaError struct {
	Path types.KeyPath
}

func (e *SchemaError) Error() string {
	return "Missing geometry path: " + e.Path.String()
}

// NewSchemaError creates a new schema error for path.
func NewSchemaError(path types.KeyPath) *SchemaError {
	return &SchemaError{Path: path}
}

// ConsistencyKind distinguishes the two consistency failures.
type ConsistencyKind string

const (
	// KindDOFMismatch is a computed DOF total that differs from the expected one.
	KindDOFMismatch ConsistencyKind = "dof-mismatch"

	// KindLiteral is a numeric length literal found in a rendered document.
	KindLiteral ConsistencyKind = "geometry-literal"
)

// ConsistencyError reports a derived value that disagrees with the
// authoritative source. DOF mismatches fill Variant, Expected and Actual;
// literal findings fill Document, Line and Text.
type ConsistencyError struct {
	Kind ConsistencyKind

	Variant  string
	Expected int
	Actual   int

	Document string
	Line     int
	Text     string
}

func (e *ConsistencyError) Error() string {
	switch e.Kind {
	case KindLiteral:
		return fmt.Sprintf("%s:%d: %s", e.Document, e.Line, e.Text)
	default:
		return fmt.Sprintf("expected %d actuated DOF for %s, got %d", e.Expected, e.Variant, e.Actual)
	}
}

// NewDOFMismatch creates a consistency error for a DOF total mismatch.
func NewDOFMismatch(variant string, expected, actual int) *ConsistencyError {
	return &ConsistencyError{
		Kind:     KindDOFMismatch,
		Variant:  variant,
		Expected: expected,
		Actual:   actual,
	}
}

// NewLiteralFinding creates a consistency error for a literal found at
// document:line.
func NewLiteralFinding(document string, line int, text string) *ConsistencyError {
	return &ConsistencyError{
		Kind:     KindLiteral,
		Document: document,
		Line:     line,
		Text:     text,
	}
}
