// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/megadroid/pkg/types"
)

// LiteralChecker flags document lines that carry a numeric length literal.
// Geometry in rendered documents must come from geometry.yaml through
// substitution, so a hand-typed "250 mm" means the document has drifted.
type LiteralChecker struct {
	pattern *regexp.Regexp
}

// NewLiteralChecker compiles pattern. An empty pattern selects
// types.DefaultLiteralPattern.
func NewLiteralChecker(pattern string) (*LiteralChecker, error) {
	if pattern == "" {
		pattern = types.DefaultLiteralPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling literal pattern %q: %w", pattern, err)
	}
	return &LiteralChecker{pattern: re}, nil
}

// Pattern returns the compiled expression source.
func (c *LiteralChecker) Pattern() string {
	return c.pattern.String()
}

// Check scans every line of every document. A line is reported once no
// matter how many literals it contains; line numbers are 1-based.
func (c *LiteralChecker) Check(docs []types.Document) Result {
	var violations []error
	for _, doc := range docs {
		violations = append(violations, c.scan(doc)...)
	}

	if len(violations) > 0 {
		return newResult(CheckLiterals, violations, "Numeric geometry literals found:")
	}
	return newResult(CheckLiterals, nil,
		fmt.Sprintf("No numeric geometry literals found in %s.", documentNames(docs)))
}

func (c *LiteralChecker) scan(doc types.Document) []error {
	var found []error
	for i, line := range strings.Split(doc.Text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if c.pattern.MatchString(line) {
			found = append(found, NewLiteralFinding(doc.Name, i+1, strings.TrimSpace(line)))
		}
	}
	return found
}

func documentNames(docs []types.Document) string {
	if len(docs) == 0 {
		return "no documents"
	}
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
