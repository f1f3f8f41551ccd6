// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes validation results in the formats the command line
// offers: text for people, JSON and YAML for scripts, SARIF and JUnit for CI.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/megadroid/internal/validate"
)

// Formatter writes a set of check results.
type Formatter interface {
	Format(results []validate.Result) error
}

// Options carries the context some formats need.
type Options struct {
	// Version is the tool version recorded in SARIF output.
	Version string

	// Sources maps a check name to the file it validated, used as the
	// location of findings that have no document line (SARIF, JUnit).
	Sources map[string]string
}

// Formats lists the supported format names.
var Formats = []string{"text", "json", "yaml", "sarif", "junit"}

// New returns the formatter for format.
func New(format string, w io.Writer, opts Options) (Formatter, error) {
	switch format {
	case "text", "":
		return &TextFormatter{w: w}, nil
	case "json":
		return &JSONFormatter{w: w}, nil
	case "yaml":
		return &YAMLFormatter{w: w}, nil
	case "sarif":
		return NewSARIFFormatter(w, opts), nil
	case "junit":
		return NewJUnitFormatter(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, Formats)
	}
}

// CheckReport is the serialisable form of a validate.Result.
type CheckReport struct {
	Check      string      `json:"check" yaml:"check"`
	Passed     bool        `json:"passed" yaml:"passed"`
	Summary    []string    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Violation is the serialisable form of a *validate.SchemaError or
// *validate.ConsistencyError.
type Violation struct {
	Kind     string `json:"kind" yaml:"kind"`
	Message  string `json:"message" yaml:"message"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Variant  string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Expected *int   `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   *int   `json:"actual,omitempty" yaml:"actual,omitempty"`
}

// Summary is the top-level document for JSON and YAML output.
type Summary struct {
	Passed bool          `json:"passed" yaml:"passed"`
	Checks []CheckReport `json:"checks" yaml:"checks"`
}

// Summarize converts results into their serialisable form.
func Summarize(results []validate.Result) Summary {
	s := Summary{Passed: true, Checks: make([]CheckReport, 0, len(results))}
	for _, r := range results {
		cr := CheckReport{Check: r.Check, Passed: r.Passed, Summary: r.Summary}
		for _, v := range r.Violations {
			cr.Violations = append(cr.Violations, toViolation(v))
		}
		if !r.Passed {
			s.Passed = false
		}
		s.Checks = append(s.Checks, cr)
	}
	return s
}

func toViolation(err error) Violation {
	v := Violation{Kind: "error", Message: err.Error()}

	var schemaErr *validate.SchemaError
	var consistencyErr *validate.ConsistencyError
	switch {
	case errors.As(err, &schemaErr):
		v.Kind = "missing-path"
		v.Path = schemaErr.Path.String()
	case errors.As(err, &consistencyErr):
		v.Kind = string(consistencyErr.Kind)
		if consistencyErr.Kind == validate.KindLiteral {
			v.Document = consistencyErr.Document
			v.Line = consistencyErr.Line
			v.Text = consistencyErr.Text
		} else {
			expected, actual := consistencyErr.Expected, consistencyErr.Actual
			v.Variant = consistencyErr.Variant
			v.Expected = &expected
			v.Actual = &actual
		}
	}
	return v
}

// TextFormatter prints results as the command line reports them.
type TextFormatter struct {
	w io.Writer
}

func (f *TextFormatter) Format(results []validate.Result) error {
	for _, r := range results {
		validate.WriteText(f.w, r)
	}
	return nil
}

// JSONFormatter writes an indented Summary.
type JSONFormatter struct {
	w io.Writer
}

func (f *JSONFormatter) Format(results []validate.Result) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Summarize(results)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// YAMLFormatter writes a Summary as YAML.
type YAMLFormatter struct {
	w io.Writer
}

func (f *YAMLFormatter) Format(results []validate.Result) error {
	data, err := yaml.Marshal(Summarize(results))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = f.w.Write(data)
	return err
}
