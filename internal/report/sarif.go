// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/pdiddy/megadroid/internal/validate"
)

const (
	toolName = "megadroid"
	toolURI  = "https://github.com/pdiddy/megadroid"
)

var ruleDescriptions = map[string]string{
	validate.CheckGeometry: "Required geometry key paths must exist in geometry.yaml",
	validate.CheckLiterals: "Rendered documents must not contain numeric length literals",
	validate.CheckDOF:      "Actuated DOF derived from joints.yaml must match the expected count",
}

// SARIFFormatter writes results as SARIF 2.1.0. Each check is a rule; each
// violation is a result located at its document line or at the source file
// the check read.
type SARIFFormatter struct {
	w    io.Writer
	opts Options
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(w io.Writer, opts Options) *SARIFFormatter {
	return &SARIFFormatter{w: w, opts: opts}
}

func (f *SARIFFormatter) Format(results []validate.Result) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	if f.opts.Version != "" {
		version := f.opts.Version
		run.Tool.Driver.Version = &version
	}

	for _, r := range results {
		run.Tool.Driver.AddRule(f.rule(r.Check))

		if r.Passed {
			res := sarif.NewRuleResult(r.Check)
			res.Kind = "pass"
			res.Level = "none"
			res.Message = sarif.NewTextMessage(fmt.Sprintf("%s check passed", r.Check))
			run.AddResult(res)
			continue
		}
		for _, v := range r.Violations {
			run.AddResult(f.result(r.Check, v))
		}
	}

	report.AddRun(run)
	if err := report.Write(f.w); err != nil {
		return fmt.Errorf("writing SARIF output: %w", err)
	}
	_, err := f.w.Write([]byte("\n"))
	return err
}

func (f *SARIFFormatter) rule(check string) *sarif.ReportingDescriptor {
	rule := sarif.NewReportingDescriptor().WithID(check)
	rule.WithName(check)

	desc, ok := ruleDescriptions[check]
	if !ok {
		desc = check
	}
	rule.WithShortDescription(&sarif.MultiformatMessageString{Text: &desc})
	rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
	return rule
}

func (f *SARIFFormatter) result(check string, v error) *sarif.Result {
	res := sarif.NewRuleResult(check)
	res.Kind = "fail"
	res.Level = "error"
	res.Message = sarif.NewTextMessage(v.Error())

	var ce *validate.ConsistencyError
	if errors.As(v, &ce) && ce.Kind == validate.KindLiteral {
		res.Locations = []*sarif.Location{location(ce.Document, ce.Line)}
		return res
	}
	if src, ok := f.opts.Sources[check]; ok && src != "" {
		res.Locations = []*sarif.Location{location(src, 0)}
	}
	return res
}

func location(path string, line int) *sarif.Location {
	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(filepath.ToSlash(path)))
	if line > 0 {
		pLoc.WithRegion(sarif.NewRegion().WithStartLine(line))
	}
	return sarif.NewLocation().WithPhysicalLocation(pLoc)
}
