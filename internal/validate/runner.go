// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Step is one check in a batch run. Run loads whatever input the check
// needs and runs it; a returned error means the input could not be loaded
// and aborts the batch.
type Step struct {
	Name string
	Run  func() (Result, error)
}

// Outcome is what a batch run produced.
type Outcome struct {
	// Results holds the result of every step that ran, in order.
	Results []Result

	// FailedCheck names the step that stopped the run, if any.
	FailedCheck string

	StartedAt time.Time
	Duration  time.Duration
}

// Passed reports whether every step ran and passed.
func (o Outcome) Passed() bool {
	return o.FailedCheck == ""
}

// Runner executes steps in order and stops at the first failing check.
// Violations inside a check are all collected; later checks are not run.
type Runner struct {
	// Out receives progress lines and each result in text form. Nil discards.
	Out io.Writer

	// Logger receives diagnostics. Nil discards.
	Logger *slog.Logger
}

// Run executes steps. A load error from a step is returned as-is together
// with the results gathered so far.
func (r *Runner) Run(steps []Step) (Outcome, error) {
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	outcome := Outcome{StartedAt: time.Now().UTC()}

	for _, step := range steps {
		fmt.Fprintf(out, "Running %s...\n", step.Name)
		logger.Debug("running check", "check", step.Name)

		res, err := step.Run()
		if err != nil {
			logger.Debug("check aborted", "check", step.Name, "error", err)
			outcome.FailedCheck = step.Name
			outcome.Duration = time.Since(outcome.StartedAt)
			return outcome, fmt.Errorf("running %s: %w", step.Name, err)
		}
		if res.Check == "" {
			res.Check = step.Name
		}
		outcome.Results = append(outcome.Results, res)
		WriteText(out, res)

		logger.Debug("check finished", "check", step.Name, "passed", res.Passed, "violations", len(res.Violations))
		if !res.Passed {
			outcome.FailedCheck = step.Name
			fmt.Fprintln(out, "Validation failed.")
			outcome.Duration = time.Since(outcome.StartedAt)
			return outcome, nil
		}
	}

	fmt.Fprintln(out, "All validations PASSED.")
	outcome.Duration = time.Since(outcome.StartedAt)
	return outcome, nil
}

// WriteText prints a result the way the command line reports it: summary
// lines, then one indented line per violation.
func WriteText(w io.Writer, res Result) {
	for _, line := range res.Summary {
		fmt.Fprintln(w, line)
	}
	for _, v := range res.Violations {
		fmt.Fprintf(w, "  - %s\n", v)
	}
}
