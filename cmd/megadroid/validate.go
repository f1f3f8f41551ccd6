// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/megadroid/internal/design"
	"github.com/pdiddy/megadroid/internal/history"
	"github.com/pdiddy/megadroid/internal/report"
	"github.com/pdiddy/megadroid/internal/validate"
	"github.com/pdiddy/megadroid/pkg/types"
)

// allChecks is the order validate all runs the checks in.
var allChecks = []string{validate.CheckGeometry, validate.CheckLiterals, validate.CheckDOF}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the design data and rendered documents for consistency",
	Long: `Validate runs one check or all of them. A check collects every violation
it finds; validate all stops at the first check that fails.

  geometry  required key paths are present in geometry.yaml
  literals  SPEC.md and MECH.md carry no hand-typed lengths such as "250 mm"
  dof       the actuated DOF derived from joints.yaml matches expected_dof

The exit status is non-zero when a check fails or its input cannot be loaded.`,
}

func newCheckCmd(name, short string, checks []string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, checks)
		},
	}
}

func runValidate(cmd *cobra.Command, checks []string) error {
	format, _ := cmd.Flags().GetString("format")
	record, _ := cmd.Flags().GetBool("record")

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	steps, err := checkSteps(cfg, checks)
	if err != nil {
		return err
	}

	// Text output is the runner's own progress; other formats keep stdout
	// clean for the report and send progress to stderr.
	var progress io.Writer = os.Stdout
	if format != "text" {
		progress = os.Stderr
	}
	formatter, err := report.New(format, os.Stdout, report.Options{
		Version: version,
		Sources: sources(cfg),
	})
	if err != nil {
		return err
	}

	runner := &validate.Runner{Out: progress, Logger: logger}
	outcome, runErr := runner.Run(steps)

	if record {
		if err := recordRun(cmd.Context(), cfg, outcome); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if format != "text" {
		if err := formatter.Format(outcome.Results); err != nil {
			return fmt.Errorf("writing %s report: %w", format, err)
		}
	}

	if !outcome.Passed() {
		return fmt.Errorf("%s check failed", outcome.FailedCheck)
	}
	return nil
}

// checkSteps builds the runner steps for the named checks. Each step loads
// its own input when it runs.
func checkSteps(cfg types.ValidationConfig, checks []string) ([]validate.Step, error) {
	steps := make([]validate.Step, 0, len(checks))
	for _, name := range checks {
		switch name {
		case validate.CheckGeometry:
			steps = append(steps, validate.Step{Name: name, Run: func() (validate.Result, error) {
				tree, err := design.LoadGeometry(cfg.GeometryFile)
				if err != nil {
					return validate.Result{}, err
				}
				return validate.NewGeometryChecker(cfg.RequiredPaths).Check(tree), nil
			}})
		case validate.CheckLiterals:
			checker, err := validate.NewLiteralChecker(cfg.LiteralPattern)
			if err != nil {
				return nil, err
			}
			steps = append(steps, validate.Step{Name: name, Run: func() (validate.Result, error) {
				docs, err := design.LoadDocuments(cfg.Documents)
				if err != nil {
					return validate.Result{}, err
				}
				return checker.Check(docs), nil
			}})
		case validate.CheckDOF:
			steps = append(steps, validate.Step{Name: name, Run: func() (validate.Result, error) {
				joints, err := design.LoadJoints(cfg.JointsFile)
				if err != nil {
					return validate.Result{}, err
				}
				return validate.NewDOFChecker(cfg.DOFConfig).Check(joints), nil
			}})
		default:
			return nil, fmt.Errorf("unknown check: %s (supported: %s)", name, strings.Join(allChecks, ", "))
		}
	}
	return steps, nil
}

func sources(cfg types.ValidationConfig) map[string]string {
	s := map[string]string{
		validate.CheckGeometry: cfg.GeometryFile,
		validate.CheckDOF:      cfg.JointsFile,
	}
	if len(cfg.Documents) > 0 {
		s[validate.CheckLiterals] = cfg.Documents[0]
	}
	return s
}

func recordRun(ctx context.Context, cfg types.ValidationConfig, outcome validate.Outcome) error {
	store, err := history.NewStore(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(ctx, cfg.Variant, outcome)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	logger.Info("recorded validation run", "id", id, "db", cfg.HistoryDB)
	fmt.Fprintf(os.Stderr, "Recorded run %d in %s\n", id, cfg.HistoryDB)
	return nil
}

func init() {
	validateCmd.AddCommand(
		newCheckCmd(validate.CheckDOF, "Check the actuated DOF count against expected_dof", []string{validate.CheckDOF}),
		newCheckCmd(validate.CheckGeometry, "Check that required geometry paths are present", []string{validate.CheckGeometry}),
		newCheckCmd(validate.CheckLiterals, "Check rendered documents for numeric geometry literals", []string{validate.CheckLiterals}),
		newCheckCmd("all", "Run geometry, literals and dof checks in order", allChecks),
	)

	validateCmd.PersistentFlags().String("format", "text", "output format: "+strings.Join(report.Formats, ", "))
	validateCmd.PersistentFlags().Bool("record", false, "record the run in the history database")

	rootCmd.AddCommand(validateCmd)
}
