// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passing(name string) Step {
	return Step{Name: name, Run: func() (Result, error) {
		return newResult(name, nil, name+" ok"), nil
	}}
}

func failing(name string, violations ...error) Step {
	return Step{Name: name, Run: func() (Result, error) {
		return newResult(name, violations, name+" failed"), nil
	}}
}

func TestRunnerAllPass(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Out: &buf}

	outcome, err := r.Run([]Step{passing("geometry"), passing("literals"), passing("dof")})
	require.NoError(t, err)
	assert.True(t, outcome.Passed())
	assert.Len(t, outcome.Results, 3)
	assert.False(t, outcome.StartedAt.IsZero())

	want := strings.Join([]string{
		"Running geometry...",
		"geometry ok",
		"Running literals...",
		"literals ok",
		"Running dof...",
		"dof ok",
		"All validations PASSED.",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRunnerStopsAtFirstFailingCheck(t *testing.T) {
	ran := map[string]bool{}
	track := func(s Step) Step {
		inner := s.Run
		s.Run = func() (Result, error) {
			ran[s.Name] = true
			return inner()
		}
		return s
	}

	var buf bytes.Buffer
	r := &Runner{Out: &buf}
	steps := []Step{
		track(passing("geometry")),
		track(failing("literals",
			NewLiteralFinding("SPEC.md", 3, "Thigh length: 250 mm"),
			NewLiteralFinding("MECH.md", 7, "Rail spacing 20 mm"),
		)),
		track(passing("dof")),
	}

	outcome, err := r.Run(steps)
	require.NoError(t, err)
	assert.False(t, outcome.Passed())
	assert.Equal(t, "literals", outcome.FailedCheck)
	assert.Len(t, outcome.Results, 2)
	assert.True(t, ran["geometry"])
	assert.True(t, ran["literals"])
	assert.False(t, ran["dof"], "checks after the failing one must not run")

	// Every violation of the failing check is reported.
	out := buf.String()
	assert.Contains(t, out, "  - SPEC.md:3: Thigh length: 250 mm\n")
	assert.Contains(t, out, "  - MECH.md:7: Rail spacing 20 mm\n")
	assert.True(t, strings.HasSuffix(out, "Validation failed.\n"))
	assert.NotContains(t, out, "Running dof")
}

func TestRunnerLoadErrorAborts(t *testing.T) {
	loadErr := errors.New("joints.yaml: no such file")
	var logs bytes.Buffer
	r := &Runner{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	outcome, err := r.Run([]Step{
		passing("geometry"),
		{Name: "dof", Run: func() (Result, error) { return Result{}, loadErr }},
		passing("after"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "running dof")
	assert.Equal(t, "dof", outcome.FailedCheck)
	assert.Len(t, outcome.Results, 1)
	assert.Contains(t, logs.String(), "check aborted")
}

func TestRunnerLoadErrorNotLoggedAtWarn(t *testing.T) {
	var logs bytes.Buffer
	r := &Runner{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))}

	_, err := r.Run([]Step{{Name: "dof", Run: func() (Result, error) { return Result{}, errors.New("boom") }}})
	require.Error(t, err)
	assert.Empty(t, logs.String())
}

func TestRunnerNilWriterAndLogger(t *testing.T) {
	r := &Runner{}
	outcome, err := r.Run([]Step{passing("geometry")})
	require.NoError(t, err)
	assert.True(t, outcome.Passed())
}

func TestRunnerFillsCheckName(t *testing.T) {
	r := &Runner{}
	outcome, err := r.Run([]Step{{Name: "custom", Run: func() (Result, error) {
		return Result{Passed: true}, nil
	}}})
	require.NoError(t, err)
	assert.Equal(t, "custom", outcome.Results[0].Check)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, newResult(CheckDOF, []error{NewDOFMismatch("MVS", 9, 7)}, "MVS total actuated DOF: 7"))
	assert.Equal(t, "MVS total actuated DOF: 7\n  - expected 9 actuated DOF for MVS, got 7\n", buf.String())
}
