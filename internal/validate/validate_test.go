// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/megadroid/pkg/types"
)

// --- geometry ---

func completeGeometry() types.GeometryTree {
	return types.GeometryTree{
		"legs": map[string]any{
			"segments": map[string]any{
				"thigh":                   map[string]any{"length_mm": 250},
				"shank":                   map[string]any{"length_mm": 240},
				"ankle_to_sole_offset_mm": 45,
			},
			"structure": map[string]any{"rail_spacing_inner_mm": 20},
			"joints": map[string]any{
				"hip": map[string]any{"shaft_diameter_mm": 12},
			},
		},
		"feet": map[string]any{
			"ft_sensor": map[string]any{
				"diameter_mm": 60,
				"height_mm":   30,
			},
		},
	}
}

func TestGeometryCheckerPasses(t *testing.T) {
	res := NewGeometryChecker(nil).Check(completeGeometry())
	assert.True(t, res.Passed)
	assert.Empty(t, res.Violations)
	assert.NoError(t, res.Err())
	assert.Equal(t, CheckGeometry, res.Check)
	assert.Equal(t, []string{"Geometry validation PASSED."}, res.Summary)
}

func TestGeometryCheckerMissingHeight(t *testing.T) {
	tree := completeGeometry()
	delete(tree["feet"].(map[string]any)["ft_sensor"].(map[string]any), "height_mm")

	res := NewGeometryChecker(nil).Check(tree)
	require.False(t, res.Passed)
	assert.Equal(t, []string{"Missing geometry path: feet.ft_sensor.height_mm"}, res.Messages())

	var schemaErr *SchemaError
	require.True(t, errors.As(res.Err(), &schemaErr))
	assert.Equal(t, types.KeyPath{"feet", "ft_sensor", "height_mm"}, schemaErr.Path)
}

func TestGeometryCheckerCollectsAllMissing(t *testing.T) {
	tree := types.GeometryTree{
		"legs": map[string]any{
			"segments": "not a mapping",
		},
	}

	res := NewGeometryChecker(nil).Check(tree)
	require.False(t, res.Passed)
	assert.Equal(t, []string{
		"Missing geometry path: legs.segments.thigh.length_mm",
		"Missing geometry path: legs.segments.shank.length_mm",
		"Missing geometry path: legs.segments.ankle_to_sole_offset_mm",
		"Missing geometry path: legs.structure.rail_spacing_inner_mm",
		"Missing geometry path: legs.joints.hip.shaft_diameter_mm",
		"Missing geometry path: feet.ft_sensor.diameter_mm",
		"Missing geometry path: feet.ft_sensor.height_mm",
	}, res.Messages())
}

func TestGeometryCheckerCustomPaths(t *testing.T) {
	c := NewGeometryChecker([]string{"arms.upper.length_mm", "", "legs.structure"})
	require.Len(t, c.Required(), 2)

	res := c.Check(completeGeometry())
	assert.Equal(t, []string{"Missing geometry path: arms.upper.length_mm"}, res.Messages())
}

func TestGeometryCheckerNullValueIsPresent(t *testing.T) {
	tree := types.GeometryTree{"feet": map[string]any{"ft_sensor": map[string]any{"height_mm": nil}}}
	res := NewGeometryChecker([]string{"feet.ft_sensor.height_mm"}).Check(tree)
	assert.True(t, res.Passed)
}

// --- literals ---

func TestLiteralChecker(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		flagged bool
	}{
		{"millimetres", "Thigh length: 250 mm", true},
		{"decimal centimetres", "Offset 4.5 cm from the rail", true},
		{"metres upper case", "Total height 1.2 M", true},
		{"no space before unit", "Shank length: 240mm", true},
		{"unsubstituted placeholder", "Thigh length: {{ value }} mm", false},
		{"no unit suffix", "rated for 10000 hours", false},
		{"unit inside larger word", "about 3 minutes", false},
		{"digits inside identifier", "part M3x10 mmm", false},
		{"plain prose", "The hip uses a 775 brushed motor.", false},
	}

	c, err := NewLiteralChecker("")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Check([]types.Document{{Name: "SPEC.md", Text: tt.line + "\n"}})
			assert.Equal(t, !tt.flagged, res.Passed)
			if tt.flagged {
				require.Len(t, res.Violations, 1)
				assert.Equal(t, "SPEC.md:1: "+tt.line, res.Violations[0].Error())
			}
		})
	}
}

func TestLiteralCheckerCollectsAcrossDocuments(t *testing.T) {
	spec := types.Document{Name: "SPEC.md", Text: strings.Join([]string{
		"# Spec",
		"",
		"  Thigh length: 250 mm  ",
		"Shank length: 240 mm and offset 45 mm",
	}, "\n")}
	mech := types.Document{Name: "MECH.md", Text: "Rail spacing 20 mm\nrated for 10000 hours\n"}

	c, err := NewLiteralChecker("")
	require.NoError(t, err)

	res := c.Check([]types.Document{spec, mech})
	require.False(t, res.Passed)
	assert.Equal(t, []string{
		"SPEC.md:3: Thigh length: 250 mm",
		"SPEC.md:4: Shank length: 240 mm and offset 45 mm",
		"MECH.md:1: Rail spacing 20 mm",
	}, res.Messages())
	assert.Equal(t, []string{"Numeric geometry literals found:"}, res.Summary)

	var ce *ConsistencyError
	require.ErrorAs(t, res.Err(), &ce)
	assert.Equal(t, KindLiteral, ce.Kind)
	assert.Equal(t, "SPEC.md", ce.Document)
	assert.Equal(t, 3, ce.Line)
}

func TestLiteralCheckerClean(t *testing.T) {
	c, err := NewLiteralChecker("")
	require.NoError(t, err)

	res := c.Check([]types.Document{{Name: "SPEC.md", Text: "clean"}, {Name: "MECH.md", Text: ""}})
	assert.True(t, res.Passed)
	assert.Equal(t, []string{"No numeric geometry literals found in SPEC.md or MECH.md."}, res.Summary)
}

func TestLiteralCheckerLongLines(t *testing.T) {
	c, err := NewLiteralChecker("")
	require.NoError(t, err)

	text := strings.Repeat("x", 2<<20) + "\r\nThigh length: 250 mm\r\n"
	res := c.Check([]types.Document{{Name: "SPEC.md", Text: text}})
	require.False(t, res.Passed)
	assert.Equal(t, []string{"SPEC.md:2: Thigh length: 250 mm"}, res.Messages())
}

func TestLiteralCheckerCustomPattern(t *testing.T) {
	c, err := NewLiteralChecker(`\b\d+\s+in\b`)
	require.NoError(t, err)
	assert.Equal(t, `\b\d+\s+in\b`, c.Pattern())

	res := c.Check([]types.Document{{Name: "MECH.md", Text: "10 in\n250 mm\n"}})
	assert.Equal(t, []string{"MECH.md:1: 10 in"}, res.Messages())

	_, err = NewLiteralChecker(`(unclosed`)
	assert.Error(t, err)
}

// --- dof ---

func mvsJoint(name string, loc types.Location) types.Joint {
	return types.Joint{Name: name, JointSpec: types.JointSpec{
		Actuated: true, Location: loc, Axis: "pitch", Variants: map[string]bool{"MVS": true},
	}}
}

func ankleScenario() []types.Joint {
	return []types.Joint{
		mvsJoint("hip_pitch", types.LocationHip),
		mvsJoint("knee_pitch", types.LocationKnee),
		mvsJoint("ankle_pitch", types.LocationAnkle),
		mvsJoint("torso_yaw", types.LocationTorso),
	}
}

func TestDOFCheckerAnkleScenario(t *testing.T) {
	tests := []struct {
		name      string
		bilateral []types.Location
		wantTotal int
	}{
		{"ankle counted as bilateral", []types.Location{types.LocationHip, types.LocationKnee, types.LocationAnkle}, 7},
		{"default set counts ankle", nil, 7},
		{"hip and knee only", []types.Location{types.LocationHip, types.LocationKnee}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDOFChecker(types.DOFConfig{Variant: "MVS", Expected: 9, BilateralLocations: tt.bilateral})

			res := c.Check(ankleScenario())
			require.False(t, res.Passed)

			var ce *ConsistencyError
			require.ErrorAs(t, res.Err(), &ce)
			assert.Equal(t, KindDOFMismatch, ce.Kind)
			assert.Equal(t, 9, ce.Expected)
			assert.Equal(t, tt.wantTotal, ce.Actual)
			assert.Equal(t, c.Report(ankleScenario()).Total, ce.Actual)
		})
	}
}

func TestDOFCheckerPasses(t *testing.T) {
	joints := append(ankleScenario(), mvsJoint("hip_roll", types.LocationHip))
	c := NewDOFChecker(types.DOFConfig{Variant: "MVS", Expected: 9})

	res := c.Check(joints)
	assert.True(t, res.Passed)
	assert.Contains(t, res.Summary, "MVS total actuated DOF: 9")
	assert.Contains(t, res.Summary, "OK: MVS DOF count matches expected 9.")
}

func TestDOFCheckerUnknownLocationDoesNotFail(t *testing.T) {
	joints := []types.Joint{
		mvsJoint("torso_yaw", types.LocationTorso),
		mvsJoint("tail_wag", types.Location("tail")),
		mvsJoint("shoulder_pitch", types.LocationArm),
	}
	c := NewDOFChecker(types.DOFConfig{Variant: "MVS", Expected: 1})

	var res Result
	require.NotPanics(t, func() { res = c.Check(joints) })
	assert.True(t, res.Passed)
	assert.Contains(t, res.Summary, "MVS joints without DOF weight: [shoulder_pitch tail_wag]")
}

func TestDOFCheckerZeroJoints(t *testing.T) {
	res := NewDOFChecker(types.DOFConfig{Variant: "MVS", Expected: 0}).Check(nil)
	assert.True(t, res.Passed)
	assert.Contains(t, res.Summary, "MVS total actuated DOF: 0")
}
