// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dof

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/megadroid/pkg/types"
)

func joint(name string, loc types.Location, actuated bool, variants map[string]bool) types.Joint {
	return types.Joint{
		Name: name,
		JointSpec: types.JointSpec{
			Actuated: actuated,
			Location: loc,
			Axis:     "pitch",
			Variants: variants,
		},
	}
}

func mvs(present bool) map[string]bool {
	return map[string]bool{"MVS": present}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name  string
		joint types.Joint
		want  Class
	}{
		{"hip actuated in variant", joint("hip_pitch", types.LocationHip, true, mvs(true)), Bilateral},
		{"knee actuated in variant", joint("knee_pitch", types.LocationKnee, true, mvs(true)), Bilateral},
		{"ankle actuated in variant", joint("ankle_pitch", types.LocationAnkle, true, mvs(true)), Bilateral},
		{"torso actuated in variant", joint("torso_yaw", types.LocationTorso, true, mvs(true)), Singular},
		{"not actuated", joint("hip_roll", types.LocationHip, false, mvs(true)), Excluded},
		{"variant flag false", joint("hip_roll", types.LocationHip, true, mvs(false)), Excluded},
		{"variant flag absent", joint("hip_roll", types.LocationHip, true, map[string]bool{"FULL": true}), Excluded},
		{"no variants mapping", joint("hip_roll", types.LocationHip, true, nil), Excluded},
		{"arm is zero weighted", joint("shoulder_pitch", types.LocationArm, true, mvs(true)), Excluded},
		{"other is zero weighted", joint("neck_yaw", types.LocationOther, true, mvs(true)), Excluded},
		{"unknown location does not fail", joint("tail_yaw", types.Location("tail"), true, mvs(true)), Excluded},
		{"empty location does not fail", joint("mystery", "", true, mvs(true)), Excluded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.joint, "MVS"))
		})
	}
}

func TestClassifyHipKneeOnly(t *testing.T) {
	c := NewClassifier([]types.Location{types.LocationHip, types.LocationKnee})

	assert.Equal(t, Bilateral, c.Classify(joint("hip_pitch", types.LocationHip, true, mvs(true)), "MVS"))
	assert.Equal(t, Excluded, c.Classify(joint("ankle_pitch", types.LocationAnkle, true, mvs(true)), "MVS"))
	assert.Equal(t, Singular, c.Classify(joint("torso_yaw", types.LocationTorso, true, mvs(true)), "MVS"))
	assert.Equal(t, []types.Location{types.LocationHip, types.LocationKnee}, c.BilateralLocations())
}

func TestClassWeight(t *testing.T) {
	assert.Equal(t, 2, Bilateral.Weight())
	assert.Equal(t, 1, Singular.Weight())
	assert.Equal(t, 0, Excluded.Weight())
	assert.Equal(t, "bilateral", Bilateral.String())
	assert.Equal(t, "excluded", Class(42).String())
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		bilateral []types.Location
		joints    []types.Joint
		want      int
	}{
		{
			name: "no joints",
			want: 0,
		},
		{
			name:   "no included joints",
			joints: []types.Joint{joint("hip_pitch", types.LocationHip, false, mvs(true))},
			want:   0,
		},
		{
			name:   "single hip contributes two",
			joints: []types.Joint{joint("hip_pitch", types.LocationHip, true, mvs(true))},
			want:   2,
		},
		{
			name:   "single torso contributes one",
			joints: []types.Joint{joint("torso_yaw", types.LocationTorso, true, mvs(true))},
			want:   1,
		},
		{
			name:   "non-actuated contributes zero",
			joints: []types.Joint{joint("torso_yaw", types.LocationTorso, false, mvs(true))},
			want:   0,
		},
		{
			name:   "leg chain with ankle",
			joints: legChain(),
			want:   7,
		},
		{
			name:      "leg chain without ankle in bilateral set",
			bilateral: []types.Location{types.LocationHip, types.LocationKnee},
			joints:    legChain(),
			want:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewClassifier(tt.bilateral).Aggregate(tt.joints, "MVS")
			assert.Equal(t, tt.want, r.Total)
			assert.Equal(t, "MVS", r.Variant)
			assert.Equal(t, r.Total, 2*len(r.Bilateral)+len(r.Singular))
		})
	}
}

func TestAggregateMembersSortedAndIgnored(t *testing.T) {
	joints := []types.Joint{
		joint("torso_yaw", types.LocationTorso, true, mvs(true)),
		joint("knee_pitch", types.LocationKnee, true, mvs(true)),
		joint("shoulder_pitch", types.LocationArm, true, mvs(true)),
		joint("hip_roll", types.LocationHip, true, mvs(true)),
		joint("hip_pitch", types.LocationHip, true, mvs(true)),
		joint("elbow_pitch", types.LocationArm, false, mvs(true)),
	}

	r := NewClassifier(nil).Aggregate(joints, "MVS")

	want := map[string][]string{
		"bilateral": {"hip_pitch", "hip_roll", "knee_pitch"},
		"singular":  {"torso_yaw"},
		"ignored":   {"shoulder_pitch"},
	}
	got := map[string][]string{
		"bilateral": Names(r.Bilateral),
		"singular":  Names(r.Singular),
		"ignored":   Names(r.Ignored),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report members mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 7, r.Total)
}

func TestAggregateOtherVariant(t *testing.T) {
	joints := []types.Joint{
		joint("hip_pitch", types.LocationHip, true, map[string]bool{"MVS": true, "FULL": true}),
		joint("hip_roll", types.LocationHip, true, map[string]bool{"FULL": true}),
		joint("torso_yaw", types.LocationTorso, true, map[string]bool{"MVS": true}),
	}

	c := NewClassifier(nil)
	require.Equal(t, 3, c.Aggregate(joints, "MVS").Total)
	require.Equal(t, 4, c.Aggregate(joints, "FULL").Total)
	require.Equal(t, 0, c.Aggregate(joints, "LITE").Total)
}

func legChain() []types.Joint {
	return []types.Joint{
		joint("hip_pitch", types.LocationHip, true, mvs(true)),
		joint("knee_pitch", types.LocationKnee, true, mvs(true)),
		joint("ankle_pitch", types.LocationAnkle, true, mvs(true)),
		joint("torso_yaw", types.LocationTorso, true, mvs(true)),
	}
}
