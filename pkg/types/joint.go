// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the megadroid design tooling.
// The authoritative design files (design/joints.yaml, design/geometry.yaml)
// decode into these records; the derived documents are carried as Document.
package types

// Location is the body region a joint belongs to.
type Location string

const (
	LocationHip   Location = "hip"
	LocationKnee  Location = "knee"
	LocationAnkle Location = "ankle"
	LocationTorso Location = "torso"
	LocationArm   Location = "arm"
	LocationOther Location = "other"
)

// Locations lists every location category the design files may use.
var Locations = []Location{
	LocationHip,
	LocationKnee,
	LocationAnkle,
	LocationTorso,
	LocationArm,
	LocationOther,
}

// Known reports whether l is one of the recognised location categories.
func (l Location) Known() bool {
	for _, k := range Locations {
		if l == k {
			return true
		}
	}
	return false
}

// JointSpec is one entry under the top-level joints mapping of joints.yaml.
// The joint name is the mapping key and is not repeated inside the entry.
type JointSpec struct {
	// Actuated reports whether the joint is driven by a motor.
	Actuated bool `json:"actuated" yaml:"actuated"`

	// Location is the body region (hip, knee, ankle, torso, ...).
	Location Location `json:"location" yaml:"location"`

	// Axis is a descriptive label such as "pitch" or "yaw".
	Axis string `json:"axis" yaml:"axis"`

	// Variants maps a configuration-variant name to whether the joint is
	// present in that variant. Absent keys mean "not applicable".
	Variants map[string]bool `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// JointsFile is the top-level layout of design/joints.yaml.
type JointsFile struct {
	Joints map[string]JointSpec `json:"joints" yaml:"joints"`
}

// Joint is a named articulation point. Joints are read-only once loaded.
type Joint struct {
	// Name is the unique human identifier (e.g. "hip_pitch").
	Name string `json:"name" yaml:"name"`

	JointSpec `yaml:",inline"`
}

// InVariant reports whether the joint is flagged present in the named
// variant. A variant missing from the mapping is treated as false.
func (j Joint) InVariant(variant string) bool {
	if j.Variants == nil {
		return false
	}
	return j.Variants[variant]
}
