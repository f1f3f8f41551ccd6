// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dof derives actuated degrees of freedom from the joint model.
// A joint counts toward a variant when it is actuated and flagged present in
// that variant. Bilateral joints (duplicated left/right) contribute two DOF,
// singular joints (torso) contribute one, every other location contributes
// nothing.
package dof

import (
	"sort"

	"github.com/pdiddy/megadroid/pkg/types"
)

// Class is the DOF category a joint falls into for a given variant.
type Class int

const (
	Excluded Class = iota
	Bilateral
	Singular
)

func (c Class) String() string {
	switch c {
	case Bilateral:
		return "bilateral"
	case Singular:
		return "singular"
	default:
		return "excluded"
	}
}

// Weight returns the number of physical instances a joint of this class
// contributes to a DOF total.
func (c Class) Weight() int {
	switch c {
	case Bilateral:
		return 2
	case Singular:
		return 1
	default:
		return 0
	}
}

// DefaultBilateral is the bilateral location set used when none is configured.
var DefaultBilateral = []types.Location{types.LocationHip, types.LocationKnee, types.LocationAnkle}

// Classifier assigns joints to a Class. The bilateral set is fixed at
// construction; the singular set is always {torso}.
type Classifier struct {
	bilateral map[types.Location]bool
}

// NewClassifier returns a classifier with the given bilateral locations.
// An empty list selects DefaultBilateral.
func NewClassifier(bilateral []types.Location) Classifier {
	if len(bilateral) == 0 {
		bilateral = DefaultBilateral
	}
	set := make(map[types.Location]bool, len(bilateral))
	for _, l := range bilateral {
		set[l] = true
	}
	return Classifier{bilateral: set}
}

// BilateralLocations returns the bilateral set in sorted order.
func (c Classifier) BilateralLocations() []types.Location {
	out := make([]types.Location, 0, len(c.bilateral))
	for l := range c.bilateral {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Classify returns the class of j for variant. It never fails: an included
// joint whose location is neither bilateral nor torso is Excluded.
func (c Classifier) Classify(j types.Joint, variant string) Class {
	if !included(j, variant) {
		return Excluded
	}
	if c.bilateral[j.Location] {
		return Bilateral
	}
	if j.Location == types.LocationTorso {
		return Singular
	}
	return Excluded
}

func included(j types.Joint, variant string) bool {
	return j.Actuated && j.InVariant(variant)
}

// Report is the DOF breakdown of one variant. Member lists are sorted by
// joint name so that generated documents are stable.
type Report struct {
	Variant   string        `json:"variant" yaml:"variant"`
	Bilateral []types.Joint `json:"bilateral" yaml:"bilateral"`
	Singular  []types.Joint `json:"singular" yaml:"singular"`

	// Ignored holds joints that are actuated and in the variant but whose
	// location carries no DOF weight (arms, unknown categories).
	Ignored []types.Joint `json:"ignored,omitempty" yaml:"ignored,omitempty"`

	Total int `json:"total" yaml:"total"`
}

// Aggregate classifies every joint and sums the instance counts:
// total = 2*|bilateral| + |singular|.
func (c Classifier) Aggregate(joints []types.Joint, variant string) Report {
	r := Report{Variant: variant}
	for _, j := range joints {
		class := c.Classify(j, variant)
		switch class {
		case Bilateral:
			r.Bilateral = append(r.Bilateral, j)
		case Singular:
			r.Singular = append(r.Singular, j)
		default:
			if included(j, variant) {
				r.Ignored = append(r.Ignored, j)
			}
		}
		r.Total += class.Weight()
	}
	sortByName(r.Bilateral)
	sortByName(r.Singular)
	sortByName(r.Ignored)
	return r
}

// Names returns the names of joints in order.
func Names(joints []types.Joint) []string {
	names := make([]string, len(joints))
	for i, j := range joints {
		names[i] = j.Name
	}
	return names
}

func sortByName(joints []types.Joint) {
	sort.SliceStable(joints, func(i, k int) bool { return joints[i].Name < joints[k].Name })
}
