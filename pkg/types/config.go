// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultRequiredPaths are the geometry key paths every geometry.yaml must carry.
var DefaultRequiredPaths = []string{
	"legs.segments.thigh.length_mm",
	"legs.segments.shank.length_mm",
	"legs.segments.ankle_to_sole_offset_mm",
	"legs.structure.rail_spacing_inner_mm",
	"legs.joints.hip.shaft_diameter_mm",
	"feet.ft_sensor.diameter_mm",
	"feet.ft_sensor.height_mm",
}

// DefaultLiteralPattern matches a number followed by a length unit.
const DefaultLiteralPattern = `(?i)\b\d+(\.\d+)?\s*(mm|cm|m)\b`

// DOFConfig holds the settings for the expected-DOF check.
type DOFConfig struct {
	// Variant is the configuration profile whose DOF is checked (e.g. "MVS").
	Variant string `json:"variant" yaml:"variant" mapstructure:"variant"`

	// Expected is the number of actuated DOF the variant must have.
	Expected int `json:"expected_dof" yaml:"expected_dof" mapstructure:"expected_dof"`

	// BilateralLocations lists the locations whose joints are duplicated
	// left/right and count twice.
	BilateralLocations []Location `json:"bilateral_locations" yaml:"bilateral_locations" mapstructure:"bilateral_locations"`
}

// ValidationConfig groups every setting the validators and renderers read.
type ValidationConfig struct {
	DOFConfig `yaml:",inline" mapstructure:",squash"`

	// JointsFile is the path to the authoritative joint definitions.
	JointsFile string `json:"joints_file" yaml:"joints_file" mapstructure:"joints_file"`

	// GeometryFile is the path to the authoritative geometry tree.
	GeometryFile string `json:"geometry_file" yaml:"geometry_file" mapstructure:"geometry_file"`

	// RequiredPaths are dotted geometry key paths that must resolve. An entry
	// with an empty key ("legs..thigh") is rejected when the config is loaded.
	RequiredPaths []string `json:"required_paths" yaml:"required_paths" mapstructure:"required_paths"`

	// Documents are the rendered documents scanned for geometry literals.
	Documents []string `json:"documents" yaml:"documents" mapstructure:"documents"`

	// LiteralPattern is the regular expression a document line must not match.
	LiteralPattern string `json:"literal_pattern" yaml:"literal_pattern" mapstructure:"literal_pattern"`

	// TemplatesDir holds the document templates (SPEC.md.tmpl, MECH.md.tmpl).
	TemplatesDir string `json:"templates_dir" yaml:"templates_dir" mapstructure:"templates_dir"`

	// HistoryDB is the SQLite file recording validation runs.
	HistoryDB string `json:"history_db" yaml:"history_db" mapstructure:"history_db"`
}
