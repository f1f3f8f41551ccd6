// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/megadroid/internal/dof"
	"github.com/pdiddy/megadroid/pkg/types"
)

// setDefaults registers the default for every configuration key.
func setDefaults(v *viper.Viper) {
	bilateral := make([]string, len(dof.DefaultBilateral))
	for i, loc := range dof.DefaultBilateral {
		bilateral[i] = string(loc)
	}

	v.SetDefault("joints_file", "design/joints.yaml")
	v.SetDefault("geometry_file", "design/geometry.yaml")
	v.SetDefault("variant", "MVS")
	v.SetDefault("expected_dof", 9)
	v.SetDefault("bilateral_locations", bilateral)
	v.SetDefault("required_paths", types.DefaultRequiredPaths)
	v.SetDefault("documents", []string{"SPEC.md", "MECH.md"})
	v.SetDefault("literal_pattern", types.DefaultLiteralPattern)
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("history_db", ".megadroid/history.db")
}

// loadConfig reads the validation settings from v.
func loadConfig(v *viper.Viper) (types.ValidationConfig, error) {
	var cfg types.ValidationConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Variant == "" {
		return cfg, fmt.Errorf("reading configuration: variant must not be empty")
	}
	if cfg.Expected < 0 {
		return cfg, fmt.Errorf("reading configuration: expected_dof must not be negative, got %d", cfg.Expected)
	}
	for _, p := range cfg.RequiredPaths {
		for _, key := range strings.Split(p, ".") {
			if strings.TrimSpace(key) == "" {
				return cfg, fmt.Errorf("reading configuration: required_paths entry %q has an empty key", p)
			}
		}
	}
	return cfg, nil
}
