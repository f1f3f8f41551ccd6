// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dof

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a joint key such as "hip_pitch" into "Hip Pitch".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// Markdown renders the report as the "Actuated Degrees of Freedom" section
// embedded in SPEC.md.
func Markdown(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Actuated Degrees of Freedom (%s)\n\n", r.Variant)

	b.WriteString("**Legs (×2):**\n")
	for _, j := range r.Bilateral {
		fmt.Fprintf(&b, "- %s (%s)\n", DisplayName(j.Name), j.Axis)
	}

	b.WriteString("\n**Torso:**\n")
	for _, j := range r.Singular {
		fmt.Fprintf(&b, "- %s (%s)\n", DisplayName(j.Name), j.Axis)
	}

	fmt.Fprintf(&b, "\n**Total actuated DOF:** **%d**\n", r.Total)
	return b.String()
}
