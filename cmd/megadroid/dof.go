// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/megadroid/internal/design"
	"github.com/pdiddy/megadroid/internal/dof"
)

var dofCmd = &cobra.Command{
	Use:   "dof",
	Short: "Print the actuated DOF breakdown of a variant",
	Long: `DOF classifies every joint in joints.yaml for a variant and prints the
bilateral (leg) and torso joints with the total actuated DOF. Leg joints
count twice, one per side.

Use --markdown to print the generated "Actuated Degrees of Freedom" section
of SPEC.md, and --pretty to render it for the terminal.`,
	Args: cobra.NoArgs,
	RunE: runDOF,
}

func runDOF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		cfg.Variant = v
	}

	joints, err := design.LoadJoints(cfg.JointsFile)
	if err != nil {
		return err
	}
	r := dof.NewClassifier(cfg.BilateralLocations).Aggregate(joints, cfg.Variant)
	logger.Debug("aggregated joints", "variant", r.Variant, "joints", len(joints), "total", r.Total)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	markdown, _ := cmd.Flags().GetBool("markdown")
	pretty, _ := cmd.Flags().GetBool("pretty")

	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case pretty:
		return printPretty(os.Stdout, dof.Markdown(r))
	case markdown:
		fmt.Fprint(os.Stdout, dof.Markdown(r))
		return nil
	default:
		printDOFReport(os.Stdout, r)
		return nil
	}
}

func printDOFReport(w io.Writer, r dof.Report) {
	fmt.Fprintf(w, "Variant: %s\n\n", r.Variant)
	fmt.Fprintf(w, "%-24s  %-10s  %-8s  %s\n", "Joint", "Location", "Axis", "Instances")
	fmt.Fprintln(w, strings.Repeat("-", 56))
	for _, j := range r.Bilateral {
		fmt.Fprintf(w, "%-24s  %-10s  %-8s  %d\n", j.Name, j.Location, j.Axis, dof.Bilateral.Weight())
	}
	for _, j := range r.Singular {
		fmt.Fprintf(w, "%-24s  %-10s  %-8s  %d\n", j.Name, j.Location, j.Axis, dof.Singular.Weight())
	}
	if len(r.Ignored) > 0 {
		fmt.Fprintf(w, "\nWithout DOF weight: %s\n", strings.Join(dof.Names(r.Ignored), ", "))
	}
	fmt.Fprintf(w, "\nTotal actuated DOF: %d\n", r.Total)
}

func printPretty(w io.Writer, md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}

func init() {
	dofCmd.Flags().String("variant", "", "variant to aggregate (default: the configured variant)")
	dofCmd.Flags().Bool("markdown", false, "print the generated SPEC.md DOF section")
	dofCmd.Flags().Bool("pretty", false, "render the DOF section for the terminal")
	dofCmd.Flags().Bool("json", false, "output the breakdown as JSON")

	rootCmd.AddCommand(dofCmd)
}
