// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/megadroid/internal/design"
	"github.com/pdiddy/megadroid/internal/dof"
	"github.com/pdiddy/megadroid/internal/render"
)

const (
	specDoc = "SPEC.md"
	mechDoc = "MECH.md"
)

var renderCmd = &cobra.Command{
	Use:       "render [spec|mech|all]",
	Short:     "Rehydrate SPEC.md and MECH.md from their templates",
	ValidArgs: []string{"spec", "mech", "all"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `Render fills templates/SPEC.md.tmpl and templates/MECH.md.tmpl with the
joint lists, the DOF section, and the geometry tree. A template that refers
to a missing value fails and leaves the existing document untouched.

The "## 15. Change Control" section of the existing SPEC.md is carried over
verbatim into the new one.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	target := "all"
	if len(args) == 1 {
		target = args[0]
	}
	outDir, _ := cmd.Flags().GetString("out-dir")

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	joints, err := design.LoadJoints(cfg.JointsFile)
	if err != nil {
		return err
	}
	geometry, err := design.LoadGeometry(cfg.GeometryFile)
	if err != nil {
		return err
	}

	r := dof.NewClassifier(cfg.BilateralLocations).Aggregate(joints, cfg.Variant)
	data := render.NewData(r, geometry, time.Now())
	renderer := render.NewRenderer(cfg.TemplatesDir, outDir)

	if target == "spec" || target == "all" {
		tail, err := changeControl(renderer.OutputPath(specDoc))
		if err != nil {
			return err
		}
		specData := data
		specData.ChangeControl = tail
		if err := renderer.Rehydrate(specDoc, specData, os.Stdout); err != nil {
			return err
		}
	}
	if target == "mech" || target == "all" {
		if err := renderer.Rehydrate(mechDoc, data, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

// changeControl returns the change-control section of the document at
// path, or "" when the file or the section does not exist.
func changeControl(path string) (string, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	tail, ok := render.PreserveTail(string(existing), render.ChangeControlHeading)
	if !ok {
		logger.Warn("no change control section to preserve", "file", filepath.Base(path))
	}
	return tail, nil
}

func init() {
	renderCmd.Flags().String("out-dir", ".", "directory the rendered documents are written to")

	rootCmd.AddCommand(renderCmd)
}
