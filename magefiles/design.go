package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

func megadroid(args ...string) error {
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Validate builds the CLI and runs every design check, stopping at the first failure.
func Validate() error {
	mg.Deps(Build)
	return megadroid("validate", "all")
}

// Rehydrate builds the CLI, renders SPEC.md and MECH.md from templates/, and
// checks the rendered documents for geometry literals.
func Rehydrate() error {
	mg.Deps(Build)
	if err := megadroid("render", "all"); err != nil {
		return err
	}
	return megadroid("validate", "literals")
}

// DOF prints the generated DOF section of SPEC.md for the configured variant.
func DOF() error {
	mg.Deps(Build)
	return megadroid("dof", "--pretty")
}
