// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the megadroid CLI.
// Implements: design validation (dof, geometry, literals), document
// rehydration, and the validation run history.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger receives diagnostics on stderr. Set up in PersistentPreRun.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// rootCmd is the base command for the megadroid CLI.
var rootCmd = &cobra.Command{
	Use:   "megadroid",
	Short: "Design consistency checks for the Megadroid robot",
	Long: `megadroid keeps the robot's design data and its documents consistent.
design/joints.yaml and design/geometry.yaml are authoritative; SPEC.md and
MECH.md are rendered from templates and must not carry hand-typed geometry.

The validate subcommands check the actuated DOF count, the required geometry
paths, and the rendered documents. render rehydrates the documents, dof
prints the DOF breakdown, and history lists recorded validation runs.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./megadroid.yaml or ~/.config/megadroid/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("megadroid")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "megadroid"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("MEGADROID")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
