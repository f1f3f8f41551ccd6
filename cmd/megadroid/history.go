// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/megadroid/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or export recorded validation runs",
	Long: `History reads the runs stored by "validate --record" from the history
database, newest first. Use --export to write them as YAML or JSON.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	export, _ := cmd.Flags().GetString("export")

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := history.NewStore(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	switch export {
	case "":
		runs, err := store.Recent(ctx, limit)
		if err != nil {
			return err
		}
		printHistory(os.Stdout, runs)
		return nil
	case "yaml":
		return store.ExportYAML(ctx, os.Stdout, limit)
	case "json":
		return store.ExportJSON(ctx, os.Stdout, limit)
	default:
		return fmt.Errorf("unsupported export format: %s (use yaml or json)", export)
	}
}

func printHistory(w io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-20s  %-8s  %-6s  %-10s  %s\n",
		"ID", "Started", "Variant", "Result", "Failed", "Violations")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, run := range runs {
		result := "PASS"
		if !run.Passed {
			result = "FAIL"
		}
		violations := 0
		for _, c := range run.Checks {
			violations += len(c.Violations)
		}
		fmt.Fprintf(w, "%-5d  %-20s  %-8s  %-6s  %-10s  %d\n",
			run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Variant, result, run.FailedCheck, violations)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().String("export", "", "export runs as yaml or json")

	rootCmd.AddCommand(historyCmd)
}
