package main

import (
	"fmt"

	"halls-of-ruzt/internal/storage"

	"github.com/spf13/cobra"
)

var flagLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the deepest finished runs",
	Long: `Display finished runs ordered by depth reached, then turns survived.

Examples:
  ruzt runs
  ruzt runs --limit 3`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open save database: %w", err)
	}
	defer store.Close()

	runs, err := store.BestRuns(flagLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No finished runs yet.")
		return nil
	}
	fmt.Fprintf(out, "  %-4s  %-5s  %-6s  %-16s  %s\n", "Rank", "Depth", "Turns", "Killed by", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-6s  %-16s  %s\n", "----", "-----", "-----", "---------", "----")
	for i, r := range runs {
		cause := r.CauseOfDeath
		if cause == "" {
			cause = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-6d  %-16s  %s\n", i+1, r.Depth, r.Turns, cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
