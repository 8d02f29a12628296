// ruzt runs, inspects and persists Halls of Ruzt dungeon runs.
//
// Usage:
//
//	ruzt play                 - Play interactively in this terminal
//	ruzt generate             - Print a generated level as text
//	ruzt simulate             - Run a headless autopilot or scripted run
//	ruzt resume --slot <name> - Continue a saved run headlessly
//	ruzt slots                - List or delete save slots
//	ruzt runs                 - Show the deepest finished runs
//	ruzt serve                - Serve single-player runs over SSH
//
// Global flags:
//
//	--config <path> - YAML run configuration
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Save database (default: ~/.ruzt/ruzt.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
	flagSound   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ruzt",
	Short: "Halls of Ruzt - a turn-based dungeon crawl",
	Long: `Halls of Ruzt is a turn-based dungeon crawl. Descend through
procedurally generated halls, fight what lives there and survive the boss.

Examples:
  ruzt play
  ruzt generate --depth 2
  ruzt simulate --turns 500 --slot bot
  ruzt resume --slot bot --turns 200
  ruzt slots
  ruzt serve --addr :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom ruzt.yaml")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ruzt/ruzt.db", "Path to the save database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects through the speaker")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ruzt",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
