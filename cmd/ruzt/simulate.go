package main

import (
	"fmt"
	"math/rand"

	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/render"
	"halls-of-ruzt/internal/storage"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagTurns      int
	flagSlot       string
	flagKeys       string
	flagTranscript bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot or scripted run",
	Long: `Play a run without a terminal. By default an autopilot fights,
heals and descends. --keys replays a key script instead, using the same keys
as interactive play; "i" or "d" followed by a letter uses or drops that
inventory slot.

With --slot the run continues from that save slot if it exists and is saved
back afterwards. A run that ends in death is recorded in the run history.

Examples:
  ruzt simulate --turns 500
  ruzt simulate --seed 7 --keys "llllgjjj>"
  ruzt simulate --turns 100 --slot bot`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Continue a saved run headlessly",
	Long: `Load a save slot and let the autopilot continue it.

Examples:
  ruzt resume --slot bot --turns 200`,
	Args: cobra.NoArgs,
	RunE: runResume,
}

func init() {
	for _, c := range []*cobra.Command{simulateCmd, resumeCmd} {
		c.Flags().IntVar(&flagTurns, "turns", 200, "Maximum turns to play")
		c.Flags().StringVar(&flagSlot, "slot", "", "Save slot to continue and save to")
	}
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script to replay instead of the autopilot")
	simulateCmd.Flags().BoolVar(&flagTranscript, "transcript", false, "Print every attack to stdout")
	_ = resumeCmd.MarkFlagRequired("slot")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	return simulate(cmd, false)
}

func runResume(cmd *cobra.Command, _ []string) error {
	return simulate(cmd, true)
}

func simulate(cmd *cobra.Command, mustExist bool) error {
	logger := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open save database: %w", err)
	}
	defer store.Close()

	sfx := startAudio(cfg, logger)
	if sfx != nil {
		defer sfx.Close()
	}
	opts := engineOptions(cfg, logger, sfx)
	if flagTranscript {
		opts = append(opts, game.WithCombatSink(writerSink{cmd.OutOrStdout()}))
	}
	e, restored, err := openRun(store, flagSlot, cfg, opts)
	if err != nil {
		return err
	}
	if mustExist && !restored {
		return fmt.Errorf("slot %q: %w", flagSlot, storage.ErrSlotNotFound)
	}
	if restored {
		logger.Info("run restored", "slot", flagSlot, "depth", e.DungeonLevel)
	}

	var pilot game.Pilot = game.NewAutopilot(rand.New(rand.NewSource(cfg.Seed)))
	if flagKeys != "" {
		pilot = game.NewScript(game.ParseKeys(flagKeys))
	}
	taken := game.Drive(e, pilot, flagTurns)

	report(cmd, e, taken, logger)
	return persist(store, flagSlot, e, logger)
}

func report(cmd *cobra.Command, e *game.Engine, taken int, logger *log.Logger) {
	out := cmd.OutOrStdout()
	for _, m := range e.Messages.Last(5) {
		fmt.Fprintln(out, m.Text)
	}
	fmt.Fprintln(out, render.StatusLine(e))
	logger.Info("simulation finished", "turns", taken, "depth", e.DungeonLevel,
		"alive", !e.GameOver(), "kills", len(e.Stats.Log.EnemiesKilled))
}
