package main

import (
	"fmt"
	"os"

	"halls-of-ruzt/internal/render"
	"halls-of-ruzt/internal/storage"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var flagPlaySlot string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in this terminal",
	Long: `Start an interactive run.

Controls:
  arrows/hjklyubn  - Move or attack
  Home/PgUp/End/PgDn - Move diagonally
  .                - Wait a turn
  g or ,           - Pick up
  i <letter>       - Use an inventory item
  d <letter>       - Drop an inventory item
  < or >           - Take the stairs
  1/2/3            - Choose a level-up upgrade
  q or Esc         - Quit (saves to --slot)

Examples:
  ruzt play
  ruzt play --slot main --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlaySlot, "slot", "", "Save slot to continue and save to")
}

func runPlay(_ *cobra.Command, _ []string) error {
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
	// Anything below error level would tear the screen.
	quiet := log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel, Prefix: "ruzt"})
	e, _, err := openRun(store, flagPlaySlot, cfg, engineOptions(cfg, quiet, sfx))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	render.NewSession(e).Play(screen)
	screen.Fini()

	return persist(store, flagPlaySlot, e, logger)
}
