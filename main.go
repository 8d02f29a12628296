package main

import (
	"fmt"
	"os"

	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/render"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.ErrorLevel, Prefix: "ruzt"})
	e, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	render.NewSession(e).Play(screen)
	screen.Fini()
}
