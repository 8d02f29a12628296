// Package system implements the turn rules: combat, progression, AI and the
// player actions that drive them.
package system

import (
	"math/rand"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// Messages receives player-facing text.
type Messages interface {
	Add(text string, color tcell.Color)
}

// Context bundles the state one turn operates on. All fields except Log are
// required; a nil Log uses log.Default().
type Context struct {
	Map   *gamemap.GameMap
	World *ecs.World
	Bus   *event.Bus
	Vis   gamemap.Visibility
	Msgs  Messages
	Rand  *rand.Rand
	Log   *log.Logger
}

func (c *Context) logger() *log.Logger {
	if c.Log == nil {
		return log.Default()
	}
	return c.Log
}
