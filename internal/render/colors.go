package render

import (
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

var (
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleRule     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMenu     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// tileStyle picks the surface colors of t, lit when visible.
func tileStyle(t *gamemap.Tile, visible bool) tcell.Style {
	if visible {
		return tcell.StyleDefault.Foreground(t.SurfaceLit).Background(t.LitColor)
	}
	return tcell.StyleDefault.Foreground(t.SurfaceDark).Background(t.DarkColor)
}

// entityStyle draws e's glyph over the tile it stands on.
func entityStyle(e *ecs.Entity, under *gamemap.Tile) tcell.Style {
	return tcell.StyleDefault.Foreground(e.Color).Background(under.LitColor)
}
