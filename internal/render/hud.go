package render

import (
	"fmt"

	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine summarizes the player's stats and the current depth.
func StatusLine(e *game.Engine) string {
	p := e.Player()
	hp, xp := 0, 0
	if p.Fighter != nil {
		hp, xp = p.Fighter.HP, p.Fighter.XP
	}
	return fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  LVL:%d XP:%d/%d  Depth: %d",
		hp, p.MaxHP(), p.Power(), p.Defense(),
		p.Level, xp, system.LevelUpThreshold(p.Level), e.DungeonLevel)
}

// drawHUD renders the status bar and the newest messages below the map.
func (r *Renderer) drawHUD(e *game.Engine) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY)
	r.drawText(0, hudY+1, StatusLine(e), styleStatus)
	for i, msg := range e.Messages.Wrapped(screenW, hudRows-2) {
		r.drawText(0, hudY+2+i, msg.Text, tcell.StyleDefault.Foreground(msg.Color))
	}
}

func (r *Renderer) drawUpgradeMenu(options []string) {
	lines := []string{"Level up! Choose a stat to raise:"}
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("(%d) %s", i+1, opt))
	}
	r.drawBox(lines, styleMenu)
}

func (r *Renderer) drawGameOver(e *game.Engine) {
	cause := e.Stats.Log.CauseOfDeath
	if cause == "" {
		cause = "unknown"
	}
	r.drawBox([]string{
		"You died!",
		fmt.Sprintf("Depth %d, %d turns, killed by %s", e.DungeonLevel, e.Stats.Log.TurnsPlayed, cause),
		"Press q to leave.",
	}, styleGameOver)
}

// drawBox centers lines over the map area.
func (r *Renderer) drawBox(lines []string, style tcell.Style) {
	screenW, screenH := r.screen.Size()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	x := max((screenW-width)/2, 0)
	y := max((screenH-hudRows-len(lines))/2, 0)
	for i, l := range lines {
		r.fill(x-1, y+i, width+2)
		r.drawText(x, y+i, l, style)
	}
}

func (r *Renderer) fill(x, y, n int) {
	for i := range n {
		r.screen.SetContent(x+i, y, ' ', nil, tcell.StyleDefault)
	}
}

func (r *Renderer) drawHLine(y int) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, styleRule)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
