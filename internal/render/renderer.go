// Package render draws a run onto a tcell screen and as plain text.
package render

import (
	"sort"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the height reserved at the bottom of the screen for the HUD.
const hudRows = 6

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-hudRows, 1)),
	}
}

// Resize refits the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, max(h-hudRows, 1))
}

// DrawFrame renders tiles, entities and the HUD. overlay, when non-empty, is
// shown as a centered box unless the game is over or an upgrade is pending.
func (r *Renderer) DrawFrame(e *game.Engine, overlay []string) {
	r.screen.Clear()
	px, py := e.Player().Pos()
	r.camera.Center(px, py)
	r.drawMap(e.Map, e.FOV)
	r.drawEntities(e.World, e.Map, e.FOV)
	r.drawHUD(e)
	switch {
	case e.GameOver():
		r.drawGameOver(e)
	case e.PendingUpgrade:
		r.drawUpgradeMenu(e.UpgradeOptions())
	case len(overlay) > 0:
		r.drawBox(overlay, styleMenu)
	}
	r.screen.Show()
}

// drawMap renders every visible or explored tile.
func (r *Renderer) drawMap(gmap *gamemap.GameMap, vis gamemap.Visibility) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			visible := vis.IsVisible(x, y)
			if !visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, tile.Surface, tileStyle(tile, visible))
		}
	}
}

// drawOrder puts features and items under actors and the player on top.
func drawOrder(id ecs.EntityID, e *ecs.Entity) int {
	switch {
	case id == ecs.PlayerID:
		return 3
	case e.Fighter != nil && e.Alive:
		return 2
	case e.Item != nil:
		return 1
	}
	return 0
}

type drawable struct {
	ent   *ecs.Entity
	order int
}

// drawEntities renders entities in sight, plus always-visible features on
// explored tiles.
func (r *Renderer) drawEntities(w *ecs.World, gmap *gamemap.GameMap, vis gamemap.Visibility) {
	var list []drawable
	for i, ent := range w.All() {
		if !gmap.InBounds(ent.X, ent.Y) {
			continue
		}
		seen := vis.IsVisible(ent.X, ent.Y) || (ent.AlwaysVisible && gmap.At(ent.X, ent.Y).Explored)
		if !seen {
			continue
		}
		list = append(list, drawable{ent: ent, order: drawOrder(ecs.EntityID(i), ent)})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].order < list[j].order })

	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(d.ent.X, d.ent.Y)
		if !onScreen {
			continue
		}
		r.putGlyph(sx, sy, d.ent.Glyph, entityStyle(d.ent, gmap.At(d.ent.X, d.ent.Y)))
	}
}

// putGlyph draws one glyph at screen position (x, y), padding wide runes.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
