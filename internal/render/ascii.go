package render

import (
	"strings"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/gamemap"
)

// tileChar is the plain-text character for a map tile.
func tileChar(t *gamemap.Tile) rune {
	if t.Kind == gamemap.TileWall {
		return '#'
	}
	return '.'
}

// ASCII renders the whole level as text, one line per map row. Entity glyphs
// are drawn over the terrain, higher draw order last.
func ASCII(gmap *gamemap.GameMap, w *ecs.World) string {
	grid := make([][]rune, gmap.Height)
	for y := range grid {
		grid[y] = make([]rune, gmap.Width)
		for x := range grid[y] {
			grid[y][x] = tileChar(gmap.At(x, y))
		}
	}
	for pass := 0; pass <= 3; pass++ {
		for i, ent := range w.All() {
			if drawOrder(ecs.EntityID(i), ent) == pass && gmap.InBounds(ent.X, ent.Y) {
				grid[ent.Y][ent.X] = ent.Glyph
			}
		}
	}

	var b strings.Builder
	b.Grow((gmap.Width + 1) * gmap.Height)
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
