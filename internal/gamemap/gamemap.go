package gamemap

import "math/rand"

// Rect is an axis-aligned rectangle used for rooms. The edges X1/X2/Y1/Y2 are
// the room's bounding walls; only the interior is carved.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies strictly inside the bounding walls.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// GameMap holds the tile grid and room list for one dungeon level.
// Dimensions are fixed for the whole run.
type GameMap struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`
	Rooms  []Rect   `json:"rooms"`
}

// New creates a GameMap filled with walls. rng only picks decorative surfaces
// and may be nil.
func New(width, height int, rng *rand.Rand) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall(rng)
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsBlocked reports whether terrain prevents movement into (x, y).
// Out-of-bounds cells are blocked.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

// BlocksSight reports whether (x, y) stops line of sight.
// Out-of-bounds cells block sight.
func (m *GameMap) BlocksSight(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].BlockSight
}

// MarkExplored flags (x, y) as seen at least once.
func (m *GameMap) MarkExplored(x, y int) {
	if m.InBounds(x, y) {
		m.Tiles[y][x].Explored = true
	}
}
