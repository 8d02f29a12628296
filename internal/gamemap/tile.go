package gamemap

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileGround
)

var (
	colorDarkWallSurface    = tcell.NewRGBColor(43, 0, 0)
	colorDarkWall           = tcell.ColorDarkRed
	colorLightWallSurface   = tcell.NewRGBColor(93, 10, 10)
	colorLightWall          = tcell.NewRGBColor(127, 30, 20)
	colorDarkGroundSurface  = tcell.NewRGBColor(15, 8, 8)
	colorDarkGround         = tcell.NewRGBColor(20, 10, 10)
	colorLightGroundSurface = tcell.NewRGBColor(150, 101, 90)
	colorLightGround        = tcell.NewRGBColor(170, 131, 96)
)

// Tile holds the traversability, visibility and display hints for one map cell.
// Display fields are opaque to the simulation.
type Tile struct {
	Kind       TileKind `json:"kind"`
	Blocked    bool     `json:"blocked"`
	BlockSight bool     `json:"block_sight"`
	Explored   bool     `json:"explored"`

	Surface     rune        `json:"surface"`
	LitColor    tcell.Color `json:"lit_color"`
	DarkColor   tcell.Color `json:"dark_color"`
	SurfaceLit  tcell.Color `json:"surface_lit"`
	SurfaceDark tcell.Color `json:"surface_dark"`
}

// surfaceBand is a decorative glyph chosen when a roll exceeds threshold.
type surfaceBand struct {
	threshold float64
	glyph     rune
}

var groundBands = []surfaceBand{{0.95, '('}, {0.9, '-'}, {0.85, '"'}}

var wallBands = []surfaceBand{
	{0.95, '.'}, {0.9, '#'}, {0.85, ':'}, {0.8, '/'}, {0.75, '`'},
	{0.7, '*'}, {0.65, '%'}, {0.6, '\''}, {0.55, '^'}, {0.5, '['},
}

// pickSurface returns a decorative glyph and whether a surface band matched.
// A nil rng always yields the plain glyph.
func pickSurface(rng *rand.Rand, bands []surfaceBand) (rune, bool) {
	if rng == nil {
		return '.', false
	}
	roll := rng.Float64()
	for _, b := range bands {
		if roll > b.threshold {
			return b.glyph, true
		}
	}
	return '.', false
}

// MakeGround returns a passable, transparent ground tile.
func MakeGround(rng *rand.Rand) Tile {
	t := Tile{
		Kind:        TileGround,
		LitColor:    colorLightGround,
		DarkColor:   colorDarkGround,
		Surface:     '.',
		SurfaceLit:  colorLightGround,
		SurfaceDark: colorDarkGround,
	}
	if g, ok := pickSurface(rng, groundBands); ok {
		t.Surface = g
		t.SurfaceLit = colorLightGroundSurface
		t.SurfaceDark = colorDarkGroundSurface
	}
	return t
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall(rng *rand.Rand) Tile {
	t := Tile{
		Kind:        TileWall,
		Blocked:     true,
		BlockSight:  true,
		LitColor:    colorLightWall,
		DarkColor:   colorDarkWall,
		Surface:     '.',
		SurfaceLit:  colorLightWall,
		SurfaceDark: colorDarkWall,
	}
	if g, ok := pickSurface(rng, wallBands); ok {
		t.Surface = g
		t.SurfaceLit = colorLightWallSurface
		t.SurfaceDark = colorDarkWallSurface
	}
	return t
}
