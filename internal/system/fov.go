package system

import "halls-of-ruzt/internal/gamemap"

// TorchRadius is the default sight radius of the player.
const TorchRadius = 10

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// ShadowFOV is a recursive shadowcasting field of view. It satisfies
// gamemap.Visibility and marks every lit tile explored.
type ShadowFOV struct {
	Radius  int
	width   int
	height  int
	visible []bool
}

// NewShadowFOV returns an empty field of view with the given radius.
func NewShadowFOV(radius int) *ShadowFOV {
	return &ShadowFOV{Radius: radius}
}

// IsVisible reports whether (x, y) was lit by the last Compute.
func (f *ShadowFOV) IsVisible(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.visible[y*f.width+x]
}

// Compute clears visibility and casts light from (ox, oy).
func (f *ShadowFOV) Compute(m *gamemap.GameMap, ox, oy int) {
	if f.width != m.Width || f.height != m.Height {
		f.width, f.height = m.Width, m.Height
		f.visible = make([]bool, m.Width*m.Height)
	} else {
		clear(f.visible)
	}
	if !m.InBounds(ox, oy) {
		return
	}
	f.light(m, ox, oy)
	for _, o := range octants {
		f.castLight(m, ox, oy, 1, 1.0, 0.0, o[0], o[1], o[2], o[3])
	}
}

func (f *ShadowFOV) light(m *gamemap.GameMap, x, y int) {
	f.visible[y*f.width+x] = true
	m.MarkExplored(x, y)
}

// castLight scans one octant row by row, recursing past each opaque run.
// lSlope and rSlope are the slopes of the left and right edges of a cell.
func (f *ShadowFOV) castLight(m *gamemap.GameMap, cx, cy, row int, start, end float64, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(f.Radius * f.Radius)
	newStart := start

	for j := row; j <= f.Radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && m.InBounds(wx, wy) {
				f.light(m, wx, wy)
			}

			opaque := m.BlocksSight(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < f.Radius {
				blocked = true
				f.castLight(m, cx, cy, j+1, start, lSlope, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
