package generate

import "halls-of-ruzt/internal/gamemap"

// carveRoom grounds the interior of room, leaving its bounding walls intact.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect, cfg *Config) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.MakeGround(cfg.Rand))
			}
		}
	}
}

// carveCorridor digs an L-shaped tunnel from (x1,y1) to (x2,y2). The bend
// goes either horizontal-first or vertical-first with equal odds.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.Rand.Intn(2) == 0 {
		carveH(gmap, x1, x2, y1, cfg)
		carveV(gmap, y1, y2, x2, cfg)
	} else {
		carveV(gmap, y1, y2, x1, cfg)
		carveH(gmap, x1, x2, y2, cfg)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int, cfg *Config) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeGround(cfg.Rand))
		}
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int, cfg *Config) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeGround(cfg.Rand))
		}
	}
}
