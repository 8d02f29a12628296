package system

import (
	"testing"

	"halls-of-ruzt/internal/gamemap"
)

func TestFOVOriginAlwaysVisible(t *testing.T) {
	m := openMap(20, 20)
	fov := NewShadowFOV(5)
	fov.Compute(m, 5, 5)

	if !fov.IsVisible(5, 5) {
		t.Error("player's own tile must always be visible")
	}
	if !m.At(5, 5).Explored {
		t.Error("player's own tile must be marked explored")
	}
}

func TestFOVRadiusLimit(t *testing.T) {
	m := openMap(30, 30)
	fov := NewShadowFOV(4)
	fov.Compute(m, 15, 15)

	if !fov.IsVisible(17, 15) {
		t.Error("tile within radius should be visible")
	}
	if fov.IsVisible(25, 15) {
		t.Error("tile beyond radius should not be visible")
	}
	if m.At(25, 15).Explored {
		t.Error("unseen tile should stay unexplored")
	}
}

func TestFOVWallBlocksSight(t *testing.T) {
	m := openMap(20, 20)
	for y := 1; y < 19; y++ {
		m.Set(8, y, gamemap.MakeWall(nil))
	}
	fov := NewShadowFOV(10)
	fov.Compute(m, 5, 10)

	if !fov.IsVisible(8, 10) {
		t.Error("the wall itself should be visible")
	}
	if fov.IsVisible(10, 10) {
		t.Error("tile behind the wall should be hidden")
	}
}

func TestFOVRecomputeClears(t *testing.T) {
	m := openMap(30, 30)
	fov := NewShadowFOV(3)
	fov.Compute(m, 5, 5)
	fov.Compute(m, 20, 20)

	if fov.IsVisible(5, 5) {
		t.Error("old origin should no longer be visible")
	}
	if !m.At(5, 5).Explored {
		t.Error("explored flag persists across recomputes")
	}
}

func TestFOVOutOfBoundsQuery(t *testing.T) {
	fov := NewShadowFOV(3)
	if fov.IsVisible(0, 0) {
		t.Error("an uncomputed field of view sees nothing")
	}
	fov.Compute(openMap(5, 5), 2, 2)
	if fov.IsVisible(-1, 2) || fov.IsVisible(2, 9) {
		t.Error("out-of-bounds cells are never visible")
	}
}
