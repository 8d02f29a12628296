package gamemap

import (
	"math/rand"
	"testing"
)

func TestInBounds(t *testing.T) {
	m := New(10, 8, nil)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsBlocked(t *testing.T) {
	m := New(5, 5, nil)
	// all walls initially
	if !m.IsBlocked(2, 2) {
		t.Error("wall tile should be blocked")
	}
	m.Set(2, 2, MakeGround(nil))
	if m.IsBlocked(2, 2) {
		t.Error("ground tile should not be blocked")
	}
	// out of bounds
	if !m.IsBlocked(-1, 0) {
		t.Error("out-of-bounds should be blocked")
	}
}

func TestNewRectAndCenter(t *testing.T) {
	r := NewRect(2, 4, 6, 8)
	if r.X2 != 8 || r.Y2 != 12 {
		t.Fatalf("NewRect far corner = (%d,%d); want (8,12)", r.X2, r.Y2)
	}
	cx, cy := r.Center()
	if cx != 5 || cy != 8 {
		t.Errorf("expected center (5,8), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestRectContainsExcludesWalls(t *testing.T) {
	r := Rect{0, 0, 4, 4}
	if r.Contains(0, 2) || r.Contains(4, 2) {
		t.Error("bounding walls must not count as interior")
	}
	if !r.Contains(1, 1) || !r.Contains(3, 3) {
		t.Error("interior corners should be contained")
	}
}

func TestBlocksSight(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		x, y int
		want bool
	}{
		{"wall is opaque", MakeWall(nil), 2, 2, true},
		{"ground is transparent", MakeGround(nil), 2, 2, false},
		{"out-of-bounds x=-1", MakeWall(nil), -1, 0, true},
		{"out-of-bounds beyond width", MakeWall(nil), 10, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5, nil)
			if m.InBounds(tc.x, tc.y) {
				m.Set(tc.x, tc.y, tc.tile)
			}
			if got := m.BlocksSight(tc.x, tc.y); got != tc.want {
				t.Errorf("BlocksSight(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestMarkExplored(t *testing.T) {
	m := New(3, 3, nil)
	m.MarkExplored(1, 1)
	m.MarkExplored(-5, 9) // ignored
	if !m.At(1, 1).Explored {
		t.Error("tile should be explored after MarkExplored")
	}
	if m.At(0, 0).Explored {
		t.Error("untouched tile should remain unexplored")
	}
}

func TestSurfaceIsCosmeticOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 200 {
		g := MakeGround(rng)
		if g.Blocked || g.BlockSight || g.Kind != TileGround {
			t.Fatalf("ground surface variant changed traversability: %+v", g)
		}
		w := MakeWall(rng)
		if !w.Blocked || !w.BlockSight || w.Kind != TileWall {
			t.Fatalf("wall surface variant changed traversability: %+v", w)
		}
	}
}
