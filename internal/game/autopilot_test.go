package game

import (
	"math/rand"
	"testing"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/factory"
	"halls-of-ruzt/internal/gamemap"
)

func TestStepTowardRoutesAroundWalls(t *testing.T) {
	m := openMap(10, 10)
	// wall across x=5 except a gap at y=8
	for y := 1; y < 8; y++ {
		m.Set(5, y, gamemap.MakeWall(nil))
	}
	step, ok := stepToward(m, 3, 3, 7, 3)
	if !ok {
		t.Fatal("target should be reachable through the gap")
	}
	if step[1] != 1 {
		t.Errorf("first step = %v; want a move toward the gap at y=8", step)
	}
}

func TestStepTowardUnreachable(t *testing.T) {
	m := openMap(10, 10)
	for y := range 10 {
		m.Set(5, y, gamemap.MakeWall(nil))
	}
	if _, ok := stepToward(m, 2, 2, 7, 2); ok {
		t.Error("a sealed target must be unreachable")
	}
}

func TestAutopilotPicksUpAndDescends(t *testing.T) {
	e := newTestEngine(t, config.Default())
	pilot := NewAutopilot(rand.New(rand.NewSource(1)))

	e.World.Push(factory.NewStairs(5, 5))
	e.World.Push(factory.NewItem(component.ItemHeal, 5, 5, nil))
	if got := pilot.Next(e); got != PickUp {
		t.Errorf("Next = %+v; want pick up", got)
	}
	e.Turn(PickUp)
	if got := pilot.Next(e); got != Descend {
		t.Errorf("Next = %+v; want descend", got)
	}
}

func TestAutopilotRunDoesNotStall(t *testing.T) {
	cfg := config.Default()
	cfg.Events.DrainAll = true
	e, err := New(cfg, WithLogger(quietLogger()), WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatal(err)
	}
	pilot := NewAutopilot(rand.New(rand.NewSource(5)))
	for range 500 {
		if e.GameOver() {
			break
		}
		if e.PendingUpgrade {
			e.ChooseUpgrade(pilot.Upgrade())
			continue
		}
		if e.Turn(pilot.Next(e)) == Exit {
			break
		}
	}
	if e.Stats.Log.DepthReached < 1 {
		t.Errorf("depth reached = %d", e.Stats.Log.DepthReached)
	}
}
