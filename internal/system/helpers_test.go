package system

import (
	"math/rand"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

type message struct {
	text  string
	color tcell.Color
}

type messageLog struct{ lines []message }

func (m *messageLog) Add(text string, color tcell.Color) {
	m.lines = append(m.lines, message{text, color})
}

func (m *messageLog) last() string {
	if len(m.lines) == 0 {
		return ""
	}
	return m.lines[len(m.lines)-1].text
}

var allVisible = gamemap.VisibilityFunc(func(x, y int) bool { return true })

// openMap creates a w×h map with a wall border and open ground inside.
func openMap(w, h int) *gamemap.GameMap {
	m := gamemap.New(w, h, nil)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.MakeGround(nil))
		}
	}
	return m
}

func newPlayer(x, y int) *ecs.Entity {
	p := ecs.New(x, y, '@', tcell.ColorWhite, "player", true)
	p.Alive = true
	p.Tags = component.TagPlayer
	p.Fighter = component.NewFighter(30, 2, 3, 0, component.DeathPlayer)
	return p
}

func newOrc(x, y int) *ecs.Entity {
	o := ecs.New(x, y, 'o', tcell.ColorGreen, "orc", true)
	o.Alive = true
	o.Fighter = component.NewFighter(10, 0, 3, 35, component.DeathMonster)
	o.AI = component.BasicAI()
	return o
}

// newContext builds a 20×20 arena with the player at (px, py).
func newContext(px, py int) (*Context, *messageLog) {
	msgs := &messageLog{}
	return &Context{
		Map:   openMap(20, 20),
		World: ecs.NewWorld(newPlayer(px, py)),
		Bus:   event.NewBus(event.DefaultCapacity),
		Vis:   allVisible,
		Msgs:  msgs,
		Rand:  rand.New(rand.NewSource(42)),
	}, msgs
}

// published returns the types in the bus in publish order. It assumes the
// ring has not wrapped.
func published(bus *event.Bus) []event.Type {
	var out []event.Type
	for _, ev := range bus.Events() {
		out = append(out, ev.Type)
	}
	return out
}

func countType(bus *event.Bus, t event.Type) int {
	n := 0
	for _, ev := range bus.Events() {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type fixedTargeter struct {
	x, y    int
	monster ecs.EntityID
	ok      bool
}

func (f fixedTargeter) TargetTile(float64) (int, int, bool)        { return f.x, f.y, f.ok }
func (f fixedTargeter) TargetMonster(float64) (ecs.EntityID, bool) { return f.monster, f.ok }
