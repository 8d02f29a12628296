package game

import (
	"math/rand"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/gamemap"
	"halls-of-ruzt/internal/system"
)

// Autopilot plays a headless run: it fights what it sees, heals when low,
// hoards items and heads for the stairs.
type Autopilot struct {
	rng *rand.Rand
}

// NewAutopilot returns a pilot drawing tie-breaks from rng.
func NewAutopilot(rng *rand.Rand) *Autopilot {
	return &Autopilot{rng: rng}
}

var directions = [8][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Upgrade picks a level-up choice.
func (a *Autopilot) Upgrade() system.Upgrade {
	return system.Upgrade(a.rng.Intn(3))
}

// Next chooses the action for the current state.
func (a *Autopilot) Next(e *Engine) Action {
	player := e.World.Player()
	if !player.Alive {
		return Quit
	}
	if player.Fighter.HP*3 < player.MaxHP() {
		if slot, ok := inventorySlot(e, component.ItemHeal); ok {
			return Use(slot)
		}
	}
	if _, ok := e.World.ItemAt(player.X, player.Y); ok && len(player.Inventory) < system.InventoryLimit {
		return PickUp
	}
	if _, ok := e.World.StairsAt(player.X, player.Y); ok {
		return Descend
	}
	if id, ok := e.World.ClosestMonster(e.FOV, system.TorchRadius); ok {
		m := e.World.Get(id)
		if step, ok := stepToward(e.Map, player.X, player.Y, m.X, m.Y); ok {
			return Move(step[0], step[1])
		}
	}
	for _, ent := range e.World.All() {
		if ent.Tags.Has(component.TagStairs) {
			if step, ok := stepToward(e.Map, player.X, player.Y, ent.X, ent.Y); ok {
				return Move(step[0], step[1])
			}
		}
	}
	d := directions[a.rng.Intn(len(directions))]
	return Move(d[0], d[1])
}

func inventorySlot(e *Engine, kind component.ItemKind) (int, bool) {
	for i, it := range e.World.Player().Inventory {
		if it.Item != nil && it.Item.Kind == kind {
			return i, true
		}
	}
	return 0, false
}

// stepToward returns the first step of a shortest terrain path from (sx,sy)
// to (tx,ty), found by breadth-first search over open tiles.
func stepToward(m *gamemap.GameMap, sx, sy, tx, ty int) ([2]int, bool) {
	if sx == tx && sy == ty {
		return [2]int{}, false
	}
	first := make([][][2]int, m.Height)
	visited := make([][]bool, m.Height)
	for y := range visited {
		visited[y] = make([]bool, m.Width)
		first[y] = make([][2]int, m.Width)
	}
	visited[sy][sx] = true
	queue := [][2]int{{sx, sy}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			if !m.InBounds(nx, ny) || visited[ny][nx] {
				continue
			}
			// the target may be a blocking entity; only terrain matters here
			if m.IsBlocked(nx, ny) && (nx != tx || ny != ty) {
				continue
			}
			visited[ny][nx] = true
			if cur[0] == sx && cur[1] == sy {
				first[ny][nx] = d
			} else {
				first[ny][nx] = first[cur[1]][cur[0]]
			}
			if nx == tx && ny == ty {
				return first[ny][nx], true
			}
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return [2]int{}, false
}
