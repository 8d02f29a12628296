package ecs

import (
	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/gamemap"
)

// EntityID is a dense index into the world. IDs are stable until an entity
// is removed or the world is truncated.
type EntityID int

// PlayerID is the index of the player. The player is always present.
const PlayerID EntityID = 0

// World is the dense, ordered entity collection for one level.
type World struct {
	entities []*Entity
}

// NewWorld creates a world holding only the player.
func NewWorld(player *Entity) *World {
	return &World{entities: []*Entity{player}}
}

// FromEntities rebuilds a world from a saved ordered list. The first entry
// must be the player.
func FromEntities(entities []*Entity) *World {
	return &World{entities: entities}
}

// Player returns the entity at PlayerID.
func (w *World) Player() *Entity {
	if len(w.entities) == 0 {
		return nil
	}
	return w.entities[PlayerID]
}

// Get returns the entity at id, or nil.
func (w *World) Get(id EntityID) *Entity {
	if id < 0 || int(id) >= len(w.entities) {
		return nil
	}
	return w.entities[id]
}

// Len returns the number of entities in the world.
func (w *World) Len() int { return len(w.entities) }

// All returns the backing slice in id order.
func (w *World) All() []*Entity { return w.entities }

// Push appends e and returns its id.
func (w *World) Push(e *Entity) EntityID {
	w.entities = append(w.entities, e)
	return EntityID(len(w.entities) - 1)
}

// SwapRemove removes the entity at id by moving the last entity into its
// slot. It must not be used on the player.
func (w *World) SwapRemove(id EntityID) *Entity {
	e := w.Get(id)
	if e == nil || id == PlayerID {
		return nil
	}
	last := len(w.entities) - 1
	w.entities[id] = w.entities[last]
	w.entities[last] = nil
	w.entities = w.entities[:last]
	return e
}

// Truncate keeps the first n entities.
func (w *World) Truncate(n int) {
	if n < 0 || n >= len(w.entities) {
		return
	}
	clear(w.entities[n:])
	w.entities = w.entities[:n]
}

// Query returns the ids of all entities carrying every listed component,
// in ascending order.
func (w *World) Query(types ...component.Type) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var result []EntityID
	for i, e := range w.entities {
		match := true
		for _, t := range types {
			if !e.Has(t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, EntityID(i))
		}
	}
	return result
}

func (w *World) firstAt(x, y int, pred func(*Entity) bool) (EntityID, bool) {
	for i, e := range w.entities {
		if e.X == x && e.Y == y && pred(e) {
			return EntityID(i), true
		}
	}
	return -1, false
}

// BlockingAt returns the first blocking entity at (x, y).
func (w *World) BlockingAt(x, y int) (EntityID, bool) {
	return w.firstAt(x, y, func(e *Entity) bool { return e.Blocks })
}

// FighterAt returns the first entity with a Fighter at (x, y).
func (w *World) FighterAt(x, y int) (EntityID, bool) {
	return w.firstAt(x, y, func(e *Entity) bool { return e.Fighter != nil })
}

// ItemAt returns the first entity with an Item at (x, y).
func (w *World) ItemAt(x, y int) (EntityID, bool) {
	return w.firstAt(x, y, func(e *Entity) bool { return e.Item != nil })
}

// StairsAt returns the first stairs entity at (x, y).
func (w *World) StairsAt(x, y int) (EntityID, bool) {
	return w.firstAt(x, y, func(e *Entity) bool { return e.Tags.Has(component.TagStairs) })
}

// IsBlocked reports whether terrain or a blocking entity occupies (x, y).
func (w *World) IsBlocked(m *gamemap.GameMap, x, y int) bool {
	if m.IsBlocked(x, y) {
		return true
	}
	_, ok := w.BlockingAt(x, y)
	return ok
}

// ClosestMonster returns the nearest visible AI fighter within maxRange of
// the player.
func (w *World) ClosestMonster(vis gamemap.Visibility, maxRange int) (EntityID, bool) {
	player := w.Player()
	closest := EntityID(-1)
	closestDist := float64(maxRange + 1)
	for i, e := range w.entities {
		id := EntityID(i)
		if id == PlayerID || e.Fighter == nil || e.AI == nil {
			continue
		}
		if !vis.IsVisible(e.X, e.Y) {
			continue
		}
		if d := player.DistanceTo(e); d < closestDist {
			closest = id
			closestDist = d
		}
	}
	return closest, closest >= 0
}
