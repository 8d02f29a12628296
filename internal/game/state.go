package game

import (
	"errors"
	"fmt"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"
)

// ErrBadState is returned when a saved state cannot describe a run.
var ErrBadState = errors.New("game: invalid saved state")

// BusState is the persisted form of the event bus.
type BusState struct {
	Events   []event.GameEvent `json:"events"`
	Tail     int               `json:"tail"`
	Capacity int               `json:"capacity"`
	Written  uint64            `json:"written"`
}

// State is everything needed to resume a run.
type State struct {
	DungeonLevel   uint32            `json:"dungeon_level"`
	Map            *gamemap.GameMap  `json:"map"`
	Entities       []*ecs.Entity     `json:"entities"`
	Bus            BusState          `json:"bus"`
	Cursors        map[string]uint64 `json:"cursors"`
	Messages       []Message         `json:"messages"`
	PendingUpgrade bool              `json:"pending_upgrade"`
	Stats          RunLog            `json:"stats"`
}

// State captures the engine for persistence. The result shares memory with
// the engine and must be encoded before the next turn.
func (e *Engine) State() State {
	return State{
		DungeonLevel: e.DungeonLevel,
		Map:          e.Map,
		Entities:     e.World.All(),
		Bus: BusState{
			Events:   e.Bus.Events(),
			Tail:     e.Bus.Tail(),
			Capacity: e.Bus.Capacity(),
			Written:  e.Bus.Written(),
		},
		Cursors:        e.Processors.Cursors(),
		Messages:       e.Messages.All(),
		PendingUpgrade: e.PendingUpgrade,
		Stats:          e.Stats.Log,
	}
}

// Restore resumes a run from st. The bus keeps its saved capacity so reader
// positions stay meaningful.
func Restore(cfg config.Config, st State, opts ...Option) (*Engine, error) {
	if st.Map == nil {
		return nil, fmt.Errorf("%w: no map", ErrBadState)
	}
	if len(st.Entities) == 0 || !st.Entities[0].Tags.Has(component.TagPlayer) {
		return nil, fmt.Errorf("%w: no player at index 0", ErrBadState)
	}
	e := newEngine(cfg, opts...)
	e.DungeonLevel = st.DungeonLevel
	e.Map = st.Map
	e.World = ecs.FromEntities(st.Entities)
	bus := event.RestoreBus(st.Bus.Events, st.Bus.Tail, st.Bus.Capacity, st.Bus.Written)
	if err := e.attachBus(bus); err != nil {
		return nil, err
	}
	e.Processors.RestoreCursors(st.Cursors)
	e.Messages.Restore(st.Messages)
	e.PendingUpgrade = st.PendingUpgrade
	e.Stats.Log = st.Stats
	if e.Stats.Log.EnemiesKilled == nil {
		e.Stats.Log.EnemiesKilled = make(map[string]int)
	}
	e.refreshFOV()
	return e, nil
}
