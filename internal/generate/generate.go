// Package generate builds dungeon levels: the tile grid, the rooms and the
// entities that live in them.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/factory"
	"halls-of-ruzt/internal/gamemap"
	"halls-of-ruzt/internal/transition"
)

var (
	// ErrNoPlayer is returned when the world does not hold the player at index 0.
	ErrNoPlayer = errors.New("generate: world has no player at index 0")
	// ErrNoRooms is returned when no room could be placed.
	ErrNoRooms = errors.New("generate: no room placed")
	// ErrMapTooSmall is returned when the map cannot hold a room interior.
	ErrMapTooSmall = errors.New("generate: map too small")
)

// Default map and room parameters.
const (
	DefaultWidth  = 80
	DefaultHeight = 68
	RoomMinSize   = 6
	RoomMaxSize   = 10
	MaxRooms      = 32
)

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	RoomMinSize   int
	RoomMaxSize   int
	MaxRooms      int
	Depth         uint32
	Rand          *rand.Rand
}

// DefaultConfig returns the standard parameters for depth. A nil rng is
// replaced by a time-seeded one.
func DefaultConfig(depth uint32, rng *rand.Rand) *Config {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		RoomMinSize: RoomMinSize,
		RoomMaxSize: RoomMaxSize,
		MaxRooms:    MaxRooms,
		Depth:       depth,
		Rand:        rng,
	}
}

// resetWorld drops every entity except the player.
func resetWorld(world *ecs.World) (*ecs.Entity, error) {
	p := world.Player()
	if p == nil || !p.Tags.Has(component.TagPlayer) {
		return nil, ErrNoPlayer
	}
	world.Truncate(1)
	return p, nil
}

// MakeMap builds a standard level: rooms placed at random and chained by
// L-shaped tunnels. The player spawns at the first room's center and the
// stairs at the last room's center.
func MakeMap(world *ecs.World, cfg *Config) (*gamemap.GameMap, error) {
	player, err := resetWorld(world)
	if err != nil {
		return nil, err
	}
	maxSize := min(cfg.RoomMaxSize, cfg.Width-1, cfg.Height-1)
	if maxSize < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMapTooSmall, cfg.Width, cfg.Height)
	}
	minSize := min(cfg.RoomMinSize, maxSize)
	gmap := gamemap.New(cfg.Width, cfg.Height, cfg.Rand)
	allowOverlap := transition.RoomOverlap.At(cfg.Depth) != 0

	for range cfg.MaxRooms {
		w := minSize + cfg.Rand.Intn(maxSize-minSize+1)
		h := minSize + cfg.Rand.Intn(maxSize-minSize+1)
		x := cfg.Rand.Intn(cfg.Width - w)
		y := cfg.Rand.Intn(cfg.Height - h)
		room := gamemap.NewRect(x, y, w, h)

		if !allowOverlap && overlapsAny(room, gmap.Rooms) {
			continue
		}
		carveRoom(gmap, room, cfg)

		cx, cy := room.Center()
		if len(gmap.Rooms) == 0 {
			player.SetPos(cx, cy)
		} else {
			px, py := gmap.Rooms[len(gmap.Rooms)-1].Center()
			carveCorridor(gmap, px, py, cx, cy, cfg)
		}
		populate(gmap, world, room, cfg)
		gmap.Rooms = append(gmap.Rooms, room)
	}

	if len(gmap.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	lx, ly := gmap.Rooms[len(gmap.Rooms)-1].Center()
	world.Push(factory.NewStairs(lx, ly))
	return gmap, nil
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// MakeBossMap builds the boss arena: one room spanning the map, the player
// near the top wall and the boss at the center. No stairs exist until the
// boss dies.
func MakeBossMap(world *ecs.World, cfg *Config) (*gamemap.GameMap, error) {
	player, err := resetWorld(world)
	if err != nil {
		return nil, err
	}
	if cfg.Width < 5 || cfg.Height < 6 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMapTooSmall, cfg.Width, cfg.Height)
	}
	gmap := gamemap.New(cfg.Width, cfg.Height, cfg.Rand)
	arena := gamemap.NewRect(0, 0, cfg.Width-2, cfg.Height-2)
	carveRoom(gmap, arena, cfg)
	gmap.Rooms = append(gmap.Rooms, arena)

	cx, cy := arena.Center()
	player.SetPos(cx, 3)
	world.Push(factory.NewBoss(cx, cy))
	return gmap, nil
}

// Build picks the algorithm for cfg.Depth from the level type schedule.
func Build(world *ecs.World, cfg *Config) (*gamemap.GameMap, error) {
	if transition.LevelType.At(cfg.Depth) == transition.LevelBoss {
		return MakeBossMap(world, cfg)
	}
	return MakeMap(world, cfg)
}
