package generate

import (
	"math/rand"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/factory"
	"halls-of-ruzt/internal/gamemap"
	"halls-of-ruzt/internal/transition"
)

// Weighted pairs a choice with its relative weight.
type Weighted[T any] struct {
	Weight uint32
	Item   T
}

// WeightedChoice picks among weighted items. Zero-weight items are never
// chosen.
type WeightedChoice[T any] struct {
	items []Weighted[T]
	total uint32
}

// NewWeightedChoice builds a chooser over items.
func NewWeightedChoice[T any](items []Weighted[T]) *WeightedChoice[T] {
	wc := &WeightedChoice[T]{items: items}
	for _, it := range items {
		wc.total += it.Weight
	}
	return wc
}

// Sample draws one item. It reports false when every weight is zero.
func (wc *WeightedChoice[T]) Sample(rng *rand.Rand) (T, bool) {
	var zero T
	if wc.total == 0 {
		return zero, false
	}
	roll := uint32(rng.Int63n(int64(wc.total)))
	for _, it := range wc.items {
		if roll < it.Weight {
			return it.Item, true
		}
		roll -= it.Weight
	}
	return zero, false
}

func monsterChoice(depth uint32) *WeightedChoice[factory.MonsterKind] {
	return NewWeightedChoice([]Weighted[factory.MonsterKind]{
		{80, factory.Orc},
		{transition.TrollChance.At(depth), factory.Troll},
		{transition.SkeletonChance.At(depth), factory.Skeleton},
		{transition.SpectreChance.At(depth), factory.Spectre},
	})
}

func itemChoice(depth uint32) *WeightedChoice[component.ItemKind] {
	return NewWeightedChoice([]Weighted[component.ItemKind]{
		{35, component.ItemHeal},
		{transition.LightningChance.At(depth), component.ItemLightning},
		{transition.ConfuseChance.At(depth), component.ItemConfuse},
		{transition.FireballChance.At(depth), component.ItemFireball},
		{transition.ArtifactChance.At(depth), component.ItemArtifact},
		{transition.SwordChance.At(depth), component.ItemSword},
		{transition.ShieldChance.At(depth), component.ItemShield},
	})
}

// randomInterior returns a random tile strictly inside room.
func randomInterior(room gamemap.Rect, rng *rand.Rand) (int, int) {
	x := room.X1 + 1 + rng.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + rng.Intn(room.Y2-room.Y1-1)
	return x, y
}

// populate spawns monsters then items inside room. Spots already blocked by
// terrain or a blocking entity are skipped, so a room may end up with fewer
// entities than rolled.
func populate(gmap *gamemap.GameMap, world *ecs.World, room gamemap.Rect, cfg *Config) {
	monsters := monsterChoice(cfg.Depth)
	numMonsters := cfg.Rand.Intn(int(transition.MaxMonsters.At(cfg.Depth)) + 1)
	for range numMonsters {
		x, y := randomInterior(room, cfg.Rand)
		if world.IsBlocked(gmap, x, y) {
			continue
		}
		kind, ok := monsters.Sample(cfg.Rand)
		if !ok {
			continue
		}
		world.Push(factory.NewMonster(kind, x, y))
	}

	items := itemChoice(cfg.Depth)
	numItems := cfg.Rand.Intn(int(transition.MaxItems.At(cfg.Depth)) + 1)
	for range numItems {
		x, y := randomInterior(room, cfg.Rand)
		if world.IsBlocked(gmap, x, y) {
			continue
		}
		kind, ok := items.Sample(cfg.Rand)
		if !ok {
			continue
		}
		world.Push(factory.NewItem(kind, x, y, cfg.Rand))
	}
}
