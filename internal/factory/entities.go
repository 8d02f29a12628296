// Package factory builds the concrete entities that populate a dungeon.
package factory

import (
	"math/rand"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

var (
	colorPlayer   = tcell.ColorWhite
	colorOrc      = tcell.NewRGBColor(63, 127, 63)
	colorTroll    = tcell.NewRGBColor(127, 95, 0)
	colorSkeleton = tcell.NewRGBColor(222, 211, 195)
	colorSpectre  = tcell.NewRGBColor(0, 63, 127)
	colorBoss     = tcell.NewRGBColor(127, 0, 31)
	colorHeal     = tcell.ColorViolet
	colorBolt     = tcell.ColorLightYellow
	colorFireball = tcell.NewRGBColor(255, 63, 63)
	colorConfuse  = tcell.NewRGBColor(255, 255, 191)
	colorArtifact = tcell.ColorGold
	colorSword    = tcell.NewRGBColor(0, 191, 255)
	colorShield   = tcell.ColorDarkOrange
	colorDagger   = tcell.ColorLightSkyBlue
	colorStairs   = tcell.ColorWhite
)

// MonsterKind selects a monster template.
type MonsterKind uint8

const (
	Orc MonsterKind = iota
	Troll
	Skeleton
	Spectre
)

type monsterTemplate struct {
	glyph                  rune
	color                  tcell.Color
	name                   string
	hp, defense, power, xp int
}

var monsterTemplates = [...]monsterTemplate{
	Orc:      {'o', colorOrc, "Orc", 10, 0, 3, 35},
	Troll:    {'T', colorTroll, "Troll", 30, 2, 4, 100},
	Skeleton: {'s', colorSkeleton, "Skeleton", 25, 1, 6, 200},
	Spectre:  {'S', colorSpectre, "Spectre", 43, 4, 9, 250},
}

func (k MonsterKind) String() string {
	if int(k) < len(monsterTemplates) {
		return monsterTemplates[k].name
	}
	return "unknown"
}

// Player starting stats.
const (
	PlayerHP      = 30
	PlayerDefense = 2
	PlayerPower   = 3
)

// NewPlayer creates the player with a starting dagger already equipped.
func NewPlayer(name string) *ecs.Entity {
	p := ecs.New(0, 0, '@', colorPlayer, name, true)
	p.Alive = true
	p.Tags = component.TagPlayer
	p.Fighter = component.NewFighter(PlayerHP, PlayerDefense, PlayerPower, 0, component.DeathPlayer)

	dagger := ecs.New(0, 0, '-', colorDagger, "dagger", false)
	dagger.Item = &component.Item{Kind: component.ItemSword}
	dagger.Equipment = &component.Equipment{
		Slot:       component.SlotLeftHand,
		Equipped:   true,
		PowerBonus: 2,
	}
	p.Inventory = append(p.Inventory, dagger)
	return p
}

// NewMonster creates a live monster with Basic AI.
func NewMonster(kind MonsterKind, x, y int) *ecs.Entity {
	t := monsterTemplates[kind]
	m := ecs.New(x, y, t.glyph, t.color, t.name, true)
	m.Alive = true
	m.Fighter = component.NewFighter(t.hp, t.defense, t.power, t.xp, component.DeathMonster)
	m.AI = component.BasicAI()
	return m
}

// Boss stats.
const (
	BossHP      = 50
	BossDefense = 8
	BossPower   = 11
	BossXP      = 1000
)

// NewBoss creates the scripted boss whose death opens the way down.
func NewBoss(x, y int) *ecs.Entity {
	b := ecs.New(x, y, 'B', colorBoss, "Boss", true)
	b.Alive = true
	b.Tags = component.TagBoss
	b.Fighter = component.NewFighter(BossHP, BossDefense, BossPower, BossXP, component.DeathBoss)
	b.AI = component.BasicAI()
	return b
}

// NewItem creates an always-visible item of kind. rng names and prices
// artifacts and may be nil for other kinds.
func NewItem(kind component.ItemKind, x, y int, rng *rand.Rand) *ecs.Entity {
	var e *ecs.Entity
	switch kind {
	case component.ItemHeal:
		e = ecs.New(x, y, '!', colorHeal, "health potion", false)
	case component.ItemLightning:
		e = ecs.New(x, y, '#', colorBolt, "scroll of lightning bolt", false)
	case component.ItemFireball:
		e = ecs.New(x, y, '#', colorFireball, "scroll of fireball", false)
	case component.ItemConfuse:
		e = ecs.New(x, y, '#', colorConfuse, "scroll of confusion", false)
	case component.ItemArtifact:
		e = ecs.New(x, y, '{', colorArtifact, "artifact", false)
		e.Item = &component.Item{
			Kind:  kind,
			Name:  ArtifactName(rng, 2, 7),
			Value: ArtifactValue(rng),
		}
	case component.ItemSword:
		e = ecs.New(x, y, '/', colorSword, "sword", false)
		e.Equipment = &component.Equipment{Slot: component.SlotRightHand, PowerBonus: 3}
	case component.ItemShield:
		e = ecs.New(x, y, '[', colorShield, "shield", false)
		e.Equipment = &component.Equipment{Slot: component.SlotLeftHand, DefenseBonus: 1}
	default:
		return nil
	}
	if e.Item == nil {
		e.Item = &component.Item{Kind: kind}
	}
	e.AlwaysVisible = true
	return e
}

// NewStairs creates the always-visible exit to the next level.
func NewStairs(x, y int) *ecs.Entity {
	s := ecs.New(x, y, '<', colorStairs, "stairs", false)
	s.AlwaysVisible = true
	s.Tags = component.TagStairs
	return s
}
