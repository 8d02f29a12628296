// Package ecs holds the entity record, its derived stats, and the dense
// index-stable world collection.
package ecs

import (
	"errors"
	"fmt"
	"math"

	"halls-of-ruzt/internal/component"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrNotItem is returned when an item operation targets an entity with no Item.
	ErrNotItem = errors.New("ecs: entity is not an item")
	// ErrNotEquipment is returned when an equip operation targets an entity
	// with no Equipment.
	ErrNotEquipment = errors.New("ecs: entity is not equipment")
)

// Entity is the universal actor, item and feature record. Inventory entries
// are owned sub-entities, not references into the world.
type Entity struct {
	X             int           `json:"x"`
	Y             int           `json:"y"`
	Glyph         rune          `json:"glyph"`
	Color         tcell.Color   `json:"color"`
	Name          string        `json:"name"`
	Blocks        bool          `json:"blocks"`
	Alive         bool          `json:"alive"`
	AlwaysVisible bool          `json:"always_visible"`
	Level         int           `json:"level"`
	Tags          component.Tag `json:"tags,omitempty"`

	Fighter   *component.Fighter   `json:"fighter,omitempty"`
	AI        *component.AI        `json:"ai,omitempty"`
	Item      *component.Item      `json:"item,omitempty"`
	Equipment *component.Equipment `json:"equipment,omitempty"`
	Inventory []*Entity            `json:"inventory,omitempty"`
}

// New returns a bare entity. Entities start not alive at level 1.
func New(x, y int, glyph rune, color tcell.Color, name string, blocks bool) *Entity {
	return &Entity{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
		Level:  1,
	}
}

// Pos returns the entity's position.
func (e *Entity) Pos() (int, int) { return e.X, e.Y }

// SetPos moves the entity without any collision check.
func (e *Entity) SetPos(x, y int) {
	e.X, e.Y = x, y
}

// Distance returns the Euclidean distance from the entity to (x, y).
func (e *Entity) Distance(x, y int) float64 {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance between two entities.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Distance(other.X, other.Y)
}

// Has reports whether the entity carries a component of type t.
func (e *Entity) Has(t component.Type) bool {
	switch t {
	case component.CFighter:
		return e.Fighter != nil
	case component.CAI:
		return e.AI != nil
	case component.CItem:
		return e.Item != nil
	case component.CEquipment:
		return e.Equipment != nil
	}
	return false
}

// equippedBonus sums pick over every equipped item in the inventory.
func (e *Entity) equippedBonus(pick func(*component.Equipment) int) int {
	total := 0
	for _, eq := range e.AllEquipped() {
		total += pick(eq)
	}
	return total
}

// Power is base power plus every equipped power bonus.
func (e *Entity) Power() int {
	base := 0
	if e.Fighter != nil {
		base = e.Fighter.BasePower
	}
	return base + e.equippedBonus(func(eq *component.Equipment) int { return eq.PowerBonus })
}

// Defense is base defense plus every equipped defense bonus.
func (e *Entity) Defense() int {
	base := 0
	if e.Fighter != nil {
		base = e.Fighter.BaseDefense
	}
	return base + e.equippedBonus(func(eq *component.Equipment) int { return eq.DefenseBonus })
}

// MaxHP is base max hp plus every equipped max hp bonus.
func (e *Entity) MaxHP() int {
	base := 0
	if e.Fighter != nil {
		base = e.Fighter.BaseMaxHP
	}
	return base + e.equippedBonus(func(eq *component.Equipment) int { return eq.MaxHPBonus })
}

// Heal adds amount to hp, clamped to MaxHP.
func (e *Entity) Heal(amount int) {
	if e.Fighter == nil {
		return
	}
	e.Fighter.HP += amount
	if maxHP := e.MaxHP(); e.Fighter.HP > maxHP {
		e.Fighter.HP = maxHP
	}
}

func (e *Entity) checkEquippable() error {
	if e.Item == nil {
		return fmt.Errorf("%w: %s", ErrNotItem, e.Name)
	}
	if e.Equipment == nil {
		return fmt.Errorf("%w: %s", ErrNotEquipment, e.Name)
	}
	return nil
}

// Equip marks the item equipped. It reports whether the state changed.
func (e *Entity) Equip() (bool, error) {
	if err := e.checkEquippable(); err != nil {
		return false, err
	}
	if e.Equipment.Equipped {
		return false, nil
	}
	e.Equipment.Equipped = true
	return true, nil
}

// Unequip clears the equipped flag. It reports whether the state changed.
func (e *Entity) Unequip() (bool, error) {
	if err := e.checkEquippable(); err != nil {
		return false, err
	}
	if !e.Equipment.Equipped {
		return false, nil
	}
	e.Equipment.Equipped = false
	return true, nil
}

// AllEquipped returns the equipment of every equipped inventory item.
func (e *Entity) AllEquipped() []*component.Equipment {
	var out []*component.Equipment
	for _, it := range e.Inventory {
		if it.Equipment != nil && it.Equipment.Equipped {
			out = append(out, it.Equipment)
		}
	}
	return out
}

// EquippedInSlot returns the inventory index of the item equipped in slot.
func (e *Entity) EquippedInSlot(slot component.Slot) (int, bool) {
	for i, it := range e.Inventory {
		if it.Equipment != nil && it.Equipment.Equipped && it.Equipment.Slot == slot {
			return i, true
		}
	}
	return -1, false
}
