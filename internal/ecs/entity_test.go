package ecs

import (
	"errors"
	"testing"

	"halls-of-ruzt/internal/component"

	"github.com/gdamore/tcell/v2"
)

func newFighter() *Entity {
	e := New(0, 0, '@', tcell.ColorWhite, "hero", true)
	e.Alive = true
	e.Fighter = component.NewFighter(30, 2, 3, 0, component.DeathPlayer)
	return e
}

func newGear(name string, slot component.Slot, hp, pow, def int, equipped bool) *Entity {
	it := New(0, 0, '/', tcell.ColorWhite, name, false)
	it.Item = &component.Item{Kind: component.ItemSword}
	it.Equipment = &component.Equipment{
		Slot:         slot,
		Equipped:     equipped,
		MaxHPBonus:   hp,
		PowerBonus:   pow,
		DefenseBonus: def,
	}
	return it
}

func TestDerivedStatsSumEquippedOnly(t *testing.T) {
	e := newFighter()
	e.Inventory = []*Entity{
		newGear("dagger", component.SlotLeftHand, 0, 2, 0, true),
		newGear("helm", component.SlotHead, 5, 0, 1, true),
		newGear("sword", component.SlotRightHand, 0, 3, 0, false),
	}
	if got := e.Power(); got != 3+2 {
		t.Errorf("Power() = %d; want 5", got)
	}
	if got := e.Defense(); got != 2+1 {
		t.Errorf("Defense() = %d; want 3", got)
	}
	if got := e.MaxHP(); got != 30+5 {
		t.Errorf("MaxHP() = %d; want 35", got)
	}
}

func TestDerivedStatsRecomputedOnAccess(t *testing.T) {
	e := newFighter()
	sword := newGear("sword", component.SlotRightHand, 0, 3, 0, false)
	e.Inventory = []*Entity{sword}
	if e.Power() != 3 {
		t.Fatalf("Power() before equip = %d; want 3", e.Power())
	}
	if _, err := sword.Equip(); err != nil {
		t.Fatal(err)
	}
	if e.Power() != 6 {
		t.Errorf("Power() after equip = %d; want 6", e.Power())
	}
	e.Fighter.BasePower = 10
	if e.Power() != 13 {
		t.Errorf("Power() after base change = %d; want 13", e.Power())
	}
}

func TestEquipIdempotent(t *testing.T) {
	sword := newGear("sword", component.SlotRightHand, 0, 3, 0, false)
	changed, err := sword.Equip()
	if err != nil || !changed {
		t.Fatalf("first Equip() = %v, %v; want true, nil", changed, err)
	}
	changed, err = sword.Equip()
	if err != nil || changed {
		t.Errorf("second Equip() = %v, %v; want false, nil", changed, err)
	}
	if !sword.Equipment.Equipped {
		t.Error("item should remain equipped")
	}
}

func TestUnequipIdempotent(t *testing.T) {
	sword := newGear("sword", component.SlotRightHand, 0, 3, 0, true)
	changed, err := sword.Unequip()
	if err != nil || !changed {
		t.Fatalf("first Unequip() = %v, %v; want true, nil", changed, err)
	}
	if sword.Equipment.Equipped {
		t.Fatal("Unequip should clear the equipped flag")
	}
	changed, err = sword.Unequip()
	if err != nil || changed {
		t.Errorf("second Unequip() = %v, %v; want false, nil", changed, err)
	}
}

func TestEquipRequiresComponents(t *testing.T) {
	cases := []struct {
		name    string
		entity  *Entity
		wantErr error
	}{
		{"no item", newFighter(), ErrNotItem},
		{"item without equipment", func() *Entity {
			e := New(0, 0, '!', tcell.ColorWhite, "potion", false)
			e.Item = &component.Item{Kind: component.ItemHeal}
			return e
		}(), ErrNotEquipment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changed, err := tc.entity.Equip()
			if !errors.Is(err, tc.wantErr) || changed {
				t.Errorf("Equip() = %v, %v; want false, %v", changed, err, tc.wantErr)
			}
			changed, err = tc.entity.Unequip()
			if !errors.Is(err, tc.wantErr) || changed {
				t.Errorf("Unequip() = %v, %v; want false, %v", changed, err, tc.wantErr)
			}
		})
	}
}

func TestHealClampsToMaxHP(t *testing.T) {
	e := newFighter()
	e.Inventory = []*Entity{newGear("amulet", component.SlotHead, 10, 0, 0, true)}
	e.Fighter.HP = 35
	e.Heal(100)
	if e.Fighter.HP != 40 {
		t.Errorf("hp = %d; want 40 (base 30 + bonus 10)", e.Fighter.HP)
	}
}

func TestEquippedInSlot(t *testing.T) {
	e := newFighter()
	e.Inventory = []*Entity{
		newGear("sword", component.SlotRightHand, 0, 3, 0, false),
		newGear("dagger", component.SlotLeftHand, 0, 2, 0, true),
	}
	if i, ok := e.EquippedInSlot(component.SlotLeftHand); !ok || i != 1 {
		t.Errorf("EquippedInSlot(left) = %d, %v; want 1, true", i, ok)
	}
	if _, ok := e.EquippedInSlot(component.SlotRightHand); ok {
		t.Error("right hand holds an unequipped item and should report empty")
	}
	if n := len(e.AllEquipped()); n != 1 {
		t.Errorf("AllEquipped() len = %d; want 1", n)
	}
}

func TestDistance(t *testing.T) {
	a := New(0, 0, 'a', tcell.ColorWhite, "a", false)
	b := New(3, 4, 'b', tcell.ColorWhite, "b", false)
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %v; want 5", d)
	}
}
