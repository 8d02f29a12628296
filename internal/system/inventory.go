package system

import (
	"errors"
	"fmt"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"

	"github.com/gdamore/tcell/v2"
)

// InventoryLimit is the number of items the player can carry.
const InventoryLimit = 26

// PickUp moves the item entity id from the world into the player's
// inventory. Equipment is equipped at once when its slot is free.
func PickUp(c *Context, id ecs.EntityID) bool {
	player := c.World.Player()
	item := c.World.Get(id)
	if item == nil || id == ecs.PlayerID {
		return false
	}
	if len(player.Inventory) >= InventoryLimit {
		c.Msgs.Add(fmt.Sprintf("Your pockets are full, you can't pick up the %s.", item.Name), tcell.ColorRed)
		return false
	}
	c.World.SwapRemove(id)
	c.Msgs.Add(fmt.Sprintf("You picked up the %s!", item.Name), tcell.ColorGreen)
	c.Bus.Add(event.New(event.PlayerPickupItem).WithData(event.KeyItem, event.Str(item.Name)))
	player.Inventory = append(player.Inventory, item)
	if item.Equipment != nil {
		if _, taken := player.EquippedInSlot(item.Equipment.Slot); !taken {
			equip(c, item)
		}
	}
	return true
}

// Drop removes inventory entry idx, unequips it and places it at the
// player's feet.
func Drop(c *Context, idx int) bool {
	player := c.World.Player()
	if idx < 0 || idx >= len(player.Inventory) {
		return false
	}
	item := player.Inventory[idx]
	player.Inventory = append(player.Inventory[:idx], player.Inventory[idx+1:]...)
	if item.Equipment != nil {
		unequip(c, item)
	}
	item.SetPos(player.X, player.Y)
	c.World.Push(item)
	c.Msgs.Add(fmt.Sprintf("You dropped the %s.", item.Name), tcell.ColorYellow)
	return true
}

// ToggleEquipment flips inventory item idx of owner. Whatever currently
// occupies the same slot is unequipped first, so a slot never holds two
// equipped items.
func ToggleEquipment(c *Context, owner *ecs.Entity, idx int) UseResult {
	if idx < 0 || idx >= len(owner.Inventory) {
		return UseCancelled
	}
	item := owner.Inventory[idx]
	if item.Equipment == nil {
		return UseCancelled
	}
	wasEquipped := item.Equipment.Equipped
	if cur, ok := owner.EquippedInSlot(item.Equipment.Slot); ok {
		unequip(c, owner.Inventory[cur])
	}
	if !wasEquipped {
		equip(c, item)
	}
	return UseKept
}

func equip(c *Context, item *ecs.Entity) {
	changed, err := item.Equip()
	if err != nil {
		reportItemError(c, "equip", item, err)
		return
	}
	if changed {
		c.Msgs.Add(fmt.Sprintf("Equipped %s on %s.", item.Name, item.Equipment.Slot), tcell.ColorLightGreen)
	}
}

func unequip(c *Context, item *ecs.Entity) {
	changed, err := item.Unequip()
	if err != nil {
		reportItemError(c, "unequip", item, err)
		return
	}
	if changed {
		c.Msgs.Add(fmt.Sprintf("Unequipped %s from %s.", item.Name, item.Equipment.Slot), tcell.ColorLightYellow)
	}
}

func reportItemError(c *Context, op string, item *ecs.Entity, err error) {
	c.logger().Warn("invalid item operation", "op", op, "entity", item.Name, "error", err)
	what := "an item"
	if errors.Is(err, ecs.ErrNotEquipment) {
		what = "equipment"
	}
	c.Msgs.Add(fmt.Sprintf("Cannot %s %s because it's not %s.", op, item.Name, what), tcell.ColorRed)
}
