package system

import (
	"fmt"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const (
	HealAmount      = 4
	LightningDamage = 40
	LightningRange  = 5
	ConfuseRange    = 8
	ConfuseNumTurns = 10
	FireballRadius  = 3
	FireballDamage  = 12
)

// UseResult says what happened to an item after an attempted use.
type UseResult uint8

const (
	UseConsumed  UseResult = iota // removed from the inventory
	UseKept                       // used and kept
	UseCancelled                  // nothing happened
)

// Targeter supplies targets chosen by the input collaborator.
type Targeter interface {
	// TargetTile returns a map cell within maxRange of the player.
	// maxRange <= 0 means unlimited.
	TargetTile(maxRange float64) (x, y int, ok bool)
	// TargetMonster returns a fighter within maxRange of the player.
	TargetMonster(maxRange float64) (ecs.EntityID, bool)
}

// UseItem applies inventory item idx of the player.
func UseItem(c *Context, idx int, tg Targeter) UseResult {
	player := c.World.Player()
	if idx < 0 || idx >= len(player.Inventory) {
		return UseCancelled
	}
	item := player.Inventory[idx]
	if item.Item == nil {
		c.Msgs.Add(fmt.Sprintf("The %s cannot be used.", item.Name), tcell.ColorWhite)
		return UseCancelled
	}
	var res UseResult
	switch kind := item.Item.Kind; {
	case item.Item.IsEquipment():
		res = ToggleEquipment(c, player, idx)
	case kind == component.ItemHeal:
		res = castHeal(c)
	case kind == component.ItemLightning:
		res = castLightning(c)
	case kind == component.ItemConfuse:
		res = castConfuse(c, tg)
	case kind == component.ItemFireball:
		res = castFireball(c, tg)
	case kind == component.ItemArtifact:
		res = examineArtifact(c, item)
	default:
		res = UseCancelled
	}
	switch res {
	case UseConsumed:
		player.Inventory = append(player.Inventory[:idx], player.Inventory[idx+1:]...)
	case UseCancelled:
		c.Msgs.Add("Cancelled", tcell.ColorWhite)
	}
	return res
}

func castHeal(c *Context) UseResult {
	player := c.World.Player()
	if player.Fighter == nil {
		return UseCancelled
	}
	if player.Fighter.HP >= player.MaxHP() {
		c.Msgs.Add("You are already at full health.", tcell.ColorRed)
		return UseCancelled
	}
	c.Msgs.Add("Your wounds start to feel better!", tcell.ColorViolet)
	player.Heal(HealAmount)
	return UseConsumed
}

func castLightning(c *Context) UseResult {
	id, ok := c.World.ClosestMonster(c.Vis, LightningRange)
	if !ok {
		c.Msgs.Add("No enemy is close enough to strike.", tcell.ColorRed)
		return UseCancelled
	}
	target := c.World.Get(id)
	c.Msgs.Add(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		target.Name, LightningDamage), tcell.ColorLightBlue)
	if xp, died := TakeDamage(c.Bus, target, LightningDamage); died {
		CreditXP(c.World, xp)
	}
	return UseConsumed
}

func castConfuse(c *Context, tg Targeter) UseResult {
	if tg == nil {
		return UseCancelled
	}
	c.Msgs.Add("Choose an enemy to confuse.", tcell.ColorLightCyan)
	id, ok := tg.TargetMonster(ConfuseRange)
	target := c.World.Get(id)
	if !ok || target == nil || id == ecs.PlayerID {
		c.Msgs.Add("No enemy is close enough to strike.", tcell.ColorRed)
		return UseCancelled
	}
	target.AI = component.Confuse(target.AI, ConfuseNumTurns)
	c.Msgs.Add(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", target.Name),
		tcell.ColorLightGreen)
	return UseConsumed
}

func castFireball(c *Context, tg Targeter) UseResult {
	if tg == nil {
		return UseCancelled
	}
	c.Msgs.Add("Choose a target tile for the fireball.", tcell.ColorLightCyan)
	x, y, ok := tg.TargetTile(0)
	if !ok {
		return UseCancelled
	}
	c.Msgs.Add(fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", FireballRadius),
		tcell.ColorOrange)
	gained := 0
	for i, e := range c.World.All() {
		if e.Fighter == nil || e.Distance(x, y) > FireballRadius {
			continue
		}
		c.Msgs.Add(fmt.Sprintf("The %s gets burned for %d hit points.", e.Name, FireballDamage), tcell.ColorOrange)
		if xp, died := TakeDamage(c.Bus, e, FireballDamage); died && ecs.EntityID(i) != ecs.PlayerID {
			gained += xp
		}
	}
	CreditXP(c.World, gained)
	return UseConsumed
}

func examineArtifact(c *Context, item *ecs.Entity) UseResult {
	c.Msgs.Add(fmt.Sprintf("This artifact is named %s and has a value of %d.", item.Item.Name, item.Item.Value),
		tcell.ColorGold)
	return UseKept
}
