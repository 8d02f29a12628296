package system

import (
	"fmt"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"

	"github.com/gdamore/tcell/v2"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int  // power minus defense, may be zero or negative
	Killed bool // defender died from this attack
	XP     int  // reward to credit when Killed
}

// Attack resolves one attack and publishes EntityAttacked. Damage is
// attacker power minus defender defense; only positive damage is applied.
func Attack(bus *event.Bus, attacker, defender *ecs.Entity) AttackResult {
	res := AttackResult{Damage: attacker.Power() - defender.Defense()}
	if res.Damage > 0 {
		res.XP, res.Killed = TakeDamage(bus, defender, res.Damage)
	}
	bus.Add(event.New(event.EntityAttacked).
		WithData(event.KeyTargetName, event.Str(defender.Name)).
		WithData(event.KeyTargetPos, event.Pos(defender.X, defender.Y)).
		WithData(event.KeyAttackerName, event.Str(attacker.Name)).
		WithData(event.KeyAttackerPos, event.Pos(attacker.X, attacker.Y)).
		WithData(event.KeyDamage, event.Int(res.Damage)).
		WithData(event.KeyKilled, event.Bool(res.Killed)))
	return res
}

// TakeDamage subtracts a positive damage from hp. When hp drops to zero or
// below it runs the death callback and returns the entity's xp reward.
func TakeDamage(bus *event.Bus, e *ecs.Entity, damage int) (int, bool) {
	if e.Fighter == nil {
		return 0, false
	}
	if damage > 0 {
		e.Fighter.HP -= damage
	}
	if e.Fighter.HP > 0 {
		return 0, false
	}
	f := *e.Fighter
	e.Alive = false
	die(bus, e, f.OnDeath)
	return f.XP, true
}

// CreditXP adds xp to the player.
func CreditXP(w *ecs.World, xp int) {
	if p := w.Player(); p != nil && p.Fighter != nil {
		p.Fighter.XP += xp
	}
}

func die(bus *event.Bus, e *ecs.Entity, cb component.DeathCallback) {
	switch cb {
	case component.DeathPlayer:
		e.Glyph = '%'
		e.Color = tcell.ColorDarkRed
		bus.Add(event.New(event.PlayerDie))
	case component.DeathMonster:
		name := e.Name
		makeRemains(e)
		bus.Add(event.New(event.MonsterDie).
			WithData(event.KeyName, event.Str(name)).
			WithData(event.KeyPosition, event.Pos(e.X, e.Y)))
	case component.DeathBoss:
		makeRemains(e)
		bus.Add(event.New(event.BossDie).WithData(event.KeyPosition, event.Pos(e.X, e.Y)))
	}
}

// makeRemains turns a dead monster into an inert, non-blocking corpse.
func makeRemains(e *ecs.Entity) {
	e.Glyph = '%'
	e.Color = tcell.ColorDarkRed
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
}

// reportAttack writes the player-facing summary of an attack.
func reportAttack(msgs Messages, attacker, defender *ecs.Entity, before string, res AttackResult) {
	if res.Damage > 0 {
		msgs.Add(fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, before, res.Damage), tcell.ColorWhite)
	} else {
		msgs.Add(fmt.Sprintf("%s attacks %s, but it has no effect!", attacker.Name, before), tcell.ColorWhite)
	}
	if !res.Killed {
		return
	}
	if defender.Tags.Has(component.TagPlayer) {
		msgs.Add("You died!", tcell.ColorRed)
		return
	}
	msgs.Add(fmt.Sprintf("%s is dead! You gain %d experience points.", before, res.XP), tcell.ColorOrange)
}
