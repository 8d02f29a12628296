package system

import (
	"math"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
)

// MoveResult describes the outcome of a move attempt.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out of bounds or a blocking entity
	MoveAttack                    // bumped a fighter and attacked it
)

// MoveBy moves entity id by (dx, dy) unless the destination is blocked.
func MoveBy(c *Context, id ecs.EntityID, dx, dy int) MoveResult {
	e := c.World.Get(id)
	nx, ny := e.X+dx, e.Y+dy
	if c.World.IsBlocked(c.Map, nx, ny) {
		return MoveBlocked
	}
	e.SetPos(nx, ny)
	return MoveOK
}

// MoveTowards takes one step toward (tx, ty). The step is the direction
// vector divided by its length, rounded per axis; actors can stall against
// diagonal walls as a result.
func MoveTowards(c *Context, id ecs.EntityID, tx, ty int) MoveResult {
	e := c.World.Get(id)
	dx := tx - e.X
	dy := ty - e.Y
	dist := math.Sqrt(float64(dx*dx + dy*dy))
	if dist == 0 {
		return MoveBlocked
	}
	sx := int(math.Round(float64(dx) / dist))
	sy := int(math.Round(float64(dy) / dist))
	return MoveBy(c, id, sx, sy)
}

// PlayerMoveOrAttack attacks the first fighter at the destination, or moves
// there when none is present.
func PlayerMoveOrAttack(c *Context, dx, dy int) MoveResult {
	player := c.World.Player()
	x, y := player.X+dx, player.Y+dy
	if target, ok := c.World.FighterAt(x, y); ok && target != ecs.PlayerID {
		defender := c.World.Get(target)
		name := defender.Name
		res := Attack(c.Bus, player, defender)
		reportAttack(c.Msgs, player, defender, name, res)
		if res.Killed {
			CreditXP(c.World, res.XP)
		}
		c.Bus.Add(event.New(event.PlayerAttack))
		return MoveAttack
	}
	result := MoveBy(c, ecs.PlayerID, dx, dy)
	c.Bus.Add(event.New(event.PlayerMove))
	return result
}
