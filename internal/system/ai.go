package system

import (
	"fmt"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"

	"github.com/gdamore/tcell/v2"
)

// meleeRange is the distance below which a monster attacks instead of moving.
const meleeRange = 2.0

// TakeTurn runs one AI decision for entity id. The state is taken out of the
// entity while it runs and the successor state is stored back afterward,
// unless the entity lost its AI slot by dying.
func TakeTurn(c *Context, id ecs.EntityID) {
	e := c.World.Get(id)
	if e == nil || e.AI == nil {
		return
	}
	current := e.AI
	e.AI = nil
	var next *component.AI
	switch current.Kind {
	case component.AIConfused:
		next = confusedTurn(c, id, current)
	default:
		next = basicTurn(c, id)
	}
	if e.Fighter != nil {
		e.AI = next
	}
}

// basicTurn chases and attacks the player while the monster is in view.
func basicTurn(c *Context, id ecs.EntityID) *component.AI {
	monster := c.World.Get(id)
	player := c.World.Player()
	if !c.Vis.IsVisible(monster.X, monster.Y) {
		return component.BasicAI()
	}
	if monster.DistanceTo(player) >= meleeRange {
		MoveTowards(c, id, player.X, player.Y)
		c.Bus.Add(event.New(event.MonsterMove))
		return component.BasicAI()
	}
	if player.Fighter != nil && player.Alive {
		name := player.Name
		res := Attack(c.Bus, monster, player)
		reportAttack(c.Msgs, monster, player, name, res)
		c.Bus.Add(event.New(event.MonsterAttack))
	}
	return component.BasicAI()
}

// confusedTurn stumbles toward a random cell and counts down the confusion.
func confusedTurn(c *Context, id ecs.EntityID, state *component.AI) *component.AI {
	tx := c.Rand.Intn(c.Map.Width)
	ty := c.Rand.Intn(c.Map.Height)
	MoveTowards(c, id, tx, ty)
	if state.TurnsRemaining <= 0 {
		c.Msgs.Add(fmt.Sprintf("The %s is no longer confused!", c.World.Get(id).Name), tcell.ColorRed)
		if state.Previous == nil {
			return component.BasicAI()
		}
		return state.Previous
	}
	return &component.AI{
		Kind:           component.AIConfused,
		Previous:       state.Previous,
		TurnsRemaining: state.TurnsRemaining - 1,
	}
}
