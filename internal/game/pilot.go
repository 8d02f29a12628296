package game

import "halls-of-ruzt/internal/system"

// Pilot chooses actions for a headless run.
type Pilot interface {
	Next(e *Engine) Action
	Upgrade() system.Upgrade
}

// Script replays a fixed list of actions and then quits. Level ups always
// raise hp.
type Script struct {
	actions []Action
	pos     int
}

// NewScript returns a pilot replaying actions in order.
func NewScript(actions []Action) *Script { return &Script{actions: actions} }

func (s *Script) Next(*Engine) Action {
	if s.pos >= len(s.actions) {
		return Quit
	}
	a := s.actions[s.pos]
	s.pos++
	return a
}

func (s *Script) Upgrade() system.Upgrade { return system.UpgradeHP }

// Drive runs p against e until p quits, the player dies or turns turns have
// been taken, and returns the number of turns taken. Actions that take no
// turn count toward a bound of four per requested turn so a stuck pilot
// cannot spin forever.
func Drive(e *Engine, p Pilot, turns int) int {
	taken, free := 0, 0
	for taken < turns && free <= 4*turns {
		if e.PendingUpgrade {
			e.ChooseUpgrade(p.Upgrade())
			continue
		}
		if e.GameOver() {
			break
		}
		switch e.Turn(p.Next(e)) {
		case Exit:
			return taken
		case TookTurn:
			taken++
		default:
			free++
		}
	}
	return taken
}
