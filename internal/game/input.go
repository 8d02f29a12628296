package game

import "github.com/gdamore/tcell/v2"

// ActionKind identifies a player intent.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionWait
	ActionPickUp
	ActionUse
	ActionDrop
	ActionDescend
	ActionExit
)

// Action is one player intent handed to Engine.Turn.
type Action struct {
	Kind   ActionKind
	DX, DY int // ActionMove
	Slot   int // ActionUse, ActionDrop
}

// Move, Use and Drop build parameterized actions.
func Move(dx, dy int) Action { return Action{Kind: ActionMove, DX: dx, DY: dy} }
func Use(slot int) Action    { return Action{Kind: ActionUse, Slot: slot} }
func Drop(slot int) Action   { return Action{Kind: ActionDrop, Slot: slot} }

var (
	Wait    = Action{Kind: ActionWait}
	PickUp  = Action{Kind: ActionPickUp}
	Descend = Action{Kind: ActionDescend}
	Quit    = Action{Kind: ActionExit}
)

// KeyToAction maps a tcell key event to a game action.
func KeyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return Move(0, -1)
	case tcell.KeyDown:
		return Move(0, 1)
	case tcell.KeyRight:
		return Move(1, 0)
	case tcell.KeyLeft:
		return Move(-1, 0)
	case tcell.KeyHome:
		return Move(-1, -1)
	case tcell.KeyPgUp:
		return Move(1, -1)
	case tcell.KeyEnd:
		return Move(-1, 1)
	case tcell.KeyPgDn:
		return Move(1, 1)
	case tcell.KeyEscape:
		return Quit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return Move(0, -1)
	case 'j', 'J':
		return Move(0, 1)
	case 'l', 'L':
		return Move(1, 0)
	case 'h', 'H':
		return Move(-1, 0)
	case 'y', 'Y':
		return Move(-1, -1)
	case 'u', 'U':
		return Move(1, -1)
	case 'b', 'B':
		return Move(-1, 1)
	case 'n', 'N':
		return Move(1, 1)
	case '.':
		return Wait
	case 'g', ',':
		return PickUp
	case '<', '>':
		return Descend
	case 'q', 'Q':
		return Quit
	}
	return Action{}
}

// SlotForRune maps 'a'..'z' to an inventory slot.
func SlotForRune(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// ParseKeys turns a key script into actions. "i" and "d" take the following
// letter as the inventory slot to use or drop; unknown keys are skipped.
func ParseKeys(script string) []Action {
	runes := []rune(script)
	var out []Action
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == 'i' || r == 'd') && i+1 < len(runes) {
			if slot, ok := SlotForRune(runes[i+1]); ok {
				i++
				if r == 'i' {
					out = append(out, Use(slot))
				} else {
					out = append(out, Drop(slot))
				}
				continue
			}
		}
		if a := KeyToAction(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); a.Kind != ActionNone {
			out = append(out, a)
		}
	}
	return out
}
