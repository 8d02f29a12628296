package render

import (
	"fmt"

	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/system"

	"github.com/gdamore/tcell/v2"
)

type menu uint8

const (
	menuNone menu = iota
	menuUse
	menuDrop
)

// Session is one interactive run on a terminal.
type Session struct {
	Engine *game.Engine
	menu   menu
}

// NewSession wraps e for interactive play.
func NewSession(e *game.Engine) *Session { return &Session{Engine: e} }

// Play runs the session on screen until the player quits or the screen is
// finalized. The caller owns screen.
func (s *Session) Play(screen tcell.Screen) {
	r := NewRenderer(screen)
	for {
		r.DrawFrame(s.Engine, s.Overlay())
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			r.Resize()
		case *tcell.EventKey:
			if !s.HandleKey(ev) {
				return
			}
		}
	}
}

// Overlay returns the open inventory menu, or nil.
func (s *Session) Overlay() []string {
	if s.menu == menuNone {
		return nil
	}
	title := "Use which item? (Esc to cancel)"
	if s.menu == menuDrop {
		title = "Drop which item? (Esc to cancel)"
	}
	lines := []string{title}
	inv := s.Engine.Player().Inventory
	if len(inv) == 0 {
		return append(lines, "Inventory is empty.")
	}
	for i, it := range inv {
		name := it.Name
		if it.Equipment != nil && it.Equipment.Equipped {
			name += fmt.Sprintf(" (on %s)", it.Equipment.Slot)
		}
		lines = append(lines, fmt.Sprintf("(%c) %s", 'a'+i, name))
	}
	return lines
}

// upgradeForRune maps the menu keys 1..3 to a level-up choice.
func upgradeForRune(r rune) (system.Upgrade, bool) {
	switch r {
	case '1':
		return system.UpgradeHP, true
	case '2':
		return system.UpgradePower, true
	case '3':
		return system.UpgradeDefense, true
	}
	return 0, false
}

// HandleKey applies one key press. It reports false when the session should
// end. While a menu is open only its keys work; after death only quit does.
func (s *Session) HandleKey(ev *tcell.EventKey) bool {
	e := s.Engine
	if s.menu != menuNone {
		s.handleMenu(ev)
		return true
	}
	a := game.KeyToAction(ev)
	if a.Kind == game.ActionExit {
		return false
	}
	switch {
	case e.GameOver():
	case e.PendingUpgrade:
		if ev.Key() != tcell.KeyRune {
			break
		}
		if u, ok := upgradeForRune(ev.Rune()); ok {
			e.ChooseUpgrade(u)
		}
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'i':
		s.menu = menuUse
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
		s.menu = menuDrop
	case a.Kind != game.ActionNone:
		e.Turn(a)
	}
	return true
}

func (s *Session) handleMenu(ev *tcell.EventKey) {
	m := s.menu
	s.menu = menuNone
	if ev.Key() != tcell.KeyRune {
		return
	}
	slot, ok := game.SlotForRune(ev.Rune())
	if !ok {
		return
	}
	if m == menuUse {
		s.Engine.Turn(game.Use(slot))
	} else {
		s.Engine.Turn(game.Drop(slot))
	}
}
