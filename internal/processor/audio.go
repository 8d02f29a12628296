package processor

import (
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"

	"github.com/charmbracelet/log"
)

// EffectPlayer plays a named sound cue.
type EffectPlayer interface {
	PlayEffect(name string)
}

// Cue names understood by the audio collaborator.
const (
	CuePunch      = "punch"
	CueMonster    = "monster1"
	CueMonsterDie = "monster_die1"
	CuePick       = "pick"
)

// CueFor maps an event type to its sound cue.
func CueFor(t event.Type) (string, bool) {
	switch t {
	case event.PlayerAttack:
		return CuePunch, true
	case event.MonsterAttack:
		return CueMonster, true
	case event.MonsterDie, event.BossDie:
		return CueMonsterDie, true
	case event.PlayerPickupItem:
		return CuePick, true
	}
	return "", false
}

// Audio triggers sound cues for combat and pickup events.
type Audio struct {
	reader *event.Reader
	log    *log.Logger
	player EffectPlayer
}

// NewAudio returns an audio processor. player may be nil and attached later.
func NewAudio(bus *event.Bus, logger *log.Logger, player EffectPlayer) *Audio {
	if logger == nil {
		logger = log.Default()
	}
	return &Audio{reader: event.NewReader(bus), log: logger, player: player}
}

// SetPlayer attaches the audio collaborator.
func (p *Audio) SetPlayer(player EffectPlayer) { p.player = player }

func (p *Audio) ID() string            { return AudioID }
func (p *Audio) Cursor() *event.Reader { return p.reader }

func (p *Audio) Process(_ *gamemap.GameMap, _ *ecs.World, bus *event.Bus) {
	ev, ok := p.reader.Next(bus)
	if !ok {
		return
	}
	cue, ok := CueFor(ev.Type)
	if !ok {
		return
	}
	if p.player == nil {
		p.log.Warn("cannot play sound: audio engine not present", "cue", cue)
		return
	}
	p.player.PlayEffect(cue)
}
