package processor

import (
	"errors"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"

	"github.com/charmbracelet/log"
)

var errBadPosition = errors.New("position payload missing or not a position")

// FeatureFunc builds the feature entity placed when a boss dies.
type FeatureFunc func(x, y int) *ecs.Entity

// Responder mutates the world in reaction to events. A boss death opens the
// way down.
type Responder struct {
	reader  *event.Reader
	log     *log.Logger
	feature FeatureFunc
}

// NewResponder returns a responder that spawns features built by feature.
func NewResponder(bus *event.Bus, logger *log.Logger, feature FeatureFunc) *Responder {
	if logger == nil {
		logger = log.Default()
	}
	return &Responder{reader: event.NewReader(bus), log: logger, feature: feature}
}

func (p *Responder) ID() string            { return ResponderID }
func (p *Responder) Cursor() *event.Reader { return p.reader }

func (p *Responder) Process(m *gamemap.GameMap, w *ecs.World, bus *event.Bus) {
	ev, ok := p.reader.Next(bus)
	if !ok || ev.Type != event.BossDie {
		return
	}
	v, _ := ev.Get(event.KeyPosition)
	x, y, ok := v.AsPos()
	if !ok {
		p.log.Warn("malformed event payload", "type", ev.Type, "error", errBadPosition)
		return
	}
	fx, fy := FeatureSpot(m, x, y)
	w.Push(p.feature(fx, fy))
	p.log.Info("boss defeated, stairs revealed", "x", fx, "y", fy)
}

// FeatureSpot returns the tile above (x, y), or (x, y) itself when that tile
// is a wall or off the map.
func FeatureSpot(m *gamemap.GameMap, x, y int) (int, int) {
	if m.IsBlocked(x, y-1) {
		return x, y
	}
	return x, y - 1
}
