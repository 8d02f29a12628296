// Package processor holds the event bus consumers: a combat logger, an audio
// cue trigger and a world responder.
package processor

import (
	"fmt"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"

	"github.com/charmbracelet/log"
)

const (
	EventLogID  = "event_log_processor"
	AudioID     = "audio_event_processor"
	ResponderID = "responder_event_processor"
)

// Sink receives formatted log lines.
type Sink interface {
	Record(line string)
}

// EventLog formats combat events.
type EventLog struct {
	reader *event.Reader
	log    *log.Logger
	sink   Sink
}

// NewEventLog returns a logger reading from bus. sink may be nil.
func NewEventLog(bus *event.Bus, logger *log.Logger, sink Sink) *EventLog {
	if logger == nil {
		logger = log.Default()
	}
	return &EventLog{reader: event.NewReader(bus), log: logger, sink: sink}
}

func (p *EventLog) ID() string            { return EventLogID }
func (p *EventLog) Cursor() *event.Reader { return p.reader }

func (p *EventLog) Process(_ *gamemap.GameMap, _ *ecs.World, bus *event.Bus) {
	ev, ok := p.reader.Next(bus)
	if !ok || ev.Type != event.EntityAttacked {
		return
	}
	line, err := FormatAttack(ev)
	if err != nil {
		p.log.Warn("malformed event payload", "type", ev.Type, "error", err)
		return
	}
	p.log.Info(line)
	if p.sink != nil {
		p.sink.Record(line)
	}
}

// FormatAttack renders an EntityAttacked event as a log line.
func FormatAttack(ev event.GameEvent) (string, error) {
	flat := ev.Flat()
	keys := []string{
		event.KeyAttackerName, event.KeyAttackerPos,
		event.KeyTargetName, event.KeyTargetPos,
		event.KeyDamage,
	}
	vals := make([]any, len(keys))
	for i, k := range keys {
		v, ok := flat[k]
		if !ok {
			return "", fmt.Errorf("missing %q", k)
		}
		vals[i] = v
	}
	return fmt.Sprintf("entity with name %s at %s attacked entity with name %s at %s for %s damage", vals...), nil
}
