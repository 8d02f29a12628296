package event

import (
	"fmt"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/gamemap"

	"github.com/charmbracelet/log"
)

// Processor consumes events from the bus through its own cursor.
// Process handles at most one event per call.
type Processor interface {
	ID() string
	Cursor() *Reader
	Process(m *gamemap.GameMap, w *ecs.World, bus *Bus)
}

// Registry runs processors in registration order.
type Registry struct {
	procs []Processor
	byID  map[string]Processor
	log   *log.Logger
}

// NewRegistry returns an empty registry. A nil logger uses log.Default().
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{byID: make(map[string]Processor), log: logger}
}

// Add appends p. IDs must be unique.
func (r *Registry) Add(p Processor) error {
	if _, dup := r.byID[p.ID()]; dup {
		return fmt.Errorf("event: processor %q already registered", p.ID())
	}
	r.procs = append(r.procs, p)
	r.byID[p.ID()] = p
	return nil
}

// Register adds p and hands back the concrete value, so callers keep a typed
// handle instead of asserting on Lookup results.
func Register[T Processor](r *Registry, p T) (T, error) {
	if err := r.Add(p); err != nil {
		var zero T
		return zero, err
	}
	return p, nil
}

// Lookup returns the processor registered under id.
func (r *Registry) Lookup(id string) (Processor, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// Processors returns the processors in run order.
func (r *Registry) Processors() []Processor { return r.procs }

// ProcessAll gives every processor one chance to consume an event.
func (r *Registry) ProcessAll(m *gamemap.GameMap, w *ecs.World, bus *Bus) {
	for _, p := range r.procs {
		before := p.Cursor().Seq
		p.Process(m, w, bus)
		if p.Cursor().Seq != before {
			r.log.Debug("processed event", "processor", p.ID(), "seq", before, "pending", p.Cursor().Pending(bus))
		}
	}
}

// Drain runs passes until every processor has caught up with the bus.
// Processors that never consume are bounded by the ring capacity.
func (r *Registry) Drain(m *gamemap.GameMap, w *ecs.World, bus *Bus) {
	for range bus.Capacity() {
		if !r.anyPending(bus) {
			return
		}
		r.ProcessAll(m, w, bus)
	}
}

func (r *Registry) anyPending(bus *Bus) bool {
	for _, p := range r.procs {
		if p.Cursor().Pending(bus) > 0 {
			return true
		}
	}
	return false
}

// Cursors snapshots every processor's read position keyed by id.
func (r *Registry) Cursors() map[string]uint64 {
	out := make(map[string]uint64, len(r.procs))
	for _, p := range r.procs {
		out[p.ID()] = p.Cursor().Seq
	}
	return out
}

// RestoreCursors sets read positions from a snapshot. Unknown ids are ignored.
func (r *Registry) RestoreCursors(cursors map[string]uint64) {
	for id, seq := range cursors {
		if p, ok := r.byID[id]; ok {
			p.Cursor().Seq = seq
		} else {
			r.log.Warn("unknown processor in saved cursors", "id", id)
		}
	}
}
