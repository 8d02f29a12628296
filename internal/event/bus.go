package event

// DefaultCapacity is the ring size used when none is configured.
const DefaultCapacity = 32

// Bus is a fixed-capacity ring of events with a single write cursor.
// Once full, each write replaces the oldest slot without consulting readers.
type Bus struct {
	events   []GameEvent
	tail     int
	capacity int
	written  uint64
}

// NewBus returns an empty bus. A non-positive capacity uses DefaultCapacity.
func NewBus(capacity int) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{events: make([]GameEvent, 0, capacity), capacity: capacity}
}

// RestoreBus rebuilds a bus from persisted state.
func RestoreBus(events []GameEvent, tail, capacity int, written uint64) *Bus {
	b := NewBus(capacity)
	if len(events) > b.capacity {
		events = events[len(events)-b.capacity:]
	}
	b.events = append(b.events, events...)
	b.tail = tail % b.capacity
	b.written = written
	return b
}

// Add publishes ev, overwriting the oldest slot once the ring is full.
func (b *Bus) Add(ev GameEvent) {
	if len(b.events) < b.capacity {
		b.events = append(b.events, ev)
	} else {
		b.events[b.tail] = ev
	}
	b.tail = (b.tail + 1) % b.capacity
	b.written++
}

// Capacity returns the ring size.
func (b *Bus) Capacity() int { return b.capacity }

// Tail returns the next write slot.
func (b *Bus) Tail() int { return b.tail }

// Len returns the number of occupied slots.
func (b *Bus) Len() int { return len(b.events) }

// Written returns the total number of events ever published.
func (b *Bus) Written() uint64 { return b.written }

// Events returns the ring slots in storage order.
func (b *Bus) Events() []GameEvent { return b.events }

// Reader is a read cursor over a Bus. Seq counts events consumed, which keeps
// a full ring distinguishable from an empty one.
type Reader struct {
	Seq uint64 `json:"seq"`
}

// NewReader returns a cursor positioned at the bus's current write position,
// so only events published afterward are seen.
func NewReader(b *Bus) *Reader {
	return &Reader{Seq: b.written}
}

// Head returns the ring slot the reader consumes next.
func (r *Reader) Head(b *Bus) int {
	return int(r.Seq % uint64(b.capacity))
}

// Pending returns how many retained events the reader has not consumed.
func (r *Reader) Pending(b *Bus) int {
	if r.Seq >= b.written {
		return 0
	}
	n := b.written - r.Seq
	if n > uint64(b.capacity) {
		n = uint64(b.capacity)
	}
	return int(n)
}

// Next consumes at most one event. A reader that fell a full ring behind
// skips silently to the oldest retained event.
func (r *Reader) Next(b *Bus) (GameEvent, bool) {
	if r.Seq >= b.written {
		return GameEvent{}, false
	}
	if b.written-r.Seq > uint64(b.capacity) {
		r.Seq = b.written - uint64(b.capacity)
	}
	ev := b.events[r.Head(b)]
	r.Seq++
	return ev, true
}
