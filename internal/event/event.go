package event

// GameEvent is one published state change with a keyed payload.
type GameEvent struct {
	Type Type             `json:"type"`
	Data map[string]Value `json:"data,omitempty"`
}

// New returns an event of type t with an empty payload.
func New(t Type) GameEvent {
	return GameEvent{Type: t, Data: make(map[string]Value)}
}

// WithData sets key to v and returns the event for chaining.
func (e GameEvent) WithData(key string, v Value) GameEvent {
	if e.Data == nil {
		e.Data = make(map[string]Value)
	}
	e.Data[key] = v
	return e
}

// Get returns the payload entry for key.
func (e GameEvent) Get(key string) (Value, bool) {
	v, ok := e.Data[key]
	return v, ok
}

// Flat renders every payload entry as a display string.
func (e GameEvent) Flat() map[string]string {
	out := make(map[string]string, len(e.Data))
	for k, v := range e.Data {
		out[k] = v.String()
	}
	return out
}
