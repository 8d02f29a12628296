// Package save encodes a run into a versioned, transport-neutral snapshot.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/game"
)

// Version is the snapshot format written by Capture.
const Version = 1

// ErrVersion is returned when a snapshot was written by an unknown format.
var ErrVersion = errors.New("save: unsupported snapshot version")

// Snapshot is a versioned engine state.
type Snapshot struct {
	Version int `json:"version"`
	game.State
}

// Capture snapshots e.
func Capture(e *game.Engine) Snapshot {
	return Snapshot{Version: Version, State: e.State()}
}

// Restore rebuilds an engine from s.
func Restore(s Snapshot, cfg config.Config, opts ...game.Option) (*game.Engine, error) {
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	e, err := game.Restore(cfg, s.State, opts...)
	if err != nil {
		return nil, fmt.Errorf("save: restore: %w", err)
	}
	return e, nil
}

// Encode writes s as JSON.
func Encode(w io.Writer, s Snapshot) error {
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	return nil
}

// Decode reads a JSON snapshot.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return s, fmt.Errorf("save: decode: %w", err)
	}
	return s, nil
}

// Marshal returns the JSON encoding of s.
func Marshal(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("save: encode: %w", err)
	}
	return data, nil
}

// Unmarshal parses a JSON snapshot.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("save: decode: %w", err)
	}
	return s, nil
}
