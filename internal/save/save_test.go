package save

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"reflect"
	"testing"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/game"

	"github.com/charmbracelet/log"
)

func newEngine(t *testing.T, seed int64) *game.Engine {
	t.Helper()
	e, err := game.New(config.Default(), game.WithLogger(log.New(io.Discard)), game.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := newEngine(t, 12)
	pilot := game.NewAutopilot(rand.New(rand.NewSource(12)))
	for range 20 {
		if e.GameOver() || e.PendingUpgrade {
			break
		}
		e.Turn(pilot.Next(e))
	}

	var buf bytes.Buffer
	if err := Encode(&buf, Capture(e)); err != nil {
		t.Fatal(err)
	}
	snap, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Restore(snap, config.Default(), game.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}

	if r.DungeonLevel != e.DungeonLevel || r.World.Len() != e.World.Len() {
		t.Errorf("depth/entities = %d/%d; want %d/%d", r.DungeonLevel, r.World.Len(), e.DungeonLevel, e.World.Len())
	}
	rp, ep := r.Player(), e.Player()
	if rp.X != ep.X || rp.Y != ep.Y || rp.Fighter.HP != ep.Fighter.HP || len(rp.Inventory) != len(ep.Inventory) {
		t.Errorf("player = %+v; want %+v", rp, ep)
	}
	if r.Bus.Written() != e.Bus.Written() || r.Bus.Tail() != e.Bus.Tail() || r.Bus.Len() != e.Bus.Len() {
		t.Error("bus state not restored")
	}
	want := e.Processors.Cursors()
	for id, seq := range r.Processors.Cursors() {
		if want[id] != seq {
			t.Errorf("cursor %s = %d; want %d", id, seq, want[id])
		}
	}
	if r.Messages.Len() != e.Messages.Len() {
		t.Errorf("messages = %d; want %d", r.Messages.Len(), e.Messages.Len())
	}
	if r.Map.Width != e.Map.Width || len(r.Map.Rooms) != len(e.Map.Rooms) {
		t.Error("map not restored")
	}
}

func TestRestoredPendingEventsStillDelivered(t *testing.T) {
	e := newEngine(t, 2)
	e.Bus.Add(event.New(event.MonsterDie).WithData(event.KeyName, event.Str("Orc")))

	data, err := Marshal(Capture(e))
	if err != nil {
		t.Fatal(err)
	}
	snap, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Restore(snap, config.Default(), game.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}
	r.Turn(game.Action{})
	if r.Stats.Log.EnemiesKilled["Orc"] != 1 {
		t.Error("an event pending at save time should be processed after restore")
	}
}

func TestConfusedAIChainSurvives(t *testing.T) {
	e := newEngine(t, 4)
	for _, ent := range e.World.All() {
		if ent.AI != nil {
			ent.AI = component.Confuse(ent.AI, 3)
			break
		}
	}
	data, err := Marshal(Capture(e))
	if err != nil {
		t.Fatal(err)
	}
	snap, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	for i, ent := range snap.Entities {
		orig := e.World.Get(ecs.EntityID(i))
		if orig.AI == nil {
			continue
		}
		if !reflect.DeepEqual(ent.AI, orig.AI) {
			t.Errorf("entity %d AI = %+v; want %+v", i, ent.AI, orig.AI)
		}
	}
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	snap := Capture(newEngine(t, 1))
	snap.Version = 99
	if _, err := Restore(snap, config.Default()); !errors.Is(err, ErrVersion) {
		t.Errorf("err = %v; want ErrVersion", err)
	}
}

func TestRestoreRejectsMissingPlayer(t *testing.T) {
	snap := Capture(newEngine(t, 1))
	snap.Entities = snap.Entities[1:]
	if _, err := Restore(snap, config.Default()); !errors.Is(err, game.ErrBadState) {
		t.Errorf("err = %v; want ErrBadState", err)
	}
}
