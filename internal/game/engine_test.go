package game

import (
	"io"
	"math/rand"
	"testing"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/factory"
	"halls-of-ruzt/internal/gamemap"
	"halls-of-ruzt/internal/processor"
	"halls-of-ruzt/internal/system"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// openMap creates a w×h map with a wall border and open ground inside.
func openMap(w, h int) *gamemap.GameMap {
	m := gamemap.New(w, h, nil)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.MakeGround(nil))
		}
	}
	return m
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

// newTestEngine starts a seeded run, then swaps in a 20×20 arena that holds
// only the player at (5, 5).
func newTestEngine(t *testing.T, cfg config.Config) *Engine {
	t.Helper()
	e, err := New(cfg, WithLogger(quietLogger()), WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatal(err)
	}
	player := e.World.Player()
	player.SetPos(5, 5)
	e.World = ecs.NewWorld(player)
	e.Map = openMap(20, 20)
	e.refreshFOV()
	return e
}

func TestNewEngineStartsAtDepthOne(t *testing.T) {
	e, err := New(config.Default(), WithLogger(quietLogger()), WithRand(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatal(err)
	}
	if e.DungeonLevel != 1 {
		t.Errorf("depth = %d; want 1", e.DungeonLevel)
	}
	if e.Bus.Capacity() != 32 {
		t.Errorf("bus capacity = %d; want 32", e.Bus.Capacity())
	}
	px, py := e.Player().Pos()
	if !e.FOV.IsVisible(px, py) || !e.Map.At(px, py).Explored {
		t.Error("the player's tile must be lit and explored after the first build")
	}
	if e.Messages.Len() != 1 {
		t.Errorf("want the welcome message, got %d lines", e.Messages.Len())
	}
}

func TestNewEngineOnSmallMap(t *testing.T) {
	cfg := config.Default()
	cfg.Map = config.MapConfig{Width: 10, Height: 10}
	for seed := int64(1); seed <= 5; seed++ {
		e, err := New(cfg, WithLogger(quietLogger()), WithRand(rand.New(rand.NewSource(seed))))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if e.Map.Width != 10 || e.Map.Height != 10 {
			t.Errorf("seed %d: map is %dx%d; want 10x10", seed, e.Map.Width, e.Map.Height)
		}
	}
}

func TestProcessorsRegisteredInOrder(t *testing.T) {
	e := newTestEngine(t, config.Default())
	want := []string{processor.AudioID, processor.ResponderID, processor.EventLogID, RunStatsID}
	got := e.Processors.Processors()
	if len(got) != len(want) {
		t.Fatalf("got %d processors; want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.ID() != want[i] {
			t.Errorf("processor %d = %s; want %s", i, p.ID(), want[i])
		}
	}
}

func TestTurnExit(t *testing.T) {
	e := newTestEngine(t, config.Default())
	if got := e.Turn(Quit); got != Exit {
		t.Errorf("Turn(Quit) = %v; want exit", got)
	}
}

func TestMoveTakesTurnAndMonstersAct(t *testing.T) {
	e := newTestEngine(t, config.Default())
	orc := factory.NewMonster(factory.Orc, 10, 5)
	e.World.Push(orc)

	if got := e.Turn(Move(1, 0)); got != TookTurn {
		t.Fatalf("Turn(Move) = %v; want took turn", got)
	}
	if x, y := e.Player().Pos(); x != 6 || y != 5 {
		t.Errorf("player at (%d,%d); want (6,5)", x, y)
	}
	if orc.X != 9 {
		t.Errorf("orc x = %d; want it to step toward the player", orc.X)
	}
	if e.Stats.Log.TurnsPlayed != 1 {
		t.Errorf("turns played = %d; want 1", e.Stats.Log.TurnsPlayed)
	}
}

func TestPickUpDoesNotTakeTurn(t *testing.T) {
	e := newTestEngine(t, config.Default())
	e.World.Push(factory.NewItem(component.ItemHeal, 5, 5, nil))
	orc := factory.NewMonster(factory.Orc, 10, 5)
	e.World.Push(orc)

	if got := e.Turn(PickUp); got != DidntTakeTurn {
		t.Fatalf("Turn(PickUp) = %v; want didn't take turn", got)
	}
	if n := len(e.Player().Inventory); n != 2 {
		t.Errorf("inventory holds %d items; want dagger plus the pickup", n)
	}
	if orc.X != 10 {
		t.Error("monsters must not act when no turn was taken")
	}
}

func TestDeadPlayerCannotAct(t *testing.T) {
	e := newTestEngine(t, config.Default())
	e.Player().Alive = false
	if got := e.Turn(Move(1, 0)); got != DidntTakeTurn {
		t.Errorf("Turn = %v; want didn't take turn", got)
	}
	if x, _ := e.Player().Pos(); x != 5 {
		t.Error("dead player moved")
	}
	if !e.GameOver() {
		t.Error("GameOver should report the death")
	}
}

func TestLevelUpBlocksUntilChosen(t *testing.T) {
	e := newTestEngine(t, config.Default())
	p := e.Player()
	p.Fighter.XP = system.LevelUpThreshold(p.Level)

	e.Turn(Wait)
	if !e.PendingUpgrade {
		t.Fatal("reaching the threshold should leave an upgrade pending")
	}
	if len(e.UpgradeOptions()) != 3 {
		t.Errorf("want three upgrade options, got %v", e.UpgradeOptions())
	}
	if got := e.Turn(Move(1, 0)); got != DidntTakeTurn {
		t.Errorf("Turn while pending = %v; want didn't take turn", got)
	}
	if x, _ := p.Pos(); x != 5 {
		t.Error("player moved while an upgrade was pending")
	}

	if !e.ChooseUpgrade(system.UpgradePower) {
		t.Fatal("ChooseUpgrade failed")
	}
	if p.Fighter.BasePower != factory.PlayerPower+1 || p.Level != 2 || p.Fighter.XP != 0 {
		t.Errorf("after upgrade: power=%d level=%d xp=%d", p.Fighter.BasePower, p.Level, p.Fighter.XP)
	}
	if e.PendingUpgrade || e.ChooseUpgrade(system.UpgradeHP) {
		t.Error("no upgrade should remain pending")
	}
}

func TestDescendRequiresStairs(t *testing.T) {
	e := newTestEngine(t, config.Default())
	if ok, err := e.Descend(); ok || err != nil {
		t.Fatalf("Descend off stairs = %v, %v", ok, err)
	}
	if e.DungeonLevel != 1 {
		t.Fatal("depth changed without stairs")
	}

	p := e.Player()
	p.Fighter.HP = 10
	e.World.Push(factory.NewStairs(5, 5))
	if got := e.Turn(Descend); got != DidntTakeTurn {
		t.Errorf("Turn(Descend) = %v; want didn't take turn", got)
	}
	if e.DungeonLevel != 2 {
		t.Fatalf("depth = %d; want 2", e.DungeonLevel)
	}
	if want := 10 + p.MaxHP()/2; p.Fighter.HP != want {
		t.Errorf("hp = %d; want %d after resting", p.Fighter.HP, want)
	}
	last := e.Messages.Last(2)
	if last[0].Text != "You rest for a minute and recover your strength" || last[1].Color != tcell.ColorRed {
		t.Errorf("descend messages = %+v", last)
	}
	if e.Stats.Log.DepthReached != 2 {
		t.Errorf("depth reached = %d; want 2", e.Stats.Log.DepthReached)
	}
}

func TestBossDeathOpensTheWayDown(t *testing.T) {
	e := newTestEngine(t, config.Default())
	boss := factory.NewBoss(5, 6)
	boss.Fighter.HP = 1
	boss.Fighter.BaseDefense = 0
	e.World.Push(boss)

	e.Turn(Move(0, 1))
	if boss.Alive {
		t.Fatal("boss should have died")
	}
	if _, ok := e.World.StairsAt(5, 5); !ok {
		t.Fatal("stairs should appear on the tile above the boss")
	}
	if !e.Stats.Log.BossDefeated {
		t.Error("run stats should record the boss kill")
	}
	if e.Player().Fighter.XP != factory.BossXP {
		t.Errorf("xp = %d; want %d", e.Player().Fighter.XP, factory.BossXP)
	}
}

func TestProcessorsReadOneEventPerTurn(t *testing.T) {
	cases := []struct {
		name     string
		drainAll bool
		pending  int
	}{
		{"one per turn", false, 2},
		{"drain all", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Events.DrainAll = tc.drainAll
			e := newTestEngine(t, cfg)
			e.Bus.Add(event.New(event.PlayerMove))
			e.Bus.Add(event.New(event.PlayerMove))
			e.Bus.Add(event.New(event.PlayerMove))
			e.Turn(Action{})
			for _, p := range e.Processors.Processors() {
				if got := p.Cursor().Pending(e.Bus); got != tc.pending {
					t.Errorf("%s pending = %d; want %d", p.ID(), got, tc.pending)
				}
			}
		})
	}
}

func TestUseAndDropSlots(t *testing.T) {
	e := newTestEngine(t, config.Default())
	if got := e.Turn(Use(5)); got != DidntTakeTurn {
		t.Errorf("Use(out of range) = %v; want didn't take turn", got)
	}
	if got := e.Turn(Drop(0)); got != TookTurn {
		t.Errorf("Drop(0) = %v; want took turn", got)
	}
	if len(e.Player().Inventory) != 0 {
		t.Error("dagger should have been dropped")
	}
	if _, ok := e.World.ItemAt(5, 5); !ok {
		t.Error("dropped dagger should lie at the player's feet")
	}
}

type recordingSink struct{ lines []string }

func (s *recordingSink) Record(line string) { s.lines = append(s.lines, line) }

func TestCombatSinkReceivesAttacks(t *testing.T) {
	sink := &recordingSink{}
	e, err := New(config.Default(), WithLogger(quietLogger()), WithRand(rand.New(rand.NewSource(1))), WithCombatSink(sink))
	if err != nil {
		t.Fatal(err)
	}
	player := e.World.Player()
	player.SetPos(5, 5)
	e.World = ecs.NewWorld(player)
	e.Map = openMap(20, 20)
	e.refreshFOV()
	e.World.Push(factory.NewMonster(factory.Troll, 6, 5))

	e.Turn(Move(1, 0)) // the troll survives and strikes back after processing
	if len(sink.lines) != 1 {
		t.Fatalf("sink got %d lines; want 1", len(sink.lines))
	}
}
