// Package game wires the simulation together: the level, the entity world,
// the event bus and its processors, and the per-turn control flow.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"halls-of-ruzt/internal/component"
	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/factory"
	"halls-of-ruzt/internal/gamemap"
	"halls-of-ruzt/internal/generate"
	"halls-of-ruzt/internal/processor"
	"halls-of-ruzt/internal/system"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// PlayerAction is the outcome of resolving one intent.
type PlayerAction uint8

const (
	TookTurn PlayerAction = iota
	DidntTakeTurn
	Exit
)

func (a PlayerAction) String() string {
	switch a {
	case TookTurn:
		return "took turn"
	case DidntTakeTurn:
		return "didn't take turn"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option { return func(e *Engine) { e.log = l } }

// WithRand sets the random source, overriding the configured seed.
func WithRand(r *rand.Rand) Option { return func(e *Engine) { e.rng = r } }

// WithEffectPlayer attaches the audio collaborator.
func WithEffectPlayer(p processor.EffectPlayer) Option { return func(e *Engine) { e.effects = p } }

// WithCombatSink receives each formatted combat line.
func WithCombatSink(s processor.Sink) Option { return func(e *Engine) { e.sink = s } }

// WithTargeter replaces the default closest-monster targeting.
func WithTargeter(t system.Targeter) Option { return func(e *Engine) { e.Targeter = t } }

// Engine owns one run.
type Engine struct {
	Map        *gamemap.GameMap
	World      *ecs.World
	Bus        *event.Bus
	Processors *event.Registry

	Audio     *processor.Audio
	Responder *processor.Responder
	EventLog  *processor.EventLog
	Stats     *RunStats

	DungeonLevel   uint32
	Messages       *Messages
	PendingUpgrade bool
	FOV            *system.ShadowFOV
	Targeter       system.Targeter

	cfg     config.Config
	rng     *rand.Rand
	log     *log.Logger
	effects processor.EffectPlayer
	sink    processor.Sink
}

// New starts a run at depth 1.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	e := newEngine(cfg, opts...)
	e.World = ecs.NewWorld(factory.NewPlayer("player"))
	if err := e.attachBus(event.NewBus(cfg.Events.Capacity)); err != nil {
		return nil, err
	}
	if err := e.buildLevel(); err != nil {
		return nil, err
	}
	e.Messages.Add("Welcome stranger! Prepare to perish in the Halls of Ruzt.", tcell.ColorRed)
	return e, nil
}

func newEngine(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:          cfg,
		DungeonLevel: 1,
		Messages:     NewMessages(MaxMessages),
		FOV:          system.NewShadowFOV(system.TorchRadius),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = log.Default()
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	if e.Targeter == nil {
		e.Targeter = autoTargeter{e}
	}
	return e
}

// attachBus installs bus and registers the processors in dispatch order.
func (e *Engine) attachBus(bus *event.Bus) error {
	e.Bus = bus
	e.Processors = event.NewRegistry(e.log)
	var err error
	if e.Audio, err = event.Register(e.Processors, processor.NewAudio(bus, e.log, e.effects)); err != nil {
		return err
	}
	if e.Responder, err = event.Register(e.Processors, processor.NewResponder(bus, e.log, factory.NewStairs)); err != nil {
		return err
	}
	if e.EventLog, err = event.Register(e.Processors, processor.NewEventLog(bus, e.log, e.sink)); err != nil {
		return err
	}
	if e.Stats, err = event.Register(e.Processors, NewRunStats(bus)); err != nil {
		return err
	}
	return nil
}

func (e *Engine) buildLevel() error {
	gmap, err := generate.Build(e.World, levelConfig(e.DungeonLevel, e.cfg.Map, e.rng))
	if err != nil {
		return fmt.Errorf("build level %d: %w", e.DungeonLevel, err)
	}
	e.Map = gmap
	if e.DungeonLevel > e.Stats.Log.DepthReached {
		e.Stats.Log.DepthReached = e.DungeonLevel
	}
	e.refreshFOV()
	return nil
}

func (e *Engine) refreshFOV() {
	px, py := e.World.Player().Pos()
	e.FOV.Compute(e.Map, px, py)
}

// Context returns the system context for the current state.
func (e *Engine) Context() *system.Context {
	return &system.Context{
		Map:   e.Map,
		World: e.World,
		Bus:   e.Bus,
		Vis:   e.FOV,
		Msgs:  e.Messages,
		Rand:  e.rng,
		Log:   e.log,
	}
}

// Player returns the player entity.
func (e *Engine) Player() *ecs.Entity { return e.World.Player() }

// Config returns the run configuration.
func (e *Engine) Config() config.Config { return e.cfg }

// Turn resolves one player intent, runs the processors and, when the player
// is alive and the intent took a turn, lets every AI act once in id order.
// Only Exit is accepted while an upgrade choice is pending.
func (e *Engine) Turn(a Action) PlayerAction {
	if a.Kind == ActionExit {
		return Exit
	}
	result := DidntTakeTurn
	if !e.PendingUpgrade {
		result = e.resolve(a)
	}
	e.checkLevelUp()
	e.processEvents()

	player := e.World.Player()
	if result != TookTurn || !player.Alive {
		return result
	}
	ctx := e.Context()
	for _, id := range e.World.Query(component.CFighter, component.CAI) {
		if ent := e.World.Get(id); ent != nil && ent.AI != nil {
			system.TakeTurn(ctx, id)
		}
	}
	e.Stats.Log.TurnsPlayed++
	return result
}

func (e *Engine) resolve(a Action) PlayerAction {
	player := e.World.Player()
	if !player.Alive {
		return DidntTakeTurn
	}
	ctx := e.Context()
	switch a.Kind {
	case ActionMove:
		if system.PlayerMoveOrAttack(ctx, a.DX, a.DY) == system.MoveOK {
			e.refreshFOV()
		}
		return TookTurn
	case ActionWait:
		return TookTurn
	case ActionPickUp:
		if id, ok := e.World.ItemAt(player.X, player.Y); ok {
			system.PickUp(ctx, id)
		}
		return DidntTakeTurn
	case ActionUse:
		if a.Slot < 0 || a.Slot >= len(player.Inventory) {
			return DidntTakeTurn
		}
		system.UseItem(ctx, a.Slot, e.Targeter)
		return TookTurn
	case ActionDrop:
		if !system.Drop(ctx, a.Slot) {
			return DidntTakeTurn
		}
		return TookTurn
	case ActionDescend:
		if _, err := e.Descend(); err != nil {
			e.log.Error("level build failed", "depth", e.DungeonLevel, "err", err)
		}
		return DidntTakeTurn
	}
	return DidntTakeTurn
}

func (e *Engine) processEvents() {
	if e.cfg.Events.DrainAll {
		e.Processors.Drain(e.Map, e.World, e.Bus)
		return
	}
	e.Processors.ProcessAll(e.Map, e.World, e.Bus)
}

func (e *Engine) checkLevelUp() {
	if e.PendingUpgrade || !system.CheckLevelUp(e.World.Player()) {
		return
	}
	e.PendingUpgrade = true
	e.Messages.Add(fmt.Sprintf("Your battle skills grow stronger! You reached level %d!",
		e.World.Player().Level+1), tcell.ColorYellow)
}

// UpgradeOptions lists the pending level-up choices, or nil.
func (e *Engine) UpgradeOptions() []string {
	if !e.PendingUpgrade {
		return nil
	}
	return system.UpgradeOptions(e.World.Player())
}

// ChooseUpgrade resolves a pending level up. It reports false when no
// upgrade is pending.
func (e *Engine) ChooseUpgrade(u system.Upgrade) bool {
	if !e.PendingUpgrade {
		return false
	}
	e.PendingUpgrade = false
	applied := system.ApplyUpgrade(e.World.Player(), u)
	e.checkLevelUp()
	return applied
}

// Descend moves to the next level when the player stands on stairs.
func (e *Engine) Descend() (bool, error) {
	px, py := e.World.Player().Pos()
	if _, ok := e.World.StairsAt(px, py); !ok {
		e.Messages.Add("There are no stairs here.", tcell.ColorWhite)
		return false, nil
	}
	return true, e.NextLevel()
}

// NextLevel heals the player by half their max hp and builds the next depth.
func (e *Engine) NextLevel() error {
	player := e.World.Player()
	e.Messages.Add("You rest for a minute and recover your strength", tcell.ColorViolet)
	player.Heal(player.MaxHP() / 2)
	e.Messages.Add("You descend deeper into the dungeon ...", tcell.ColorRed)
	e.DungeonLevel++
	return e.buildLevel()
}

// GameOver reports whether the player has died.
func (e *Engine) GameOver() bool { return !e.World.Player().Alive }

// autoTargeter aims at the closest visible monster.
type autoTargeter struct{ e *Engine }

func (t autoTargeter) TargetMonster(maxRange float64) (ecs.EntityID, bool) {
	r := int(maxRange)
	if maxRange <= 0 {
		r = t.e.Map.Width + t.e.Map.Height
	}
	return t.e.World.ClosestMonster(t.e.FOV, r)
}

func (t autoTargeter) TargetTile(maxRange float64) (int, int, bool) {
	id, ok := t.TargetMonster(maxRange)
	if !ok {
		return 0, 0, false
	}
	x, y := t.e.World.Get(id).Pos()
	return x, y, true
}
