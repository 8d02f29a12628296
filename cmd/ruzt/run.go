package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"halls-of-ruzt/internal/audio"
	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/game"
	"halls-of-ruzt/internal/save"
	"halls-of-ruzt/internal/storage"

	"github.com/charmbracelet/log"
)

// loadConfig reads the run configuration and applies --seed.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// writerSink prints combat lines to w.
type writerSink struct{ w io.Writer }

func (s writerSink) Record(line string) { fmt.Fprintln(s.w, line) }

// startAudio opens the speaker when --sound is set. Failure leaves the run
// silent.
func startAudio(cfg config.Config, logger *log.Logger) *audio.Engine {
	if !flagSound {
		return nil
	}
	eng := audio.New(cfg.Audio, logger)
	if err := eng.Start(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return nil
	}
	return eng
}

func engineOptions(cfg config.Config, logger *log.Logger, sfx *audio.Engine) []game.Option {
	opts := []game.Option{
		game.WithLogger(logger),
		game.WithRand(rand.New(rand.NewSource(cfg.Seed))),
	}
	if sfx != nil {
		opts = append(opts, game.WithEffectPlayer(sfx))
	}
	return opts
}

// openRun restores slot when it exists and otherwise starts a new run.
// An empty slot always starts fresh.
func openRun(store *storage.Store, slot string, cfg config.Config, opts []game.Option) (*game.Engine, bool, error) {
	if slot == "" || store == nil {
		e, err := game.New(cfg, opts...)
		return e, false, err
	}
	data, err := store.LoadSlot(slot)
	if errors.Is(err, storage.ErrSlotNotFound) {
		e, err := game.New(cfg, opts...)
		return e, false, err
	}
	if err != nil {
		return nil, false, err
	}
	snap, err := save.Unmarshal(data)
	if err != nil {
		return nil, false, fmt.Errorf("slot %q: %w", slot, err)
	}
	e, err := save.Restore(snap, cfg, opts...)
	return e, true, err
}

// persist saves a live run to slot, or records a finished one and frees
// its slot.
func persist(store *storage.Store, slot string, e *game.Engine, logger *log.Logger) error {
	if e.GameOver() {
		return recordRun(store, slot, e, logger)
	}
	if slot == "" {
		return nil
	}
	data, err := save.Marshal(save.Capture(e))
	if err != nil {
		return err
	}
	if err := store.SaveSlot(slot, e.DungeonLevel, e.Stats.Log.TurnsPlayed, data); err != nil {
		return err
	}
	logger.Info("run saved", "slot", slot, "depth", e.DungeonLevel, "turns", e.Stats.Log.TurnsPlayed)
	return nil
}

func recordRun(store *storage.Store, slot string, e *game.Engine, logger *log.Logger) error {
	runLog := e.Stats.Log
	if err := game.SaveRunLog(runLog); err != nil {
		logger.Warn("could not append run log", "err", err)
	}
	data, err := json.Marshal(runLog)
	if err != nil {
		return err
	}
	id, err := store.RecordRun(runLog.DepthReached, runLog.TurnsPlayed, runLog.CauseOfDeath, data)
	if err != nil {
		return err
	}
	logger.Info("run recorded", "id", id, "depth", runLog.DepthReached, "cause", runLog.CauseOfDeath)
	if slot == "" {
		return nil
	}
	if err := store.DeleteSlot(slot); err != nil && !errors.Is(err, storage.ErrSlotNotFound) {
		return err
	}
	return nil
}
