package game

import (
	"encoding/json"
	"os"
	"path/filepath"

	"halls-of-ruzt/internal/ecs"
	"halls-of-ruzt/internal/event"
	"halls-of-ruzt/internal/gamemap"
)

// RunStatsID identifies the run statistics processor.
const RunStatsID = "run_stats_processor"

// RunLog records statistics gathered during one run.
type RunLog struct {
	DepthReached  uint32         `json:"depth_reached"`
	TurnsPlayed   int            `json:"turns_played"`
	PlayerLevel   int            `json:"player_level"`
	EnemiesKilled map[string]int `json:"enemies_killed"` // name → kill count
	ItemsPicked   int            `json:"items_picked"`
	DamageDealt   int            `json:"damage_dealt"`
	DamageTaken   int            `json:"damage_taken"`
	CauseOfDeath  string         `json:"cause_of_death,omitempty"` // last thing that hurt the player
	BossDefeated  bool           `json:"boss_defeated"`
}

// RunStats is a bus processor that fills a RunLog from combat events.
type RunStats struct {
	reader *event.Reader
	Log    RunLog
}

// NewRunStats returns an empty tracker reading from bus.
func NewRunStats(bus *event.Bus) *RunStats {
	return &RunStats{
		reader: event.NewReader(bus),
		Log:    RunLog{EnemiesKilled: make(map[string]int)},
	}
}

func (s *RunStats) ID() string            { return RunStatsID }
func (s *RunStats) Cursor() *event.Reader { return s.reader }

func (s *RunStats) Process(_ *gamemap.GameMap, w *ecs.World, bus *event.Bus) {
	ev, ok := s.reader.Next(bus)
	if !ok {
		return
	}
	switch ev.Type {
	case event.EntityAttacked:
		dmg, _ := ev.Get(event.KeyDamage)
		n, _ := dmg.AsInt()
		if n <= 0 {
			return
		}
		target, _ := ev.Get(event.KeyTargetName)
		attacker, _ := ev.Get(event.KeyAttackerName)
		player := w.Player().Name
		if name, _ := target.AsString(); name == player {
			s.Log.DamageTaken += n
			s.Log.CauseOfDeath, _ = attacker.AsString()
		} else if name, _ := attacker.AsString(); name == player {
			s.Log.DamageDealt += n
		}
	case event.MonsterDie:
		v, _ := ev.Get(event.KeyName)
		name, _ := v.AsString()
		s.Log.EnemiesKilled[name]++
	case event.BossDie:
		s.Log.BossDefeated = true
	case event.PlayerPickupItem:
		s.Log.ItemsPicked++
	}
}

// SaveRunLog appends the completed run as a single JSON line to runs.jsonl.
func SaveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// runLogDir returns the directory where run logs are stored.
// Follows the XDG Base Directory layout: $XDG_DATA_HOME/halls-of-ruzt,
// defaulting to ~/.local/share/halls-of-ruzt.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "halls-of-ruzt"), nil
}
