// Package audio synthesizes the sound cues played on combat and pickup events.
package audio

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"halls-of-ruzt/internal/config"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays named cues through the speaker. Until Start succeeds every
// cue is dropped silently.
type Engine struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	log         *log.Logger
	cues        map[string]cue
	mixer       *beep.Mixer
	bgm         *beep.Ctrl
	initialized bool
}

// New returns an engine with the built-in cue table.
func New(cfg config.AudioConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		cfg: cfg,
		log: logger,
		cues: map[string]cue{
			"punch":        punchCue,
			"monster1":     monsterCue,
			"monster_die1": monsterDieCue,
			"pick":         pickCue,
		},
		mixer: &beep.Mixer{},
	}
}

// Cues lists the known cue names in sorted order.
func (e *Engine) Cues() []string {
	names := make([]string, 0, len(e.cues))
	for name := range e.cues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start opens the speaker and begins the background drone when enabled.
// It is a no-op when both effects and music are off.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || (!e.cfg.PlaySFX && !e.cfg.PlayBGM) {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true

	if e.cfg.PlayBGM {
		loop := beep.Iterate(func() beep.Streamer { return droneCue(sampleRate) })
		e.bgm = &beep.Ctrl{Streamer: newVolume(loop, e.cfg.BGMVolume)}
		speaker.Lock()
		e.mixer.Add(e.bgm)
		speaker.Unlock()
	}
	return nil
}

// Close stops playback and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	if e.bgm != nil {
		e.bgm.Paused = true
	}
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}

// PlayEffect queues the named cue at the configured effect volume.
func (e *Engine) PlayEffect(name string) {
	if !e.cfg.PlaySFX {
		return
	}
	mk, ok := e.cues[name]
	if !ok {
		e.log.Warn("no sample found", "name", name)
		return
	}
	e.log.Debug("playing sample", "name", name)

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(newVolume(mk(sampleRate), e.cfg.SFXVolume))
	speaker.Unlock()
}
