// Package config loads the YAML run configuration.
package config

// Config holds every tunable of a run.
type Config struct {
	Audio  AudioConfig  `yaml:"audio"`
	Events EventsConfig `yaml:"events"`
	Map    MapConfig    `yaml:"map"`
	Seed   int64        `yaml:"seed"` // 0 picks a time-based seed
}

// AudioConfig is passed through to the audio collaborator unvalidated.
type AudioConfig struct {
	PlaySFX   bool    `yaml:"play_sfx"`
	SFXVolume float64 `yaml:"sfx_volume"`
	PlayBGM   bool    `yaml:"play_bgm"`
	BGMVolume float64 `yaml:"bgm_volume"`
}

// EventsConfig sizes the event bus and picks the processor draining mode.
type EventsConfig struct {
	Capacity int  `yaml:"capacity"`
	DrainAll bool `yaml:"drain_all"`
}

// MapConfig sets the dungeon dimensions.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}
