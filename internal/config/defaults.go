package config

import (
	_ "embed"
)

//go:embed defaults/ruzt.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Audio: AudioConfig{
			PlaySFX:   true,
			SFXVolume: 0,
			PlayBGM:   true,
			BGMVolume: 0,
		},
		Events: EventsConfig{
			Capacity: 32,
			DrainAll: false,
		},
		Map: MapConfig{
			Width:  80,
			Height: 68,
		},
	}
}

// MinMapSize fits the largest room plus its surrounding walls.
const MinMapSize = 12

// normalize replaces unusable values with defaults and raises map
// dimensions below MinMapSize.
func (c *Config) normalize() {
	d := Default()
	if c.Events.Capacity <= 0 {
		c.Events.Capacity = d.Events.Capacity
	}
	c.Map.Width = mapDimension(c.Map.Width, d.Map.Width)
	c.Map.Height = mapDimension(c.Map.Height, d.Map.Height)
}

func mapDimension(v, def int) int {
	if v <= 0 {
		return def
	}
	return max(v, MinMapSize)
}
