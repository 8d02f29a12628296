package game

import (
	"math/rand"

	"halls-of-ruzt/internal/config"
	"halls-of-ruzt/internal/generate"
)

// levelConfig builds a generate.Config for the given depth.
func levelConfig(depth uint32, m config.MapConfig, rng *rand.Rand) *generate.Config {
	cfg := generate.DefaultConfig(depth, rng)
	if m.Width > 0 {
		cfg.Width = m.Width
	}
	if m.Height > 0 {
		cfg.Height = m.Height
	}
	return cfg
}
