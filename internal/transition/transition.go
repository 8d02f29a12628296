// Package transition holds depth-indexed step functions used to scale level
// generation with dungeon depth.
package transition

// Transition maps a dungeon level threshold to a value.
type Transition struct {
	Level uint32 `json:"level"`
	Value uint32 `json:"value"`
}

// Table is an ordered list of transitions, ascending by Level.
type Table []Transition

// FromDungeonLevel returns the value of the last entry whose Level is <= level,
// or 0 if no entry qualifies.
func FromDungeonLevel(table Table, level uint32) uint32 {
	var value uint32
	for _, t := range table {
		if t.Level > level {
			break
		}
		value = t.Value
	}
	return value
}

// At is a convenience wrapper for FromDungeonLevel.
func (t Table) At(level uint32) uint32 { return FromDungeonLevel(t, level) }

// Level type values produced by LevelType.
const (
	LevelStandard uint32 = 0
	LevelBoss     uint32 = 1
	LevelDeep     uint32 = 2 // built with the standard algorithm
)

var (
	MaxMonsters = Table{{1, 2}, {4, 3}, {6, 5}}
	MaxItems    = Table{{1, 1}, {4, 2}}

	TrollChance    = Table{{3, 15}, {5, 30}, {7, 60}}
	SkeletonChance = Table{{3, 5}, {5, 10}, {7, 30}}
	SpectreChance  = Table{{6, 10}, {8, 30}, {10, 70}}

	LightningChance = Table{{4, 25}}
	ConfuseChance   = Table{{2, 10}}
	FireballChance  = Table{{6, 25}}
	ArtifactChance  = Table{{2, 0}, {2, 5}, {5, 15}}
	SwordChance     = Table{{4, 5}}
	ShieldChance    = Table{{8, 15}}

	// RoomOverlap disables overlap rejection when non-zero.
	RoomOverlap = Table{{3, 1}}

	LevelType = Table{{1, LevelStandard}, {2, LevelBoss}, {3, LevelStandard}, {10, LevelDeep}}
)
