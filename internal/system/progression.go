package system

import (
	"fmt"

	"halls-of-ruzt/internal/ecs"
)

const (
	LevelUpBase   = 200
	LevelUpFactor = 150
)

// LevelUpThreshold returns the xp needed to leave level.
func LevelUpThreshold(level int) int {
	return LevelUpBase + level*LevelUpFactor
}

// CheckLevelUp reports whether the player has enough xp to level up.
func CheckLevelUp(player *ecs.Entity) bool {
	if player == nil || player.Fighter == nil {
		return false
	}
	return player.Fighter.XP >= LevelUpThreshold(player.Level)
}

// Upgrade is a stat choice offered on level up.
type Upgrade uint8

const (
	UpgradeHP Upgrade = iota
	UpgradePower
	UpgradeDefense
)

// UpgradeHPAmount is the max hp (and current hp) gained from UpgradeHP.
const UpgradeHPAmount = 20

func (u Upgrade) String() string {
	switch u {
	case UpgradeHP:
		return "constitution"
	case UpgradePower:
		return "strength"
	case UpgradeDefense:
		return "agility"
	}
	return "unknown"
}

// UpgradeOptions returns the menu lines for the three upgrades.
func UpgradeOptions(player *ecs.Entity) []string {
	f := player.Fighter
	return []string{
		fmt.Sprintf("Constitution (+%d HP, from %d)", UpgradeHPAmount, f.BaseMaxHP),
		fmt.Sprintf("Strength (+1 attack, from %d)", f.BasePower),
		fmt.Sprintf("Agility (+1 defense, from %d)", f.BaseDefense),
	}
}

// ApplyUpgrade spends the current level's threshold, increments the level and
// raises one base stat. It reports false when the player cannot level up.
func ApplyUpgrade(player *ecs.Entity, u Upgrade) bool {
	if !CheckLevelUp(player) {
		return false
	}
	f := player.Fighter
	f.XP -= LevelUpThreshold(player.Level)
	player.Level++
	switch u {
	case UpgradeHP:
		f.BaseMaxHP += UpgradeHPAmount
		f.HP += UpgradeHPAmount
	case UpgradePower:
		f.BasePower++
	case UpgradeDefense:
		f.BaseDefense++
	}
	return true
}
