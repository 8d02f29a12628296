// Package event implements the turn-scoped publish/subscribe channel: a
// fixed-capacity ring buffer with one independent read cursor per processor.
package event

// Type identifies what happened.
type Type uint8

const (
	PlayerAttack Type = iota
	EntityAttacked
	PlayerMove
	PlayerDie
	MonsterAttack
	MonsterMove
	MonsterDie
	BossDie
	PlayerPickupItem
)

var typeNames = [...]string{
	PlayerAttack:     "PlayerAttack",
	EntityAttacked:   "EntityAttacked",
	PlayerMove:       "PlayerMove",
	PlayerDie:        "PlayerDie",
	MonsterAttack:    "MonsterAttack",
	MonsterMove:      "MonsterMove",
	MonsterDie:       "MonsterDie",
	BossDie:          "BossDie",
	PlayerPickupItem: "PlayerPickupItem",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Payload keys used by the core.
const (
	KeyTargetName   = "target_name"
	KeyTargetPos    = "target_pos"
	KeyAttackerName = "attacker_name"
	KeyAttackerPos  = "attacker_pos"
	KeyDamage       = "damage"
	KeyKilled       = "killed"
	KeyPosition     = "position"
	KeyName         = "name"
	KeyItem         = "item"
)
