package component

// Slot is where an equipment item is worn.
type Slot uint8

const (
	SlotLeftHand Slot = iota
	SlotRightHand
	SlotHead
)

func (s Slot) String() string {
	switch s {
	case SlotLeftHand:
		return "left hand"
	case SlotRightHand:
		return "right hand"
	case SlotHead:
		return "head"
	}
	return "unknown"
}

// Equipment holds the slot and stat bonuses of a wearable item. The bonuses
// count toward the owner's stats only while Equipped is set.
type Equipment struct {
	Slot         Slot `json:"slot"`
	Equipped     bool `json:"equipped"`
	MaxHPBonus   int  `json:"max_hp_bonus"`
	PowerBonus   int  `json:"power_bonus"`
	DefenseBonus int  `json:"defense_bonus"`
}

