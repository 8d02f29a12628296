package component

// DeathCallback selects the end-of-life behavior run when hp reaches zero.
type DeathCallback uint8

const (
	DeathPlayer DeathCallback = iota
	DeathMonster
	DeathBoss
)

func (d DeathCallback) String() string {
	switch d {
	case DeathPlayer:
		return "player"
	case DeathMonster:
		return "monster"
	case DeathBoss:
		return "boss"
	}
	return "unknown"
}

// Fighter holds base combat stats. Effective stats add equipment bonuses and
// are computed by the owning entity.
type Fighter struct {
	BaseMaxHP   int           `json:"base_max_hp"`
	HP          int           `json:"hp"`
	BaseDefense int           `json:"base_defense"`
	BasePower   int           `json:"base_power"`
	XP          int           `json:"xp"`
	OnDeath     DeathCallback `json:"on_death"`
}


// NewFighter returns a Fighter at full health.
func NewFighter(hp, defense, power, xp int, onDeath DeathCallback) *Fighter {
	return &Fighter{
		BaseMaxHP:   hp,
		HP:          hp,
		BaseDefense: defense,
		BasePower:   power,
		XP:          xp,
		OnDeath:     onDeath,
	}
}
