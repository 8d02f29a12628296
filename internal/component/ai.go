package component

// AIKind is the active decision mode of an AI state.
type AIKind uint8

const (
	AIBasic AIKind = iota
	AIConfused
)

func (k AIKind) String() string {
	if k == AIConfused {
		return "confused"
	}
	return "basic"
}

// AI is a recursive state: a Confused state owns the state it reverts to.
type AI struct {
	Kind           AIKind `json:"kind"`
	Previous       *AI    `json:"previous,omitempty"`
	TurnsRemaining int    `json:"turns_remaining,omitempty"`
}


// BasicAI returns a fresh Basic state.
func BasicAI() *AI { return &AI{Kind: AIBasic} }

// Confuse wraps prev in a Confused state lasting turns. A nil prev wraps Basic.
func Confuse(prev *AI, turns int) *AI {
	if prev == nil {
		prev = BasicAI()
	}
	return &AI{Kind: AIConfused, Previous: prev, TurnsRemaining: turns}
}

