package component

// Tag is a bitset of marker flags on an entity.
type Tag uint8

const (
	TagPlayer Tag = 1 << iota
	TagStairs
	TagBoss
)

// Has reports whether every flag in other is set.
func (t Tag) Has(other Tag) bool { return t&other == other }
