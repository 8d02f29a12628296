// Package component holds the optional data records attached to an entity.
// Components carry no behavior beyond small constructors and lookups.
package component

// Type is a small integer key naming a component kind.
type Type uint8

const (
	CFighter Type = iota + 1
	CAI
	CItem
	CEquipment
)

func (t Type) String() string {
	switch t {
	case CFighter:
		return "fighter"
	case CAI:
		return "ai"
	case CItem:
		return "item"
	case CEquipment:
		return "equipment"
	}
	return "unknown"
}
