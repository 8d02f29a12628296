package component

// ItemKind identifies the use effect of an item.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemLightning
	ItemConfuse
	ItemFireball
	ItemArtifact
	ItemSword
	ItemShield
)

var itemKindNames = [...]string{
	ItemHeal:      "heal",
	ItemLightning: "lightning",
	ItemConfuse:   "confuse",
	ItemFireball:  "fireball",
	ItemArtifact:  "artifact",
	ItemSword:     "sword",
	ItemShield:    "shield",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "unknown"
}

// Item marks an entity as something that can be picked up and used.
// Name and Value are only meaningful for artifacts.
type Item struct {
	Kind  ItemKind `json:"kind"`
	Name  string   `json:"name,omitempty"`
	Value int      `json:"value,omitempty"`
}


// IsEquipment reports whether using the item toggles equipment.
func (i Item) IsEquipment() bool {
	return i.Kind == ItemSword || i.Kind == ItemShield
}
