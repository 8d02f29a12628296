package component

import "testing"

func TestConfuseWrapsBasicWhenNil(t *testing.T) {
	a := Confuse(nil, 10)
	if a.Kind != AIConfused || a.TurnsRemaining != 10 {
		t.Fatalf("Confuse(nil,10) = %+v", a)
	}
	if a.Previous == nil || a.Previous.Kind != AIBasic {
		t.Fatalf("expected Basic previous state, got %+v", a.Previous)
	}
}

func TestConfuseNests(t *testing.T) {
	inner := Confuse(BasicAI(), 3)
	outer := Confuse(inner, 5)
	if outer.Previous != inner {
		t.Fatal("outer confusion should own the inner state")
	}
	if inner.Previous == nil || inner.Previous.Kind != AIBasic || inner.Previous.Previous != nil {
		t.Errorf("innermost state = %+v; want a bare Basic", inner.Previous)
	}
}

func TestSlotString(t *testing.T) {
	cases := map[Slot]string{
		SlotLeftHand:  "left hand",
		SlotRightHand: "right hand",
		SlotHead:      "head",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Slot(%d).String() = %q; want %q", s, got, want)
		}
	}
}

func TestNewFighterStartsAtFullHealth(t *testing.T) {
	f := NewFighter(30, 2, 3, 0, DeathPlayer)
	if f.HP != f.BaseMaxHP || f.HP != 30 {
		t.Errorf("hp=%d max=%d; want 30/30", f.HP, f.BaseMaxHP)
	}
}

func TestTagHas(t *testing.T) {
	tags := TagPlayer | TagBoss
	if !tags.Has(TagPlayer) || !tags.Has(TagBoss) {
		t.Error("expected both flags set")
	}
	if tags.Has(TagStairs) {
		t.Error("stairs flag should not be set")
	}
}

func TestItemIsEquipment(t *testing.T) {
	cases := map[ItemKind]bool{
		ItemHeal:      false,
		ItemLightning: false,
		ItemArtifact:  false,
		ItemSword:     true,
		ItemShield:    true,
	}
	for kind, want := range cases {
		if got := (Item{Kind: kind}).IsEquipment(); got != want {
			t.Errorf("Item{%v}.IsEquipment() = %v; want %v", kind, got, want)
		}
	}
}
