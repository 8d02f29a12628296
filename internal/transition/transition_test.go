package transition

import "testing"

func TestFromDungeonLevel(t *testing.T) {
	table := Table{{1, 2}, {4, 3}, {6, 5}}
	cases := []struct {
		level uint32
		want  uint32
	}{
		{0, 0},
		{1, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{6, 5},
		{100, 5},
	}
	for _, c := range cases {
		if got := FromDungeonLevel(table, c.level); got != c.want {
			t.Errorf("FromDungeonLevel(level=%d) = %d; want %d", c.level, got, c.want)
		}
	}
}

func TestFromDungeonLevelEmptyTable(t *testing.T) {
	if got := FromDungeonLevel(nil, 7); got != 0 {
		t.Errorf("empty table should yield 0; got %d", got)
	}
}

func TestDuplicateLevelLastEntryWins(t *testing.T) {
	// {2,0} followed by {2,5}: the later entry at the same level applies.
	if got := ArtifactChance.At(2); got != 5 {
		t.Errorf("ArtifactChance.At(2) = %d; want 5", got)
	}
	if got := ArtifactChance.At(1); got != 0 {
		t.Errorf("ArtifactChance.At(1) = %d; want 0", got)
	}
}

func TestLevelTypeSchedule(t *testing.T) {
	cases := map[uint32]uint32{
		1:  LevelStandard,
		2:  LevelBoss,
		3:  LevelStandard,
		9:  LevelStandard,
		10: LevelDeep,
	}
	for level, want := range cases {
		if got := LevelType.At(level); got != want {
			t.Errorf("LevelType.At(%d) = %d; want %d", level, got, want)
		}
	}
}
