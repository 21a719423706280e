package world

import "testing"

func TestTileConstructors(t *testing.T) {
	cases := []struct {
		name       string
		tile       Tile
		blocked    bool
		blockSight bool
	}{
		{"empty", EmptyTile(), false, false},
		{"water", WaterTile(), true, false},
		{"wall", WallTile(), true, true},
		{"short wall", ShortWallTile(), true, false},
		{"exit", ExitTile(), false, false},
	}
	for _, tc := range cases {
		if tc.tile.Blocked != tc.blocked {
			t.Errorf("%s tile Blocked = %v, want %v", tc.name, tc.tile.Blocked, tc.blocked)
		}
		if tc.tile.BlockSight != tc.blockSight {
			t.Errorf("%s tile BlockSight = %v, want %v", tc.name, tc.tile.BlockSight, tc.blockSight)
		}
	}
}

func TestShortWallTileSeeOverWalkAround(t *testing.T) {
	m := NewMap(10, 10)

	*m.At(NewPos(5, 5)) = ShortWallTile()
	m.Refresh()

	// Movement into the cell is blocked.
	if m.MoveBlocked(NewPos(4, 5), NewPos(5, 5)) == nil {
		t.Error("Short wall tile should block movement")
	}
	// The tile itself stays visible from next door: the reverse line
	// out of the blocked cell is clear.
	if !m.IsInFov(NewPos(4, 5), NewPos(5, 5), 5) {
		t.Error("Short wall tile should be visible from an adjacent cell")
	}
}

func TestWallIsEmpty(t *testing.T) {
	if !WallEmpty.IsEmpty() {
		t.Error("WallEmpty should be empty")
	}
	if WallShort.IsEmpty() || WallTall.IsEmpty() {
		t.Error("Short and tall walls are not empty")
	}
}
