package world

import "testing"

func TestAoeFillOrigin(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(5, 5)

	aoe := m.AoeFill(AoeSound, start, 0)
	if aoe.Effect != AoeSound {
		t.Errorf("Effect should carry through, got %v", aoe.Effect)
	}
	if len(aoe.Rings) != 1 {
		t.Fatalf("Radius 0 should yield a single ring, got %d", len(aoe.Rings))
	}
	if len(aoe.Rings[0]) != 1 || aoe.Rings[0][0] != start {
		t.Errorf("Ring 0 should be just the origin, got %v", aoe.Rings[0])
	}
}

func TestAoeFillOpenMatchesFlood(t *testing.T) {
	m := NewMap(12, 12)
	start := NewPos(5, 5)

	aoe := m.AoeFill(AoeSound, start, 3)
	flood := posSet(m.FloodFill(start, 3))
	spread := posSet(aoe.Positions())

	if len(spread) != len(flood) {
		t.Fatalf("Open-field spread should match the flood: %d vs %d", len(spread), len(flood))
	}
	for p := range flood {
		if !spread[p] {
			t.Errorf("Cell %v reached by the flood is missing from the spread", p)
		}
	}
}

func TestAoeFillRingsByDistance(t *testing.T) {
	m := NewMap(12, 12)
	start := NewPos(5, 5)

	aoe := m.AoeFill(AoeSound, start, 3)
	if len(aoe.Rings) != 4 {
		t.Fatalf("Radius 3 should yield 4 rings, got %d", len(aoe.Rings))
	}
	for dist, ring := range aoe.Rings {
		for _, p := range ring {
			if Distance(start, p) != dist {
				t.Errorf("Cell %v in ring %d has distance %d", p, dist, Distance(start, p))
			}
		}
	}
}

func TestAoeFillDampensThroughWalls(t *testing.T) {
	m := NewMap(12, 12)
	start := NewPos(5, 5)

	// A single wall edge: the cell just across it is reachable around
	// the end of the wall, but the direct line is blocked both ways.
	m.At(NewPos(6, 5)).LeftWall = WallTall
	m.Refresh()

	across := NewPos(6, 5)
	if !posSet(m.FloodFill(start, 2))[across] {
		t.Fatal("Cell across the wall should be flood reachable")
	}

	aoe := m.AoeFill(AoeSound, start, 2)
	if posSet(aoe.Positions())[across] {
		t.Error("Tight spread should dampen out the cell across the wall")
	}

	// A wider spread leaves slack for wall penetration close in.
	aoe = m.AoeFill(AoeSound, start, 4)
	if !posSet(aoe.Positions())[across] {
		t.Error("Wide spread should still cover the cell across the wall")
	}
}
