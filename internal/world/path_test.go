package world

import "testing"

func posSet(ps []Pos) map[Pos]bool {
	set := make(map[Pos]bool, len(ps))
	for _, p := range ps {
		set[p] = true
	}
	return set
}

func TestFloodFillOpen(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(5, 5)

	flood := m.FloodFill(start, 0)
	if len(flood) != 1 || flood[0] != start {
		t.Fatalf("Radius 0 flood should be just the origin, got %v", flood)
	}

	flood = m.FloodFill(start, 1)
	if len(flood) != 9 {
		t.Errorf("Radius 1 flood in the open should cover 9 cells, got %d", len(flood))
	}
	if flood[0] != start {
		t.Errorf("Flood should list the origin first, got %v", flood[0])
	}

	set := posSet(flood)
	if len(set) != len(flood) {
		t.Error("Flood result should contain no duplicates")
	}
}

func TestFloodFillWalled(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(5, 5)

	m.At(NewPos(5, 4)).LeftWall = WallShort
	m.At(NewPos(5, 5)).LeftWall = WallShort
	m.At(NewPos(5, 6)).LeftWall = WallShort
	m.Refresh()

	flood := m.FloodFill(start, 1)
	if len(flood) != 6 {
		t.Fatalf("Walls should cut the radius 1 flood to 6 cells, got %d: %v", len(flood), flood)
	}

	set := posSet(flood)
	for _, p := range []Pos{NewPos(4, 4), NewPos(4, 5), NewPos(4, 6)} {
		if set[p] {
			t.Errorf("Cell %v lies behind the wall and should be unreachable", p)
		}
	}
	for _, p := range []Pos{start, NewPos(6, 5), NewPos(5, 4), NewPos(5, 6)} {
		if !set[p] {
			t.Errorf("Cell %v should still be reachable", p)
		}
	}
}

func TestFloodFillDetour(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(5, 5)

	m.At(NewPos(6, 5)).LeftWall = WallTall
	m.Refresh()

	// The cell just across the wall is still reachable by going around.
	flood := m.FloodFill(start, 2)
	if !posSet(flood)[NewPos(6, 5)] {
		t.Error("Cell across the wall should be reachable within 2 hops")
	}

	flood = m.FloodFill(start, 1)
	if posSet(flood)[NewPos(6, 5)] {
		t.Error("Cell across the wall should not be reachable within 1 hop")
	}
}

func TestReachableNeighbors(t *testing.T) {
	m := NewMap(10, 10)

	if n := len(m.ReachableNeighbors(NewPos(5, 5))); n != 8 {
		t.Errorf("Open interior cell should have 8 reachable neighbors, got %d", n)
	}
	if n := len(m.ReachableNeighbors(NewPos(0, 0))); n != 3 {
		t.Errorf("Corner cell should have 3 reachable neighbors, got %d", n)
	}

	*m.At(NewPos(6, 5)) = WaterTile()
	m.Refresh()
	neighbors := m.ReachableNeighbors(NewPos(5, 5))
	if len(neighbors) != 7 {
		t.Errorf("Water neighbor should be excluded, got %d", len(neighbors))
	}
	if posSet(neighbors)[NewPos(6, 5)] {
		t.Error("Water cell should not appear among reachable neighbors")
	}
}

func TestAstarTrivial(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(5, 5)

	path := m.AstarPath(start, start, -1, nil)
	if len(path) != 1 || path[0] != start {
		t.Errorf("Path to self should be the single cell, got %v", path)
	}
}

func TestAstarStraightLine(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(2, 5)
	end := NewPos(7, 5)

	path := m.AstarPath(start, end, -1, nil)
	if len(path) != 6 {
		t.Fatalf("Open straight path should take 6 cells, got %v", path)
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Errorf("Path endpoints wrong: %v", path)
	}
	for i := 1; i < len(path); i++ {
		if Distance(path[i-1], path[i]) != 1 {
			t.Errorf("Path cells %v and %v are not adjacent", path[i-1], path[i])
		}
	}
}

func TestAstarAroundWall(t *testing.T) {
	m := NewMap(10, 10)

	for y := 3; y < 8; y++ {
		m.At(NewPos(5, y)).LeftWall = WallTall
	}
	m.Refresh()

	start := NewPos(3, 5)
	end := NewPos(7, 5)
	path := m.AstarPath(start, end, -1, nil)
	if len(path) == 0 {
		t.Fatal("Path around the wall should exist")
	}
	if len(path) <= Distance(start, end)+1 {
		t.Errorf("Path should detour around the wall, got length %d", len(path))
	}
	if b := m.PathBlocked(path); b != nil {
		t.Errorf("Returned path should be walkable, blocked at %+v", b)
	}
}

func TestAstarUnreachable(t *testing.T) {
	m := NewMap(10, 10)
	end := NewPos(7, 7)

	for _, d := range MoveDirections() {
		dx, dy := d.Delta()
		*m.At(end.Add(NewPos(dx, dy))) = WallTile()
	}
	m.Refresh()

	path := m.AstarPath(NewPos(1, 1), end, -1, nil)
	if len(path) != 0 {
		t.Errorf("Sealed-off goal should yield an empty path, got %v", path)
	}
}

func TestAstarMaxDist(t *testing.T) {
	m := NewMap(20, 20)
	start := NewPos(2, 5)
	end := NewPos(8, 5)

	if path := m.AstarPath(start, end, 3, nil); len(path) != 0 {
		t.Errorf("Goal beyond the search bound should be unreachable, got %v", path)
	}
	if path := m.AstarPath(start, end, 10, nil); len(path) == 0 {
		t.Error("Goal within the search bound should be found")
	}
}

func TestAstarCostFn(t *testing.T) {
	m := NewMap(10, 10)
	start := NewPos(2, 5)
	end := NewPos(7, 5)

	// Make row 5 expensive; the path should dodge into another row.
	costly := func(start, pos Pos, m *Map) int {
		if pos.Y == 5 && pos != start && pos != NewPos(7, 5) {
			return 100
		}
		return 1
	}
	path := m.AstarPath(start, end, -1, costly)
	if len(path) == 0 {
		t.Fatal("Path should exist")
	}
	for _, p := range path[1 : len(path)-1] {
		if p.Y == 5 {
			t.Errorf("Path should avoid the expensive row, went through %v", p)
		}
	}
}
