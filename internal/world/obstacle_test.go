package world

import (
	"context"
	"math/rand"
	"testing"
)

func mapsEqual(a, b *Map) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for x := 0; x < a.Width(); x++ {
		for y := 0; y < a.Height(); y++ {
			p := NewPos(x, y)
			if *a.At(p) != *b.At(p) {
				return false
			}
		}
	}
	return true
}

func TestScatterObstaclesDeterministic(t *testing.T) {
	build := func(seed int64) *Map {
		m := NewMap(40, 20)
		m.ScatterObstacles(context.Background(), 12, rand.New(rand.NewSource(seed)))
		return m
	}

	if !mapsEqual(build(42), build(42)) {
		t.Error("Same seed should dress the map identically")
	}
	if mapsEqual(build(42), build(43)) {
		t.Error("Different seeds should dress the map differently")
	}
}

func TestScatterObstaclesPlacesSomething(t *testing.T) {
	m := NewMap(40, 20)
	m.ScatterObstacles(context.Background(), 12, rand.New(rand.NewSource(1)))

	dressed := 0
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			if m.At(NewPos(x, y)).Type != TileEmpty {
				dressed++
			}
		}
	}
	if dressed == 0 {
		t.Error("Dressing should place at least one obstacle cell")
	}
}

func TestAddObstacleBlock(t *testing.T) {
	m := NewMap(10, 10)
	rng := rand.New(rand.NewSource(1))

	m.AddObstacle(NewPos(5, 5), ObstacleBlock, rng)
	tile := m.At(NewPos(5, 5))
	if tile.Type != TileWall || !tile.Blocked || !tile.BlockSight {
		t.Errorf("Block stamp should leave a wall tile, got %+v", tile)
	}

	// Stamps clip against the rim instead of panicking.
	m.AddObstacle(NewPos(-2, -2), ObstacleBlock, rng)
	m.AddObstacle(NewPos(9, 9), ObstacleBuilding, rng)
}

func TestAddObstacleSquare(t *testing.T) {
	m := NewMap(10, 10)
	rng := rand.New(rand.NewSource(1))

	m.AddObstacle(NewPos(4, 4), ObstacleSquare, rng)
	for _, p := range []Pos{NewPos(4, 4), NewPos(5, 4), NewPos(4, 5), NewPos(5, 5)} {
		if m.At(p).Type != TileWall {
			t.Errorf("Square stamp should cover %v", p)
		}
	}
	if m.At(NewPos(6, 4)).Type != TileEmpty {
		t.Error("Square stamp should not spill past its footprint")
	}
}

func TestRandomPosInRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	center := NewPos(10, 10)

	for i := 0; i < 100; i++ {
		p := RandomPosInRadius(center, 3, rng)
		if Distance(center, p) > 3 {
			t.Fatalf("Offset position %v strays outside radius 3", p)
		}
	}
}
