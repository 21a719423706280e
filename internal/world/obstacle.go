package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skulk/internal/telemetry"
)

// Obstacle is a reusable terrain stamp placed during level dressing.
type Obstacle int

const (
	// ObstacleBlock is a single wall cell.
	ObstacleBlock Obstacle = iota
	// ObstacleWall is a straight run of wall cells.
	ObstacleWall
	// ObstacleShortWall is a straight run of short wall cells.
	ObstacleShortWall
	// ObstacleSquare is a 2x2 block of wall cells.
	ObstacleSquare
	// ObstacleLShape is a 3-cell run with a 1-cell foot.
	ObstacleLShape
	// ObstacleBuilding is a hollow wall ring with a few gaps knocked out.
	ObstacleBuilding
)

// AllObstacles returns every obstacle stamp, for random selection.
func AllObstacles() []Obstacle {
	return []Obstacle{
		ObstacleBlock, ObstacleWall, ObstacleShortWall,
		ObstacleSquare, ObstacleLShape, ObstacleBuilding,
	}
}

// RandomOffset returns a position offset with each component drawn from
// [-radius, radius).
func RandomOffset(rng *rand.Rand, radius int) Pos {
	return Pos{
		X: rng.Intn(2*radius) - radius,
		Y: rng.Intn(2*radius) - radius,
	}
}

// RandomPosInRadius returns pos perturbed by a random offset within the
// given radius.
func RandomPosInRadius(pos Pos, radius int, rng *rand.Rand) Pos {
	return pos.Add(RandomOffset(rng, radius))
}

// AddObstacle stamps one obstacle anchored at pos, clipping against the
// grid. Orientation and gap choices come from rng.
func (m *Map) AddObstacle(pos Pos, obstacle Obstacle, rng *rand.Rand) {
	switch obstacle {
	case ObstacleBlock:
		if m.WithinBounds(pos) {
			*m.At(pos) = WallTile()
		}

	case ObstacleWall:
		end := pos.MoveX(3)
		if rng.Intn(2) == 0 {
			end = pos.MoveY(3)
		}
		m.PlaceLine(pos, end, WallTile())

	case ObstacleShortWall:
		end := pos.MoveX(3)
		if rng.Intn(2) == 0 {
			end = pos.MoveY(3)
		}
		m.PlaceLine(pos, end, ShortWallTile())

	case ObstacleSquare:
		m.PlaceBlock(pos, 2, WallTile())

	case ObstacleLShape:
		dir := 1
		if rng.Intn(2) == 0 {
			dir = -1
		}
		if rng.Intn(2) == 0 {
			m.PlaceLine(pos, pos.MoveX(2), WallTile())
			foot := pos.MoveY(dir)
			if m.WithinBounds(foot) {
				*m.At(foot) = WallTile()
			}
		} else {
			m.PlaceLine(pos, pos.MoveY(2), WallTile())
			foot := pos.MoveX(dir)
			if m.WithinBounds(foot) {
				*m.At(foot) = WallTile()
			}
		}

	case ObstacleBuilding:
		const size = 2
		wall := WallTileWith('▒')
		var positions []Pos
		positions = append(positions, m.PlaceLine(pos.Add(Pos{-size, size}), pos.Add(Pos{size, size}), wall)...)
		positions = append(positions, m.PlaceLine(pos.Add(Pos{-size, size}), pos.Add(Pos{-size, -size}), wall)...)
		positions = append(positions, m.PlaceLine(pos.Add(Pos{-size, -size}), pos.Add(Pos{size, -size}), wall)...)
		positions = append(positions, m.PlaceLine(pos.Add(Pos{size, -size}), pos.Add(Pos{size, size}), wall)...)

		// Knock a few random gaps so the building can be entered.
		for i := rng.Intn(10); i > 0 && len(positions) > 0; i-- {
			idx := rng.Intn(len(positions))
			*m.At(positions[idx]) = EmptyTile()
			positions[idx] = positions[len(positions)-1]
			positions = positions[:len(positions)-1]
		}
	}
}

// ScatterObstacles dresses the map with count random obstacle stamps,
// keeping a clear margin against the rim, then refreshes the visibility
// buffer once at the end.
func (m *Map) ScatterObstacles(ctx context.Context, count int, rng *rand.Rand) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.scatter_obstacles")
	defer span.End()

	startTime := time.Now()

	stamps := AllObstacles()
	margin := 3
	for i := 0; i < count; i++ {
		pos := Pos{
			X: margin + rng.Intn(max(1, m.width-2*margin)),
			Y: margin + rng.Intn(max(1, m.height-2*margin)),
		}
		m.AddObstacle(pos, stamps[rng.Intn(len(stamps))], rng)
	}

	m.scatterSurfaces(count, rng)
	m.Refresh()

	span.SetAttributes(
		attribute.Int("map.width", m.width),
		attribute.Int("map.height", m.height),
		attribute.Int("map.obstacle_count", count),
		attribute.Int64("map.dressing_ms", time.Since(startTime).Milliseconds()),
	)
}

// scatterSurfaces drops small grass and rubble patches on open floor.
// Surfaces are cosmetic and never touch geometry, so no Refresh is
// needed on their account.
func (m *Map) scatterSurfaces(count int, rng *rand.Rand) {
	surfaces := []Surface{SurfaceGrass, SurfaceRubble}
	for i := 0; i < count; i++ {
		center := Pos{X: rng.Intn(m.width), Y: rng.Intn(m.height)}
		surface := surfaces[rng.Intn(len(surfaces))]
		for _, p := range m.PosInRadius(center, 2) {
			if m.IsEmpty(p) && rng.Intn(3) > 0 {
				m.At(p).Surface = surface
			}
		}
	}
}
