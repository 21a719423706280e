// Package world implements the spatial core of the game: a tile grid
// with edge-level walls, single-step movement blocking, wall-aware field
// of view, pathfinding, and area-of-effect queries. Cells never reference
// each other directly; everything is addressed by coordinate.
package world

// Pos is a grid coordinate.
type Pos struct {
	X, Y int
}

// NewPos creates a position from its coordinates.
func NewPos(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns p offset by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the component-wise difference p - o.
func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

// MoveX returns p shifted along the x axis.
func (p Pos) MoveX(dx int) Pos {
	return Pos{X: p.X + dx, Y: p.Y}
}

// MoveY returns p shifted along the y axis.
func (p Pos) MoveY(dy int) Pos {
	return Pos{X: p.X, Y: p.Y + dy}
}

// Distance returns the rasterized-line distance between two positions:
// the number of steps on the line from a to b, which for a Bresenham
// line is the Chebyshev distance. This is the distance every radius in
// this package is measured in.
func Distance(a, b Pos) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// InDirectionOf returns the position one step from start toward end,
// with each axis clamped to a single step.
func InDirectionOf(start, end Pos) Pos {
	d := end.Sub(start)
	return start.Add(Pos{X: signum(d.X), Y: signum(d.Y)})
}

// MoveNextTo returns the position on the line from start to end just
// before end, or start itself when the two are already adjacent.
func MoveNextTo(start, end Pos) Pos {
	if Distance(start, end) <= 1 {
		return start
	}
	line := Line(start, end)
	return line[len(line)-2]
}

// IsOrdinal reports whether a delta is purely horizontal or vertical.
func IsOrdinal(delta Pos) bool {
	return (delta.X == 0 && delta.Y != 0) || (delta.Y == 0 && delta.X != 0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signum(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
