package world

// Direction is one of the 8 compass directions plus Center (no movement).
// The y axis grows downward, so Down is +y.
type Direction int

// Direction constants.
const (
	Center Direction = iota
	Left
	Right
	Up
	Down
	DownLeft
	DownRight
	UpLeft
	UpRight
)

// DirectionFrom derives a direction from a signed delta. Each component
// is reduced to its sign, so any delta along a compass line maps to the
// same direction. A zero delta yields Center.
func DirectionFrom(dx, dy int) Direction {
	dx, dy = signum(dx), signum(dy)
	switch {
	case dx == 0 && dy == 0:
		return Center
	case dx == 0 && dy < 0:
		return Up
	case dx == 0 && dy > 0:
		return Down
	case dx > 0 && dy == 0:
		return Right
	case dx < 0 && dy == 0:
		return Left
	case dx > 0 && dy > 0:
		return DownRight
	case dx > 0 && dy < 0:
		return UpRight
	case dx < 0 && dy > 0:
		return DownLeft
	default:
		return UpLeft
	}
}

// Delta returns the unit step for this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case DownLeft:
		return -1, 1
	case DownRight:
		return 1, 1
	case UpLeft:
		return -1, -1
	case UpRight:
		return 1, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	dx, dy := d.Delta()
	return DirectionFrom(-dx, -dy)
}

// IsDiagonal reports whether the direction moves on both axes.
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// MoveDirections returns the 8 directions an actor can step in.
func MoveDirections() []Direction {
	return []Direction{
		Left, Right, Up, Down,
		DownLeft, DownRight, UpLeft, UpRight,
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case DownLeft:
		return "downleft"
	case DownRight:
		return "downright"
	case UpLeft:
		return "upleft"
	case UpRight:
		return "upright"
	default:
		return "unknown"
	}
}
