package world

// AoeEffect tags what is propagating through an area of effect.
type AoeEffect int

const (
	// AoeSound is a noise propagating outward, e.g. a thrown stone or
	// a yell. Sound carries through nearby walls but not distant ones.
	AoeSound AoeEffect = iota
)

// String returns a human-readable effect name.
func (e AoeEffect) String() string {
	switch e {
	case AoeSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Aoe is the footprint of one effect invocation: cells bucketed into
// rings by their line distance from the origin. Rings[0] is always the
// origin alone. The caller owns the result.
type Aoe struct {
	Effect AoeEffect
	Rings  [][]Pos
}

// NewAoe creates an Aoe from pre-bucketed rings.
func NewAoe(effect AoeEffect, rings [][]Pos) Aoe {
	return Aoe{Effect: effect, Rings: rings}
}

// Positions flattens the rings into a single list, nearest ring first.
func (a *Aoe) Positions() []Pos {
	var positions []Pos
	for _, ring := range a.Rings {
		positions = append(positions, ring...)
	}
	return positions
}

// AoeFill computes the cells an effect covers from start out to radius
// flood-fill hops, bucketed by line distance. A cell whose direct line
// is obstructed in both directions (start to cell and cell to start) is
// dampened: it only remains in the result within radius-2 of the origin
// (clamped to 0), so the effect still carries through nearby walls but
// not distant ones.
func (m *Map) AoeFill(effect AoeEffect, start Pos, radius int) Aoe {
	flood := m.FloodFill(start, radius)

	rings := make([][]Pos, radius+1)
	blockedRadius := 0
	if radius > 2 {
		blockedRadius = radius - 2
	}

	for _, pos := range flood {
		dist := Distance(start, pos)

		// Dampening requires obstruction both ways.
		dtTo := pos.Sub(start)
		blockedTo := m.BlockedAlong(start, dtTo.X, dtTo.Y) != nil

		dtFrom := start.Sub(pos)
		blockedFrom := m.BlockedAlong(pos, dtFrom.X, dtFrom.Y) != nil

		blocked := blockedTo && blockedFrom

		if !blocked || dist <= blockedRadius {
			rings[dist] = append(rings[dist], pos)
		}
	}

	return NewAoe(effect, rings)
}
