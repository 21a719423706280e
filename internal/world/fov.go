package world

// IsInFov reports whether an observer standing at start can perceive the
// cell at end within the given view radius. Visibility is computed by
// walking the rasterized line in both directions with short walls
// treated as peekable at a distance cost, then culling rasterization
// artifacts (see fovLine and needsCulling).
//
// A cell always sees itself; anything out of bounds or at line distance
// >= radius is not visible.
func (m *Map) IsInFov(start, end Pos, radius int) bool {
	return m.isInFovLines(start, end, radius, false)
}

// IsInFovCrouched is IsInFov for a crouching observer, who cannot peek
// over short walls.
func (m *Map) IsInFovCrouched(start, end Pos, radius int) bool {
	return m.isInFovLines(start, end, radius, true)
}

// IsInFovDirection restricts IsInFov to the half-plane the observer is
// facing: a visible cell only counts when it lies within the 180 degree
// cone around dir. Facing Center sees only the observer's own cell.
func (m *Map) IsInFovDirection(start, end Pos, radius int, dir Direction) bool {
	if start == end {
		return true
	}
	if !m.IsInFov(start, end, radius) {
		return false
	}

	diff := end.Sub(start)
	xSig := signum(diff.X)
	ySig := signum(diff.Y)

	switch dir {
	case Up:
		return ySig < 1
	case Down:
		return ySig > -1
	case Left:
		return xSig < 1
	case Right:
		return xSig > -1
	case DownLeft:
		return diff.X-diff.Y < 0
	case DownRight:
		return diff.X+diff.Y >= 0
	case UpLeft:
		return diff.X+diff.Y <= 0
	case UpRight:
		return diff.X-diff.Y > 0
	default:
		return false
	}
}

func (m *Map) isInFovLines(start, end Pos, radius int, crouching bool) bool {
	if start == end {
		return true
	}
	if !m.WithinBounds(start) || !m.WithinBounds(end) {
		return false
	}
	if Distance(start, end) >= radius {
		return false
	}

	fovEnd := m.fovLine(start, end, radius, crouching)
	visibleBack := m.fovLine(end, start, radius, crouching) == start

	var inFov bool
	if fovEnd == end {
		inFov = true
	} else {
		// The line out is blocked. The cell still reads as visible
		// when the line back is clear, or when the walk stopped right
		// next to a sight-blocking target: a wall face is visible
		// from the near side even though nothing past it is.
		atEnd := Distance(fovEnd, end) == 1
		inFov = visibleBack || (atEnd && m.At(end).BlockSight)
	}

	if inFov {
		inFov = !(m.needsCulling(start, end, radius, crouching) ||
			m.needsCulling(end, start, radius, crouching))
	}
	return inFov
}

// fovLine walks the rasterized line from start toward end, accumulating
// effective distance, and returns the last position reached within the
// budget. A short wall on the way is peeked over: the walk resumes past
// it at the cost of the distance skipped plus a flat +1. Any other
// obstruction (occupied tile, tall wall, or any wall while crouching)
// stops the walk where it stood.
func (m *Map) fovLine(start, end Pos, maxDist int, crouching bool) Pos {
	current := start
	effective := 0

	for current != end {
		offset := end.Sub(current)
		blocked := m.BlockedAlong(current, offset.X, offset.Y)

		if blocked == nil {
			if effective+Distance(current, end) > maxDist {
				return current
			}
			return end
		}

		if !crouching && blocked.WallType == WallShort && !blocked.BlockedTile {
			cost := Distance(current, blocked.EndPos) + 1
			if effective+cost > maxDist {
				return blocked.StartPos
			}
			effective += cost
			current = blocked.EndPos
			continue
		}

		return blocked.StartPos
	}

	return current
}

// needsCulling suppresses rasterization artifacts. Lines to adjacent
// targets can diverge sharply near the observer, leaving single cells
// visible with none of their sightline neighbors visible. When the line
// to the next-to-last point differs from the direct line's prefix and
// that point is not itself visible, the direct answer is culled.
func (m *Map) needsCulling(start, end Pos, radius int, crouching bool) bool {
	fovLine := Line(start, end)
	if len(fovLine) < 3 {
		return false
	}

	nextToLast := fovLine[len(fovLine)-2]
	subLine := Line(start, nextToLast)

	diverges := false
	for i := range subLine {
		if subLine[i] != fovLine[i] {
			diverges = true
			break
		}
	}
	if !diverges {
		return false
	}

	return !m.isInFovLines(start, nextToLast, radius, crouching)
}
