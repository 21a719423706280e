package world

// Blocked describes one obstructed single-step move: where it started,
// where it was headed, and what got in the way. It is produced and
// consumed within a single query, never stored.
type Blocked struct {
	// StartPos is the cell the step began from.
	StartPos Pos
	// EndPos is the cell the step was headed into.
	EndPos Pos
	// Direction is the attempted step direction.
	Direction Direction
	// BlockedTile is set when the obstruction came from the target
	// tile itself (occupied or out of bounds).
	BlockedTile bool
	// WallType is the edge wall that obstructed, if any.
	WallType Wall
}

// MoveBlocked determines whether a single step from pos to next is
// obstructed and classifies the obstruction. It returns nil for an
// unobstructed step. The two cells must be 8-adjacent; passing anything
// else is a caller bug and panics.
//
// Diagonal steps apply the corner rule: the step is blocked when both
// orthogonal edges framing the corner block, or when the pair of edges
// along the same row or column blocks (the squeeze case). All sub-checks
// run even after one fires, so a later check can refine the recorded
// wall type; the blocked flag itself only accumulates. That overwrite
// order is deliberate and load-bearing.
func (m *Map) MoveBlocked(pos, next Pos) *Blocked {
	if Distance(pos, next) != 1 {
		panic("world: MoveBlocked requires adjacent cells")
	}

	d := next.Sub(pos)
	dir := DirectionFrom(d.X, d.Y)

	blocked := Blocked{
		StartPos:  pos,
		EndPos:    next,
		Direction: dir,
		WallType:  WallEmpty,
	}
	foundBlocker := false

	// An out-of-bounds target short-circuits: no edge on the rim is
	// worth inspecting and the neighbor reads below assume bounds.
	if !m.WithinBounds(next) {
		blocked.BlockedTile = true
		return &blocked
	}

	if m.At(next).Blocked {
		blocked.BlockedTile = true
		foundBlocker = true
	}

	// Half-step positions used by the diagonal squeeze checks.
	xMoved := Pos{X: next.X, Y: pos.Y}
	yMoved := Pos{X: pos.X, Y: next.Y}

	switch dir {
	case Right, Left:
		leftWallPos := pos
		if d.X >= 1 {
			leftWallPos = pos.MoveX(d.X)
		}
		if m.WithinBounds(leftWallPos) && !m.At(leftWallPos).LeftWall.IsEmpty() {
			blocked.WallType = m.At(leftWallPos).LeftWall
			foundBlocker = true
		}

	case Up, Down:
		bottomWallPos := pos.MoveY(d.Y)
		if d.Y >= 1 {
			bottomWallPos = pos
		}
		if m.WithinBounds(bottomWallPos) && !m.At(bottomWallPos).BottomWall.IsEmpty() {
			blocked.WallType = m.At(bottomWallPos).BottomWall
			foundBlocker = true
		}

	case DownRight:
		if m.BlockedRight(pos) && m.BlockedDown(pos) {
			blocked.WallType = m.At(pos).BottomWall
			foundBlocker = true
		}
		if m.BlockedRight(pos.MoveY(-1)) && m.BlockedDown(pos.MoveX(1)) {
			blockedPos := pos.Add(Pos{X: -1, Y: 1})
			if m.WithinBounds(blockedPos) {
				blocked.WallType = m.At(blockedPos).BottomWall
			}
			foundBlocker = true
		}
		if m.BlockedRight(pos) && m.BlockedRight(yMoved) {
			blocked.WallType = m.At(pos.MoveX(1)).LeftWall
			foundBlocker = true
		}
		if m.BlockedDown(pos) && m.BlockedDown(xMoved) {
			blocked.WallType = m.At(pos).BottomWall
			foundBlocker = true
		}

	case UpRight:
		if m.BlockedUp(pos) && m.BlockedRight(pos) {
			blocked.WallType = m.At(pos.MoveY(-1)).BottomWall
			foundBlocker = true
		}
		if m.BlockedUp(pos.MoveX(1)) && m.BlockedRight(pos.MoveY(-1)) {
			blockedPos := pos.Add(Pos{X: 1, Y: -1})
			if m.WithinBounds(blockedPos) {
				blocked.WallType = m.At(blockedPos).BottomWall
			}
			foundBlocker = true
		}
		if m.BlockedRight(pos) && m.BlockedRight(yMoved) {
			blocked.WallType = m.At(pos.MoveX(1)).LeftWall
			foundBlocker = true
		}
		if m.BlockedUp(pos) && m.BlockedUp(xMoved) {
			blocked.WallType = m.At(pos.MoveY(-1)).BottomWall
			foundBlocker = true
		}

	case DownLeft:
		if m.BlockedLeft(pos) && m.BlockedDown(pos) {
			blocked.WallType = m.At(pos).LeftWall
			foundBlocker = true
		}
		if m.BlockedLeft(pos.MoveY(1)) && m.BlockedDown(pos.MoveX(-1)) {
			blockedPos := pos.Add(Pos{X: 1, Y: -1})
			if m.WithinBounds(blockedPos) {
				blocked.WallType = m.At(blockedPos).LeftWall
			}
			foundBlocker = true
		}
		if m.BlockedLeft(pos) && m.BlockedLeft(yMoved) {
			blocked.WallType = m.At(pos).LeftWall
			foundBlocker = true
		}
		if m.BlockedDown(pos) && m.BlockedDown(xMoved) {
			blocked.WallType = m.At(pos).BottomWall
			foundBlocker = true
		}

	case UpLeft:
		if m.BlockedLeft(pos.MoveY(-1)) && m.BlockedUp(pos.MoveX(-1)) {
			blockedPos := pos.Add(Pos{X: -1, Y: -1})
			if m.WithinBounds(blockedPos) {
				blocked.WallType = m.At(blockedPos).LeftWall
			}
			foundBlocker = true
		}
		if m.BlockedLeft(pos) && m.BlockedUp(pos) {
			blocked.WallType = m.At(pos).LeftWall
			foundBlocker = true
		}
		if m.BlockedLeft(pos) && m.BlockedLeft(yMoved) {
			blocked.WallType = m.At(pos).LeftWall
			foundBlocker = true
		}
		if m.BlockedUp(pos) && m.BlockedUp(xMoved) {
			blockedPos := pos.MoveY(-1)
			if m.WithinBounds(blockedPos) {
				blocked.WallType = m.At(blockedPos).BottomWall
			}
			foundBlocker = true
		}

	default:
		panic("world: MoveBlocked with no movement")
	}

	if foundBlocker {
		return &blocked
	}
	return nil
}

// BlockedAlong rasterizes the line from start to start+(dx,dy) and
// applies the single-step check to every consecutive pair, returning the
// first obstruction found or nil. A zero delta is never obstructed.
// This is the traversability primitive FOV and pathfinding build on.
func (m *Map) BlockedAlong(start Pos, dx, dy int) *Blocked {
	if dx == 0 && dy == 0 {
		return nil
	}
	end := Pos{X: start.X + dx, Y: start.Y + dy}
	path := append([]Pos{start}, Line(start, end)...)
	return m.PathBlocked(path)
}

// PathBlocked applies the single-step check along a path of adjacent
// cells, short-circuiting on the first obstruction.
func (m *Map) PathBlocked(path []Pos) *Blocked {
	for i := 0; i+1 < len(path); i++ {
		if blocked := m.MoveBlocked(path[i], path[i+1]); blocked != nil {
			return blocked
		}
	}
	return nil
}
