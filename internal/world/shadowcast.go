package world

// shadowMap is the cached visibility buffer behind the corroborating
// FOV mode. It stores per-cell transparency derived from the tile grid
// and the visible set last computed for (fovPos, fovRadius).
type shadowMap struct {
	width       int
	height      int
	transparent []bool
	visible     []bool
}

func newShadowMap(width, height int) *shadowMap {
	return &shadowMap{
		width:       width,
		height:      height,
		transparent: make([]bool, width*height),
		visible:     make([]bool, width*height),
	}
}

func (s *shadowMap) index(x, y int) int {
	return x*s.height + y
}

func (s *shadowMap) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Octant transforms for the recursive shadowcast: row/column deltas are
// mapped into each of the 8 octants via these multipliers.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Refresh re-derives the visibility buffer's transparency from the tile
// grid and recomputes the cached field of view. Callers must invoke it
// after any mutation that changes a tile's BlockSight before trusting
// shadowcast queries; the line-walk FOV reads the live grid and needs no
// refresh.
func (m *Map) Refresh() {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			m.fov.transparent[m.fov.index(x, y)] = !m.tiles[x*m.height+y].BlockSight
		}
	}
	m.ComputeFov(m.fovPos, m.fovRadius)
}

// ComputeFov recomputes the visibility buffer for the given observer and
// radius, replacing the previously cached (position, radius) pair.
func (m *Map) ComputeFov(pos Pos, radius int) {
	m.fovPos = pos
	m.fovRadius = radius

	for i := range m.fov.visible {
		m.fov.visible[i] = false
	}
	if !m.WithinBounds(pos) {
		return
	}

	m.fov.visible[m.fov.index(pos.X, pos.Y)] = true
	for oct := 0; oct < 8; oct++ {
		m.castLight(pos.X, pos.Y, 1, 1.0, 0.0, radius,
			octants[0][oct], octants[1][oct], octants[2][oct], octants[3][oct])
	}
}

// castLight scans one octant row by row, narrowing the visible slope
// window as opaque cells cast shadows.
func (m *Map) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		blocked := false
		newStart := start

		for dx, dy := -j, -j; dx <= 0; dx++ {
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if m.fov.inBounds(x, y) && float64(dx*dx+dy*dy) < radiusSq {
				m.fov.visible[m.fov.index(x, y)] = true
			}

			if blocked {
				if m.opaqueAt(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.opaqueAt(x, y) && j < radius {
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}

// opaqueAt treats out-of-bounds cells as opaque.
func (m *Map) opaqueAt(x, y int) bool {
	if !m.fov.inBounds(x, y) {
		return true
	}
	return !m.fov.transparent[m.fov.index(x, y)]
}

// IsInFovShadowcast is the alternate FOV mode: it corroborates the
// cached shadowcast buffer with an edge-wall check along the direct
// line. The buffer is lazily recomputed when the observer or radius
// differs from the cached pair, so stale reads are possible after a
// sight-relevant mutation with an unchanged observer; call Refresh
// first in that case. The canonical gameplay answer is IsInFov.
func (m *Map) IsInFovShadowcast(start, end Pos, radius int) bool {
	if start == end {
		return true
	}
	if !m.WithinBounds(start) || !m.WithinBounds(end) {
		return false
	}
	if Distance(start, end) >= radius {
		return false
	}

	if m.fovPos != start || m.fovRadius != radius {
		m.ComputeFov(start, radius)
	}

	offset := end.Sub(start)
	blocked := m.BlockedAlong(start, offset.X, offset.Y)

	blockedByWall := false
	if blocked != nil {
		// A sight-blocking target counts as visible from the near
		// side: its wall face can be seen even though nothing beyond
		// it can.
		atEnd := blocked.EndPos == end
		blockedByWall = !(atEnd && m.At(end).BlockSight)
	}

	return !blockedByWall && m.fov.visible[m.fov.index(end.X, end.Y)]
}
