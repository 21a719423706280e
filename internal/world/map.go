package world

// Map owns a fixed-size grid of tiles plus the cached shadowcast
// visibility buffer used by the corroborating FOV mode. The grid is a
// single contiguous array addressed by (x,y).
//
// The map is a single mutable resource: callers serialize all access,
// and any mutation that changes a tile's BlockSight invalidates the
// visibility buffer (see Refresh).
type Map struct {
	width  int
	height int
	tiles  []Tile

	fov       *shadowMap
	fovPos    Pos
	fovRadius int
}

// NewMap creates a map of the given dimensions filled with empty tiles.
func NewMap(width, height int) *Map {
	m := &Map{
		width:     width,
		height:    height,
		tiles:     make([]Tile, width*height),
		fov:       newShadowMap(width, height),
		fovRadius: 1,
	}
	for i := range m.tiles {
		m.tiles[i] = EmptyTile()
	}
	m.Refresh()
	return m
}

// MapFromTiles creates a map from a column-major tile grid (tiles[x][y]).
func MapFromTiles(tiles [][]Tile) *Map {
	width := len(tiles)
	height := len(tiles[0])
	m := &Map{
		width:     width,
		height:    height,
		tiles:     make([]Tile, width*height),
		fov:       newShadowMap(width, height),
		fovRadius: 1,
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			m.tiles[x*height+y] = tiles[x][y]
		}
	}
	m.Refresh()
	return m
}

// Width returns the grid width.
func (m *Map) Width() int {
	return m.width
}

// Height returns the grid height.
func (m *Map) Height() int {
	return m.height
}

// Size returns the grid dimensions.
func (m *Map) Size() (width, height int) {
	return m.width, m.height
}

// WithinBounds reports whether a position lies on the grid.
func (m *Map) WithinBounds(p Pos) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// At returns the tile at p for reading or mutation. It panics when p is
// out of bounds; callers gate with WithinBounds.
func (m *Map) At(p Pos) *Tile {
	if !m.WithinBounds(p) {
		panic("world: tile access out of bounds")
	}
	return &m.tiles[p.X*m.height+p.Y]
}

// IsEmpty reports whether the cell interior is the empty tile type.
func (m *Map) IsEmpty(p Pos) bool {
	return m.At(p).Type == TileEmpty
}

// BlockedLeft reports whether the edge between p and the cell to its
// left is impassable, from a wall on that edge or from the neighboring
// tile itself. Out-of-bounds cells count as blocked.
func (m *Map) BlockedLeft(p Pos) bool {
	offset := p.MoveX(-1)
	if !m.WithinBounds(p) || !m.WithinBounds(offset) {
		return true
	}
	return !m.At(p).LeftWall.IsEmpty() || m.At(offset).Blocked
}

// BlockedRight reports whether the edge between p and the cell to its
// right is impassable. The right edge is owned by the neighbor's
// LeftWall.
func (m *Map) BlockedRight(p Pos) bool {
	offset := p.MoveX(1)
	if !m.WithinBounds(p) || !m.WithinBounds(offset) {
		return true
	}
	return !m.At(offset).LeftWall.IsEmpty() || m.At(offset).Blocked
}

// BlockedDown reports whether the edge between p and the cell below is
// impassable. The bottom edge is owned by p itself.
func (m *Map) BlockedDown(p Pos) bool {
	offset := p.MoveY(1)
	if !m.WithinBounds(p) || !m.WithinBounds(offset) {
		return true
	}
	return !m.At(p).BottomWall.IsEmpty() || m.At(offset).Blocked
}

// BlockedUp reports whether the edge between p and the cell above is
// impassable. The top edge is owned by the neighbor's BottomWall.
func (m *Map) BlockedUp(p Pos) bool {
	offset := p.MoveY(-1)
	if !m.WithinBounds(p) || !m.WithinBounds(offset) {
		return true
	}
	return !m.At(offset).BottomWall.IsEmpty() || m.At(offset).Blocked
}

// PathClearOfObstacles reports whether no tile on the line from start to
// end blocks entry. Edge walls are ignored; use BlockedAlong for those.
func (m *Map) PathClearOfObstacles(start, end Pos) bool {
	for _, p := range Line(start, end) {
		if m.At(p).Blocked {
			return false
		}
	}
	return true
}

// NearTileType reports whether any of the 8 neighbors of p has the given
// tile type.
func (m *Map) NearTileType(p Pos, tt TileType) bool {
	for _, dir := range MoveDirections() {
		dx, dy := dir.Delta()
		n := p.Add(Pos{X: dx, Y: dy})
		if m.WithinBounds(n) && m.At(n).Type == tt {
			return true
		}
	}
	return false
}

// PosInRadius returns all in-bounds positions whose rasterized-line
// distance from start is strictly less than radius. Lines are traced to
// every cell of the bounding square so that partial lines near the rim
// are still covered.
func (m *Map) PosInRadius(start Pos, radius int) []Pos {
	seen := make(map[Pos]struct{})
	for x := start.X - radius; x < start.X+radius; x++ {
		for y := start.Y - radius; y < start.Y+radius; y++ {
			for _, p := range Line(start, Pos{X: x, Y: y}) {
				if Distance(start, p) < radius {
					seen[p] = struct{}{}
				}
			}
		}
	}

	positions := make([]Pos, 0, len(seen))
	if m.WithinBounds(start) {
		positions = append(positions, start)
	}
	for p := range seen {
		if p != start && m.WithinBounds(p) {
			positions = append(positions, p)
		}
	}
	return positions
}

// PlaceLine stamps the tile along the rasterized line from start to end,
// clipping against the grid. It returns the positions written.
func (m *Map) PlaceLine(start, end Pos, tile Tile) []Pos {
	var positions []Pos
	if m.WithinBounds(start) {
		*m.At(start) = tile
		positions = append(positions, start)
	}
	for _, p := range Line(start, end) {
		if m.WithinBounds(p) {
			*m.At(p) = tile
			positions = append(positions, p)
		}
	}
	return positions
}

// PlaceBlock stamps a width x width square of the tile with start as its
// top-left corner, clipping against the grid. It returns the positions
// written.
func (m *Map) PlaceBlock(start Pos, width int, tile Tile) []Pos {
	var positions []Pos
	for x := 0; x < width; x++ {
		for y := 0; y < width; y++ {
			p := start.Add(Pos{X: x, Y: y})
			if m.WithinBounds(p) {
				*m.At(p) = tile
				positions = append(positions, p)
			}
		}
	}
	return positions
}
