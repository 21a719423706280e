package world

// Wall classifies the obstruction attached to one cell edge. A short
// wall blocks entry but only attenuates vision; a tall wall blocks both
// entry and vision. The ordering Empty < Short < Tall is meaningful.
type Wall int

const (
	// WallEmpty is a passable edge with no sight effect.
	WallEmpty Wall = iota
	// WallShort blocks entry but can be peeked over at a distance cost.
	WallShort
	// WallTall blocks entry and sight completely.
	WallTall
)

// IsEmpty reports whether there is no wall on the edge.
func (w Wall) IsEmpty() bool {
	return w == WallEmpty
}

// String returns a human-readable wall name.
func (w Wall) String() string {
	switch w {
	case WallEmpty:
		return "empty"
	case WallShort:
		return "short"
	case WallTall:
		return "tall"
	default:
		return "unknown"
	}
}

// TileType identifies what occupies a cell's interior.
type TileType int

const (
	TileEmpty TileType = iota
	TileShortWall
	TileWall
	TileWater
	TileExit
)

// String returns a human-readable tile type name.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileShortWall:
		return "shortwall"
	case TileWall:
		return "wall"
	case TileWater:
		return "water"
	case TileExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Surface is the cosmetic/gameplay floor covering of a cell. It has no
// effect on geometry.
type Surface int

const (
	SurfaceFloor Surface = iota
	SurfaceRubble
	SurfaceGrass
)

// String returns a human-readable surface name.
func (s Surface) String() string {
	switch s {
	case SurfaceFloor:
		return "floor"
	case SurfaceRubble:
		return "rubble"
	case SurfaceGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// Tile is the per-cell value stored in the map grid. BottomWall and
// LeftWall describe the edges below and left of the cell; no cell owns
// its top or right edge, so queries for those read the adjacent cell.
type Tile struct {
	// Blocked means the cell interior obstructs entry.
	Blocked bool
	// BlockSight means the cell interior is opaque to vision.
	BlockSight bool
	// Explored persists once the cell has ever been observed.
	Explored bool
	// Type identifies what occupies the cell.
	Type TileType
	// BottomWall is the edge between this cell and the cell below.
	BottomWall Wall
	// LeftWall is the edge between this cell and the cell to the left.
	LeftWall Wall
	// Chr is the display glyph.
	Chr rune
	// Surface is the floor covering.
	Surface Surface
}

// EmptyTile returns an open, transparent floor tile.
func EmptyTile() Tile {
	return Tile{Type: TileEmpty, Chr: ' ', Surface: SurfaceFloor}
}

// WaterTile returns a tile that blocks entry but not sight.
func WaterTile() Tile {
	return Tile{Blocked: true, Type: TileWater, Chr: ' ', Surface: SurfaceFloor}
}

// WallTile returns a tile that blocks entry and sight.
func WallTile() Tile {
	return WallTileWith(' ')
}

// WallTileWith returns a wall tile with the given display glyph.
func WallTileWith(chr rune) Tile {
	return Tile{
		Blocked:    true,
		BlockSight: true,
		Type:       TileWall,
		Chr:        chr,
		Surface:    SurfaceFloor,
	}
}

// ShortWallTile returns a tile that blocks entry but not sight.
func ShortWallTile() Tile {
	return ShortWallTileWith(' ')
}

// ShortWallTileWith returns a short wall tile with the given glyph.
func ShortWallTileWith(chr rune) Tile {
	return Tile{
		Blocked: true,
		Type:    TileShortWall,
		Chr:     chr,
		Surface: SurfaceFloor,
	}
}

// ExitTile returns an open tile marking a level exit.
func ExitTile() Tile {
	return Tile{Type: TileExit, Chr: ' ', Surface: SurfaceFloor}
}
