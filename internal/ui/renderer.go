package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skulk/internal/world"
)

// Renderer draws the map with FOV shading: cells in view are bright,
// explored cells out of view are dim, unexplored cells are blank.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map and the player. visible reports whether the
// player currently sees a cell; the game owns that predicate so the
// renderer stays independent of stance and radius.
func (r *Renderer) Render(m *world.Map, player world.Pos, visible func(world.Pos) bool) {
	r.screen.Clear()

	width, height := m.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := world.NewPos(x, y)
			tile := m.At(p)

			inView := visible(p)
			if !inView && !tile.Explored {
				continue
			}

			ch, style := r.tileAppearance(*tile)
			if !inView {
				style = style.Foreground(tcell.ColorDarkSlateGray)
			}
			r.screen.SetContent(x, y, ch, style)
		}
	}

	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(player.X, player.Y, '@', playerStyle)

	r.screen.Show()
}

// tileAppearance picks the glyph and style for one tile. Edge walls win
// over the cell interior so thin walls stay readable on a cell grid.
func (r *Renderer) tileAppearance(tile world.Tile) (rune, tcell.Style) {
	hasLeft := !tile.LeftWall.IsEmpty()
	hasBottom := !tile.BottomWall.IsEmpty()

	switch {
	case hasLeft && hasBottom:
		return '└', r.wallStyle(maxWall(tile.LeftWall, tile.BottomWall))
	case hasLeft:
		return '│', r.wallStyle(tile.LeftWall)
	case hasBottom:
		return '─', r.wallStyle(tile.BottomWall)
	}

	switch tile.Type {
	case world.TileWall:
		return glyphOr(tile, '#'), tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileShortWall:
		return glyphOr(tile, 'o'), tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod)
	case world.TileWater:
		return '~', tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.TileExit:
		return '>', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}

	switch tile.Surface {
	case world.SurfaceRubble:
		return ';', tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.SurfaceGrass:
		return '"', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// wallStyle renders tall walls brighter than short ones.
func (r *Renderer) wallStyle(w world.Wall) tcell.Style {
	if w == world.WallTall {
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod)
}

// glyphOr prefers the tile's own glyph when one was set at placement.
func glyphOr(tile world.Tile, fallback rune) rune {
	if tile.Chr != 0 && tile.Chr != ' ' {
		return tile.Chr
	}
	return fallback
}

func maxWall(a, b world.Wall) world.Wall {
	if a > b {
		return a
	}
	return b
}

// RenderMessage displays a status line at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
