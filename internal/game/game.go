package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skulk/internal/telemetry"
	"github.com/samdwyer/skulk/internal/ui"
	"github.com/samdwyer/skulk/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	m        *world.Map
	player   world.Pos
	mode     MoveMode
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		mode:     ModeWalk,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.m = world.NewMap(g.cfg.Width, g.cfg.Height)
	g.m.ScatterObstacles(ctx, g.cfg.Obstacles, rng)
	g.player = g.findOpenCell(rng)
	g.placeExit(rng)
	g.m.ComputeFov(g.player, g.radius())
	g.markExplored()

	initSpan.SetAttributes(
		attribute.String("session.id", uuid.NewString()),
		attribute.Int64("game.seed", seed),
		attribute.Int("map.width", g.cfg.Width),
		attribute.Int("map.height", g.cfg.Height),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// radius is the view radius for the current stance.
func (g *Game) radius() int {
	r := g.cfg.FovRadius + g.mode.RadiusDelta()
	if r < 1 {
		r = 1
	}
	return r
}

// visible is the FOV predicate for the current stance.
func (g *Game) visible(p world.Pos) bool {
	if g.mode.Crouching() {
		return g.m.IsInFovCrouched(g.player, p, g.radius())
	}
	return g.m.IsInFov(g.player, p, g.radius())
}

// markExplored flags every currently visible cell as explored.
func (g *Game) markExplored() {
	radius := g.radius()
	for _, p := range g.m.PosInRadius(g.player, radius+1) {
		if g.visible(p) {
			g.m.At(p).Explored = true
		}
	}
}

// findOpenCell picks a random unoccupied, wall-free starting cell.
func (g *Game) findOpenCell(rng *rand.Rand) world.Pos {
	width, height := g.m.Size()
	for i := 0; i < 1000; i++ {
		p := world.NewPos(rng.Intn(width), rng.Intn(height))
		tile := g.m.At(p)
		if !tile.Blocked && tile.LeftWall.IsEmpty() && tile.BottomWall.IsEmpty() {
			return p
		}
	}
	return world.NewPos(width/2, height/2)
}

// placeExit drops the level exit on an open cell away from the player.
func (g *Game) placeExit(rng *rand.Rand) {
	for i := 0; i < 1000; i++ {
		p := g.findOpenCell(rng)
		if world.Distance(p, g.player) > g.cfg.FovRadius {
			*g.m.At(p) = world.ExitTile()
			return
		}
	}
}

func (g *Game) render() {
	g.renderer.Render(g.m, g.player, g.visible)
	_, screenHeight := g.screen.Size()
	status := fmt.Sprintf("%s  pos %d,%d  view %d", g.mode, g.player.X, g.player.Y, g.radius())
	g.renderer.RenderMessage(status, screenHeight-1)
	g.screen.Show()
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input: arrows or vi keys to move,
// y/u/b/n for diagonals, [ and ] to change stance.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyUp:
		g.tryMove(world.Up)
		return
	case tcell.KeyDown:
		g.tryMove(world.Down)
		return
	case tcell.KeyLeft:
		g.tryMove(world.Left)
		return
	case tcell.KeyRight:
		g.tryMove(world.Right)
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'q', 'Q':
		g.running = false
	case 'h':
		g.tryMove(world.Left)
	case 'l':
		g.tryMove(world.Right)
	case 'k':
		g.tryMove(world.Up)
	case 'j':
		g.tryMove(world.Down)
	case 'y':
		g.tryMove(world.UpLeft)
	case 'u':
		g.tryMove(world.UpRight)
	case 'b':
		g.tryMove(world.DownLeft)
	case 'n':
		g.tryMove(world.DownRight)
	case '[':
		g.mode = g.mode.Decrease()
	case ']':
		g.mode = g.mode.Increase()
	}
}

// tryMove attempts a single step; obstructed steps are simply refused.
func (g *Game) tryMove(dir world.Direction) {
	dx, dy := dir.Delta()
	next := g.player.Add(world.NewPos(dx, dy))
	if !g.m.WithinBounds(next) {
		return
	}
	if blocked := g.m.MoveBlocked(g.player, next); blocked != nil {
		return
	}

	g.player = next
	g.m.ComputeFov(g.player, g.radius())
	g.markExplored()

	if g.m.At(g.player).Type == world.TileExit {
		g.running = false
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
