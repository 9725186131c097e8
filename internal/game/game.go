package game

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/entity/player"
	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// Game holds the state of one map: the grid, the player and the rays of the
// last tick.
type Game struct {
	Grid     *grid.Grid
	Player   *player.Player
	Caster   *raycast.Caster
	Renderer render.Renderer
	InputMgr render.InputManager

	Scale    float64
	Debug    bool
	Outline  []geom.Segment
	Explored mapset.Set[geom.Coord] // wall tiles any ray has struck

	intent player.Intent
	frame  Frame
	log    *logrus.Entry
}

// New creates a game on g with the player at the grid's spawn point.
func New(g *grid.Grid, opts Options, r render.Renderer, input render.InputManager) (*Game, error) {
	caster, err := raycast.NewCaster(opts.FOV, opts.RayCount, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create caster: %w", err)
	}

	p, err := player.New(g.Spawn(), opts.Player, g)
	if err != nil {
		return nil, fmt.Errorf("failed to place player on %q: %w", g.Name(), err)
	}

	scale := opts.Scale
	if !(scale > 0) {
		scale = 1
	}

	game := &Game{
		Grid:     g,
		Player:   p,
		Caster:   caster,
		Renderer: r,
		InputMgr: input,
		Scale:    scale,
		Debug:    opts.Debug,
		Outline:  g.Outline(),
		Explored: mapset.New[geom.Coord](),
		log:      logger.For("game"),
	}

	game.log.WithFields(logrus.Fields{
		"map":      g.Name(),
		"rows":     g.Rows(),
		"cols":     g.Cols(),
		"rays":     caster.RayCount,
		"workers":  caster.Workers,
		"segments": len(game.Outline),
	}).Info("game created")

	return game, nil
}

// Tick advances the world by one step with the given motion intent and casts
// a fresh set of rays from the resulting pose.
func (g *Game) Tick(intent player.Intent) (Frame, error) {
	// Step 1: move the player; this is the only write to the pose this tick
	g.Player.Intent = intent.Clamp()
	blocked := g.Player.Update(g.Grid)

	// Step 2: cast from a snapshot of the pose
	pose := g.Player.Pose()
	rays, err := g.Caster.CastAll(context.Background(), pose, g.Grid)
	if err != nil {
		return Frame{}, fmt.Errorf("failed to cast rays: %w", err)
	}

	// Step 3: remember which walls have been seen
	raycast.StruckCells(rays, g.Grid).Each(func(c geom.Coord) {
		g.Explored.Put(c)
	})

	g.frame = Frame{
		Tick:    g.frame.Tick + 1,
		Pose:    pose,
		Rays:    rays,
		Blocked: blocked,
	}
	return g.frame, nil
}

// LastFrame returns the frame produced by the most recent Tick.
func (g *Game) LastFrame() Frame {
	return g.frame
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	g.intent = readIntent(g.InputMgr, g.intent)
	_, err := g.Tick(g.intent)
	return err
}

// Layout returns the world size in screen pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.Grid.WorldSize()
	return int(math.Ceil(w * g.Scale)), int(math.Ceil(h * g.Scale))
}
