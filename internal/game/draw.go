package game

import (
	"fmt"
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// Draw renders the top-down view: tiles, wall outlines, rays and the player.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	// Step 1: tiles, walls tinted once a ray has struck them
	g.drawTiles(screen)

	// Step 2: wall region outlines
	g.drawOutline(screen)

	// Step 3: rays that reached a wall
	g.drawRays(screen)

	// Step 4: player on top
	g.drawPlayer(screen)

	if g.Debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawTiles(screen render.Image) {
	s := float32(g.Scale)
	ts := float32(g.Grid.TileSize()) * s

	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			x := float32(col) * ts
			y := float32(row) * ts

			clr := floorColor
			if g.Grid.CellAt(col, row) == grid.Wall {
				clr = wallColor
				if g.Explored.Has(geom.Coord{X: col, Y: row}) {
					clr = exploredWallColor
				}
			}
			g.Renderer.FillRect(screen, x, y, ts, ts, clr)
			g.Renderer.StrokeRect(screen, x, y, ts, ts, 1, gridLineColor)
		}
	}
}

func (g *Game) drawOutline(screen render.Image) {
	s := g.Scale
	for _, seg := range g.Outline {
		g.Renderer.StrokeLine(screen,
			float32(seg.A.X*s), float32(seg.A.Y*s),
			float32(seg.B.X*s), float32(seg.B.Y*s),
			2, outlineColor)
	}
}

func (g *Game) drawRays(screen render.Image) {
	s := g.Scale
	origin := g.frame.Pose
	for _, r := range g.frame.Rays {
		if !r.Hit {
			continue
		}
		g.Renderer.StrokeLine(screen,
			float32(origin.X*s), float32(origin.Y*s),
			float32(r.WallHit.X*s), float32(r.WallHit.Y*s),
			1, rayColor)
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	s := g.Scale
	p := g.Player
	g.Renderer.FillCircle(screen, float32(p.X*s), float32(p.Y*s), float32(p.Radius*s), playerColor)
}

func (g *Game) drawDebug(screen render.Image) {
	pose := g.frame.Pose
	deg := math.Mod(pose.Angle*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	text := fmt.Sprintf("tick %d  x %.1f  y %.1f  angle %.1f  rays %d  explored %d",
		g.frame.Tick, pose.X, pose.Y, deg, len(g.frame.Rays), g.Explored.Size())
	g.Renderer.DrawText(screen, text, 4, 4, textColor)
}
