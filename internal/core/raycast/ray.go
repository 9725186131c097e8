// Package raycast finds, for each screen column, the nearest wall a ray from
// the player strikes on an axis-aligned tile grid.
//
// Each ray is resolved with two grid walks: one stepping across horizontal
// grid lines and one across vertical grid lines. The nearer of the two hits
// wins.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Grid is the read-only view of the world the caster needs.
type Grid interface {
	IsWallAt(x, y float64) bool
	WorldSize() (width, height float64)
	TileSize() float64
}

// NoHitDistance is reported by rays that left the world on both walks
// without striking a wall.
const NoHitDistance = math.MaxFloat64

// axisEpsilon bounds |sin| or |cos| below which a ray is treated as running
// parallel to a family of grid lines; that walk is skipped.
const axisEpsilon = 1e-9

// sampleNudge moves a sample off a grid line into the tile before it when
// walking toward decreasing coordinates.
const sampleNudge = 1.0

// Vertical is the up/down half of a ray's facing.
type Vertical uint8

const (
	Up Vertical = iota
	Down
)

// Horizontal is the left/right half of a ray's facing.
type Horizontal uint8

const (
	Left Horizontal = iota
	Right
)

// Facing classifies a ray direction into screen quadrants.
type Facing struct {
	V Vertical
	H Horizontal
}

// FacingOf classifies a normalized angle. Down is (0, π); Right is
// [0, π/2) ∪ (3π/2, 2π).
func FacingOf(angle float64) Facing {
	f := Facing{V: Up, H: Left}
	if angle > 0 && angle < math.Pi {
		f.V = Down
	}
	if angle < math.Pi/2 || angle > 3*math.Pi/2 {
		f.H = Right
	}
	return f
}

// Ray is the result of casting along one screen column.
type Ray struct {
	Column   int
	Angle    float64 // normalized, [0, 2π)
	Facing   Facing
	WallHit  geom.Point
	Distance float64
	// Hit is false when neither walk found a wall; Distance is then
	// NoHitDistance and WallHit is the ray origin.
	Hit bool
	// WasHitVertical is true when the wall was struck on a vertical grid
	// line (the east or west face of a tile).
	WasHitVertical bool
}

// walkHit is the outcome of one grid walk.
type walkHit struct {
	found    bool
	point    geom.Point
	distance float64
}

func miss() walkHit {
	return walkHit{distance: math.Inf(1)}
}

// Cast resolves a single ray from the pose's position along angle.
func Cast(pose geom.Pose, g Grid, angle float64) Ray {
	angle = geom.NormalizeAngle(angle)
	facing := FacingOf(angle)
	origin := pose.Point()

	horz := castHorizontal(origin, g, angle, facing)
	vert := castVertical(origin, g, angle, facing)

	ray := Ray{Angle: angle, Facing: facing}
	switch {
	case !horz.found && !vert.found:
		ray.WallHit = origin
		ray.Distance = NoHitDistance
	case vert.distance < horz.distance:
		ray.Hit = true
		ray.WallHit = vert.point
		ray.Distance = vert.distance
		ray.WasHitVertical = true
	default:
		ray.Hit = true
		ray.WallHit = horz.point
		ray.Distance = horz.distance
	}
	return ray
}

// castHorizontal walks the ray across successive horizontal grid lines.
func castHorizontal(origin geom.Point, g Grid, angle float64, f Facing) walkHit {
	sin, cos := math.Sincos(angle)
	if math.Abs(sin) < axisEpsilon {
		return miss()
	}
	tan := sin / cos
	ts := g.TileSize()

	// First horizontal line in the ray's vertical direction
	yIntercept := math.Floor(origin.Y/ts) * ts
	if f.V == Down {
		yIntercept += ts
	}
	xIntercept := origin.X + (yIntercept-origin.Y)/tan

	yStep := ts
	if f.V == Up {
		yStep = -ts
	}
	xStep := ts / tan
	if f.H == Left && xStep > 0 {
		xStep = -xStep
	}
	if f.H == Right && xStep < 0 {
		xStep = -xStep
	}

	nudge := 0.0
	if f.V == Up {
		nudge = -sampleNudge
	}

	return walk(origin, g, xIntercept, yIntercept, xStep, yStep, 0, nudge)
}

// castVertical walks the ray across successive vertical grid lines.
func castVertical(origin geom.Point, g Grid, angle float64, f Facing) walkHit {
	sin, cos := math.Sincos(angle)
	if math.Abs(cos) < axisEpsilon {
		return miss()
	}
	tan := sin / cos
	ts := g.TileSize()

	xIntercept := math.Floor(origin.X/ts) * ts
	if f.H == Right {
		xIntercept += ts
	}
	yIntercept := origin.Y + (xIntercept-origin.X)*tan

	xStep := ts
	if f.H == Left {
		xStep = -ts
	}
	yStep := ts * tan
	if f.V == Up && yStep > 0 {
		yStep = -yStep
	}
	if f.V == Down && yStep < 0 {
		yStep = -yStep
	}

	nudge := 0.0
	if f.H == Left {
		nudge = -sampleNudge
	}

	return walk(origin, g, xIntercept, yIntercept, xStep, yStep, nudge, 0)
}

// WallSample returns a point strictly inside the wall tile the ray struck.
// ok is false for rays without a hit.
func (r Ray) WallSample() (p geom.Point, ok bool) {
	if !r.Hit {
		return geom.Point{}, false
	}
	p = r.WallHit
	switch {
	case r.WasHitVertical && r.Facing.H == Left:
		p.X -= sampleNudge
	case !r.WasHitVertical && r.Facing.V == Up:
		p.Y -= sampleNudge
	}
	return p, true
}

// walk steps from the first intercept until a sample lands in a wall or
// leaves [0, width] × [0, height]. Samples are taken at the intercept plus
// the nudge. One axis always advances by a full tile,
// so the loop ends after at most max(cols, rows)+1 steps.
func walk(origin geom.Point, g Grid, x, y, xStep, yStep, nudgeX, nudgeY float64) walkHit {
	width, height := g.WorldSize()
	for {
		sx, sy := x+nudgeX, y+nudgeY
		if !(sx >= 0 && sx <= width && sy >= 0 && sy <= height) {
			return miss()
		}
		if g.IsWallAt(sx, sy) {
			// report the crossing on the grid line, not the nudged sample
			p := geom.Point{X: x, Y: y}
			return walkHit{found: true, point: p, distance: geom.Distance(origin, p)}
		}
		x += xStep
		y += yStep
	}
}
