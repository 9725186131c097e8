// Package geom holds the small value types shared by the grid, the player
// and the ray caster, plus the angle helpers they all rely on.
package geom

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Point represents a 2D point in world (pixel) space
type Point struct {
	X, Y float64
}

// Coord represents a tile coordinate
type Coord struct {
	X, Y int
}

// Segment is a straight wall edge in world space.
type Segment struct {
	A, B     Point
	EdgeType string // "top", "bottom", "left", "right"
}

// Pose is a position plus a facing angle. Angle 0 points along +x and
// increasing angles rotate toward +y.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Point returns the position part of the pose.
func (p Pose) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// NormalizeAngle maps any finite angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	// -tiny + 2π rounds up to exactly 2π
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
