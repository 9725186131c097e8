// Package player holds the viewer's pose and motion intent.
package player

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/logger"
)

var ErrSpawnInWall = errors.New("spawn position is inside a wall")

// WallQuery is the collision check the player consults before moving.
type WallQuery interface {
	IsWallAt(x, y float64) bool
}

// Intent is the motion requested by the input layer. Each field is -1, 0
// or 1.
type Intent struct {
	Turn int // -1 left, 1 right
	Walk int // -1 back, 1 front
}

// Clamp limits both fields to {-1, 0, 1}.
func (i Intent) Clamp() Intent {
	return Intent{Turn: sign(i.Turn), Walk: sign(i.Walk)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Settings are the fixed motion constants.
type Settings struct {
	MoveSpeed     float64 // world units per tick
	RotationSpeed float64 // radians per tick
	Radius        float64 // drawing only; collision samples the centre point
}

// Player is the viewer moving through the grid.
type Player struct {
	X, Y          float64
	RotationAngle float64
	Intent        Intent
	Settings

	log *logrus.Entry
}

// New places a player at spawn. The spawn must not be inside a wall.
func New(spawn geom.Pose, s Settings, walls WallQuery) (*Player, error) {
	if math.IsNaN(spawn.X) || math.IsNaN(spawn.Y) || math.IsInf(spawn.X, 0) || math.IsInf(spawn.Y, 0) {
		return nil, fmt.Errorf("invalid spawn position (%v, %v)", spawn.X, spawn.Y)
	}
	if walls.IsWallAt(spawn.X, spawn.Y) {
		return nil, fmt.Errorf("%w: (%.1f, %.1f)", ErrSpawnInWall, spawn.X, spawn.Y)
	}
	return &Player{
		X:             spawn.X,
		Y:             spawn.Y,
		RotationAngle: spawn.Angle,
		Settings:      s,
		log:           logger.For("player"),
	}, nil
}

// Pose returns a snapshot of the current position and facing.
func (p *Player) Pose() geom.Pose {
	return geom.Pose{X: p.X, Y: p.Y, Angle: p.RotationAngle}
}

// Update advances the pose by one tick. The turn is always applied; the step
// along the new facing is committed only if it lands outside every wall.
// It reports whether a requested step was blocked.
func (p *Player) Update(walls WallQuery) (blocked bool) {
	intent := p.Intent.Clamp()
	p.RotationAngle += float64(intent.Turn) * p.RotationSpeed

	if intent.Walk == 0 {
		return false
	}

	moveStep := float64(intent.Walk) * p.MoveSpeed
	newX := p.X + math.Cos(p.RotationAngle)*moveStep
	newY := p.Y + math.Sin(p.RotationAngle)*moveStep

	if walls.IsWallAt(newX, newY) {
		if p.log != nil {
			p.log.WithFields(logrus.Fields{
				"x": newX,
				"y": newY,
			}).Debug("step blocked by wall")
		}
		return true
	}

	p.X = newX
	p.Y = newY
	return false
}
