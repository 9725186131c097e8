package raycast

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/logger"
)

var (
	ErrBadRayCount = errors.New("ray count must be positive")
	ErrBadFOV      = errors.New("field of view must be within (0, 2π)")
)

// ColumnAngle returns the angle of column i out of count across fov,
// centred on the pose's facing.
func ColumnAngle(facing, fov float64, i, count int) float64 {
	return facing - fov/2 + float64(i)*fov/float64(count)
}

// CastAll casts count rays evenly spaced across fov, left to right.
func CastAll(pose geom.Pose, g Grid, fov float64, count int) []Ray {
	rays := make([]Ray, count)
	for i := range rays {
		rays[i] = castColumn(pose, g, fov, i, count)
	}
	return rays
}

// CastAllParallel produces the same rays as CastAll, splitting the columns
// into at most workers contiguous chunks cast concurrently. pose is a value
// snapshot, so callers may move the player as soon as it returns.
func CastAllParallel(ctx context.Context, pose geom.Pose, g Grid, fov float64, count, workers int) ([]Ray, error) {
	if workers <= 1 || count <= 1 {
		return CastAll(pose, g, fov, count), nil
	}
	if workers > count {
		workers = count
	}

	rays := make([]Ray, count)
	chunk := (count + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for start := 0; start < count; start += chunk {
		start, end := start, min(start+chunk, count)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// each goroutine owns rays[start:end]
			for i := start; i < end; i++ {
				rays[i] = castColumn(pose, g, fov, i, count)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("cast rays: %w", err)
	}
	return rays, nil
}

func castColumn(pose geom.Pose, g Grid, fov float64, i, count int) Ray {
	r := Cast(pose, g, ColumnAngle(pose.Angle, fov, i, count))
	r.Column = i
	return r
}

// Caster holds the camera settings used every tick.
type Caster struct {
	FOV      float64
	RayCount int
	Workers  int

	log *logrus.Entry
}

// NewCaster validates the camera settings.
func NewCaster(fov float64, rayCount, workers int) (*Caster, error) {
	if rayCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRayCount, rayCount)
	}
	if !(fov > 0 && fov < geom.TwoPi) || math.IsNaN(fov) {
		return nil, fmt.Errorf("%w: %v", ErrBadFOV, fov)
	}
	if workers < 1 {
		workers = 1
	}
	return &Caster{
		FOV:      fov,
		RayCount: rayCount,
		Workers:  workers,
		log:      logger.For("raycast"),
	}, nil
}

// CastAll casts the configured rays for pose.
func (c *Caster) CastAll(ctx context.Context, pose geom.Pose, g Grid) ([]Ray, error) {
	rays, err := CastAllParallel(ctx, pose, g, c.FOV, c.RayCount, c.Workers)
	if err != nil {
		return nil, err
	}
	if c.log != nil && c.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		misses := 0
		for _, r := range rays {
			if !r.Hit {
				misses++
			}
		}
		if misses > 0 {
			c.log.WithFields(logrus.Fields{
				"misses": misses,
				"x":      pose.X,
				"y":      pose.Y,
			}).Debug("rays left the world without a hit")
		}
	}
	return rays, nil
}
