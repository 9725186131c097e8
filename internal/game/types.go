package game

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/entity/player"
)

// Frame is everything the renderer needs from one tick.
type Frame struct {
	Tick    uint64
	Pose    geom.Pose
	Rays    []raycast.Ray
	Blocked bool // the requested step ran into a wall
}

// Options are the camera and movement settings of a game.
type Options struct {
	FOV      float64 // radians
	RayCount int
	Workers  int
	Player   player.Settings
	Scale    float64 // screen pixels per world unit
	Debug    bool    // draw the pose readout
}

// Colors of the top-down view
var (
	backgroundColor   = color.RGBA{0x11, 0x11, 0x11, 0xff}
	floorColor        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	wallColor         = color.RGBA{0x22, 0x22, 0x22, 0xff}
	exploredWallColor = color.RGBA{0x33, 0x3a, 0x55, 0xff}
	gridLineColor     = color.RGBA{0x22, 0x22, 0x22, 0xff}
	outlineColor      = color.RGBA{0xe0, 0xa0, 0x30, 0xff}
	rayColor          = color.RGBA{0x00, 0x00, 0xff, 0xff}
	playerColor       = color.RGBA{0xff, 0x00, 0x00, 0xff}
	textColor         = color.RGBA{0xff, 0xff, 0xff, 0xff}
)
