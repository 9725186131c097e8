// Package config provides the viewer settings. They are loaded from a JSON
// file so each map can ship its own camera and movement tuning.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/entity/player"
)

// Config holds all viewer settings
type Config struct {
	Window WindowConfig `json:"window"`
	Camera CameraConfig `json:"camera"`
	Player PlayerConfig `json:"player"`
	Map    MapConfig    `json:"map"`
	Log    LogConfig    `json:"log"`
}

// WindowConfig controls the output surface
type WindowConfig struct {
	Title     string  `json:"title"`
	Scale     float64 `json:"scale"` // window pixels per world unit
	Resizable bool    `json:"resizable"`
}

// CameraConfig defines the field of view and how many rays are cast
type CameraConfig struct {
	FOVDegrees     float64 `json:"fov_degrees"`
	WallStripWidth float64 `json:"wall_strip_width"` // world units per column when ray_count is 0
	RayCount       int     `json:"ray_count"`        // 0 derives it from the world width
	Workers        int     `json:"workers"`          // goroutines used to cast a frame
}

// PlayerConfig defines movement
type PlayerConfig struct {
	MoveSpeed            float64 `json:"move_speed"`             // world units per tick
	RotationSpeedDegrees float64 `json:"rotation_speed_degrees"` // degrees per tick
	Radius               float64 `json:"radius"`
}

// MapConfig selects the level
type MapConfig struct {
	Path string `json:"path"` // empty uses the built-in map
}

// LogConfig sets the log level
type LogConfig struct {
	Level string `json:"level"`
}

// DefaultConfig returns the settings of the original viewer
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Raycaster",
			Scale:     1,
			Resizable: false,
		},
		Camera: CameraConfig{
			FOVDegrees:     60,
			WallStripWidth: 30,
			RayCount:       0,
			Workers:        1,
		},
		Player: PlayerConfig{
			MoveSpeed:            2.0,
			RotationSpeedDegrees: 0.5,
			Radius:               3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate rejects settings the per-tick loop cannot run with.
func (c *Config) Validate() error {
	cam := c.Camera
	if !(cam.FOVDegrees > 0 && cam.FOVDegrees < 360) {
		return fmt.Errorf("camera.fov_degrees must be in (0, 360), got %v", cam.FOVDegrees)
	}
	if cam.RayCount < 0 {
		return fmt.Errorf("camera.ray_count must not be negative, got %d", cam.RayCount)
	}
	if cam.RayCount == 0 && !(cam.WallStripWidth > 0) {
		return fmt.Errorf("camera.wall_strip_width must be positive when ray_count is 0, got %v", cam.WallStripWidth)
	}
	if cam.Workers < 0 {
		return fmt.Errorf("camera.workers must not be negative, got %d", cam.Workers)
	}

	pl := c.Player
	if pl.MoveSpeed < 0 || math.IsNaN(pl.MoveSpeed) {
		return fmt.Errorf("player.move_speed must not be negative, got %v", pl.MoveSpeed)
	}
	if pl.RotationSpeedDegrees < 0 || math.IsNaN(pl.RotationSpeedDegrees) {
		return fmt.Errorf("player.rotation_speed_degrees must not be negative, got %v", pl.RotationSpeedDegrees)
	}
	if pl.Radius < 0 {
		return fmt.Errorf("player.radius must not be negative, got %v", pl.Radius)
	}

	if !(c.Window.Scale > 0) {
		return fmt.Errorf("window.scale must be positive, got %v", c.Window.Scale)
	}
	return nil
}

// FOV returns the field of view in radians.
func (c *Config) FOV() float64 {
	return geom.Radians(c.Camera.FOVDegrees)
}

// RayCount returns the number of columns to cast for a world this wide.
// At least one ray is always cast.
func (c *Config) RayCount(worldWidth float64) int {
	if c.Camera.RayCount > 0 {
		return c.Camera.RayCount
	}
	n := int(math.Floor(worldWidth / c.Camera.WallStripWidth))
	if n < 1 {
		n = 1
	}
	return n
}

// PlayerSettings converts the player section to motion constants.
func (c *Config) PlayerSettings() player.Settings {
	return player.Settings{
		MoveSpeed:     c.Player.MoveSpeed,
		RotationSpeed: geom.Radians(c.Player.RotationSpeedDegrees),
		Radius:        c.Player.Radius,
	}
}
