// Package grid owns the static tile layout the player walks in and the rays
// are cast against.
package grid

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Cell is the state of one tile.
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

var (
	ErrEmptyGrid   = errors.New("grid has no cells")
	ErrRaggedGrid  = errors.New("grid rows have different lengths")
	ErrBadTileSize = errors.New("tile size must be positive")
	ErrBadCell     = errors.New("unknown cell value")
)

// Spawn is an optional player start pose stored with a map.
type Spawn struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	AngleDegrees float64 `json:"angle_degrees"`
}

// Grid is an immutable rectangular tile map. Rows are indexed [y][x].
type Grid struct {
	name     string
	cells    [][]Cell
	rows     int
	cols     int
	tileSize float64
	spawn    *Spawn
}

// New builds a grid from a row-major cell matrix. The matrix is copied.
func New(name string, cells [][]Cell, tileSize float64) (*Grid, error) {
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadTileSize, tileSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(cells[0])
	copied := make([][]Cell, len(cells))
	for y, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedGrid, y, len(row), cols)
		}
		for x, c := range row {
			if c != Empty && c != Wall {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrBadCell, c, x, y)
			}
		}
		copied[y] = append([]Cell(nil), row...)
	}

	return &Grid{
		name:     name,
		cells:    copied,
		rows:     len(cells),
		cols:     cols,
		tileSize: tileSize,
	}, nil
}

// WithSpawn returns a copy of the grid carrying a player start pose.
func (g *Grid) WithSpawn(s Spawn) *Grid {
	cp := *g
	cp.spawn = &s
	return &cp
}

// Name returns the map name.
func (g *Grid) Name() string { return g.name }

// Rows returns the number of tile rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of tile columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the tile edge length in world units.
func (g *Grid) TileSize() float64 { return g.tileSize }

// WorldSize returns the world extent in world units.
func (g *Grid) WorldSize() (width, height float64) {
	return float64(g.cols) * g.tileSize, float64(g.rows) * g.tileSize
}

// Spawn returns the start pose. Maps without one start at the centre of the
// world facing down the screen.
func (g *Grid) Spawn() geom.Pose {
	if g.spawn != nil {
		return geom.Pose{X: g.spawn.X, Y: g.spawn.Y, Angle: geom.Radians(g.spawn.AngleDegrees)}
	}
	w, h := g.WorldSize()
	return geom.Pose{X: w / 2, Y: h / 2, Angle: math.Pi / 2}
}

// CellAt returns the tile state at the given grid coordinates. Coordinates
// outside the grid report Wall.
func (g *Grid) CellAt(x, y int) Cell {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return Wall
	}
	return g.cells[y][x]
}

// InBounds reports whether c addresses a tile of the grid.
func (g *Grid) InBounds(c geom.Coord) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// CoordAt converts a world position to the tile containing it. ok is false
// when the position lies outside the grid.
func (g *Grid) CoordAt(x, y float64) (geom.Coord, bool) {
	w, h := g.WorldSize()
	if !(x >= 0 && x < w && y >= 0 && y < h) {
		return geom.Coord{}, false
	}
	return geom.Coord{X: int(math.Floor(x / g.tileSize)), Y: int(math.Floor(y / g.tileSize))}, true
}

// IsWallAt reports whether the world position lies inside a wall tile.
// Anything outside [0, width) × [0, height), NaN included, is solid.
func (g *Grid) IsWallAt(x, y float64) bool {
	c, ok := g.CoordAt(x, y)
	if !ok {
		return true
	}
	// floor(x/tile) can round up to cols for x just below width
	if c.X >= g.cols || c.Y >= g.rows {
		return true
	}
	return g.cells[c.Y][c.X] == Wall
}
