package grid

import (
	"encoding/json"
	"fmt"
	"os"
)

// MapData is the on-disk map format.
type MapData struct {
	Name        string  `json:"name"`
	TileSize    float64 `json:"tile_size"`
	Grid        [][]int `json:"grid"` // 2D array of cells [y][x], 1 = wall
	PlayerSpawn *Spawn  `json:"player_spawn,omitempty"`
}

// LoadGrid loads a map from a JSON file
func LoadGrid(mapPath string) (*Grid, error) {
	// Read the map JSON file
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	g, err := ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", mapPath, err)
	}
	return g, nil
}

// ParseGrid decodes and validates map JSON.
func ParseGrid(data []byte) (*Grid, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, err
	}

	cells := make([][]Cell, len(mapData.Grid))
	for y, row := range mapData.Grid {
		cells[y] = make([]Cell, len(row))
		for x, v := range row {
			cells[y][x] = Cell(v)
		}
	}

	g, err := New(mapData.Name, cells, mapData.TileSize)
	if err != nil {
		return nil, err
	}

	if mapData.PlayerSpawn != nil {
		s := *mapData.PlayerSpawn
		if g.IsWallAt(s.X, s.Y) {
			return nil, fmt.Errorf("player spawn (%.1f, %.1f) is inside a wall", s.X, s.Y)
		}
		g = g.WithSpawn(s)
	}
	return g, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.TileSize <= 0 {
		return fmt.Errorf("%w: %v", ErrBadTileSize, data.TileSize)
	}

	if len(data.Grid) == 0 || len(data.Grid[0]) == 0 {
		return ErrEmptyGrid
	}

	width := len(data.Grid[0])
	for y, row := range data.Grid {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedGrid, y, len(row), width)
		}
		for x, v := range row {
			if v != int(Empty) && v != int(Wall) {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrBadCell, v, x, y)
			}
		}
	}

	return nil
}
