package grid

// classicLayout is the 11×15 level of the original viewer.
var classicLayout = [][]Cell{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// ClassicTileSize is the tile edge of the built-in map.
const ClassicTileSize = 32

// Classic returns the built-in map used when no map file is given.
func Classic() *Grid {
	g, err := New("classic", classicLayout, ClassicTileSize)
	if err != nil {
		panic("grid: classic layout is invalid: " + err.Error())
	}
	return g
}

// Bordered returns an all-open rows×cols grid surrounded by one ring of wall.
func Bordered(rows, cols int, tileSize float64) (*Grid, error) {
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
		for x := range cells[y] {
			if y == 0 || y == rows-1 || x == 0 || x == cols-1 {
				cells[y][x] = Wall
			}
		}
	}
	return New("bordered", cells, tileSize)
}
