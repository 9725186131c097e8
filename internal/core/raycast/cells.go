package raycast

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// CellLocator maps world positions to tiles.
type CellLocator interface {
	CoordAt(x, y float64) (geom.Coord, bool)
}

// StruckCells returns the wall tiles hit by rays. Rays without a hit and
// hits on the outside of the world are skipped.
func StruckCells(rays []Ray, loc CellLocator) mapset.Set[geom.Coord] {
	cells := mapset.New[geom.Coord]()
	for _, r := range rays {
		p, ok := r.WallSample()
		if !ok {
			continue
		}
		if c, ok := loc.CoordAt(p.X, p.Y); ok {
			cells.Put(c)
		}
	}
	return cells
}
