package grid

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Outline returns the exposed edges of every contiguous wall region, with
// colinear neighbouring edges merged into single segments.
func (g *Grid) Outline() []geom.Segment {
	// Step 1: Find all contiguous regions of wall tiles
	regions := g.findContiguousRegions()

	// Step 2: Extract perimeter segments for each region
	var allSegments []geom.Segment
	for _, region := range regions {
		allSegments = append(allSegments, g.extractPerimeterSegments(region)...)
	}

	// Step 3: Merge colinear segments to create longer wall segments
	return mergeColinearSegments(allSegments)
}

// findContiguousRegions identifies all connected regions of wall tiles
func (g *Grid) findContiguousRegions() [][]geom.Coord {
	visited := make(map[geom.Coord]bool)
	var regions [][]geom.Coord

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			coord := geom.Coord{X: x, Y: y}
			if visited[coord] || g.cells[y][x] != Wall {
				continue
			}
			if region := g.floodFill(coord, visited); len(region) > 0 {
				regions = append(regions, region)
			}
		}
	}

	return regions
}

// floodFill performs BFS to find all 4-connected wall tiles
func (g *Grid) floodFill(start geom.Coord, visited map[geom.Coord]bool) []geom.Coord {
	var region []geom.Coord
	queue := []geom.Coord{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)

		neighbors := []geom.Coord{
			{X: current.X, Y: current.Y - 1}, // North
			{X: current.X + 1, Y: current.Y}, // East
			{X: current.X, Y: current.Y + 1}, // South
			{X: current.X - 1, Y: current.Y}, // West
		}

		for _, n := range neighbors {
			if !g.InBounds(n) || visited[n] || g.cells[n.Y][n.X] != Wall {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return region
}

// extractPerimeterSegments emits one segment per tile edge that borders a
// tile outside the region.
func (g *Grid) extractPerimeterSegments(region []geom.Coord) []geom.Segment {
	var segments []geom.Segment

	regionSet := make(map[geom.Coord]bool, len(region))
	for _, c := range region {
		regionSet[c] = true
	}

	ts := g.tileSize
	for _, c := range region {
		left := float64(c.X) * ts
		top := float64(c.Y) * ts
		right := left + ts
		bottom := top + ts

		if !regionSet[geom.Coord{X: c.X, Y: c.Y - 1}] {
			segments = append(segments, geom.Segment{A: geom.Point{X: left, Y: top}, B: geom.Point{X: right, Y: top}, EdgeType: "top"})
		}
		if !regionSet[geom.Coord{X: c.X + 1, Y: c.Y}] {
			segments = append(segments, geom.Segment{A: geom.Point{X: right, Y: top}, B: geom.Point{X: right, Y: bottom}, EdgeType: "right"})
		}
		if !regionSet[geom.Coord{X: c.X, Y: c.Y + 1}] {
			segments = append(segments, geom.Segment{A: geom.Point{X: left, Y: bottom}, B: geom.Point{X: right, Y: bottom}, EdgeType: "bottom"})
		}
		if !regionSet[geom.Coord{X: c.X - 1, Y: c.Y}] {
			segments = append(segments, geom.Segment{A: geom.Point{X: left, Y: top}, B: geom.Point{X: left, Y: bottom}, EdgeType: "left"})
		}
	}

	return segments
}

// mergeColinearSegments combines adjacent parallel segments into longer segments
func mergeColinearSegments(segments []geom.Segment) []geom.Segment {
	if len(segments) == 0 {
		return segments
	}

	merged := make([]bool, len(segments))
	var result []geom.Segment

	for i := range segments {
		if merged[i] {
			continue
		}

		current := segments[i]
		merged[i] = true

		// Keep extending until no unmerged neighbour touches either end
		extended := true
		for extended {
			extended = false
			for j := range segments {
				if merged[j] {
					continue
				}
				if canMergeSegments(current, segments[j]) {
					current = mergeSegments(current, segments[j])
					merged[j] = true
					extended = true
					break
				}
			}
		}

		result = append(result, current)
	}

	return result
}

const mergeEpsilon = 0.001

// canMergeSegments checks if two segments are adjacent and colinear
func canMergeSegments(a, b geom.Segment) bool {
	if a.EdgeType != b.EdgeType {
		return false
	}

	switch a.EdgeType {
	case "top", "bottom":
		if math.Abs(a.A.Y-b.A.Y) > mergeEpsilon {
			return false
		}
		return math.Abs(a.B.X-b.A.X) < mergeEpsilon || math.Abs(a.A.X-b.B.X) < mergeEpsilon
	case "left", "right":
		if math.Abs(a.A.X-b.A.X) > mergeEpsilon {
			return false
		}
		return math.Abs(a.B.Y-b.A.Y) < mergeEpsilon || math.Abs(a.A.Y-b.B.Y) < mergeEpsilon
	}

	return false
}

// mergeSegments combines two adjacent colinear segments into one
func mergeSegments(a, b geom.Segment) geom.Segment {
	result := a

	switch a.EdgeType {
	case "top", "bottom":
		result.A.X = min(a.A.X, a.B.X, b.A.X, b.B.X)
		result.B.X = max(a.A.X, a.B.X, b.A.X, b.B.X)
	case "left", "right":
		result.A.Y = min(a.A.Y, a.B.Y, b.A.Y, b.B.Y)
		result.B.Y = max(a.A.Y, a.B.Y, b.A.Y, b.B.Y)
	}

	return result
}
