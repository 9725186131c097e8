package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// MapEntry represents a loadable map file in the maps directory
type MapEntry struct {
	ID         string // File name without extension, used with -map
	Name       string // Display name from the file
	Path       string
	Rows, Cols int
}

// ScanMapDirectory scans a directory for map files.
// Files that fail to parse are skipped with a warning.
func ScanMapDirectory(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	log := logger.For("mapscanner")
	var maps []MapEntry

	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		path := filepath.Join(dir, name)
		g, err := grid.LoadGrid(path)
		if err != nil {
			log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("skipping map")
			continue
		}

		maps = append(maps, MapEntry{
			ID:   strings.TrimSuffix(name, filepath.Ext(name)),
			Name: g.Name(),
			Path: path,
			Rows: g.Rows(),
			Cols: g.Cols(),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].ID < maps[j].ID })
	return maps, nil
}

// Find returns the entry with the given ID.
func Find(maps []MapEntry, id string) (MapEntry, bool) {
	for _, m := range maps {
		if m.ID == id {
			return m, true
		}
	}
	return MapEntry{}, false
}
