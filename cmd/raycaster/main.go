package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/term"
	"chosenoffset.com/raycaster/internal/world/grid"
	"chosenoffset.com/raycaster/internal/world/mapscanner"
)

func main() {
	flag.Parse()
	log := logger.Log

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg)

	if err := logger.Setup(cfg.Log.Level); err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	if *logFileFlag != "" {
		f, err := os.OpenFile(*logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else if *backendFlag == "term" {
		// stderr would draw over the terminal screen
		logger.SetOutput(io.Discard)
	}

	if *listMapsFlag {
		if err := listMaps(os.Stdout, *mapsDirFlag); err != nil {
			log.Fatalf("Failed to list maps: %v", err)
		}
		return
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("Failed to start CPU profile: %v", err)
		}
		defer stop()
	}

	maps, err := selectMaps(cfg, *mapFlag, *mapsDirFlag)
	if err != nil {
		log.Fatalf("Failed to select map: %v", err)
	}

	backend, err := newBackend(*backendFlag)
	if err != nil {
		log.Fatalf("Failed to start backend: %v", err)
	}

	opts := game.Options{
		FOV:     cfg.FOV(),
		Workers: cfg.Camera.Workers,
		Player:  cfg.PlayerSettings(),
		Scale:   cfg.Window.Scale,
		Debug:   *debugFlag,
	}
	// Ray count depends on the width of the first map
	first, err := maps[0].Load()
	if err != nil {
		log.Fatalf("Failed to load map %s: %v", maps[0].ID, err)
	}
	w, h := first.WorldSize()
	opts.RayCount = cfg.RayCount(w)

	manager, err := game.NewManager(maps, opts, backend.Renderer, backend.Input)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	backend.Engine.SetWindowSize(int(w*cfg.Window.Scale), int(h*cfg.Window.Scale))
	backend.Engine.SetWindowTitle(cfg.Window.Title)
	backend.Engine.SetWindowResizable(cfg.Window.Resizable)

	log.WithFields(logrus.Fields{
		"backend": *backendFlag,
		"maps":    len(maps),
		"rays":    opts.RayCount,
		"workers": opts.Workers,
	}).Info("Starting viewer")

	if err := backend.Engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}

// applyFlags overrides config values with the flags that were set.
func applyFlags(cfg *config.Config) {
	if *workersFlag > 0 {
		cfg.Camera.Workers = *workersFlag
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}
}

func newBackend(name string) (render.Backend, error) {
	switch name {
	case "ebiten":
		return ebitenrender.NewBackend(), nil
	case "term":
		return term.NewBackend()
	default:
		return render.Backend{}, fmt.Errorf("unknown backend %q (want ebiten or term)", name)
	}
}

// selectMaps resolves which maps the session plays. An explicit -map, then
// the config's map path, pick a single map; otherwise the built-in map comes
// first followed by every map in the maps directory.
func selectMaps(cfg *config.Config, mapArg, mapsDir string) ([]game.MapSource, error) {
	if mapArg == "" {
		mapArg = cfg.Map.Path
	}

	if mapArg != "" {
		if strings.HasSuffix(strings.ToLower(mapArg), ".json") {
			return []game.MapSource{fileSource(strings.TrimSuffix(filepath.Base(mapArg), filepath.Ext(mapArg)), mapArg)}, nil
		}
		if mapArg == "classic" {
			return []game.MapSource{classicSource()}, nil
		}
		entries, err := mapscanner.ScanMapDirectory(mapsDir)
		if err != nil {
			return nil, err
		}
		entry, ok := mapscanner.Find(entries, mapArg)
		if !ok {
			return nil, fmt.Errorf("no map %q in %s", mapArg, mapsDir)
		}
		return []game.MapSource{fileSource(entry.ID, entry.Path)}, nil
	}

	maps := []game.MapSource{classicSource()}
	entries, err := mapscanner.ScanMapDirectory(mapsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Log.WithField("dir", mapsDir).Debug("No maps directory, using the built-in map")
			return maps, nil
		}
		return nil, err
	}
	for _, e := range entries {
		maps = append(maps, fileSource(e.ID, e.Path))
	}
	return maps, nil
}

func classicSource() game.MapSource {
	return game.MapSource{
		ID:   "classic",
		Load: func() (*grid.Grid, error) { return grid.Classic(), nil },
	}
}

func fileSource(id, path string) game.MapSource {
	return game.MapSource{
		ID:   id,
		Load: func() (*grid.Grid, error) { return grid.LoadGrid(path) },
	}
}

func listMaps(w io.Writer, dir string) error {
	entries, err := mapscanner.ScanMapDirectory(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-16s %-24s %s\n", "ID", "NAME", "SIZE")
	fmt.Fprintf(w, "%-16s %-24s %s\n", "classic", "Built-in", "15x11")
	for _, e := range entries {
		fmt.Fprintf(w, "%-16s %-24s %dx%d\n", e.ID, e.Name, e.Cols, e.Rows)
	}
	return nil
}
