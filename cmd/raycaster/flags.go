package main

import "flag"

// Command-line flags. Values given here override the config file.
var (
	// configFlag points at the JSON settings file; a missing file means defaults.
	configFlag = flag.String("config", "config.json", "path to the JSON config file")

	// mapFlag selects a map by ID from -maps-dir, or by path to a .json file.
	mapFlag = flag.String("map", "", "map ID from -maps-dir or path to a map file (default: built-in map plus every map in -maps-dir)")

	mapsDirFlag = flag.String("maps-dir", "data/maps", "directory scanned for map files")

	// listMapsFlag prints the maps found in -maps-dir and exits.
	listMapsFlag = flag.Bool("list-maps", false, "list available maps and exit")

	// backendFlag picks the output: a window or the terminal.
	backendFlag = flag.String("backend", "ebiten", "output backend: ebiten or term")

	// workersFlag overrides camera.workers; 0 keeps the config value.
	workersFlag = flag.Int("workers", 0, "goroutines used to cast rays (0 keeps the config value)")

	logLevelFlag = flag.String("log-level", "", "log level: trace, debug, info, warn, error (default from config)")

	// logFileFlag sends logs to a file; the terminal backend needs this to
	// keep the screen clean.
	logFileFlag = flag.String("log-file", "", "write logs to this file instead of stderr")

	// debugFlag shows the pose readout on screen.
	debugFlag = flag.Bool("debug", false, "show the pose and ray count overlay")

	// cpuProfileFlag writes a CPU profile for the whole session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
