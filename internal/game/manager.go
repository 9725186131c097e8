package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/grid"
)

// MapSource is one selectable map.
type MapSource struct {
	ID   string
	Load func() (*grid.Grid, error)
}

// Manager owns the running game and switches between maps. Space loads the
// next map in the list.
type Manager struct {
	Maps     []MapSource
	Current  int
	Game     *Game
	Options  Options
	Renderer render.Renderer
	InputMgr render.InputManager

	log *logrus.Entry
}

// NewManager creates a manager and loads the first map.
func NewManager(maps []MapSource, opts Options, r render.Renderer, input render.InputManager) (*Manager, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("no maps to play")
	}
	m := &Manager{
		Maps:     maps,
		Options:  opts,
		Renderer: r,
		InputMgr: input,
		log:      logger.For("manager"),
	}
	if err := m.LoadMap(0); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMap replaces the running game with a fresh one on map i. The current
// motion intent carries over so held keys keep working.
func (m *Manager) LoadMap(i int) error {
	src := m.Maps[i]
	g, err := src.Load()
	if err != nil {
		return fmt.Errorf("failed to load map %s: %w", src.ID, err)
	}

	game, err := New(g, m.Options, m.Renderer, m.InputMgr)
	if err != nil {
		return fmt.Errorf("failed to start map %s: %w", src.ID, err)
	}
	if m.Game != nil {
		game.intent = m.Game.intent
	}

	m.Game = game
	m.Current = i
	m.log.WithFields(logrus.Fields{"id": src.ID, "name": g.Name()}).Info("map loaded")
	return nil
}

// Update updates the game state.
func (m *Manager) Update() error {
	if len(m.Maps) > 1 && m.InputMgr.IsKeyJustPressed(render.KeySpace) {
		next := (m.Current + 1) % len(m.Maps)
		if err := m.LoadMap(next); err != nil {
			// Keep playing the current map
			m.log.WithError(err).Warn("map switch failed")
		}
	}
	return m.Game.Update()
}

// Draw draws the current game.
func (m *Manager) Draw(screen render.Image) {
	m.Game.Draw(screen)
}

// Layout returns the current map's screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Game.Layout(outsideWidth, outsideHeight)
}
